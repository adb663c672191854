package security

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vectasec/tara-backend/models"
)

func makeWorkflowEnforcer(creds models.Credentials) *EnforceSecurityWorkflowImpl {
	return &EnforceSecurityWorkflowImpl{
		EnforceSecurity: &EnforceSecurityImpl{Credentials: creds},
		Credentials:     creds,
	}
}

func TestTransitionWorkflow_RoleGates(t *testing.T) {
	workflow := models.ApprovalWorkflow{
		Id:           uuid.New(),
		CurrentState: models.WorkflowStateReview,
		CreatedBy:    "creator",
	}

	analyst := makeWorkflowEnforcer(models.Credentials{
		ActorIdentity: models.Identity{UserId: "analyst"},
		Role:          models.ANALYST,
	})
	assert.NoError(t, analyst.TransitionWorkflow(workflow, models.WorkflowStateDraft))
	assert.ErrorIs(t, analyst.TransitionWorkflow(workflow, models.WorkflowStateApproved),
		models.ForbiddenError)

	reviewer := makeWorkflowEnforcer(models.Credentials{
		ActorIdentity: models.Identity{UserId: "reviewer"},
		Role:          models.REVIEWER,
	})
	assert.NoError(t, reviewer.TransitionWorkflow(workflow, models.WorkflowStateApproved))
	assert.ErrorIs(t, reviewer.TransitionWorkflow(
		models.ApprovalWorkflow{CurrentState: models.WorkflowStateApproved, CreatedBy: "creator"},
		models.WorkflowStateReleased), models.ForbiddenError)

	riskManager := makeWorkflowEnforcer(models.Credentials{
		ActorIdentity: models.Identity{UserId: "risk-manager"},
		Role:          models.RISK_MANAGER,
	})
	assert.NoError(t, riskManager.TransitionWorkflow(
		models.ApprovalWorkflow{CurrentState: models.WorkflowStateApproved, CreatedBy: "creator"},
		models.WorkflowStateReleased))
}

func TestTransitionWorkflow_MakerChecker(t *testing.T) {
	workflow := models.ApprovalWorkflow{
		Id:           uuid.New(),
		CurrentState: models.WorkflowStateReview,
		CreatedBy:    "creator",
	}

	creator := makeWorkflowEnforcer(models.Credentials{
		ActorIdentity: models.Identity{UserId: "creator"},
		Role:          models.RISK_MANAGER,
	})
	err := creator.TransitionWorkflow(workflow, models.WorkflowStateApproved)
	assert.ErrorIs(t, err, models.ErrSelfApproval)
	assert.ErrorIs(t, err, models.ForbiddenError)

	// the creator may still submit or send back their own workflow
	assert.NoError(t, creator.TransitionWorkflow(workflow, models.WorkflowStateDraft))
}

func TestTransitionWorkflow_SuperuserDoesNotBypassMakerChecker(t *testing.T) {
	workflow := models.ApprovalWorkflow{
		Id:           uuid.New(),
		CurrentState: models.WorkflowStateReview,
		CreatedBy:    "creator",
	}

	superuser := makeWorkflowEnforcer(models.Credentials{
		ActorIdentity: models.Identity{UserId: "creator"},
		Role:          models.NO_ROLE,
		Superuser:     true,
	})
	assert.ErrorIs(t, superuser.TransitionWorkflow(workflow, models.WorkflowStateApproved),
		models.ErrSelfApproval)

	// but it does bypass role grants on every other transition
	assert.NoError(t, superuser.TransitionWorkflow(workflow, models.WorkflowStateDraft))

	otherSuperuser := makeWorkflowEnforcer(models.Credentials{
		ActorIdentity: models.Identity{UserId: "someone-else"},
		Role:          models.NO_ROLE,
		Superuser:     true,
	})
	assert.NoError(t, otherSuperuser.TransitionWorkflow(workflow, models.WorkflowStateApproved))
}

func TestPermission_RoleTable(t *testing.T) {
	cases := []struct {
		role       models.Role
		permission models.Permission
		allowed    bool
	}{
		{models.VIEWER, models.WORKFLOW_READ, true},
		{models.VIEWER, models.WORKFLOW_CREATE, false},
		{models.VIEWER, models.AUDIT_WRITE, false},
		{models.ANALYST, models.WORKFLOW_CREATE, true},
		{models.ANALYST, models.WORKFLOW_APPROVE, false},
		{models.ANALYST, models.SNAPSHOT_CREATE, false},
		{models.REVIEWER, models.WORKFLOW_APPROVE, true},
		{models.REVIEWER, models.WORKFLOW_RELEASE, false},
		{models.RISK_MANAGER, models.WORKFLOW_RELEASE, true},
		{models.RISK_MANAGER, models.SNAPSHOT_CREATE, true},
		{models.ADMIN, models.EVIDENCE_DELETE, true},
		{models.NO_ROLE, models.WORKFLOW_READ, false},
	}

	for _, tc := range cases {
		enforcer := EnforceSecurityImpl{Credentials: models.Credentials{Role: tc.role}}
		err := enforcer.Permission(tc.permission)
		if tc.allowed {
			assert.NoError(t, err, "role %s permission %v", tc.role, tc.permission)
		} else {
			assert.ErrorIs(t, err, models.ForbiddenError,
				"role %s permission %v", tc.role, tc.permission)
		}
	}
}

func TestPermission_Superuser(t *testing.T) {
	enforcer := EnforceSecurityImpl{Credentials: models.Credentials{
		Role:      models.NO_ROLE,
		Superuser: true,
	}}
	assert.NoError(t, enforcer.Permission(models.WORKFLOW_RELEASE))
	assert.NoError(t, enforcer.Permission(models.EVIDENCE_DELETE))
}
