package security

import (
	"github.com/cockroachdb/errors"

	"github.com/vectasec/tara-backend/models"
)

type EnforceSecurityWorkflow interface {
	EnforceSecurity

	ReadWorkflow() error
	CreateWorkflow() error
	TransitionWorkflow(workflow models.ApprovalWorkflow, target models.WorkflowState) error
	SignoffWorkflow() error
}

type EnforceSecurityWorkflowImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityWorkflowImpl) ReadWorkflow() error {
	return e.Permission(models.WORKFLOW_READ)
}

func (e *EnforceSecurityWorkflowImpl) CreateWorkflow() error {
	return e.Permission(models.WORKFLOW_CREATE)
}

// TransitionWorkflow checks the role grant for the target state and the
// maker-checker rule. The maker-checker rule holds for superusers too: being
// allowed everything does not make one's own work reviewable by oneself.
func (e *EnforceSecurityWorkflowImpl) TransitionWorkflow(
	workflow models.ApprovalWorkflow, target models.WorkflowState,
) error {
	if target == models.WorkflowStateApproved &&
		e.Credentials.ActorIdentity.UserId == workflow.CreatedBy {
		return errors.Wrapf(models.ErrSelfApproval,
			"user %s created workflow %s", workflow.CreatedBy, workflow.Id)
	}
	return e.Permission(models.PermissionForTransition(target))
}

func (e *EnforceSecurityWorkflowImpl) SignoffWorkflow() error {
	return e.Permission(models.WORKFLOW_SIGNOFF)
}
