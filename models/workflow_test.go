package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowState_CanTransitionTo(t *testing.T) {
	allowed := []struct {
		from WorkflowState
		to   WorkflowState
	}{
		{WorkflowStateDraft, WorkflowStateReview},
		{WorkflowStateReview, WorkflowStateDraft},
		{WorkflowStateReview, WorkflowStateApproved},
		{WorkflowStateApproved, WorkflowStateReview},
		{WorkflowStateApproved, WorkflowStateReleased},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to),
			"%s -> %s should be allowed", tc.from, tc.to)
	}

	forbidden := []struct {
		from WorkflowState
		to   WorkflowState
	}{
		{WorkflowStateDraft, WorkflowStateApproved},
		{WorkflowStateDraft, WorkflowStateReleased},
		{WorkflowStateDraft, WorkflowStateDraft},
		{WorkflowStateReview, WorkflowStateReleased},
		{WorkflowStateReview, WorkflowStateReview},
		{WorkflowStateApproved, WorkflowStateDraft},
		{WorkflowStateApproved, WorkflowStateApproved},
		{WorkflowStateReleased, WorkflowStateDraft},
		{WorkflowStateReleased, WorkflowStateReview},
		{WorkflowStateReleased, WorkflowStateApproved},
		{WorkflowStateReleased, WorkflowStateReleased},
	}
	for _, tc := range forbidden {
		assert.False(t, tc.from.CanTransitionTo(tc.to),
			"%s -> %s should be forbidden", tc.from, tc.to)
	}
}

func TestScopeWorkflowStateLabel(t *testing.T) {
	workflows := func(states ...WorkflowState) []ApprovalWorkflow {
		out := make([]ApprovalWorkflow, len(states))
		for i, s := range states {
			out[i] = ApprovalWorkflow{CurrentState: s}
		}
		return out
	}

	assert.Equal(t, ScopeWorkflowStateDraft, ScopeWorkflowStateLabel(nil))
	assert.Equal(t, ScopeWorkflowStateReleased,
		ScopeWorkflowStateLabel(workflows(WorkflowStateReleased, WorkflowStateReleased)))
	assert.Equal(t, ScopeWorkflowStateApproved,
		ScopeWorkflowStateLabel(workflows(WorkflowStateApproved, WorkflowStateReleased)))
	assert.Equal(t, ScopeWorkflowStateInReview,
		ScopeWorkflowStateLabel(workflows(WorkflowStateReview, WorkflowStateApproved)))
	assert.Equal(t, ScopeWorkflowStateDraft,
		ScopeWorkflowStateLabel(workflows(WorkflowStateDraft, WorkflowStateApproved)))
}

func TestPermissionForTransition(t *testing.T) {
	assert.Equal(t, WORKFLOW_SUBMIT, PermissionForTransition(WorkflowStateReview))
	assert.Equal(t, WORKFLOW_SUBMIT, PermissionForTransition(WorkflowStateDraft))
	assert.Equal(t, WORKFLOW_APPROVE, PermissionForTransition(WorkflowStateApproved))
	assert.Equal(t, WORKFLOW_RELEASE, PermissionForTransition(WorkflowStateReleased))
}

func TestCreateAuditLogAttributes_Validate(t *testing.T) {
	valid := CreateAuditLogAttributes{
		ArtifactType: ArtifactTypeAsset,
		ArtifactId:   "asset-1",
		Action:       AuditActionUpdate,
		PerformedBy:  "user-1",
	}
	assert.NoError(t, valid.Validate())

	missingType := valid
	missingType.ArtifactType = ""
	assert.ErrorIs(t, missingType.Validate(), BadParameterError)

	missingId := valid
	missingId.ArtifactId = ""
	assert.ErrorIs(t, missingId.Validate(), BadParameterError)

	unknownAction := valid
	unknownAction.Action = AuditActionUnknown
	assert.ErrorIs(t, unknownAction.Validate(), BadParameterError)

	missingActor := valid
	missingActor.PerformedBy = ""
	assert.ErrorIs(t, missingActor.Validate(), BadParameterError)
}
