package models

type Permission int

const (
	WORKFLOW_READ Permission = iota
	WORKFLOW_CREATE
	WORKFLOW_SUBMIT
	WORKFLOW_APPROVE
	WORKFLOW_RELEASE
	WORKFLOW_SIGNOFF
	AUDIT_READ
	AUDIT_WRITE
	SNAPSHOT_CREATE
	SNAPSHOT_READ
	EVIDENCE_READ
	EVIDENCE_UPLOAD
	EVIDENCE_DELETE
)

// PermissionForTransition gives the permission gating a transition into the
// target state. The same permission covers submitting for review and sending
// a workflow back to draft.
func PermissionForTransition(target WorkflowState) Permission {
	switch target {
	case WorkflowStateApproved:
		return WORKFLOW_APPROVE
	case WorkflowStateReleased:
		return WORKFLOW_RELEASE
	default:
		return WORKFLOW_SUBMIT
	}
}
