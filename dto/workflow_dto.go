package dto

import (
	"time"

	"github.com/vectasec/tara-backend/models"
)

type APIWorkflow struct {
	Id               string     `json:"id"`
	ArtifactType     string     `json:"artifact_type"`
	ArtifactId       string     `json:"artifact_id"`
	ScopeId          string     `json:"scope_id"`
	CurrentState     string     `json:"current_state"`
	CreatedBy        string     `json:"created_by"`
	AssignedReviewer *string    `json:"assigned_reviewer"`
	ReviewedBy       *string    `json:"reviewed_by"`
	ApprovedBy       *string    `json:"approved_by"`
	ReleasedBy       *string    `json:"released_by"`
	ReviewNotes      *string    `json:"review_notes"`
	ApprovalNotes    *string    `json:"approval_notes"`
	RejectionReason  *string    `json:"rejection_reason"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func AdaptWorkflowDto(workflow models.ApprovalWorkflow) APIWorkflow {
	return APIWorkflow{
		Id:               workflow.Id.String(),
		ArtifactType:     workflow.ArtifactType.String(),
		ArtifactId:       workflow.ArtifactId,
		ScopeId:          workflow.ScopeId,
		CurrentState:     workflow.CurrentState.String(),
		CreatedBy:        workflow.CreatedBy,
		AssignedReviewer: workflow.AssignedReviewer,
		ReviewedBy:       workflow.ReviewedBy,
		ApprovedBy:       workflow.ApprovedBy,
		ReleasedBy:       workflow.ReleasedBy,
		ReviewNotes:      workflow.ReviewNotes,
		ApprovalNotes:    workflow.ApprovalNotes,
		RejectionReason:  workflow.RejectionReason,
		CreatedAt:        workflow.CreatedAt,
		UpdatedAt:        workflow.UpdatedAt,
	}
}

type CreateWorkflowBody struct {
	ArtifactType     string  `json:"artifact_type" binding:"required"`
	ArtifactId       string  `json:"artifact_id" binding:"required"`
	ScopeId          string  `json:"scope_id" binding:"required"`
	AssignedReviewer *string `json:"assigned_reviewer"`
}

type TransitionWorkflowBody struct {
	TargetState string  `json:"target_state" binding:"required"`
	Notes       *string `json:"notes"`
}
