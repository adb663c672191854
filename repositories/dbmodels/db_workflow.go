package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/utils"
)

type DBWorkflow struct {
	Id               uuid.UUID `db:"id"`
	ArtifactType     string    `db:"artifact_type"`
	ArtifactId       string    `db:"artifact_id"`
	ScopeId          string    `db:"scope_id"`
	CurrentState     string    `db:"current_state"`
	CreatedBy        string    `db:"created_by"`
	AssignedReviewer *string   `db:"assigned_reviewer"`
	ReviewedBy       *string   `db:"reviewed_by"`
	ApprovedBy       *string   `db:"approved_by"`
	ReleasedBy       *string   `db:"released_by"`
	ReviewNotes      *string   `db:"review_notes"`
	ApprovalNotes    *string   `db:"approval_notes"`
	RejectionReason  *string   `db:"rejection_reason"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

const TABLE_WORKFLOWS = "workflows"

var SelectWorkflowColumns = utils.ColumnList[DBWorkflow]()

func AdaptWorkflow(db DBWorkflow) (models.ApprovalWorkflow, error) {
	return models.ApprovalWorkflow{
		Id:               db.Id,
		ArtifactType:     models.ArtifactTypeFromString(db.ArtifactType),
		ArtifactId:       db.ArtifactId,
		ScopeId:          db.ScopeId,
		CurrentState:     models.WorkflowStateFromString(db.CurrentState),
		CreatedBy:        db.CreatedBy,
		AssignedReviewer: db.AssignedReviewer,
		ReviewedBy:       db.ReviewedBy,
		ApprovedBy:       db.ApprovedBy,
		ReleasedBy:       db.ReleasedBy,
		ReviewNotes:      db.ReviewNotes,
		ApprovalNotes:    db.ApprovalNotes,
		RejectionReason:  db.RejectionReason,
		CreatedAt:        db.CreatedAt,
		UpdatedAt:        db.UpdatedAt,
	}, nil
}
