package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories/dbmodels"
)

func (repo *TaraDbRepository) GetWorkflowById(ctx context.Context, exec Executor,
	workflowId uuid.UUID,
) (models.ApprovalWorkflow, error) {
	return SqlToModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectWorkflowColumns...).
			From(dbmodels.TABLE_WORKFLOWS).
			Where(squirrel.Eq{"id": workflowId}),
		dbmodels.AdaptWorkflow,
	)
}

// GetWorkflowByArtifact returns nil without error when the artifact has no
// workflow: an ungoverned artifact is a normal state, not a failure.
func (repo *TaraDbRepository) GetWorkflowByArtifact(ctx context.Context, exec Executor,
	ref models.ArtifactRef,
) (*models.ApprovalWorkflow, error) {
	return SqlToOptionalModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectWorkflowColumns...).
			From(dbmodels.TABLE_WORKFLOWS).
			Where(squirrel.Eq{
				"artifact_type": ref.ArtifactType,
				"artifact_id":   ref.ArtifactId,
				"scope_id":      ref.ScopeId,
			}),
		dbmodels.AdaptWorkflow,
	)
}

// GetWorkflowByIdForUpdate locks the workflow row for the duration of the
// enclosing transaction, so a transition is validated and applied against a
// state no concurrent request can move.
func (repo *TaraDbRepository) GetWorkflowByIdForUpdate(ctx context.Context, tx Transaction,
	workflowId uuid.UUID,
) (models.ApprovalWorkflow, error) {
	return SqlToModel(ctx, tx,
		NewQueryBuilder().
			Select(dbmodels.SelectWorkflowColumns...).
			From(dbmodels.TABLE_WORKFLOWS).
			Where(squirrel.Eq{"id": workflowId}).
			Suffix("FOR UPDATE"),
		dbmodels.AdaptWorkflow,
	)
}

func (repo *TaraDbRepository) CreateWorkflow(ctx context.Context, tx Transaction,
	attributes models.CreateWorkflowAttributes, newWorkflowId uuid.UUID,
) error {
	_, err := ExecBuilder(ctx, tx,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_WORKFLOWS).
			Columns(
				"id",
				"artifact_type",
				"artifact_id",
				"scope_id",
				"current_state",
				"created_by",
				"assigned_reviewer",
			).
			Values(
				newWorkflowId,
				attributes.ArtifactType,
				attributes.ArtifactId,
				attributes.ScopeId,
				models.WorkflowStateDraft,
				attributes.CreatedBy,
				attributes.AssignedReviewer,
			),
	)
	return err
}

// UpdateWorkflowState applies one transition with a compare-and-swap on
// current_state. It returns ErrWorkflowStateStale when the row was moved by a
// concurrent actor between read and write.
func (repo *TaraDbRepository) UpdateWorkflowState(ctx context.Context, tx Transaction,
	attributes models.UpdateWorkflowStateAttributes,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_WORKFLOWS).
		Set("current_state", attributes.ToState).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{
			"id":            attributes.Id,
			"current_state": attributes.FromState,
		})

	switch attributes.ToState {
	case models.WorkflowStateReview:
		query = query.
			Set("reviewed_by", attributes.Actor).
			Set("review_notes", attributes.Notes)
	case models.WorkflowStateApproved:
		query = query.
			Set("approved_by", attributes.Actor).
			Set("approval_notes", attributes.Notes)
	case models.WorkflowStateReleased:
		query = query.Set("released_by", attributes.Actor)
	case models.WorkflowStateDraft:
		query = query.Set("rejection_reason", attributes.Notes)
	}

	rowsAffected, err := ExecBuilder(ctx, tx, query)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrWorkflowStateStale
	}
	return nil
}

func (repo *TaraDbRepository) ListWorkflowsByScope(ctx context.Context, exec Executor,
	filters models.WorkflowFilters,
) ([]models.ApprovalWorkflow, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectWorkflowColumns...).
		From(dbmodels.TABLE_WORKFLOWS).
		Where(squirrel.Eq{"scope_id": filters.ScopeId}).
		OrderBy("created_at DESC")

	if filters.State != "" && filters.State != models.WorkflowStateUnknown {
		query = query.Where(squirrel.Eq{"current_state": filters.State})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptWorkflow)
}
