package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories/dbmodels"
)

func (repo *TaraDbRepository) CreateSignoff(ctx context.Context, tx Transaction,
	attributes models.CreateSignoffAttributes, newSignoffId uuid.UUID,
) error {
	_, err := ExecBuilder(ctx, tx,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_WORKFLOW_SIGNOFFS).
			Columns(
				"id",
				"workflow_id",
				"signer",
				"signer_role",
				"action",
				"comment",
			).
			Values(
				newSignoffId,
				attributes.WorkflowId,
				attributes.Signer,
				attributes.SignerRole,
				attributes.Action,
				attributes.Comment,
			),
	)
	return err
}

func (repo *TaraDbRepository) GetSignoffById(ctx context.Context, exec Executor,
	signoffId uuid.UUID,
) (models.Signoff, error) {
	return SqlToModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSignoffColumns...).
			From(dbmodels.TABLE_WORKFLOW_SIGNOFFS).
			Where(squirrel.Eq{"id": signoffId}),
		dbmodels.AdaptSignoff,
	)
}

func (repo *TaraDbRepository) ListSignoffsByWorkflow(ctx context.Context, exec Executor,
	workflowId uuid.UUID,
) ([]models.Signoff, error) {
	return SqlToListOfModels(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSignoffColumns...).
			From(dbmodels.TABLE_WORKFLOW_SIGNOFFS).
			Where(squirrel.Eq{"workflow_id": workflowId}).
			OrderBy("signed_at ASC"),
		dbmodels.AdaptSignoff,
	)
}
