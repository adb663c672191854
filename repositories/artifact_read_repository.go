package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories/dbmodels"
)

// ArtifactReadRepository is the read-only surface over the assessment
// editors' tables, used by the snapshot service to capture a scope's state.
type ArtifactReadRepository interface {
	ListArtifactsByScope(ctx context.Context, exec Executor,
		artifactType models.ArtifactType, scopeId string) ([]models.Artifact, error)
}

func (repo *TaraDbRepository) ListArtifactsByScope(ctx context.Context, exec Executor,
	artifactType models.ArtifactType, scopeId string,
) ([]models.Artifact, error) {
	table := dbmodels.ArtifactTable(artifactType)
	if table == "" {
		return nil, errors.Wrapf(models.BadParameterError,
			"unknown artifact type %s", artifactType)
	}

	return SqlToListOfModels(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectArtifactColumns...).
			From(table).
			Where(squirrel.Eq{"scope_id": scopeId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptArtifact,
	)
}
