package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories/dbmodels"
)

// CreateSnapshot inserts a snapshot with an explicit version. The unique
// (scope_id, version) constraint is the serialization boundary for concurrent
// snapshot requests: a violation surfaces as ErrSnapshotVersionTaken and the
// usecase retries with a recomputed version.
func (repo *TaraDbRepository) CreateSnapshot(ctx context.Context, tx Transaction,
	snapshot models.TaraSnapshot, data json.RawMessage,
) error {
	_, err := ExecBuilder(ctx, tx,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_TARA_SNAPSHOTS).
			Columns(
				"id",
				"scope_id",
				"version",
				"version_label",
				"asset_count",
				"damage_scenario_count",
				"threat_scenario_count",
				"attack_path_count",
				"risk_treatment_count",
				"workflow_state",
				"created_by",
				"notes",
				"snapshot_data",
			).
			Values(
				snapshot.Id,
				snapshot.ScopeId,
				snapshot.Version,
				snapshot.VersionLabel,
				snapshot.AssetCount,
				snapshot.DamageScenarioCount,
				snapshot.ThreatScenarioCount,
				snapshot.AttackPathCount,
				snapshot.RiskTreatmentCount,
				snapshot.WorkflowState,
				snapshot.CreatedBy,
				snapshot.Notes,
				data,
			),
	)
	if IsUniqueViolationError(err) {
		return errors.Wrapf(models.ErrSnapshotVersionTaken,
			"version %d for scope %s", snapshot.Version, snapshot.ScopeId)
	}
	return err
}

func (repo *TaraDbRepository) GetMaxSnapshotVersion(ctx context.Context, exec Executor,
	scopeId string,
) (int, error) {
	return SqlToRow[int](ctx, exec,
		NewQueryBuilder().
			Select("COALESCE(MAX(version), 0)").
			From(dbmodels.TABLE_TARA_SNAPSHOTS).
			Where(squirrel.Eq{"scope_id": scopeId}),
	)
}

func (repo *TaraDbRepository) ListSnapshotsByScope(ctx context.Context, exec Executor,
	scopeId string,
) ([]models.TaraSnapshot, error) {
	return SqlToListOfModels(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSnapshotColumns...).
			From(dbmodels.TABLE_TARA_SNAPSHOTS).
			Where(squirrel.Eq{"scope_id": scopeId}).
			OrderBy("version DESC"),
		dbmodels.AdaptSnapshot,
	)
}

func (repo *TaraDbRepository) GetSnapshotById(ctx context.Context, exec Executor,
	snapshotId uuid.UUID,
) (models.TaraSnapshot, error) {
	return SqlToModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSnapshotWithDataColumns...).
			From(dbmodels.TABLE_TARA_SNAPSHOTS).
			Where(squirrel.Eq{"id": snapshotId}),
		dbmodels.AdaptSnapshotWithData,
	)
}
