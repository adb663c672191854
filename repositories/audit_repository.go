package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories/dbmodels"
)

// CreateAuditLog is the only write path to the audit_logs table. The id and
// performed_at come from the database so that the per-artifact history stays
// monotonic regardless of application clocks.
func (repo *TaraDbRepository) CreateAuditLog(ctx context.Context, exec Executor,
	attributes models.CreateAuditLogAttributes,
) error {
	_, err := ExecBuilder(ctx, exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_AUDIT_LOGS).
			Columns(
				"scope_id",
				"artifact_type",
				"artifact_id",
				"action",
				"performed_by",
				"field_changed",
				"old_value",
				"new_value",
				"change_summary",
			).
			Values(
				attributes.ScopeId,
				attributes.ArtifactType,
				attributes.ArtifactId,
				attributes.Action,
				attributes.PerformedBy,
				attributes.FieldChanged,
				attributes.OldValue,
				attributes.NewValue,
				attributes.ChangeSummary,
			),
	)
	return err
}

func (repo *TaraDbRepository) ListAuditLogs(ctx context.Context, exec Executor,
	filters models.AuditLogFilters,
) ([]models.AuditLogEntry, error) {
	query := applyAuditLogFilters(
		NewQueryBuilder().
			Select(dbmodels.SelectAuditLogColumns...).
			From(dbmodels.TABLE_AUDIT_LOGS),
		filters,
	).
		OrderBy("performed_at DESC", "id DESC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(filters.Offset))

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditLog)
}

func (repo *TaraDbRepository) CountAuditLogs(ctx context.Context, exec Executor,
	filters models.AuditLogFilters,
) (int, error) {
	query := applyAuditLogFilters(
		NewQueryBuilder().
			Select("COUNT(*)").
			From(dbmodels.TABLE_AUDIT_LOGS),
		filters,
	)

	return SqlToRow[int](ctx, exec, query)
}

func applyAuditLogFilters(query squirrel.SelectBuilder, filters models.AuditLogFilters) squirrel.SelectBuilder {
	if filters.ScopeId != "" {
		query = query.Where(squirrel.Eq{"scope_id": filters.ScopeId})
	}
	if filters.ArtifactType != "" && filters.ArtifactType != models.ArtifactTypeUnknown {
		query = query.Where(squirrel.Eq{"artifact_type": filters.ArtifactType})
	}
	if filters.ArtifactId != "" {
		query = query.Where(squirrel.Eq{"artifact_id": filters.ArtifactId})
	}
	return query
}
