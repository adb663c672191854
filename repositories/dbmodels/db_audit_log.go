package dbmodels

import (
	"time"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/utils"
)

type DBAuditLog struct {
	Id            int64     `db:"id"`
	ScopeId       *string   `db:"scope_id"`
	ArtifactType  string    `db:"artifact_type"`
	ArtifactId    string    `db:"artifact_id"`
	Action        string    `db:"action"`
	PerformedBy   string    `db:"performed_by"`
	PerformedAt   time.Time `db:"performed_at"`
	FieldChanged  *string   `db:"field_changed"`
	OldValue      *string   `db:"old_value"`
	NewValue      *string   `db:"new_value"`
	ChangeSummary *string   `db:"change_summary"`
}

const TABLE_AUDIT_LOGS = "audit_logs"

var SelectAuditLogColumns = utils.ColumnList[DBAuditLog]()

func AdaptAuditLog(db DBAuditLog) (models.AuditLogEntry, error) {
	return models.AuditLogEntry{
		Id:            db.Id,
		ScopeId:       db.ScopeId,
		ArtifactType:  models.ArtifactTypeFromString(db.ArtifactType),
		ArtifactId:    db.ArtifactId,
		Action:        models.AuditActionFromString(db.Action),
		PerformedBy:   db.PerformedBy,
		PerformedAt:   db.PerformedAt,
		FieldChanged:  db.FieldChanged,
		OldValue:      db.OldValue,
		NewValue:      db.NewValue,
		ChangeSummary: db.ChangeSummary,
	}, nil
}
