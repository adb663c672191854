package dto

import (
	"time"

	"github.com/vectasec/tara-backend/models"
)

type APIAuditLogEntry struct {
	Id            int64     `json:"id"`
	ScopeId       *string   `json:"scope_id"`
	ArtifactType  string    `json:"artifact_type"`
	ArtifactId    string    `json:"artifact_id"`
	Action        string    `json:"action"`
	PerformedBy   string    `json:"performed_by"`
	PerformedAt   time.Time `json:"performed_at"`
	FieldChanged  *string   `json:"field_changed"`
	OldValue      *string   `json:"old_value"`
	NewValue      *string   `json:"new_value"`
	ChangeSummary *string   `json:"change_summary"`
}

func AdaptAuditLogEntryDto(entry models.AuditLogEntry) APIAuditLogEntry {
	return APIAuditLogEntry{
		Id:            entry.Id,
		ScopeId:       entry.ScopeId,
		ArtifactType:  entry.ArtifactType.String(),
		ArtifactId:    entry.ArtifactId,
		Action:        entry.Action.String(),
		PerformedBy:   entry.PerformedBy,
		PerformedAt:   entry.PerformedAt,
		FieldChanged:  entry.FieldChanged,
		OldValue:      entry.OldValue,
		NewValue:      entry.NewValue,
		ChangeSummary: entry.ChangeSummary,
	}
}

type APIAuditLogPage struct {
	Logs  []APIAuditLogEntry `json:"logs"`
	Total int                `json:"total"`
}

type AuditLogFiltersQuery struct {
	ScopeId      string `form:"scope_id"`
	ArtifactType string `form:"artifact_type"`
	ArtifactId   string `form:"artifact_id"`
	Limit        int    `form:"limit"`
	Offset       int    `form:"offset"`
}

type CreateAuditEventBody struct {
	ScopeId       *string `json:"scope_id"`
	ArtifactType  string  `json:"artifact_type" binding:"required"`
	ArtifactId    string  `json:"artifact_id" binding:"required"`
	Action        string  `json:"action" binding:"required"`
	FieldChanged  *string `json:"field_changed"`
	OldValue      *string `json:"old_value"`
	NewValue      *string `json:"new_value"`
	ChangeSummary *string `json:"change_summary"`
}
