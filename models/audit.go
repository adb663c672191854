package models

import (
	"time"

	"github.com/cockroachdb/errors"
)

type AuditAction string

const (
	AuditActionUnknown    AuditAction = "unknown"
	AuditActionCreate     AuditAction = "create"
	AuditActionUpdate     AuditAction = "update"
	AuditActionTransition AuditAction = "transition"
	AuditActionSignoff    AuditAction = "signoff"
	AuditActionDelete     AuditAction = "delete"
)

func (a AuditAction) String() string {
	return string(a)
}

func AuditActionFromString(s string) AuditAction {
	switch s {
	case "create":
		return AuditActionCreate
	case "update":
		return AuditActionUpdate
	case "transition":
		return AuditActionTransition
	case "signoff":
		return AuditActionSignoff
	case "delete":
		return AuditActionDelete
	default:
		return AuditActionUnknown
	}
}

// AuditLogEntry rows are append-only: ids come from a bigserial so that
// reading one artifact's entries in id order reconstructs its full history.
type AuditLogEntry struct {
	Id            int64
	ScopeId       *string
	ArtifactType  ArtifactType
	ArtifactId    string
	Action        AuditAction
	PerformedBy   string
	PerformedAt   time.Time
	FieldChanged  *string
	OldValue      *string
	NewValue      *string
	ChangeSummary *string
}

type CreateAuditLogAttributes struct {
	ScopeId       *string
	ArtifactType  ArtifactType
	ArtifactId    string
	Action        AuditAction
	PerformedBy   string
	FieldChanged  *string
	OldValue      *string
	NewValue      *string
	ChangeSummary *string
}

func (attrs CreateAuditLogAttributes) Validate() error {
	switch {
	case attrs.ArtifactType == "" || attrs.ArtifactType == ArtifactTypeUnknown:
		return errors.Wrap(BadParameterError, "audit log entry requires an artifact type")
	case attrs.ArtifactId == "":
		return errors.Wrap(BadParameterError, "audit log entry requires an artifact id")
	case attrs.Action == "" || attrs.Action == AuditActionUnknown:
		return errors.Wrap(BadParameterError, "audit log entry requires an action")
	case attrs.PerformedBy == "":
		return errors.Wrap(BadParameterError, "audit log entry requires an actor")
	}
	return nil
}

type AuditLogFilters struct {
	ScopeId      string
	ArtifactType ArtifactType
	ArtifactId   string
	Limit        int
	Offset       int
}

type AuditLogPage struct {
	Logs  []AuditLogEntry
	Total int
}
