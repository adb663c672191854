package models

import (
	"encoding/json"
	"time"
)

// Artifact is the read-only view of a governed TARA entity, as fetched from
// the assessment editors' tables for snapshotting. Properties carries the
// editor-specific columns as an opaque document so that snapshots stay
// self-contained without this service depending on each editor's schema.
type Artifact struct {
	Id         string          `json:"id"`
	ScopeId    string          `json:"scope_id"`
	Name       string          `json:"name"`
	Properties json.RawMessage `json:"properties"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
