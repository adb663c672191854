package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TaraSnapshot is permanent compliance evidence: the data blob is written once
// and never edited, even if the source artifacts are later changed or deleted.
type TaraSnapshot struct {
	Id                  uuid.UUID
	ScopeId             string
	Version             int
	VersionLabel        *string
	AssetCount          int
	DamageScenarioCount int
	ThreatScenarioCount int
	AttackPathCount     int
	RiskTreatmentCount  int
	WorkflowState       string
	CreatedBy           string
	CreatedAt           time.Time
	Notes               *string
	// Data is nil on summaries; only GetSnapshotDetail loads the blob.
	Data json.RawMessage
}

type CreateSnapshotAttributes struct {
	ScopeId      string
	CreatedBy    string
	VersionLabel *string
	Notes        *string
}

// ScopeExport is the deep, self-contained copy of a scope's governed
// collections, serialized into the snapshot blob.
type ScopeExport struct {
	Assets          []Artifact `json:"assets"`
	DamageScenarios []Artifact `json:"damage_scenarios"`
	ThreatScenarios []Artifact `json:"threat_scenarios"`
	AttackPaths     []Artifact `json:"attack_paths"`
	RiskTreatments  []Artifact `json:"risk_treatments"`
}

// Coarse per-scope workflow state labels stored on snapshots.
const (
	ScopeWorkflowStateDraft    = "draft"
	ScopeWorkflowStateInReview = "in_review"
	ScopeWorkflowStateApproved = "approved"
	ScopeWorkflowStateReleased = "released"
)

// ScopeWorkflowStateLabel summarizes a scope's workflows: released when every
// workflow is released, approved when all are at least approved, in_review
// when any is under review, draft otherwise (including no workflows at all).
func ScopeWorkflowStateLabel(workflows []ApprovalWorkflow) string {
	if len(workflows) == 0 {
		return ScopeWorkflowStateDraft
	}

	allReleased := true
	allApproved := true
	anyInReview := false
	for _, w := range workflows {
		if w.CurrentState != WorkflowStateReleased {
			allReleased = false
		}
		if w.CurrentState != WorkflowStateApproved && w.CurrentState != WorkflowStateReleased {
			allApproved = false
		}
		if w.CurrentState == WorkflowStateReview {
			anyInReview = true
		}
	}

	switch {
	case allReleased:
		return ScopeWorkflowStateReleased
	case allApproved:
		return ScopeWorkflowStateApproved
	case anyInReview:
		return ScopeWorkflowStateInReview
	default:
		return ScopeWorkflowStateDraft
	}
}
