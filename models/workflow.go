package models

import (
	"time"

	"github.com/google/uuid"
)

type ArtifactType string

const (
	ArtifactTypeUnknown        ArtifactType = "unknown"
	ArtifactTypeAsset          ArtifactType = "asset"
	ArtifactTypeDamageScenario ArtifactType = "damage_scenario"
	ArtifactTypeThreatScenario ArtifactType = "threat_scenario"
	ArtifactTypeAttackPath     ArtifactType = "attack_path"
	ArtifactTypeRiskTreatment  ArtifactType = "risk_treatment"

	// ArtifactTypeSnapshot only ever appears in audit log entries; snapshots
	// are immutable and not governed by approval workflows.
	ArtifactTypeSnapshot ArtifactType = "snapshot"
)

// ValidArtifactTypes lists the workflow-governed artifact types.
var ValidArtifactTypes = []ArtifactType{
	ArtifactTypeAsset,
	ArtifactTypeDamageScenario,
	ArtifactTypeThreatScenario,
	ArtifactTypeAttackPath,
	ArtifactTypeRiskTreatment,
}

func (t ArtifactType) String() string {
	return string(t)
}

func ArtifactTypeFromString(s string) ArtifactType {
	switch s {
	case "asset":
		return ArtifactTypeAsset
	case "damage_scenario":
		return ArtifactTypeDamageScenario
	case "threat_scenario":
		return ArtifactTypeThreatScenario
	case "attack_path":
		return ArtifactTypeAttackPath
	case "risk_treatment":
		return ArtifactTypeRiskTreatment
	case "snapshot":
		return ArtifactTypeSnapshot
	default:
		return ArtifactTypeUnknown
	}
}

// ArtifactRef identifies any governed TARA entity. It is a key, not a stored
// entity: the artifact rows themselves live in the assessment editors' tables.
type ArtifactRef struct {
	ArtifactType ArtifactType
	ArtifactId   string
	ScopeId      string
}

type WorkflowState string

const (
	WorkflowStateUnknown  WorkflowState = "unknown"
	WorkflowStateDraft    WorkflowState = "draft"
	WorkflowStateReview   WorkflowState = "review"
	WorkflowStateApproved WorkflowState = "approved"
	WorkflowStateReleased WorkflowState = "released"
)

var ValidWorkflowStates = []WorkflowState{
	WorkflowStateDraft,
	WorkflowStateReview,
	WorkflowStateApproved,
	WorkflowStateReleased,
}

func (s WorkflowState) String() string {
	return string(s)
}

func WorkflowStateFromString(s string) WorkflowState {
	switch s {
	case "draft":
		return WorkflowStateDraft
	case "review":
		return WorkflowStateReview
	case "approved":
		return WorkflowStateApproved
	case "released":
		return WorkflowStateReleased
	default:
		return WorkflowStateUnknown
	}
}

// workflowTransitions is the authoritative transition table. "released" is
// terminal and deliberately absent.
var workflowTransitions = map[WorkflowState][]WorkflowState{
	WorkflowStateDraft:    {WorkflowStateReview},
	WorkflowStateReview:   {WorkflowStateDraft, WorkflowStateApproved},
	WorkflowStateApproved: {WorkflowStateReview, WorkflowStateReleased},
}

func (s WorkflowState) CanTransitionTo(target WorkflowState) bool {
	for _, allowed := range workflowTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

type ApprovalWorkflow struct {
	Id               uuid.UUID
	ArtifactType     ArtifactType
	ArtifactId       string
	ScopeId          string
	CurrentState     WorkflowState
	CreatedBy        string
	AssignedReviewer *string
	ReviewedBy       *string
	ApprovedBy       *string
	ReleasedBy       *string
	ReviewNotes      *string
	ApprovalNotes    *string
	RejectionReason  *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (w ApprovalWorkflow) ArtifactRef() ArtifactRef {
	return ArtifactRef{
		ArtifactType: w.ArtifactType,
		ArtifactId:   w.ArtifactId,
		ScopeId:      w.ScopeId,
	}
}

type CreateWorkflowAttributes struct {
	ArtifactType     ArtifactType
	ArtifactId       string
	ScopeId          string
	CreatedBy        string
	AssignedReviewer *string
}

// UpdateWorkflowStateAttributes carries one accepted transition. FromState is
// the state the transition was validated against: the update is applied with a
// compare-and-swap on it.
type UpdateWorkflowStateAttributes struct {
	Id        uuid.UUID
	FromState WorkflowState
	ToState   WorkflowState
	Actor     string
	Notes     *string
}

type WorkflowFilters struct {
	ScopeId string
	State   WorkflowState
}
