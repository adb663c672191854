package dto

import (
	"encoding/json"
	"time"

	"github.com/vectasec/tara-backend/models"
)

type APISnapshot struct {
	Id                  string    `json:"id"`
	ScopeId             string    `json:"scope_id"`
	Version             int       `json:"version"`
	VersionLabel        *string   `json:"version_label"`
	AssetCount          int       `json:"asset_count"`
	DamageScenarioCount int       `json:"damage_scenario_count"`
	ThreatScenarioCount int       `json:"threat_scenario_count"`
	AttackPathCount     int       `json:"attack_path_count"`
	RiskTreatmentCount  int       `json:"risk_treatment_count"`
	WorkflowState       string    `json:"workflow_state"`
	CreatedBy           string    `json:"created_by"`
	CreatedAt           time.Time `json:"created_at"`
	Notes               *string   `json:"notes"`
	// Data is only present on the detail endpoint.
	Data json.RawMessage `json:"data,omitempty"`
}

func AdaptSnapshotDto(snapshot models.TaraSnapshot) APISnapshot {
	return APISnapshot{
		Id:                  snapshot.Id.String(),
		ScopeId:             snapshot.ScopeId,
		Version:             snapshot.Version,
		VersionLabel:        snapshot.VersionLabel,
		AssetCount:          snapshot.AssetCount,
		DamageScenarioCount: snapshot.DamageScenarioCount,
		ThreatScenarioCount: snapshot.ThreatScenarioCount,
		AttackPathCount:     snapshot.AttackPathCount,
		RiskTreatmentCount:  snapshot.RiskTreatmentCount,
		WorkflowState:       snapshot.WorkflowState,
		CreatedBy:           snapshot.CreatedBy,
		CreatedAt:           snapshot.CreatedAt,
		Notes:               snapshot.Notes,
		Data:                snapshot.Data,
	}
}

type CreateSnapshotBody struct {
	ScopeId      string  `json:"scope_id" binding:"required"`
	VersionLabel *string `json:"version_label"`
	Notes        *string `json:"notes"`
}
