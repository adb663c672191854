package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/utils"
)

// DBArtifact is the common projection read from each assessment editor's
// table. The editors own those tables; this service only selects from them.
type DBArtifact struct {
	Id         string          `db:"id"`
	ScopeId    string          `db:"scope_id"`
	Name       string          `db:"name"`
	Properties json.RawMessage `db:"properties"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

const (
	TABLE_ASSETS           = "assets"
	TABLE_DAMAGE_SCENARIOS = "damage_scenarios"
	TABLE_THREAT_SCENARIOS = "threat_scenarios"
	TABLE_ATTACK_PATHS     = "attack_paths"
	TABLE_RISK_TREATMENTS  = "risk_treatments"
)

var SelectArtifactColumns = utils.ColumnList[DBArtifact]()

func ArtifactTable(artifactType models.ArtifactType) string {
	switch artifactType {
	case models.ArtifactTypeAsset:
		return TABLE_ASSETS
	case models.ArtifactTypeDamageScenario:
		return TABLE_DAMAGE_SCENARIOS
	case models.ArtifactTypeThreatScenario:
		return TABLE_THREAT_SCENARIOS
	case models.ArtifactTypeAttackPath:
		return TABLE_ATTACK_PATHS
	case models.ArtifactTypeRiskTreatment:
		return TABLE_RISK_TREATMENTS
	default:
		return ""
	}
}

func AdaptArtifact(db DBArtifact) (models.Artifact, error) {
	return models.Artifact{
		Id:         db.Id,
		ScopeId:    db.ScopeId,
		Name:       db.Name,
		Properties: db.Properties,
		CreatedAt:  db.CreatedAt,
		UpdatedAt:  db.UpdatedAt,
	}, nil
}
