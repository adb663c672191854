package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/utils"
)

type DBSnapshot struct {
	Id                  uuid.UUID `db:"id"`
	ScopeId             string    `db:"scope_id"`
	Version             int       `db:"version"`
	VersionLabel        *string   `db:"version_label"`
	AssetCount          int       `db:"asset_count"`
	DamageScenarioCount int       `db:"damage_scenario_count"`
	ThreatScenarioCount int       `db:"threat_scenario_count"`
	AttackPathCount     int       `db:"attack_path_count"`
	RiskTreatmentCount  int       `db:"risk_treatment_count"`
	WorkflowState       string    `db:"workflow_state"`
	CreatedBy           string    `db:"created_by"`
	CreatedAt           time.Time `db:"created_at"`
	Notes               *string   `db:"notes"`
}

// DBSnapshotWithData is only used by the detail query: list queries must not
// drag the blob along.
type DBSnapshotWithData struct {
	DBSnapshot
	Data json.RawMessage `db:"snapshot_data"`
}

const TABLE_TARA_SNAPSHOTS = "tara_snapshots"

var (
	SelectSnapshotColumns         = utils.ColumnList[DBSnapshot]()
	SelectSnapshotWithDataColumns = utils.ColumnList[DBSnapshotWithData]()
)

func AdaptSnapshot(db DBSnapshot) (models.TaraSnapshot, error) {
	return models.TaraSnapshot{
		Id:                  db.Id,
		ScopeId:             db.ScopeId,
		Version:             db.Version,
		VersionLabel:        db.VersionLabel,
		AssetCount:          db.AssetCount,
		DamageScenarioCount: db.DamageScenarioCount,
		ThreatScenarioCount: db.ThreatScenarioCount,
		AttackPathCount:     db.AttackPathCount,
		RiskTreatmentCount:  db.RiskTreatmentCount,
		WorkflowState:       db.WorkflowState,
		CreatedBy:           db.CreatedBy,
		CreatedAt:           db.CreatedAt,
		Notes:               db.Notes,
	}, nil
}

func AdaptSnapshotWithData(db DBSnapshotWithData) (models.TaraSnapshot, error) {
	snapshot, err := AdaptSnapshot(db.DBSnapshot)
	if err != nil {
		return models.TaraSnapshot{}, err
	}
	snapshot.Data = db.Data
	return snapshot, nil
}
