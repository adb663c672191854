package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/utils"
)

type DBSignoff struct {
	Id         uuid.UUID `db:"id"`
	WorkflowId uuid.UUID `db:"workflow_id"`
	Signer     string    `db:"signer"`
	SignerRole string    `db:"signer_role"`
	Action     string    `db:"action"`
	Comment    *string   `db:"comment"`
	SignedAt   time.Time `db:"signed_at"`
}

const TABLE_WORKFLOW_SIGNOFFS = "workflow_signoffs"

var SelectSignoffColumns = utils.ColumnList[DBSignoff]()

func AdaptSignoff(db DBSignoff) (models.Signoff, error) {
	return models.Signoff{
		Id:         db.Id,
		WorkflowId: db.WorkflowId,
		Signer:     db.Signer,
		SignerRole: db.SignerRole,
		Action:     models.SignoffActionFromString(db.Action),
		Comment:    db.Comment,
		SignedAt:   db.SignedAt,
	}, nil
}
