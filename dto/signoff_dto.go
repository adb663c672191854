package dto

import (
	"time"

	"github.com/vectasec/tara-backend/models"
)

type APISignoff struct {
	Id         string    `json:"id"`
	WorkflowId string    `json:"workflow_id"`
	Signer     string    `json:"signer"`
	SignerRole string    `json:"signer_role"`
	Action     string    `json:"action"`
	Comment    *string   `json:"comment"`
	SignedAt   time.Time `json:"signed_at"`
}

func AdaptSignoffDto(signoff models.Signoff) APISignoff {
	return APISignoff{
		Id:         signoff.Id.String(),
		WorkflowId: signoff.WorkflowId.String(),
		Signer:     signoff.Signer,
		SignerRole: signoff.SignerRole,
		Action:     signoff.Action.String(),
		Comment:    signoff.Comment,
		SignedAt:   signoff.SignedAt,
	}
}

type CreateSignoffBody struct {
	Action  string  `json:"action" binding:"required,oneof=approve reject acknowledge"`
	Comment *string `json:"comment"`
}
