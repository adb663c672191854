package models

import (
	"time"

	"github.com/google/uuid"
)

type SignoffAction string

const (
	SignoffActionUnknown     SignoffAction = "unknown"
	SignoffActionApprove     SignoffAction = "approve"
	SignoffActionReject      SignoffAction = "reject"
	SignoffActionAcknowledge SignoffAction = "acknowledge"
)

var ValidSignoffActions = []SignoffAction{
	SignoffActionApprove,
	SignoffActionReject,
	SignoffActionAcknowledge,
}

func (a SignoffAction) String() string {
	return string(a)
}

func SignoffActionFromString(s string) SignoffAction {
	switch s {
	case "approve":
		return SignoffActionApprove
	case "reject":
		return SignoffActionReject
	case "acknowledge":
		return SignoffActionAcknowledge
	default:
		return SignoffActionUnknown
	}
}

// Signoff is an evidentiary record attached to a workflow. It never advances
// the workflow state and is immutable once written.
type Signoff struct {
	Id         uuid.UUID
	WorkflowId uuid.UUID
	Signer     string
	SignerRole string
	Action     SignoffAction
	Comment    *string
	SignedAt   time.Time
}

type CreateSignoffAttributes struct {
	WorkflowId uuid.UUID
	Signer     string
	SignerRole string
	Action     SignoffAction
	Comment    *string
}
