package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Workflow governance errors
var (
	ErrWorkflowTransitionNotAllowed = errors.Wrap(BadParameterError,
		"workflow state transition is not allowed")
	ErrSelfApproval = errors.Wrap(ForbiddenError,
		"a workflow cannot be approved by its creator")
	ErrWorkflowStateStale = errors.Wrap(ConflictError,
		"workflow state changed concurrently")
)

// Snapshot errors
var ErrSnapshotVersionTaken = errors.Wrap(ConflictError,
	"snapshot version already assigned for this scope")
