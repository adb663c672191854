package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/vectasec/tara-backend/models"
)

type EnforceSecurity struct {
	mock.Mock
}

func (e *EnforceSecurity) Permission(permission models.Permission) error {
	args := e.Called(permission)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadWorkflow() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) CreateWorkflow() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) TransitionWorkflow(workflow models.ApprovalWorkflow, target models.WorkflowState) error {
	args := e.Called(workflow, target)
	return args.Error(0)
}

func (e *EnforceSecurity) SignoffWorkflow() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadAuditLogs() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) WriteAuditLog() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadSnapshot() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) CreateSnapshot() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadEvidence() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) UploadEvidence() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) DeleteEvidence() error {
	args := e.Called()
	return args.Error(0)
}
