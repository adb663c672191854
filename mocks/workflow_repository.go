package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories"
)

type WorkflowRepository struct {
	mock.Mock
}

func (r *WorkflowRepository) GetWorkflowById(ctx context.Context, exec repositories.Executor,
	workflowId uuid.UUID,
) (models.ApprovalWorkflow, error) {
	args := r.Called(ctx, exec, workflowId)
	return args.Get(0).(models.ApprovalWorkflow), args.Error(1)
}

func (r *WorkflowRepository) GetWorkflowByArtifact(ctx context.Context, exec repositories.Executor,
	ref models.ArtifactRef,
) (*models.ApprovalWorkflow, error) {
	args := r.Called(ctx, exec, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApprovalWorkflow), args.Error(1)
}

func (r *WorkflowRepository) GetWorkflowByIdForUpdate(ctx context.Context, tx repositories.Transaction,
	workflowId uuid.UUID,
) (models.ApprovalWorkflow, error) {
	args := r.Called(ctx, tx, workflowId)
	return args.Get(0).(models.ApprovalWorkflow), args.Error(1)
}

func (r *WorkflowRepository) CreateWorkflow(ctx context.Context, tx repositories.Transaction,
	attributes models.CreateWorkflowAttributes, newWorkflowId uuid.UUID,
) error {
	args := r.Called(ctx, tx, attributes, newWorkflowId)
	return args.Error(0)
}

func (r *WorkflowRepository) UpdateWorkflowState(ctx context.Context, tx repositories.Transaction,
	attributes models.UpdateWorkflowStateAttributes,
) error {
	args := r.Called(ctx, tx, attributes)
	return args.Error(0)
}

func (r *WorkflowRepository) ListWorkflowsByScope(ctx context.Context, exec repositories.Executor,
	filters models.WorkflowFilters,
) ([]models.ApprovalWorkflow, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.ApprovalWorkflow), args.Error(1)
}

func (r *WorkflowRepository) CreateSignoff(ctx context.Context, tx repositories.Transaction,
	attributes models.CreateSignoffAttributes, newSignoffId uuid.UUID,
) error {
	args := r.Called(ctx, tx, attributes, newSignoffId)
	return args.Error(0)
}

func (r *WorkflowRepository) GetSignoffById(ctx context.Context, exec repositories.Executor,
	signoffId uuid.UUID,
) (models.Signoff, error) {
	args := r.Called(ctx, exec, signoffId)
	return args.Get(0).(models.Signoff), args.Error(1)
}

func (r *WorkflowRepository) ListSignoffsByWorkflow(ctx context.Context, exec repositories.Executor,
	workflowId uuid.UUID,
) ([]models.Signoff, error) {
	args := r.Called(ctx, exec, workflowId)
	return args.Get(0).([]models.Signoff), args.Error(1)
}

func (r *WorkflowRepository) CreateAuditLog(ctx context.Context, exec repositories.Executor,
	attributes models.CreateAuditLogAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}
