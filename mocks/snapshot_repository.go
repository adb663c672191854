package mocks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories"
)

type SnapshotRepository struct {
	mock.Mock
}

func (r *SnapshotRepository) CreateSnapshot(ctx context.Context, tx repositories.Transaction,
	snapshot models.TaraSnapshot, data json.RawMessage,
) error {
	args := r.Called(ctx, tx, snapshot, data)
	return args.Error(0)
}

func (r *SnapshotRepository) GetMaxSnapshotVersion(ctx context.Context, exec repositories.Executor,
	scopeId string,
) (int, error) {
	args := r.Called(ctx, exec, scopeId)
	return args.Int(0), args.Error(1)
}

func (r *SnapshotRepository) ListSnapshotsByScope(ctx context.Context, exec repositories.Executor,
	scopeId string,
) ([]models.TaraSnapshot, error) {
	args := r.Called(ctx, exec, scopeId)
	return args.Get(0).([]models.TaraSnapshot), args.Error(1)
}

func (r *SnapshotRepository) GetSnapshotById(ctx context.Context, exec repositories.Executor,
	snapshotId uuid.UUID,
) (models.TaraSnapshot, error) {
	args := r.Called(ctx, exec, snapshotId)
	return args.Get(0).(models.TaraSnapshot), args.Error(1)
}

func (r *SnapshotRepository) ListWorkflowsByScope(ctx context.Context, exec repositories.Executor,
	filters models.WorkflowFilters,
) ([]models.ApprovalWorkflow, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.ApprovalWorkflow), args.Error(1)
}

func (r *SnapshotRepository) CreateAuditLog(ctx context.Context, exec repositories.Executor,
	attributes models.CreateAuditLogAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

type ArtifactReadRepository struct {
	mock.Mock
}

func (r *ArtifactReadRepository) ListArtifactsByScope(ctx context.Context, exec repositories.Executor,
	artifactType models.ArtifactType, scopeId string,
) ([]models.Artifact, error) {
	args := r.Called(ctx, exec, artifactType, scopeId)
	return args.Get(0).([]models.Artifact), args.Error(1)
}
