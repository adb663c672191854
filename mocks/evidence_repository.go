package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories"
)

type EvidenceRepository struct {
	mock.Mock
}

func (r *EvidenceRepository) CreateEvidenceAttachment(ctx context.Context, tx repositories.Transaction,
	attributes models.CreateEvidenceAttributes, newEvidenceId uuid.UUID,
) error {
	args := r.Called(ctx, tx, attributes, newEvidenceId)
	return args.Error(0)
}

func (r *EvidenceRepository) GetEvidenceAttachmentById(ctx context.Context, exec repositories.Executor,
	evidenceId uuid.UUID,
) (models.EvidenceAttachment, error) {
	args := r.Called(ctx, exec, evidenceId)
	return args.Get(0).(models.EvidenceAttachment), args.Error(1)
}

func (r *EvidenceRepository) ListEvidenceAttachmentsByArtifact(ctx context.Context, exec repositories.Executor,
	ref models.ArtifactRef,
) ([]models.EvidenceAttachment, error) {
	args := r.Called(ctx, exec, ref)
	return args.Get(0).([]models.EvidenceAttachment), args.Error(1)
}

func (r *EvidenceRepository) SoftDeleteEvidenceAttachment(ctx context.Context, tx repositories.Transaction,
	evidenceId uuid.UUID,
) error {
	args := r.Called(ctx, tx, evidenceId)
	return args.Error(0)
}

func (r *EvidenceRepository) CreateAuditLog(ctx context.Context, exec repositories.Executor,
	attributes models.CreateAuditLogAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

type BlobRepository struct {
	mock.Mock
}

func (r *BlobRepository) GetBlob(ctx context.Context, bucketUrl, fileName string) (repositories.Blob, error) {
	args := r.Called(ctx, bucketUrl, fileName)
	return args.Get(0).(repositories.Blob), args.Error(1)
}

func (r *BlobRepository) OpenStream(ctx context.Context, bucketUrl, fileName string) (io.WriteCloser, error) {
	args := r.Called(ctx, bucketUrl, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (r *BlobRepository) DeleteFile(ctx context.Context, bucketUrl, fileName string) error {
	args := r.Called(ctx, bucketUrl, fileName)
	return args.Error(0)
}
