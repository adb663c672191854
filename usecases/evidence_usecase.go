package usecases

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/pure_utils"
	"github.com/vectasec/tara-backend/repositories"
	"github.com/vectasec/tara-backend/usecases/executor_factory"
	"github.com/vectasec/tara-backend/usecases/security"
	"github.com/vectasec/tara-backend/utils"
)

type EvidenceUseCaseRepository interface {
	CreateEvidenceAttachment(ctx context.Context, tx repositories.Transaction,
		attributes models.CreateEvidenceAttributes, newEvidenceId uuid.UUID) error
	GetEvidenceAttachmentById(ctx context.Context, exec repositories.Executor,
		evidenceId uuid.UUID) (models.EvidenceAttachment, error)
	ListEvidenceAttachmentsByArtifact(ctx context.Context, exec repositories.Executor,
		ref models.ArtifactRef) ([]models.EvidenceAttachment, error)
	SoftDeleteEvidenceAttachment(ctx context.Context, tx repositories.Transaction,
		evidenceId uuid.UUID) error
	CreateAuditLog(ctx context.Context, exec repositories.Executor,
		attributes models.CreateAuditLogAttributes) error
}

type EvidenceUseCase struct {
	enforceSecurity    security.EnforceSecurityEvidence
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         EvidenceUseCaseRepository
	blobRepository     repositories.BlobRepository
	bucketUrl          string
	credentials        models.Credentials
}

// UploadEvidence streams the file to the evidence bucket, then records the
// attachment metadata and the audit entry in one transaction. A failed insert
// leaves an orphan blob behind rather than a dangling row, the cheaper of the
// two inconsistencies.
func (usecase *EvidenceUseCase) UploadEvidence(
	ctx context.Context,
	attributes models.CreateEvidenceAttributes,
	fileHeader *multipart.FileHeader,
) (models.EvidenceAttachment, error) {
	if err := usecase.enforceSecurity.UploadEvidence(); err != nil {
		return models.EvidenceAttachment{}, err
	}
	ref := models.ArtifactRef{
		ArtifactType: attributes.ArtifactType,
		ArtifactId:   attributes.ArtifactId,
		ScopeId:      attributes.ScopeId,
	}
	if err := validateArtifactRef(ref); err != nil {
		return models.EvidenceAttachment{}, err
	}
	if fileHeader == nil || fileHeader.Filename == "" {
		return models.EvidenceAttachment{}, errors.Wrap(models.BadParameterError,
			"an evidence file is required")
	}

	newEvidenceId := uuid.New()
	attributes.Filename = fileHeader.Filename
	attributes.FileSize = fileHeader.Size
	attributes.MimeType = fileHeader.Header.Get("Content-Type")
	attributes.FileReference = fmt.Sprintf("evidence/%s/%s", attributes.ScopeId, newEvidenceId)
	attributes.UploadedBy = usecase.credentials.ActorIdentity.UserId

	if err := usecase.writeBlob(ctx, attributes.FileReference, fileHeader); err != nil {
		return models.EvidenceAttachment{}, err
	}

	evidence, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.EvidenceAttachment, error) {
			if err := usecase.repository.CreateEvidenceAttachment(ctx, tx, attributes, newEvidenceId); err != nil {
				return models.EvidenceAttachment{}, err
			}

			err := usecase.repository.CreateAuditLog(ctx, tx, models.CreateAuditLogAttributes{
				ScopeId:      &attributes.ScopeId,
				ArtifactType: attributes.ArtifactType,
				ArtifactId:   attributes.ArtifactId,
				Action:       models.AuditActionUpdate,
				PerformedBy:  attributes.UploadedBy,
				ChangeSummary: pure_utils.Ptr(fmt.Sprintf(
					"evidence %q attached to %s %s",
					attributes.Filename, attributes.ArtifactType, attributes.ArtifactId)),
			})
			if err != nil {
				return models.EvidenceAttachment{}, err
			}

			return usecase.repository.GetEvidenceAttachmentById(ctx, tx, newEvidenceId)
		})
	if err != nil {
		if deleteErr := usecase.blobRepository.DeleteFile(ctx, usecase.bucketUrl,
			attributes.FileReference); deleteErr != nil {
			utils.LoggerFromContext(ctx).WarnContext(ctx,
				"failed to clean up evidence blob after aborted upload",
				"file_reference", attributes.FileReference, "error", deleteErr.Error())
		}
		return models.EvidenceAttachment{}, err
	}
	return evidence, nil
}

func (usecase *EvidenceUseCase) writeBlob(ctx context.Context, fileReference string,
	fileHeader *multipart.FileHeader,
) error {
	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(models.BadParameterError, "could not read the uploaded file")
	}
	defer file.Close()

	writer, err := usecase.blobRepository.OpenStream(ctx, usecase.bucketUrl, fileReference)
	if err != nil {
		return err
	}
	if _, err := io.Copy(writer, file); err != nil {
		writer.Close()
		return errors.Wrap(err, "failed to store evidence file")
	}
	return writer.Close()
}

func (usecase *EvidenceUseCase) ListEvidence(
	ctx context.Context,
	ref models.ArtifactRef,
) ([]models.EvidenceAttachment, error) {
	if err := usecase.enforceSecurity.ReadEvidence(); err != nil {
		return nil, err
	}
	if err := validateArtifactRef(ref); err != nil {
		return nil, err
	}
	return usecase.repository.ListEvidenceAttachmentsByArtifact(ctx,
		usecase.executorFactory.NewExecutor(), ref)
}

// DownloadEvidence returns the stored file as a stream; closing it is the
// caller's responsibility.
func (usecase *EvidenceUseCase) DownloadEvidence(
	ctx context.Context,
	evidenceId uuid.UUID,
) (models.EvidenceAttachment, repositories.Blob, error) {
	if err := usecase.enforceSecurity.ReadEvidence(); err != nil {
		return models.EvidenceAttachment{}, repositories.Blob{}, err
	}

	evidence, err := usecase.repository.GetEvidenceAttachmentById(ctx,
		usecase.executorFactory.NewExecutor(), evidenceId)
	if err != nil {
		return models.EvidenceAttachment{}, repositories.Blob{}, err
	}
	blob, err := usecase.blobRepository.GetBlob(ctx, usecase.bucketUrl, evidence.FileReference)
	if err != nil {
		return models.EvidenceAttachment{}, repositories.Blob{}, err
	}
	return evidence, blob, nil
}

// DeleteEvidence soft deletes the metadata row and then removes the blob. The
// row survives deletion so that the audit trail keeps pointing at something.
func (usecase *EvidenceUseCase) DeleteEvidence(
	ctx context.Context,
	evidenceId uuid.UUID,
) error {
	if err := usecase.enforceSecurity.DeleteEvidence(); err != nil {
		return err
	}
	actor := usecase.credentials.ActorIdentity.UserId

	evidence, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.EvidenceAttachment, error) {
			evidence, err := usecase.repository.GetEvidenceAttachmentById(ctx, tx, evidenceId)
			if err != nil {
				return models.EvidenceAttachment{}, err
			}
			if err := usecase.repository.SoftDeleteEvidenceAttachment(ctx, tx, evidenceId); err != nil {
				return models.EvidenceAttachment{}, err
			}

			err = usecase.repository.CreateAuditLog(ctx, tx, models.CreateAuditLogAttributes{
				ScopeId:      &evidence.ScopeId,
				ArtifactType: evidence.ArtifactType,
				ArtifactId:   evidence.ArtifactId,
				Action:       models.AuditActionDelete,
				PerformedBy:  actor,
				ChangeSummary: pure_utils.Ptr(fmt.Sprintf(
					"evidence %q removed from %s %s",
					evidence.Filename, evidence.ArtifactType, evidence.ArtifactId)),
			})
			if err != nil {
				return models.EvidenceAttachment{}, err
			}
			return evidence, nil
		})
	if err != nil {
		return err
	}

	if err := usecase.blobRepository.DeleteFile(ctx, usecase.bucketUrl, evidence.FileReference); err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx,
			"failed to delete evidence blob, metadata row already soft deleted",
			"file_reference", evidence.FileReference, "error", err.Error())
	}
	return nil
}
