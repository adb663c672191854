package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories/dbmodels"
)

func (repo *TaraDbRepository) CreateEvidenceAttachment(ctx context.Context, tx Transaction,
	attributes models.CreateEvidenceAttributes, newEvidenceId uuid.UUID,
) error {
	_, err := ExecBuilder(ctx, tx,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_EVIDENCE_ATTACHMENTS).
			Columns(
				"id",
				"artifact_type",
				"artifact_id",
				"scope_id",
				"filename",
				"file_size",
				"mime_type",
				"evidence_type",
				"title",
				"file_reference",
				"uploaded_by",
			).
			Values(
				newEvidenceId,
				attributes.ArtifactType,
				attributes.ArtifactId,
				attributes.ScopeId,
				attributes.Filename,
				attributes.FileSize,
				attributes.MimeType,
				attributes.EvidenceType,
				attributes.Title,
				attributes.FileReference,
				attributes.UploadedBy,
			),
	)
	return err
}

func (repo *TaraDbRepository) GetEvidenceAttachmentById(ctx context.Context, exec Executor,
	evidenceId uuid.UUID,
) (models.EvidenceAttachment, error) {
	return SqlToModel(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectEvidenceColumns...).
			From(dbmodels.TABLE_EVIDENCE_ATTACHMENTS).
			Where(squirrel.Eq{"id": evidenceId, "deleted_at": nil}),
		dbmodels.AdaptEvidenceAttachment,
	)
}

func (repo *TaraDbRepository) ListEvidenceAttachmentsByArtifact(ctx context.Context, exec Executor,
	ref models.ArtifactRef,
) ([]models.EvidenceAttachment, error) {
	return SqlToListOfModels(ctx, exec,
		NewQueryBuilder().
			Select(dbmodels.SelectEvidenceColumns...).
			From(dbmodels.TABLE_EVIDENCE_ATTACHMENTS).
			Where(squirrel.Eq{
				"artifact_type": ref.ArtifactType,
				"artifact_id":   ref.ArtifactId,
				"scope_id":      ref.ScopeId,
				"deleted_at":    nil,
			}).
			OrderBy("uploaded_at DESC"),
		dbmodels.AdaptEvidenceAttachment,
	)
}

// SoftDeleteEvidenceAttachment keeps the row for the audit trail; the blob
// itself is removed from the bucket by the usecase.
func (repo *TaraDbRepository) SoftDeleteEvidenceAttachment(ctx context.Context, tx Transaction,
	evidenceId uuid.UUID,
) error {
	rowsAffected, err := ExecBuilder(ctx, tx,
		NewQueryBuilder().
			Update(dbmodels.TABLE_EVIDENCE_ATTACHMENTS).
			Set("deleted_at", time.Now()).
			Where(squirrel.Eq{"id": evidenceId, "deleted_at": nil}),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.NotFoundError
	}
	return nil
}
