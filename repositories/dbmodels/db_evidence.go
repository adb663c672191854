package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/utils"
)

type DBEvidenceAttachment struct {
	Id            uuid.UUID `db:"id"`
	ArtifactType  string    `db:"artifact_type"`
	ArtifactId    string    `db:"artifact_id"`
	ScopeId       string    `db:"scope_id"`
	Filename      string    `db:"filename"`
	FileSize      int64     `db:"file_size"`
	MimeType      string    `db:"mime_type"`
	EvidenceType  string    `db:"evidence_type"`
	Title         string    `db:"title"`
	FileReference string    `db:"file_reference"`
	UploadedBy    string    `db:"uploaded_by"`
	UploadedAt    time.Time `db:"uploaded_at"`
	DeletedAt     null.Time `db:"deleted_at"`
}

const TABLE_EVIDENCE_ATTACHMENTS = "evidence_attachments"

var SelectEvidenceColumns = utils.ColumnList[DBEvidenceAttachment]()

func AdaptEvidenceAttachment(db DBEvidenceAttachment) (models.EvidenceAttachment, error) {
	return models.EvidenceAttachment{
		Id:            db.Id,
		ArtifactType:  models.ArtifactTypeFromString(db.ArtifactType),
		ArtifactId:    db.ArtifactId,
		ScopeId:       db.ScopeId,
		Filename:      db.Filename,
		FileSize:      db.FileSize,
		MimeType:      db.MimeType,
		EvidenceType:  db.EvidenceType,
		Title:         db.Title,
		FileReference: db.FileReference,
		UploadedBy:    db.UploadedBy,
		UploadedAt:    db.UploadedAt,
		DeletedAt:     db.DeletedAt.Ptr(),
	}, nil
}
