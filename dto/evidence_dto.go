package dto

import (
	"time"

	"github.com/vectasec/tara-backend/models"
)

type APIEvidenceAttachment struct {
	Id           string    `json:"id"`
	ArtifactType string    `json:"artifact_type"`
	ArtifactId   string    `json:"artifact_id"`
	ScopeId      string    `json:"scope_id"`
	Filename     string    `json:"filename"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	EvidenceType string    `json:"evidence_type"`
	Title        string    `json:"title"`
	UploadedBy   string    `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

func AdaptEvidenceAttachmentDto(evidence models.EvidenceAttachment) APIEvidenceAttachment {
	return APIEvidenceAttachment{
		Id:           evidence.Id.String(),
		ArtifactType: evidence.ArtifactType.String(),
		ArtifactId:   evidence.ArtifactId,
		ScopeId:      evidence.ScopeId,
		Filename:     evidence.Filename,
		FileSize:     evidence.FileSize,
		MimeType:     evidence.MimeType,
		EvidenceType: evidence.EvidenceType,
		Title:        evidence.Title,
		UploadedBy:   evidence.UploadedBy,
		UploadedAt:   evidence.UploadedAt,
	}
}

type UploadEvidenceForm struct {
	ArtifactType string `form:"artifact_type" binding:"required"`
	ArtifactId   string `form:"artifact_id" binding:"required"`
	ScopeId      string `form:"scope_id" binding:"required"`
	EvidenceType string `form:"evidence_type"`
	Title        string `form:"title"`
}
