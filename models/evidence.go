package models

import (
	"time"

	"github.com/google/uuid"
)

type EvidenceAttachment struct {
	Id            uuid.UUID
	ArtifactType  ArtifactType
	ArtifactId    string
	ScopeId       string
	Filename      string
	FileSize      int64
	MimeType      string
	EvidenceType  string
	Title         string
	FileReference string
	UploadedBy    string
	UploadedAt    time.Time
	DeletedAt     *time.Time
}

type CreateEvidenceAttributes struct {
	ArtifactType  ArtifactType
	ArtifactId    string
	ScopeId       string
	Filename      string
	FileSize      int64
	MimeType      string
	EvidenceType  string
	Title         string
	FileReference string
	UploadedBy    string
}
