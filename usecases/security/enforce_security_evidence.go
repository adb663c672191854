package security

import (
	"github.com/vectasec/tara-backend/models"
)

type EnforceSecurityEvidence interface {
	EnforceSecurity

	ReadEvidence() error
	UploadEvidence() error
	DeleteEvidence() error
}

type EnforceSecurityEvidenceImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityEvidenceImpl) ReadEvidence() error {
	return e.Permission(models.EVIDENCE_READ)
}

func (e *EnforceSecurityEvidenceImpl) UploadEvidence() error {
	return e.Permission(models.EVIDENCE_UPLOAD)
}

func (e *EnforceSecurityEvidenceImpl) DeleteEvidence() error {
	return e.Permission(models.EVIDENCE_DELETE)
}
