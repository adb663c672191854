package security

import (
	"github.com/vectasec/tara-backend/models"
)

type EnforceSecurityAudit interface {
	EnforceSecurity

	ReadAuditLogs() error
	WriteAuditLog() error
}

type EnforceSecurityAuditImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityAuditImpl) ReadAuditLogs() error {
	return e.Permission(models.AUDIT_READ)
}

func (e *EnforceSecurityAuditImpl) WriteAuditLog() error {
	return e.Permission(models.AUDIT_WRITE)
}
