package security

import (
	"github.com/cockroachdb/errors"

	"github.com/vectasec/tara-backend/models"
)

type EnforceSecurity interface {
	Permission(permission models.Permission) error
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func NewEnforceSecurity(creds models.Credentials) *EnforceSecurityImpl {
	return &EnforceSecurityImpl{Credentials: creds}
}

func (e *EnforceSecurityImpl) Permission(permission models.Permission) error {
	if e.Credentials.Superuser {
		return nil
	}
	if !e.Credentials.Role.HasPermission(permission) {
		return errors.Wrapf(models.ForbiddenError,
			"missing permission for role %s", e.Credentials.Role)
	}
	return nil
}
