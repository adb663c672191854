package security

import (
	"github.com/vectasec/tara-backend/models"
)

type EnforceSecuritySnapshot interface {
	EnforceSecurity

	ReadSnapshot() error
	CreateSnapshot() error
}

type EnforceSecuritySnapshotImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecuritySnapshotImpl) ReadSnapshot() error {
	return e.Permission(models.SNAPSHOT_READ)
}

func (e *EnforceSecuritySnapshotImpl) CreateSnapshot() error {
	return e.Permission(models.SNAPSHOT_CREATE)
}
