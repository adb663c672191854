package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories"
)

type AuditRepository struct {
	mock.Mock
}

func (r *AuditRepository) CreateAuditLog(ctx context.Context, exec repositories.Executor,
	attributes models.CreateAuditLogAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *AuditRepository) ListAuditLogs(ctx context.Context, exec repositories.Executor,
	filters models.AuditLogFilters,
) ([]models.AuditLogEntry, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.AuditLogEntry), args.Error(1)
}

func (r *AuditRepository) CountAuditLogs(ctx context.Context, exec repositories.Executor,
	filters models.AuditLogFilters,
) (int, error) {
	args := r.Called(ctx, exec, filters)
	return args.Int(0), args.Error(1)
}
