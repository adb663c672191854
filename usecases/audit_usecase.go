package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories"
	"github.com/vectasec/tara-backend/usecases/executor_factory"
	"github.com/vectasec/tara-backend/usecases/security"
)

const (
	defaultAuditLogPageSize = 50
	maxAuditLogPageSize     = 100
)

type AuditUseCaseRepository interface {
	CreateAuditLog(ctx context.Context, exec repositories.Executor,
		attributes models.CreateAuditLogAttributes) error
	ListAuditLogs(ctx context.Context, exec repositories.Executor,
		filters models.AuditLogFilters) ([]models.AuditLogEntry, error)
	CountAuditLogs(ctx context.Context, exec repositories.Executor,
		filters models.AuditLogFilters) (int, error)
}

type AuditUseCase struct {
	enforceSecurity security.EnforceSecurityAudit
	executorFactory executor_factory.ExecutorFactory
	repository      AuditUseCaseRepository
	credentials     models.Credentials
}

// RecordEvent writes a standalone audit entry for a mutation that happens
// outside the governance workflows, such as a direct artifact edit. Entries
// tied to a workflow transition are written by the workflow use case inside
// the transition's transaction instead.
func (usecase *AuditUseCase) RecordEvent(
	ctx context.Context,
	attributes models.CreateAuditLogAttributes,
) error {
	if err := usecase.enforceSecurity.WriteAuditLog(); err != nil {
		return err
	}
	attributes.PerformedBy = usecase.credentials.ActorIdentity.UserId
	if err := attributes.Validate(); err != nil {
		return err
	}
	return usecase.repository.CreateAuditLog(ctx, usecase.executorFactory.NewExecutor(), attributes)
}

func (usecase *AuditUseCase) ListAuditLogs(
	ctx context.Context,
	filters models.AuditLogFilters,
) (models.AuditLogPage, error) {
	if err := usecase.enforceSecurity.ReadAuditLogs(); err != nil {
		return models.AuditLogPage{}, err
	}
	if filters.ScopeId == "" && filters.ArtifactId == "" {
		return models.AuditLogPage{}, errors.Wrap(models.BadParameterError,
			"audit log listing requires a scope id or an artifact id")
	}
	if filters.Limit < 0 || filters.Offset < 0 {
		return models.AuditLogPage{}, errors.Wrap(models.BadParameterError,
			"limit and offset must not be negative")
	}
	if filters.Limit == 0 {
		filters.Limit = defaultAuditLogPageSize
	}
	if filters.Limit > maxAuditLogPageSize {
		filters.Limit = maxAuditLogPageSize
	}

	exec := usecase.executorFactory.NewExecutor()
	logs, err := usecase.repository.ListAuditLogs(ctx, exec, filters)
	if err != nil {
		return models.AuditLogPage{}, err
	}
	total, err := usecase.repository.CountAuditLogs(ctx, exec, filters)
	if err != nil {
		return models.AuditLogPage{}, err
	}
	return models.AuditLogPage{Logs: logs, Total: total}, nil
}
