package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/pure_utils"
	"github.com/vectasec/tara-backend/repositories"
	"github.com/vectasec/tara-backend/usecases/executor_factory"
	"github.com/vectasec/tara-backend/usecases/security"
	"github.com/vectasec/tara-backend/utils"
)

const snapshotVersionRetries = 3

type SnapshotUseCaseRepository interface {
	CreateSnapshot(ctx context.Context, tx repositories.Transaction,
		snapshot models.TaraSnapshot, data json.RawMessage) error
	GetMaxSnapshotVersion(ctx context.Context, exec repositories.Executor,
		scopeId string) (int, error)
	ListSnapshotsByScope(ctx context.Context, exec repositories.Executor,
		scopeId string) ([]models.TaraSnapshot, error)
	GetSnapshotById(ctx context.Context, exec repositories.Executor,
		snapshotId uuid.UUID) (models.TaraSnapshot, error)
	ListWorkflowsByScope(ctx context.Context, exec repositories.Executor,
		filters models.WorkflowFilters) ([]models.ApprovalWorkflow, error)
	CreateAuditLog(ctx context.Context, exec repositories.Executor,
		attributes models.CreateAuditLogAttributes) error
}

type SnapshotUseCase struct {
	enforceSecurity    security.EnforceSecuritySnapshot
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         SnapshotUseCaseRepository
	artifactReader     repositories.ArtifactReadRepository
	credentials        models.Credentials
}

// CreateSnapshot captures a deep copy of the scope's governed collections
// under the next free version number. Version numbers are assigned
// optimistically: the insert carries max(version)+1 and the unique
// (scope_id, version) constraint arbitrates concurrent captures, with a few
// retries before giving up.
func (usecase *SnapshotUseCase) CreateSnapshot(
	ctx context.Context,
	attributes models.CreateSnapshotAttributes,
) (models.TaraSnapshot, error) {
	if err := usecase.enforceSecurity.CreateSnapshot(); err != nil {
		return models.TaraSnapshot{}, err
	}
	if attributes.ScopeId == "" {
		return models.TaraSnapshot{}, errors.Wrap(models.BadParameterError, "scope id is required")
	}
	attributes.CreatedBy = usecase.credentials.ActorIdentity.UserId

	export, err := usecase.exportScope(ctx, attributes.ScopeId)
	if err != nil {
		return models.TaraSnapshot{}, err
	}
	data, err := json.Marshal(export)
	if err != nil {
		return models.TaraSnapshot{}, errors.Wrap(err, "failed to serialize scope export")
	}

	workflows, err := usecase.repository.ListWorkflowsByScope(ctx,
		usecase.executorFactory.NewExecutor(),
		models.WorkflowFilters{ScopeId: attributes.ScopeId})
	if err != nil {
		return models.TaraSnapshot{}, err
	}

	snapshot, err := retry.DoWithData(
		func() (models.TaraSnapshot, error) {
			return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
				func(tx repositories.Transaction) (models.TaraSnapshot, error) {
					maxVersion, err := usecase.repository.GetMaxSnapshotVersion(ctx, tx, attributes.ScopeId)
					if err != nil {
						return models.TaraSnapshot{}, err
					}

					snapshot := models.TaraSnapshot{
						Id:                  uuid.New(),
						ScopeId:             attributes.ScopeId,
						Version:             maxVersion + 1,
						VersionLabel:        attributes.VersionLabel,
						AssetCount:          len(export.Assets),
						DamageScenarioCount: len(export.DamageScenarios),
						ThreatScenarioCount: len(export.ThreatScenarios),
						AttackPathCount:     len(export.AttackPaths),
						RiskTreatmentCount:  len(export.RiskTreatments),
						WorkflowState:       models.ScopeWorkflowStateLabel(workflows),
						CreatedBy:           attributes.CreatedBy,
						Notes:               attributes.Notes,
					}
					if err := usecase.repository.CreateSnapshot(ctx, tx, snapshot, data); err != nil {
						return models.TaraSnapshot{}, err
					}

					err = usecase.repository.CreateAuditLog(ctx, tx, models.CreateAuditLogAttributes{
						ScopeId:      &attributes.ScopeId,
						ArtifactType: models.ArtifactTypeSnapshot,
						ArtifactId:   snapshot.Id.String(),
						Action:       models.AuditActionCreate,
						PerformedBy:  attributes.CreatedBy,
						ChangeSummary: pure_utils.Ptr(fmt.Sprintf(
							"snapshot v%d captured for scope %s", snapshot.Version, attributes.ScopeId)),
					})
					if err != nil {
						return models.TaraSnapshot{}, err
					}
					return usecase.repository.GetSnapshotById(ctx, tx, snapshot.Id)
				})
		},
		retry.Attempts(snapshotVersionRetries),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, models.ErrSnapshotVersionTaken)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return models.TaraSnapshot{}, err
	}

	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "captured tara snapshot",
		"scope_id", snapshot.ScopeId, "version", snapshot.Version)
	return snapshot, nil
}

func (usecase *SnapshotUseCase) exportScope(ctx context.Context, scopeId string) (models.ScopeExport, error) {
	exec := usecase.executorFactory.NewExecutor()

	export := models.ScopeExport{}
	group, groupCtx := errgroup.WithContext(ctx)
	for _, item := range []struct {
		artifactType models.ArtifactType
		dest         *[]models.Artifact
	}{
		{models.ArtifactTypeAsset, &export.Assets},
		{models.ArtifactTypeDamageScenario, &export.DamageScenarios},
		{models.ArtifactTypeThreatScenario, &export.ThreatScenarios},
		{models.ArtifactTypeAttackPath, &export.AttackPaths},
		{models.ArtifactTypeRiskTreatment, &export.RiskTreatments},
	} {
		group.Go(func() error {
			artifacts, err := usecase.artifactReader.ListArtifactsByScope(groupCtx, exec, item.artifactType, scopeId)
			if err != nil {
				return err
			}
			*item.dest = artifacts
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return models.ScopeExport{}, err
	}
	return export, nil
}

// ListSnapshots returns summaries without the data blob.
func (usecase *SnapshotUseCase) ListSnapshots(
	ctx context.Context,
	scopeId string,
) ([]models.TaraSnapshot, error) {
	if err := usecase.enforceSecurity.ReadSnapshot(); err != nil {
		return nil, err
	}
	if scopeId == "" {
		return nil, errors.Wrap(models.BadParameterError, "scope id is required")
	}
	return usecase.repository.ListSnapshotsByScope(ctx, usecase.executorFactory.NewExecutor(), scopeId)
}

func (usecase *SnapshotUseCase) GetSnapshotDetail(
	ctx context.Context,
	snapshotId uuid.UUID,
) (models.TaraSnapshot, error) {
	if err := usecase.enforceSecurity.ReadSnapshot(); err != nil {
		return models.TaraSnapshot{}, err
	}
	return usecase.repository.GetSnapshotById(ctx, usecase.executorFactory.NewExecutor(), snapshotId)
}
