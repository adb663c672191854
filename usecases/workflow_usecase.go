package usecases

import (
	"context"
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/pure_utils"
	"github.com/vectasec/tara-backend/repositories"
	"github.com/vectasec/tara-backend/usecases/executor_factory"
	"github.com/vectasec/tara-backend/usecases/security"
)

type WorkflowUseCaseRepository interface {
	GetWorkflowById(ctx context.Context, exec repositories.Executor,
		workflowId uuid.UUID) (models.ApprovalWorkflow, error)
	GetWorkflowByArtifact(ctx context.Context, exec repositories.Executor,
		ref models.ArtifactRef) (*models.ApprovalWorkflow, error)
	GetWorkflowByIdForUpdate(ctx context.Context, tx repositories.Transaction,
		workflowId uuid.UUID) (models.ApprovalWorkflow, error)
	CreateWorkflow(ctx context.Context, tx repositories.Transaction,
		attributes models.CreateWorkflowAttributes, newWorkflowId uuid.UUID) error
	UpdateWorkflowState(ctx context.Context, tx repositories.Transaction,
		attributes models.UpdateWorkflowStateAttributes) error
	ListWorkflowsByScope(ctx context.Context, exec repositories.Executor,
		filters models.WorkflowFilters) ([]models.ApprovalWorkflow, error)
	CreateSignoff(ctx context.Context, tx repositories.Transaction,
		attributes models.CreateSignoffAttributes, newSignoffId uuid.UUID) error
	GetSignoffById(ctx context.Context, exec repositories.Executor,
		signoffId uuid.UUID) (models.Signoff, error)
	ListSignoffsByWorkflow(ctx context.Context, exec repositories.Executor,
		workflowId uuid.UUID) ([]models.Signoff, error)
	CreateAuditLog(ctx context.Context, exec repositories.Executor,
		attributes models.CreateAuditLogAttributes) error
}

type WorkflowUseCase struct {
	enforceSecurity    security.EnforceSecurityWorkflow
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         WorkflowUseCaseRepository
	credentials        models.Credentials
}

func validateArtifactRef(ref models.ArtifactRef) error {
	if !slices.Contains(models.ValidArtifactTypes, ref.ArtifactType) {
		return errors.Wrapf(models.BadParameterError, "invalid artifact type %q", ref.ArtifactType)
	}
	if ref.ArtifactId == "" {
		return errors.Wrap(models.BadParameterError, "artifact id is required")
	}
	if ref.ScopeId == "" {
		return errors.Wrap(models.BadParameterError, "scope id is required")
	}
	return nil
}

// CreateWorkflow is idempotent: a workflow already governing the artifact is
// returned as is, including when it was inserted by a concurrent request.
func (usecase *WorkflowUseCase) CreateWorkflow(
	ctx context.Context,
	attributes models.CreateWorkflowAttributes,
) (models.ApprovalWorkflow, error) {
	if err := usecase.enforceSecurity.CreateWorkflow(); err != nil {
		return models.ApprovalWorkflow{}, err
	}

	ref := models.ArtifactRef{
		ArtifactType: attributes.ArtifactType,
		ArtifactId:   attributes.ArtifactId,
		ScopeId:      attributes.ScopeId,
	}
	if err := validateArtifactRef(ref); err != nil {
		return models.ApprovalWorkflow{}, err
	}
	attributes.CreatedBy = usecase.credentials.ActorIdentity.UserId

	workflow, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ApprovalWorkflow, error) {
			existing, err := usecase.repository.GetWorkflowByArtifact(ctx, tx, ref)
			if err != nil {
				return models.ApprovalWorkflow{}, err
			}
			if existing != nil {
				return *existing, nil
			}

			newWorkflowId := uuid.New()
			if err := usecase.repository.CreateWorkflow(ctx, tx, attributes, newWorkflowId); err != nil {
				return models.ApprovalWorkflow{}, err
			}

			err = usecase.repository.CreateAuditLog(ctx, tx, models.CreateAuditLogAttributes{
				ScopeId:      &attributes.ScopeId,
				ArtifactType: attributes.ArtifactType,
				ArtifactId:   attributes.ArtifactId,
				Action:       models.AuditActionCreate,
				PerformedBy:  attributes.CreatedBy,
				ChangeSummary: pure_utils.Ptr(fmt.Sprintf(
					"approval workflow created for %s %s", attributes.ArtifactType, attributes.ArtifactId)),
			})
			if err != nil {
				return models.ApprovalWorkflow{}, err
			}

			return usecase.repository.GetWorkflowById(ctx, tx, newWorkflowId)
		})
	if repositories.IsUniqueViolationError(err) {
		// lost the race against another creator: the winner's workflow is
		// the one to return
		existing, readErr := usecase.repository.GetWorkflowByArtifact(ctx,
			usecase.executorFactory.NewExecutor(), ref)
		if readErr != nil {
			return models.ApprovalWorkflow{}, readErr
		}
		if existing == nil {
			return models.ApprovalWorkflow{}, err
		}
		return *existing, nil
	}
	return workflow, err
}

// GetWorkflowByArtifact returns nil when the artifact is ungoverned.
func (usecase *WorkflowUseCase) GetWorkflowByArtifact(
	ctx context.Context,
	ref models.ArtifactRef,
) (*models.ApprovalWorkflow, error) {
	if err := usecase.enforceSecurity.ReadWorkflow(); err != nil {
		return nil, err
	}
	if err := validateArtifactRef(ref); err != nil {
		return nil, err
	}
	return usecase.repository.GetWorkflowByArtifact(ctx, usecase.executorFactory.NewExecutor(), ref)
}

func (usecase *WorkflowUseCase) GetWorkflow(
	ctx context.Context,
	workflowId uuid.UUID,
) (models.ApprovalWorkflow, error) {
	if err := usecase.enforceSecurity.ReadWorkflow(); err != nil {
		return models.ApprovalWorkflow{}, err
	}
	return usecase.repository.GetWorkflowById(ctx, usecase.executorFactory.NewExecutor(), workflowId)
}

func (usecase *WorkflowUseCase) ListWorkflowsByScope(
	ctx context.Context,
	filters models.WorkflowFilters,
) ([]models.ApprovalWorkflow, error) {
	if err := usecase.enforceSecurity.ReadWorkflow(); err != nil {
		return nil, err
	}
	if filters.ScopeId == "" {
		return nil, errors.Wrap(models.BadParameterError, "scope id is required")
	}
	return usecase.repository.ListWorkflowsByScope(ctx, usecase.executorFactory.NewExecutor(), filters)
}

// TransitionWorkflow validates and applies one state transition atomically.
// The workflow row is locked for the duration of the transaction and the
// update is conditioned on the state the transition was validated against, so
// a concurrent transition surfaces as a conflict instead of a silent
// overwrite. The audit entry is part of the same transaction: if it cannot be
// written, the transition does not happen.
func (usecase *WorkflowUseCase) TransitionWorkflow(
	ctx context.Context,
	workflowId uuid.UUID,
	targetState models.WorkflowState,
	notes *string,
) (models.ApprovalWorkflow, error) {
	if !slices.Contains(models.ValidWorkflowStates, targetState) {
		return models.ApprovalWorkflow{}, errors.Wrapf(models.BadParameterError,
			"invalid workflow state %q", targetState)
	}
	actor := usecase.credentials.ActorIdentity.UserId

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ApprovalWorkflow, error) {
			workflow, err := usecase.repository.GetWorkflowByIdForUpdate(ctx, tx, workflowId)
			if err != nil {
				return models.ApprovalWorkflow{}, err
			}

			if !workflow.CurrentState.CanTransitionTo(targetState) {
				return models.ApprovalWorkflow{}, errors.Wrapf(models.ErrWorkflowTransitionNotAllowed,
					"from %s to %s", workflow.CurrentState, targetState)
			}
			if err := usecase.enforceSecurity.TransitionWorkflow(workflow, targetState); err != nil {
				return models.ApprovalWorkflow{}, err
			}

			err = usecase.repository.UpdateWorkflowState(ctx, tx, models.UpdateWorkflowStateAttributes{
				Id:        workflow.Id,
				FromState: workflow.CurrentState,
				ToState:   targetState,
				Actor:     actor,
				Notes:     notes,
			})
			if err != nil {
				return models.ApprovalWorkflow{}, err
			}

			err = usecase.repository.CreateAuditLog(ctx, tx, models.CreateAuditLogAttributes{
				ScopeId:      &workflow.ScopeId,
				ArtifactType: workflow.ArtifactType,
				ArtifactId:   workflow.ArtifactId,
				Action:       models.AuditActionTransition,
				PerformedBy:  actor,
				FieldChanged: pure_utils.Ptr("current_state"),
				OldValue:     pure_utils.Ptr(workflow.CurrentState.String()),
				NewValue:     pure_utils.Ptr(targetState.String()),
				ChangeSummary: pure_utils.Ptr(fmt.Sprintf(
					"workflow for %s %s moved from %s to %s",
					workflow.ArtifactType, workflow.ArtifactId,
					workflow.CurrentState, targetState)),
			})
			if err != nil {
				return models.ApprovalWorkflow{}, err
			}

			return usecase.repository.GetWorkflowById(ctx, tx, workflow.Id)
		})
}

// AddSignoff records an evidentiary approval on a workflow. It never advances
// the workflow state: pairing a sign-off with a transition is the caller's
// choice.
func (usecase *WorkflowUseCase) AddSignoff(
	ctx context.Context,
	attributes models.CreateSignoffAttributes,
) (models.Signoff, error) {
	if err := usecase.enforceSecurity.SignoffWorkflow(); err != nil {
		return models.Signoff{}, err
	}
	if !slices.Contains(models.ValidSignoffActions, attributes.Action) {
		return models.Signoff{}, errors.Wrapf(models.BadParameterError,
			"invalid sign-off action %q", attributes.Action)
	}
	attributes.Signer = usecase.credentials.ActorIdentity.UserId
	attributes.SignerRole = usecase.credentials.Role.String()

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Signoff, error) {
			workflow, err := usecase.repository.GetWorkflowById(ctx, tx, attributes.WorkflowId)
			if err != nil {
				return models.Signoff{}, err
			}

			newSignoffId := uuid.New()
			if err := usecase.repository.CreateSignoff(ctx, tx, attributes, newSignoffId); err != nil {
				return models.Signoff{}, err
			}

			err = usecase.repository.CreateAuditLog(ctx, tx, models.CreateAuditLogAttributes{
				ScopeId:      &workflow.ScopeId,
				ArtifactType: workflow.ArtifactType,
				ArtifactId:   workflow.ArtifactId,
				Action:       models.AuditActionSignoff,
				PerformedBy:  attributes.Signer,
				ChangeSummary: pure_utils.Ptr(fmt.Sprintf(
					"%s sign-off recorded on workflow %s", attributes.Action, workflow.Id)),
			})
			if err != nil {
				return models.Signoff{}, err
			}

			return usecase.repository.GetSignoffById(ctx, tx, newSignoffId)
		})
}

func (usecase *WorkflowUseCase) ListSignoffs(
	ctx context.Context,
	workflowId uuid.UUID,
) ([]models.Signoff, error) {
	if err := usecase.enforceSecurity.ReadWorkflow(); err != nil {
		return nil, err
	}

	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetWorkflowById(ctx, exec, workflowId); err != nil {
		return nil, err
	}
	return usecase.repository.ListSignoffsByWorkflow(ctx, exec, workflowId)
}
