package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vectasec/tara-backend/mocks"
	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/usecases/security"
)

type WorkflowUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.WorkflowRepository
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	executor           *mocks.Executor
	transaction        *mocks.Transaction
	enforceSecurity    *mocks.EnforceSecurity

	workflowId uuid.UUID
	ref        models.ArtifactRef
	creds      models.Credentials
}

func (suite *WorkflowUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.WorkflowRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.executor = new(mocks.Executor)
	suite.enforceSecurity = new(mocks.EnforceSecurity)

	suite.workflowId = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	suite.ref = models.ArtifactRef{
		ArtifactType: models.ArtifactTypeThreatScenario,
		ArtifactId:   "ts-42",
		ScopeId:      "scope-1",
	}
	suite.creds = models.Credentials{
		ActorIdentity: models.Identity{UserId: "reviewer-1"},
		Role:          models.REVIEWER,
	}
}

func (suite *WorkflowUsecaseTestSuite) makeUsecase() *WorkflowUseCase {
	return &WorkflowUseCase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		credentials:        suite.creds,
	}
}

func (suite *WorkflowUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.enforceSecurity.AssertExpectations(t)
}

func (suite *WorkflowUsecaseTestSuite) workflowInState(state models.WorkflowState) models.ApprovalWorkflow {
	return models.ApprovalWorkflow{
		Id:           suite.workflowId,
		ArtifactType: suite.ref.ArtifactType,
		ArtifactId:   suite.ref.ArtifactId,
		ScopeId:      suite.ref.ScopeId,
		CurrentState: state,
		CreatedBy:    "analyst-1",
	}
}

func (suite *WorkflowUsecaseTestSuite) Test_CreateWorkflow_Nominal() {
	ctx := context.Background()
	created := suite.workflowInState(models.WorkflowStateDraft)

	suite.enforceSecurity.On("CreateWorkflow").Return(nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetWorkflowByArtifact", ctx, suite.transaction, suite.ref).
		Return(nil, nil)
	suite.repository.On("CreateWorkflow", ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.CreateWorkflowAttributes) bool {
			return attrs.ArtifactId == suite.ref.ArtifactId &&
				attrs.CreatedBy == "reviewer-1"
		}), mock.AnythingOfType("uuid.UUID")).Return(nil)
	suite.repository.On("CreateAuditLog", ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.CreateAuditLogAttributes) bool {
			return attrs.Action == models.AuditActionCreate &&
				attrs.ArtifactId == suite.ref.ArtifactId
		})).Return(nil)
	suite.repository.On("GetWorkflowById", ctx, suite.transaction,
		mock.AnythingOfType("uuid.UUID")).Return(created, nil)

	workflow, err := suite.makeUsecase().CreateWorkflow(ctx, models.CreateWorkflowAttributes{
		ArtifactType: suite.ref.ArtifactType,
		ArtifactId:   suite.ref.ArtifactId,
		ScopeId:      suite.ref.ScopeId,
	})

	suite.NoError(err)
	suite.Equal(models.WorkflowStateDraft, workflow.CurrentState)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_CreateWorkflow_Idempotent() {
	ctx := context.Background()
	existing := suite.workflowInState(models.WorkflowStateReview)

	suite.enforceSecurity.On("CreateWorkflow").Return(nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetWorkflowByArtifact", ctx, suite.transaction, suite.ref).
		Return(&existing, nil)

	workflow, err := suite.makeUsecase().CreateWorkflow(ctx, models.CreateWorkflowAttributes{
		ArtifactType: suite.ref.ArtifactType,
		ArtifactId:   suite.ref.ArtifactId,
		ScopeId:      suite.ref.ScopeId,
	})

	suite.NoError(err)
	suite.Equal(existing.Id, workflow.Id)
	suite.Equal(models.WorkflowStateReview, workflow.CurrentState)
	suite.repository.AssertNotCalled(suite.T(), "CreateWorkflow",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_CreateWorkflow_ConcurrentCreateReturnsWinner() {
	ctx := context.Background()
	winner := suite.workflowInState(models.WorkflowStateDraft)

	suite.enforceSecurity.On("CreateWorkflow").Return(nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	// the artifact is ungoverned at the time of the in-tx check, but another
	// request inserts its workflow first and the unique constraint fires
	suite.repository.On("GetWorkflowByArtifact", ctx, suite.transaction, suite.ref).
		Return(nil, nil)
	suite.repository.On("CreateWorkflow", ctx, suite.transaction, mock.Anything,
		mock.AnythingOfType("uuid.UUID")).
		Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetWorkflowByArtifact", ctx, suite.executor, suite.ref).
		Return(&winner, nil)

	workflow, err := suite.makeUsecase().CreateWorkflow(ctx, models.CreateWorkflowAttributes{
		ArtifactType: suite.ref.ArtifactType,
		ArtifactId:   suite.ref.ArtifactId,
		ScopeId:      suite.ref.ScopeId,
	})

	suite.NoError(err)
	suite.Equal(winner.Id, workflow.Id)
	suite.repository.AssertNotCalled(suite.T(), "CreateAuditLog",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_CreateWorkflow_ConcurrentCreateWinnerMissing() {
	ctx := context.Background()

	suite.enforceSecurity.On("CreateWorkflow").Return(nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetWorkflowByArtifact", ctx, suite.transaction, suite.ref).
		Return(nil, nil)
	suite.repository.On("CreateWorkflow", ctx, suite.transaction, mock.Anything,
		mock.AnythingOfType("uuid.UUID")).
		Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	// the winner vanished before the re-read: surface the original error
	suite.repository.On("GetWorkflowByArtifact", ctx, suite.executor, suite.ref).
		Return(nil, nil)

	_, err := suite.makeUsecase().CreateWorkflow(ctx, models.CreateWorkflowAttributes{
		ArtifactType: suite.ref.ArtifactType,
		ArtifactId:   suite.ref.ArtifactId,
		ScopeId:      suite.ref.ScopeId,
	})

	var pgErr *pgconn.PgError
	suite.ErrorAs(err, &pgErr)
	suite.Equal(pgerrcode.UniqueViolation, pgErr.Code)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_CreateWorkflow_InvalidArtifactType() {
	ctx := context.Background()
	suite.enforceSecurity.On("CreateWorkflow").Return(nil)

	_, err := suite.makeUsecase().CreateWorkflow(ctx, models.CreateWorkflowAttributes{
		ArtifactType: models.ArtifactTypeUnknown,
		ArtifactId:   "x",
		ScopeId:      "scope-1",
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_TransitionWorkflow_Nominal() {
	ctx := context.Background()
	workflow := suite.workflowInState(models.WorkflowStateReview)
	approved := suite.workflowInState(models.WorkflowStateApproved)

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(workflow, nil)
	suite.enforceSecurity.On("TransitionWorkflow", workflow, models.WorkflowStateApproved).
		Return(nil)
	suite.repository.On("UpdateWorkflowState", ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.UpdateWorkflowStateAttributes) bool {
			return attrs.FromState == models.WorkflowStateReview &&
				attrs.ToState == models.WorkflowStateApproved &&
				attrs.Actor == "reviewer-1"
		})).Return(nil)
	suite.repository.On("CreateAuditLog", ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.CreateAuditLogAttributes) bool {
			return attrs.Action == models.AuditActionTransition &&
				*attrs.OldValue == "review" && *attrs.NewValue == "approved"
		})).Return(nil)
	suite.repository.On("GetWorkflowById", ctx, suite.transaction, suite.workflowId).
		Return(approved, nil)

	result, err := suite.makeUsecase().TransitionWorkflow(ctx, suite.workflowId,
		models.WorkflowStateApproved, nil)

	suite.NoError(err)
	suite.Equal(models.WorkflowStateApproved, result.CurrentState)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_TransitionWorkflow_IllegalTransition() {
	ctx := context.Background()
	workflow := suite.workflowInState(models.WorkflowStateDraft)

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(workflow, nil)

	_, err := suite.makeUsecase().TransitionWorkflow(ctx, suite.workflowId,
		models.WorkflowStateReleased, nil)

	suite.ErrorIs(err, models.ErrWorkflowTransitionNotAllowed)
	suite.ErrorIs(err, models.BadParameterError)
	suite.repository.AssertNotCalled(suite.T(), "UpdateWorkflowState",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_TransitionWorkflow_TerminalState() {
	ctx := context.Background()
	workflow := suite.workflowInState(models.WorkflowStateReleased)

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(workflow, nil)

	_, err := suite.makeUsecase().TransitionWorkflow(ctx, suite.workflowId,
		models.WorkflowStateDraft, nil)

	suite.ErrorIs(err, models.ErrWorkflowTransitionNotAllowed)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_TransitionWorkflow_SecurityRefusal() {
	ctx := context.Background()
	workflow := suite.workflowInState(models.WorkflowStateReview)

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(workflow, nil)
	suite.enforceSecurity.On("TransitionWorkflow", workflow, models.WorkflowStateApproved).
		Return(models.ErrSelfApproval)

	_, err := suite.makeUsecase().TransitionWorkflow(ctx, suite.workflowId,
		models.WorkflowStateApproved, nil)

	suite.ErrorIs(err, models.ErrSelfApproval)
	suite.repository.AssertNotCalled(suite.T(), "UpdateWorkflowState",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_TransitionWorkflow_ConcurrentConflict() {
	ctx := context.Background()
	workflow := suite.workflowInState(models.WorkflowStateReview)

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(workflow, nil)
	suite.enforceSecurity.On("TransitionWorkflow", workflow, models.WorkflowStateApproved).
		Return(nil)
	suite.repository.On("UpdateWorkflowState", ctx, suite.transaction, mock.Anything).
		Return(models.ErrWorkflowStateStale)

	_, err := suite.makeUsecase().TransitionWorkflow(ctx, suite.workflowId,
		models.WorkflowStateApproved, nil)

	suite.ErrorIs(err, models.ConflictError)
	suite.repository.AssertNotCalled(suite.T(), "CreateAuditLog",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_TransitionWorkflow_AuditWriteFailureAborts() {
	ctx := context.Background()
	workflow := suite.workflowInState(models.WorkflowStateReview)

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(workflow, nil)
	suite.enforceSecurity.On("TransitionWorkflow", workflow, models.WorkflowStateApproved).
		Return(nil)
	suite.repository.On("UpdateWorkflowState", ctx, suite.transaction, mock.Anything).
		Return(nil)
	auditErr := models.BadParameterError
	suite.repository.On("CreateAuditLog", ctx, suite.transaction, mock.Anything).
		Return(auditErr)

	_, err := suite.makeUsecase().TransitionWorkflow(ctx, suite.workflowId,
		models.WorkflowStateApproved, nil)

	suite.ErrorIs(err, auditErr)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_AddSignoff_Nominal() {
	ctx := context.Background()
	workflow := suite.workflowInState(models.WorkflowStateReview)
	signoff := models.Signoff{
		Id:         uuid.New(),
		WorkflowId: suite.workflowId,
		Signer:     "reviewer-1",
		Action:     models.SignoffActionApprove,
	}

	suite.enforceSecurity.On("SignoffWorkflow").Return(nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("GetWorkflowById", ctx, suite.transaction, suite.workflowId).
		Return(workflow, nil)
	suite.repository.On("CreateSignoff", ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.CreateSignoffAttributes) bool {
			return attrs.Signer == "reviewer-1" && attrs.SignerRole == "REVIEWER"
		}), mock.AnythingOfType("uuid.UUID")).Return(nil)
	suite.repository.On("CreateAuditLog", ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.CreateAuditLogAttributes) bool {
			return attrs.Action == models.AuditActionSignoff
		})).Return(nil)
	suite.repository.On("GetSignoffById", ctx, suite.transaction,
		mock.AnythingOfType("uuid.UUID")).Return(signoff, nil)

	result, err := suite.makeUsecase().AddSignoff(ctx, models.CreateSignoffAttributes{
		WorkflowId: suite.workflowId,
		Action:     models.SignoffActionApprove,
	})

	suite.NoError(err)
	suite.Equal(models.SignoffActionApprove, result.Action)
	suite.AssertExpectations()
}

func (suite *WorkflowUsecaseTestSuite) Test_AddSignoff_InvalidAction() {
	ctx := context.Background()
	suite.enforceSecurity.On("SignoffWorkflow").Return(nil)

	_, err := suite.makeUsecase().AddSignoff(ctx, models.CreateSignoffAttributes{
		WorkflowId: suite.workflowId,
		Action:     models.SignoffActionUnknown,
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

// usecaseAs wires a usecase with the real security enforcers so that role
// grants and the maker-checker rule are exercised instead of mocked.
func (suite *WorkflowUsecaseTestSuite) usecaseAs(userId string, role models.Role) *WorkflowUseCase {
	creds := models.Credentials{
		ActorIdentity: models.Identity{UserId: userId},
		Role:          role,
	}
	return &WorkflowUseCase{
		enforceSecurity: &security.EnforceSecurityWorkflowImpl{
			EnforceSecurity: &security.EnforceSecurityImpl{Credentials: creds},
			Credentials:     creds,
		},
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		credentials:        creds,
	}
}

func (suite *WorkflowUsecaseTestSuite) Test_WorkflowLifecycle_DraftToRelease() {
	ctx := context.Background()
	creator := suite.usecaseAs("reviewer-a", models.REVIEWER)
	approver := suite.usecaseAs("reviewer-b", models.REVIEWER)
	releaser := suite.usecaseAs("risk-manager-c", models.RISK_MANAGER)

	inState := func(state models.WorkflowState) models.ApprovalWorkflow {
		workflow := suite.workflowInState(state)
		workflow.CreatedBy = "reviewer-a"
		return workflow
	}

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.repository.On("CreateAuditLog", ctx, suite.transaction, mock.Anything).Return(nil)

	// reviewer A opens the workflow in draft
	suite.repository.On("GetWorkflowByArtifact", ctx, suite.transaction, suite.ref).
		Return(nil, nil).Once()
	suite.repository.On("CreateWorkflow", ctx, suite.transaction, mock.Anything,
		mock.AnythingOfType("uuid.UUID")).Return(nil).Once()
	suite.repository.On("GetWorkflowById", ctx, suite.transaction,
		mock.AnythingOfType("uuid.UUID")).Return(inState(models.WorkflowStateDraft), nil).Once()

	created, err := creator.CreateWorkflow(ctx, models.CreateWorkflowAttributes{
		ArtifactType: suite.ref.ArtifactType,
		ArtifactId:   suite.ref.ArtifactId,
		ScopeId:      suite.ref.ScopeId,
	})
	suite.NoError(err)
	suite.Equal(models.WorkflowStateDraft, created.CurrentState)

	// a draft cannot be approved without a review round
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(inState(models.WorkflowStateDraft), nil).Once()
	_, err = approver.TransitionWorkflow(ctx, suite.workflowId, models.WorkflowStateApproved, nil)
	suite.ErrorIs(err, models.ErrWorkflowTransitionNotAllowed)

	// A submits their own workflow for review
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(inState(models.WorkflowStateDraft), nil).Once()
	suite.repository.On("UpdateWorkflowState", ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.UpdateWorkflowStateAttributes) bool {
			return attrs.ToState == models.WorkflowStateReview && attrs.Actor == "reviewer-a"
		})).Return(nil).Once()
	suite.repository.On("GetWorkflowById", ctx, suite.transaction, suite.workflowId).
		Return(inState(models.WorkflowStateReview), nil).Once()
	submitted, err := creator.TransitionWorkflow(ctx, suite.workflowId,
		models.WorkflowStateReview, nil)
	suite.NoError(err)
	suite.Equal(models.WorkflowStateReview, submitted.CurrentState)

	// A cannot approve what A created
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(inState(models.WorkflowStateReview), nil).Once()
	_, err = creator.TransitionWorkflow(ctx, suite.workflowId, models.WorkflowStateApproved, nil)
	suite.ErrorIs(err, models.ErrSelfApproval)
	suite.ErrorIs(err, models.ForbiddenError)

	// reviewer B approves
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(inState(models.WorkflowStateReview), nil).Once()
	suite.repository.On("UpdateWorkflowState", ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.UpdateWorkflowStateAttributes) bool {
			return attrs.ToState == models.WorkflowStateApproved && attrs.Actor == "reviewer-b"
		})).Return(nil).Once()
	suite.repository.On("GetWorkflowById", ctx, suite.transaction, suite.workflowId).
		Return(inState(models.WorkflowStateApproved), nil).Once()
	approved, err := approver.TransitionWorkflow(ctx, suite.workflowId,
		models.WorkflowStateApproved, nil)
	suite.NoError(err)
	suite.Equal(models.WorkflowStateApproved, approved.CurrentState)

	// B lacks the release grant, the risk manager carries it
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(inState(models.WorkflowStateApproved), nil).Once()
	_, err = approver.TransitionWorkflow(ctx, suite.workflowId, models.WorkflowStateReleased, nil)
	suite.ErrorIs(err, models.ForbiddenError)

	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(inState(models.WorkflowStateApproved), nil).Once()
	suite.repository.On("UpdateWorkflowState", ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.UpdateWorkflowStateAttributes) bool {
			return attrs.ToState == models.WorkflowStateReleased && attrs.Actor == "risk-manager-c"
		})).Return(nil).Once()
	suite.repository.On("GetWorkflowById", ctx, suite.transaction, suite.workflowId).
		Return(inState(models.WorkflowStateReleased), nil).Once()
	released, err := releaser.TransitionWorkflow(ctx, suite.workflowId,
		models.WorkflowStateReleased, nil)
	suite.NoError(err)
	suite.Equal(models.WorkflowStateReleased, released.CurrentState)

	// released is terminal even for the risk manager
	suite.repository.On("GetWorkflowByIdForUpdate", ctx, suite.transaction, suite.workflowId).
		Return(inState(models.WorkflowStateReleased), nil).Once()
	_, err = releaser.TransitionWorkflow(ctx, suite.workflowId, models.WorkflowStateDraft, nil)
	suite.ErrorIs(err, models.ErrWorkflowTransitionNotAllowed)

	suite.AssertExpectations()
}

func TestWorkflowUsecase(t *testing.T) {
	suite.Run(t, new(WorkflowUsecaseTestSuite))
}
