package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vectasec/tara-backend/mocks"
	"github.com/vectasec/tara-backend/models"
)

type AuditUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.AuditRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor
	enforceSecurity *mocks.EnforceSecurity
}

func (suite *AuditUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.AuditRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.enforceSecurity = new(mocks.EnforceSecurity)
}

func (suite *AuditUsecaseTestSuite) makeUsecase() *AuditUseCase {
	return &AuditUseCase{
		enforceSecurity: suite.enforceSecurity,
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		credentials: models.Credentials{
			ActorIdentity: models.Identity{UserId: "analyst-1"},
			Role:          models.ANALYST,
		},
	}
}

func (suite *AuditUsecaseTestSuite) Test_RecordEvent_StampsActor() {
	ctx := context.Background()
	suite.enforceSecurity.On("WriteAuditLog").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("CreateAuditLog", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.CreateAuditLogAttributes) bool {
			return attrs.PerformedBy == "analyst-1"
		})).Return(nil)

	err := suite.makeUsecase().RecordEvent(ctx, models.CreateAuditLogAttributes{
		ArtifactType: models.ArtifactTypeAsset,
		ArtifactId:   "asset-1",
		Action:       models.AuditActionUpdate,
		// a spoofed actor is overwritten with the caller's identity
		PerformedBy: "someone-else",
	})

	suite.NoError(err)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *AuditUsecaseTestSuite) Test_RecordEvent_Invalid() {
	ctx := context.Background()
	suite.enforceSecurity.On("WriteAuditLog").Return(nil)

	err := suite.makeUsecase().RecordEvent(ctx, models.CreateAuditLogAttributes{
		ArtifactType: models.ArtifactTypeAsset,
		Action:       models.AuditActionUpdate,
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.repository.AssertNotCalled(suite.T(), "CreateAuditLog",
		mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuditUsecaseTestSuite) Test_ListAuditLogs_PaginationDefaults() {
	ctx := context.Background()
	suite.enforceSecurity.On("ReadAuditLogs").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListAuditLogs", ctx, suite.executor,
		mock.MatchedBy(func(filters models.AuditLogFilters) bool {
			return filters.Limit == defaultAuditLogPageSize
		})).Return([]models.AuditLogEntry{{Id: 1}}, nil)
	suite.repository.On("CountAuditLogs", ctx, suite.executor, mock.Anything).
		Return(1, nil)

	page, err := suite.makeUsecase().ListAuditLogs(ctx, models.AuditLogFilters{
		ScopeId: "scope-1",
	})

	suite.NoError(err)
	suite.Equal(1, page.Total)
	suite.Len(page.Logs, 1)
}

func (suite *AuditUsecaseTestSuite) Test_ListAuditLogs_LimitCapped() {
	ctx := context.Background()
	suite.enforceSecurity.On("ReadAuditLogs").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListAuditLogs", ctx, suite.executor,
		mock.MatchedBy(func(filters models.AuditLogFilters) bool {
			return filters.Limit == maxAuditLogPageSize
		})).Return([]models.AuditLogEntry{}, nil)
	suite.repository.On("CountAuditLogs", ctx, suite.executor, mock.Anything).
		Return(0, nil)

	_, err := suite.makeUsecase().ListAuditLogs(ctx, models.AuditLogFilters{
		ScopeId: "scope-1",
		Limit:   10000,
	})

	suite.NoError(err)
}

func (suite *AuditUsecaseTestSuite) Test_ListAuditLogs_RequiresScopeOrArtifact() {
	ctx := context.Background()
	suite.enforceSecurity.On("ReadAuditLogs").Return(nil)

	_, err := suite.makeUsecase().ListAuditLogs(ctx, models.AuditLogFilters{})

	suite.ErrorIs(err, models.BadParameterError)
}

func TestAuditUsecase(t *testing.T) {
	suite.Run(t, new(AuditUsecaseTestSuite))
}
