package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/historyrepo"
	"orderflow/internal/adapters/out/postgres/pgtest"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type HistoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *historyrepo.GormHistoryRepository
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&historyrepo.HistoryEntryDTO{}))
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_history").Error)
	suite.repository = historyrepo.NewGormHistoryRepository(suite.db)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestAppend_StoresEveryEntry() {
	ctx := context.Background()
	draft := kernel.NewUUID()
	review := kernel.NewUUID()
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	o, err := order.NewOrder(kernel.NewUUID(), "Invoice 42", order.Standard, draft, created)
	suite.Require().NoError(err)
	createdEntry := order.NewCreatedEntry(o)

	suite.Require().NoError(o.MoveToStep(review, created.Add(time.Minute)))
	approvedEntry := order.NewApprovedEntry(o, draft)

	suite.Require().NoError(suite.repository.Append(ctx, createdEntry, approvedEntry))

	var rows []historyrepo.HistoryEntryDTO
	suite.Require().NoError(suite.db.Order("at").Find(&rows).Error)
	suite.Require().Len(rows, 2)

	suite.Equal(string(order.ActionCreated), rows[0].Action)
	suite.Nil(rows[0].FromStepID)
	suite.Equal(draft.UUID(), rows[0].ToStepID)

	suite.Equal(string(order.ActionApproved), rows[1].Action)
	suite.Require().NotNil(rows[1].FromStepID)
	suite.Equal(draft.UUID(), *rows[1].FromStepID)
	suite.Equal(review.UUID(), rows[1].ToStepID)
	suite.Equal(o.ID().UUID(), rows[1].OrderID)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestAppend_RejectionKeepsReason() {
	o, err := order.NewOrder(kernel.NewUUID(), "Invoice 43", order.Priority, kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)
	suite.Require().True(o.Reject("missing signature", time.Now()))

	suite.Require().NoError(suite.repository.Append(context.Background(), order.NewRejectedEntry(o)))

	var row historyrepo.HistoryEntryDTO
	suite.Require().NoError(suite.db.First(&row).Error)
	suite.Equal(string(order.ActionRejected), row.Action)
	suite.Equal("missing signature", row.Reason)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestAppend_NoEntries_IsNoop() {
	suite.Require().NoError(suite.repository.Append(context.Background()))

	var count int64
	suite.Require().NoError(suite.db.Model(&historyrepo.HistoryEntryDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestAppend_NotConstructedEntry_Fails() {
	err := suite.repository.Append(context.Background(), &order.HistoryEntry{})

	suite.Require().ErrorIs(err, order.ErrHistoryEntryIsNotConstructed)
}

func TestHistoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryRepositoryIntegrationTestSuite))
}
