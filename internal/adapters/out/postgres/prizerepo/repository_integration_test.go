package prizerepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/postgrestest"
	"marketplace/internal/adapters/out/postgres/prizerepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type PrizeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	prizes    *prizerepo.GormPrizeRepository
	grants    *prizerepo.GormGrantRepository
	tracker   *MockAggregateTracker
}

func (suite *PrizeRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := postgrestest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *PrizeRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgrestest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.prizes = prizerepo.NewGormPrizeRepository(suite.db, suite.tracker)
	suite.grants = prizerepo.NewGormGrantRepository(suite.db, suite.tracker)
}

func (suite *PrizeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PrizeRepositoryIntegrationTestSuite) TestPrize_AddUpdateGetAll() {
	ctx := suite.T().Context()
	providerID := kernel.NewUUID()
	first := suite.newPrize(prize.Definition{Name: "10% off", Type: prize.TypePercentDiscount, Value: 10})
	second := suite.newPrize(prize.Definition{
		Name: "Free delivery", Type: prize.TypeFreeDelivery, ProviderID: &providerID,
	})
	suite.Require().NoError(suite.prizes.Add(ctx, first))
	suite.Require().NoError(suite.prizes.Add(ctx, second))

	weight := 4.0
	suite.Require().NoError(first.Update(nil, &weight, nil))
	first.SetActive(false)
	suite.Require().NoError(suite.prizes.Update(ctx, first))

	all, err := suite.prizes.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(first.ID(), all[0].ID())
	suite.InDelta(4.0, all[0].Weight(), 1e-9)
	suite.False(all[0].IsActive())
	suite.Equal(providerID, *all[1].Definition().ProviderID)
	suite.True(all[1].IsActive())
}

func (suite *PrizeRepositoryIntegrationTestSuite) TestPrize_GetUnknown_NotFound() {
	_, err := suite.prizes.Get(suite.T().Context(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PrizeRepositoryIntegrationTestSuite) TestGrant_RedeemOnce() {
	ctx := suite.T().Context()
	p := suite.newPrize(prize.Definition{Name: "5 off", Type: prize.TypeFlatDiscount, Value: 500})
	suite.Require().NoError(suite.prizes.Add(ctx, p))
	userID := kernel.NewUUID()
	g, err := prize.NewGrant(kernel.NewUUID(), p, userID, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.grants.Add(ctx, g))

	bundleID := kernel.NewUUID()
	suite.Require().NoError(g.Redeem(bundleID, time.Now()))
	suite.Require().NoError(suite.grants.Redeem(ctx, g))

	loaded, err := suite.grants.Get(ctx, g.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsRedeemed())
	suite.Equal(bundleID, *loaded.BundleID())
	suite.Equal(int64(500), loaded.Definition().Value)

	err = suite.grants.Redeem(ctx, g)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *PrizeRepositoryIntegrationTestSuite) TestGrant_KeepsDefinitionAfterPrizeEdit() {
	ctx := suite.T().Context()
	p := suite.newPrize(prize.Definition{Name: "10% off", Type: prize.TypePercentDiscount, Value: 10})
	suite.Require().NoError(suite.prizes.Add(ctx, p))
	g, err := prize.NewGrant(kernel.NewUUID(), p, kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.grants.Add(ctx, g))

	suite.Require().NoError(p.Update(&prize.Definition{Name: "50% off", Type: prize.TypePercentDiscount, Value: 50}, nil, nil))
	suite.Require().NoError(suite.prizes.Update(ctx, p))

	loaded, err := suite.grants.Get(ctx, g.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(10), loaded.Definition().Value)
	suite.Equal("10% off", loaded.Definition().Name)
}

func (suite *PrizeRepositoryIntegrationTestSuite) TestGrant_GetByUser_NewestFirst() {
	ctx := suite.T().Context()
	p := suite.newPrize(prize.Definition{Name: "5 off", Type: prize.TypeFlatDiscount, Value: 500})
	suite.Require().NoError(suite.prizes.Add(ctx, p))
	userID := kernel.NewUUID()
	now := time.Now()

	older, err := prize.NewGrant(kernel.NewUUID(), p, userID, now.Add(-time.Hour))
	suite.Require().NoError(err)
	newer, err := prize.NewGrant(kernel.NewUUID(), p, userID, now)
	suite.Require().NoError(err)
	foreign, err := prize.NewGrant(kernel.NewUUID(), p, kernel.NewUUID(), now)
	suite.Require().NoError(err)
	for _, g := range []*prize.Grant{older, newer, foreign} {
		suite.Require().NoError(suite.grants.Add(ctx, g))
	}

	grants, err := suite.grants.GetByUser(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(grants, 2)
	suite.Equal(newer.ID(), grants[0].ID())
	suite.Equal(older.ID(), grants[1].ID())
}

func (suite *PrizeRepositoryIntegrationTestSuite) newPrize(def prize.Definition) *prize.Prize {
	p, err := prize.NewPrize(kernel.NewUUID(), def, 1, "#ffaa00")
	suite.Require().NoError(err)
	return p
}

func TestPrizeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PrizeRepositoryIntegrationTestSuite))
}
