package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/courierrepo"
	"marketplace/internal/adapters/out/postgres/postgrestest"
	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
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

type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := postgrestest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgrestest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_PersistsCourierWithAssignments() {
	ctx := suite.T().Context()
	supervisorID := kernel.NewUUID()
	c := suite.newCourier("Omar", supervisorID)

	suite.Require().NoError(suite.repository.Add(ctx, c))

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Omar", loaded.Name())
	suite.Equal("+966500000001", loaded.Phone())
	suite.False(loaded.IsAvailable())
	suite.True(loaded.IsSupervisedBy(supervisorID))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", c.ID(), c)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_SyncsAssignmentSet() {
	ctx := suite.T().Context()
	kept := kernel.NewUUID()
	dropped := kernel.NewUUID()
	added := kernel.NewUUID()
	c := suite.newCourier("Omar", kept, dropped)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	_, err := c.UnassignSupervisor(dropped)
	suite.Require().NoError(err)
	_, err = c.AssignSupervisor(added, time.Now())
	suite.Require().NoError(err)
	_, err = c.SetAvailability(true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, c))

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsAvailable())
	suite.ElementsMatch([]kernel.UUID{kept, added}, loaded.SupervisorIDs())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_SoftDeleteHidesFromGetAll() {
	ctx := suite.T().Context()
	active := suite.newCourier("Adel", kernel.NewUUID())
	deleted := suite.newCourier("Badr", kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, deleted))

	suite.Require().NoError(deleted.SoftDelete(time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, deleted))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.Equal(active.ID(), all[0].ID())

	loaded, err := suite.repository.Get(ctx, deleted.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsDeleted())
	suite.Empty(loaded.Assignments())

	var assignments int64
	suite.Require().NoError(suite.db.Model(&courierrepo.AssignmentDTO{}).
		Where("courier_id = ?", deleted.ID().Bytes()).Count(&assignments).Error)
	suite.Zero(assignments)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAll_OrdersByName() {
	ctx := suite.T().Context()
	for _, name := range []string{"Zaid", "Adel", "Maha"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newCourier(name)))
	}

	all, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("Adel", all[0].Name())
	suite.Equal("Maha", all[1].Name())
	suite.Equal("Zaid", all[2].Name())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_UnknownID_NotFound() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_UnknownCourier_NotFound() {
	err := suite.repository.Update(suite.T().Context(), suite.newCourier("Omar"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) newCourier(name string, supervisors ...kernel.UUID) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), name, "+966 50 000 0001", time.Now())
	suite.Require().NoError(err)
	for _, supervisorID := range supervisors {
		_, err = c.AssignSupervisor(supervisorID, time.Now())
		suite.Require().NoError(err)
	}
	return c
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
