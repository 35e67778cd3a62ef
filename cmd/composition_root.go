package cmd

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/fleet"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	publisher  ports.EventPublisher
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	scope      services.ScopeResolver
	fee        kernel.Money
	hub        *fleet.Hub
}

// NewCompositionRoot wires the object graph. Events go to Kafka when brokers
// are configured and to the log otherwise.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, reg prometheus.Registerer, logger *slog.Logger) (*CompositionRoot, error) {
	fee, err := kernel.NewMoney(cfg.DeliveryFeeMinor)
	if err != nil {
		return nil, err
	}

	var publisher ports.EventPublisher = kafka.NewLogPublisher(logger)
	if len(cfg.KafkaBrokers) > 0 {
		p, err := kafka.Dial(cfg.KafkaBrokers, cfg.KafkaOrderEventsTopic, cfg.KafkaClientID, logger)
		if err != nil {
			return nil, err
		}
		publisher = p
	}

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		publisher:  publisher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		metrics:    metrics.New(reg),
		scope:      services.NewScopeResolver(),
		fee:        fee,
	}

	c.hub = fleet.NewHub(
		FuncRoster(func(ctx context.Context) ([]*courier.Courier, error) {
			return c.uowFactory.Create().CourierRepository().GetAll(ctx)
		}),
		c.scope,
		c.metrics,
		logger,
		fleet.Config{
			Staleness:    cfg.LocationStaleness,
			MaxClockSkew: cfg.LocationMaxSkew,
			BufferSize:   cfg.FleetBufferSize,
		},
	)

	return c, nil
}

func (c *CompositionRoot) Hub() *fleet.Hub {
	return c.hub
}

// Close releases the event publisher.
func (c *CompositionRoot) Close() error {
	if p, ok := c.publisher.(*kafka.Publisher); ok {
		return p.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateServer(secret string) *httpin.Server {
	return httpin.NewServer(c.CreateHandlers(), c.hub, httpin.NewAuthenticator(secret), c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	presence := jobs.NewPresenceSweepJob(c.hub, c.metrics, c.cfg.PresenceSweepSpec, c.logger)
	backlog := jobs.NewOrderBacklogJob(
		c.uowFactory.Create().OrderRepository(),
		c.metrics,
		c.cfg.BacklogSpec,
		c.cfg.BacklogTimeout,
		c.logger,
	)
	return jobs.NewJobManager(presence, backlog)
}

func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateCourier:     c.CreateCreateCourierCommandHandler(),
		DeleteCourier:     c.CreateDeleteCourierCommandHandler(),
		SetAssignment:     c.CreateSetAssignmentCommandHandler(),
		SetAvailability:   c.CreateSetAvailabilityCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrder:       c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		AssignCourier:     c.CreateAssignCourierCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		Checkout:          c.CreateCheckoutCommandHandler(),
		CreatePrize:       c.CreateCreatePrizeCommandHandler(),
		UpdatePrize:       c.CreateUpdatePrizeCommandHandler(),
		SpinPrize:         c.CreateSpinPrizeCommandHandler(),

		ListCouriers:    queries.NewListCouriersQueryHandler(c.gormDB, c.scope),
		ListOrders:      queries.NewListOrdersQueryHandler(c.gormDB, c.scope),
		GetOrder:        queries.NewGetOrderQueryHandler(c.gormDB, c.scope),
		Quote:           queries.NewQuoteQueryHandler(c.gormDB, c.splitter()),
		ListPrizes:      queries.NewListPrizesQueryHandler(c.gormDB),
		ListPrizeGrants: queries.NewListPrizeGrantsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory(), c.scope)
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() commands.DeleteCourierCommandHandler {
	return commands.NewDeleteCourierCommandHandler(c.courierUoWFactory(), c.scope, c.hub)
}

func (c *CompositionRoot) CreateSetAssignmentCommandHandler() commands.SetAssignmentCommandHandler {
	return commands.NewSetAssignmentCommandHandler(c.courierUoWFactory(), c.scope, c.hub)
}

func (c *CompositionRoot) CreateSetAvailabilityCommandHandler() commands.SetAvailabilityCommandHandler {
	return commands.NewSetAvailabilityCommandHandler(c.courierUoWFactory(), c.scope, c.hub)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactoryFunc(), c.assigner(), c.fee)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.uowFactoryFunc(), c.scope, c.assigner())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.scope)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.uowFactoryFunc(), c.assigner())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.scope)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.splitter(), c.cfg.CheckoutTimeout)
}

func (c *CompositionRoot) CreateCreatePrizeCommandHandler() commands.CreatePrizeCommandHandler {
	return commands.NewCreatePrizeCommandHandler(c.prizeUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePrizeCommandHandler() commands.UpdatePrizeCommandHandler {
	return commands.NewUpdatePrizeCommandHandler(c.prizeUoWFactory())
}

func (c *CompositionRoot) CreateSpinPrizeCommandHandler() commands.SpinPrizeCommandHandler {
	seed := uint64(time.Now().UnixNano())
	selector := services.NewPrizeSelector(rand.New(rand.NewPCG(seed, seed>>1)))
	return commands.NewSpinPrizeCommandHandler(c.prizeUoWFactory(), selector)
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) prizeUoWFactory() commands.PrizeUoWFactory {
	return FuncPrizeUoWFactory(func() commands.PrizeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assigner() services.OrderAssigner {
	return services.NewOrderAssigner(c.scope)
}

func (c *CompositionRoot) splitter() services.BundleSplitter {
	return services.NewBundleSplitter(c.fee)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncPrizeUoWFactory func() commands.PrizeUoW

func (f FuncPrizeUoWFactory) Create() commands.PrizeUoW {
	return f()
}

// FuncRoster adapts a function to fleet.Roster.
type FuncRoster func(ctx context.Context) ([]*courier.Courier, error)

func (f FuncRoster) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	return f(ctx)
}
