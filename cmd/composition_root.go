package cmd

import (
	"log/slog"

	httpadapter "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/redis/graphcache"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"
	"orderflow/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	metrics    *metrics.Metrics
	origin     services.OriginKey
	uowFactory ports.UnitOfWorkFactory
}

// NewCompositionRoot wires the application. cache is optional; when set, graph reads of
// every unit of work go through it.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, cache *graphcache.Cache, logger *slog.Logger) (*CompositionRoot, error) {
	origin, err := services.ParseOriginKey(cfg.RoutingOverrideOrigin)
	if err != nil {
		return nil, err
	}

	var uowFactory ports.UnitOfWorkFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	if cache != nil {
		uowFactory = cache.UnitOfWorkFactory(uowFactory)
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		metrics:    metrics.New(),
		origin:     origin,
		uowFactory: uowFactory,
	}, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateApproveOrdersCommandHandler() commands.ApproveOrdersCommandHandler {
	return commands.NewApproveOrdersCommandHandler(c.orderUoWFactory(), c.origin)
}

func (c *CompositionRoot) CreateRejectOrdersCommandHandler() commands.RejectOrdersCommandHandler {
	return commands.NewRejectOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateScreenCommandHandler() commands.CreateScreenCommandHandler {
	return commands.NewCreateScreenCommandHandler(c.graphUoWFactory())
}

func (c *CompositionRoot) CreateCreateStepCommandHandler() commands.CreateStepCommandHandler {
	return commands.NewCreateStepCommandHandler(c.graphUoWFactory())
}

func (c *CompositionRoot) CreateCreateTransitionCommandHandler() commands.CreateTransitionCommandHandler {
	return commands.NewCreateTransitionCommandHandler(c.graphUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetScreenGraphQueryHandler() queries.GetScreenGraphQueryHandler {
	return queries.NewGetScreenGraphQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindDefaultTransitionViolationsQueryHandler() queries.FindDefaultTransitionViolationsQueryHandler {
	return queries.NewFindDefaultTransitionViolationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		ApproveOrders:    c.CreateApproveOrdersCommandHandler(),
		RejectOrders:     c.CreateRejectOrdersCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		CreateScreen:     c.CreateCreateScreenCommandHandler(),
		CreateStep:       c.CreateCreateStepCommandHandler(),
		CreateTransition: c.CreateCreateTransitionCommandHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetOrderHistory:  c.CreateGetOrderHistoryQueryHandler(),
		GetScreenGraph:   c.CreateGetScreenGraphQueryHandler(),
	}, c.logger, c.metrics)
}

func (c *CompositionRoot) CreateGraphIntegrityJob() *jobs.GraphIntegrityJob {
	return jobs.NewGraphIntegrityJob(
		c.CreateFindDefaultTransitionViolationsQueryHandler(),
		c.metrics,
		c.cfg.AuditSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGraphIntegrityJob())
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) graphUoWFactory() commands.GraphUoWFactory {
	return FuncGraphUoWFactory(func() commands.GraphUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncGraphUoWFactory func() commands.GraphUoW

func (f FuncGraphUoWFactory) Create() commands.GraphUoW {
	return f()
}
