package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Use case ports of the Server. The command and query handlers satisfy them.
type (
	OrderApprover interface {
		Handle(ctx context.Context, cmd commands.ApproveOrdersCommand) ([]*order.Order, error)
	}
	OrderRejecter interface {
		Handle(ctx context.Context, cmd commands.RejectOrdersCommand) (int, error)
	}
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ScreenCreator interface {
		Handle(ctx context.Context, cmd commands.CreateScreenCommand) (*workflow.Screen, error)
	}
	StepCreator interface {
		Handle(ctx context.Context, cmd commands.CreateStepCommand) (*workflow.Step, error)
	}
	TransitionCreator interface {
		Handle(ctx context.Context, cmd commands.CreateTransitionCommand) (*workflow.Transition, error)
	}
	OrdersLister interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error)
	}
	OrderHistoryReader interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.GetOrderHistoryQueryResponse, error)
	}
	ScreenGraphReader interface {
		Handle(ctx context.Context, query queries.GetScreenGraphQuery) (queries.GetScreenGraphQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	ApproveOrders    OrderApprover
	RejectOrders     OrderRejecter
	CreateOrder      OrderCreator
	CreateScreen     ScreenCreator
	CreateStep       StepCreator
	CreateTransition TransitionCreator
	GetOrders        OrdersLister
	GetOrderHistory  OrderHistoryReader
	GetScreenGraph   ScreenGraphReader
}

// Server translates HTTP requests into commands and queries and their results into JSON.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewServer(handlers Handlers, logger *slog.Logger, m *metrics.Metrics) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
		metrics:  m,
	}
}

// NewEcho creates an echo instance with every route registered. Requests to the API are
// checked against the OpenAPI document first, then bound and validated by the handlers.
func NewEcho(s *Server) (*echo.Echo, error) {
	doc, err := OpenAPI()
	if err != nil {
		return nil, err
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to route the OpenAPI document: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.Use(s.validateRequests(router))
	s.RegisterRoutes(e)
	return e, nil
}

func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/approve", s.ApproveOrders)
	api.POST("/orders/reject", s.RejectOrders)
	api.GET("/orders/:id/history", s.GetOrderHistory)

	api.POST("/screens", s.CreateScreen)
	api.POST("/screens/:id/steps", s.CreateStep)
	api.POST("/screens/:id/transitions", s.CreateTransition)
	api.GET("/screens/:id/graph", s.GetScreenGraph)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// bind decodes and validates the request body into req.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}
