// Package http is the REST and WebSocket binding of the marketplace. Handlers
// decode requests into commands and queries, run them as the authenticated
// actor and render the results; every failure goes through NewErrorHandler.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/core/application/fleet"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers groups every use case the server exposes.
type Handlers struct {
	// Command handlers
	CreateCourier     commands.CreateCourierCommandHandler
	DeleteCourier     commands.DeleteCourierCommandHandler
	SetAssignment     commands.SetAssignmentCommandHandler
	SetAvailability   commands.SetAvailabilityCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	AssignCourier     commands.AssignCourierCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	Checkout          commands.CheckoutCommandHandler
	CreatePrize       commands.CreatePrizeCommandHandler
	UpdatePrize       commands.UpdatePrizeCommandHandler
	SpinPrize         commands.SpinPrizeCommandHandler

	// Query handlers
	ListCouriers    queries.ListCouriersQueryHandler
	ListOrders      queries.ListOrdersQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	Quote           queries.QuoteQueryHandler
	ListPrizes      queries.ListPrizesQueryHandler
	ListPrizeGrants queries.ListPrizeGrantsQueryHandler
}

// Recorder receives request and business outcome metrics.
type Recorder interface {
	ObserveHTTP(method, path string, status int, elapsed time.Duration)
	CheckoutFinished(result string)
	SpinFinished(result string)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	hub      *fleet.Hub
	auth     *Authenticator
	recorder Recorder
	logger   *slog.Logger
}

func NewServer(handlers Handlers, hub *fleet.Hub, auth *Authenticator, recorder Recorder, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		hub:      hub,
		auth:     auth,
		recorder: recorder,
		logger:   logger.With("component", "http_server"),
	}
}

// Register installs the middleware chain and every API route on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = NewErrorHandler(s.logger)
	e.Use(middleware.Recover())
	e.Use(s.observe)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", s.auth.Middleware())

	api.GET("/couriers", s.ListCouriers)
	api.POST("/couriers", s.CreateCourier)
	api.DELETE("/couriers/:id", s.DeleteCourier)
	api.PUT("/couriers/:id/supervisors/:supervisorId", s.AddSupervisor)
	api.DELETE("/couriers/:id/supervisors/:supervisorId", s.RemoveSupervisor)
	api.PUT("/couriers/:id/availability", s.SetAvailability)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/assign", s.AssignCourier)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)

	api.POST("/checkout/quote", s.QuoteCheckout)
	api.POST("/checkout", s.Checkout)

	api.GET("/prizes", s.ListPrizes)
	api.POST("/prizes", s.CreatePrize)
	api.PATCH("/prizes/:id", s.UpdatePrize)
	api.POST("/prizes/spin", s.SpinPrize)
	api.GET("/prizes/grants", s.ListPrizeGrants)

	api.GET("/fleet/live", s.FleetSnapshot)
	api.POST("/fleet/pings", s.PostPing)
	api.GET("/fleet/ws", s.FleetLive)
}

// observe records metrics and a log line per request. The route pattern is
// used as the path label.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		elapsed := time.Since(start)
		status := c.Response().Status
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		s.recorder.ObserveHTTP(c.Request().Method, path, status, elapsed)
		s.logger.Debug("http request",
			"method", c.Request().Method,
			"path", path,
			"status", status,
			"duration", elapsed,
		)
		return nil
	}
}
