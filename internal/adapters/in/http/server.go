// Package http is the inbound HTTP adapter. It binds echo routes to the
// command and query handlers, carrying the worker session as an explicit
// X-Worker-ID header value into every operation that needs an actor.
package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// workerHeader carries the caller's worker identity. There is no ambient
// session: every request names its actor explicitly.
const workerHeader = "X-Worker-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	claimHandler          commands.ClaimDeliveryCommandHandler
	startRouteHandler     commands.StartRouteCommandHandler
	delayHandler          commands.DelayDeliveryCommandHandler
	completeHandler       commands.CompleteDeliveryCommandHandler
	cancelHandler         commands.CancelDeliveryCommandHandler
	archiveHandler        commands.ArchiveDeliveryCommandHandler
	checkInHandler        commands.CheckInCommandHandler
	checkOutHandler       commands.CheckOutCommandHandler
	editLogHandler        commands.EditDeliveryLogCommandHandler
	addVehicleHandler     commands.AddVehicleCommandHandler
	addWorkerHandler      commands.AddWorkerCommandHandler

	getPoolHandler              queries.GetPoolQueryHandler
	getMyDeliveriesHandler      queries.GetMyDeliveriesQueryHandler
	getAvailableVehiclesHandler queries.GetAvailableVehiclesQueryHandler
	getDeliveryLogHandler       queries.GetDeliveryLogQueryHandler
	getNotificationsHandler     queries.GetNotificationsQueryHandler
}

// ServerHandlers bundles the use case handlers the server depends on.
type ServerHandlers struct {
	CreateDelivery commands.CreateDeliveryCommandHandler
	Claim          commands.ClaimDeliveryCommandHandler
	StartRoute     commands.StartRouteCommandHandler
	Delay          commands.DelayDeliveryCommandHandler
	Complete       commands.CompleteDeliveryCommandHandler
	Cancel         commands.CancelDeliveryCommandHandler
	Archive        commands.ArchiveDeliveryCommandHandler
	CheckIn        commands.CheckInCommandHandler
	CheckOut       commands.CheckOutCommandHandler
	EditLog        commands.EditDeliveryLogCommandHandler
	AddVehicle     commands.AddVehicleCommandHandler
	AddWorker      commands.AddWorkerCommandHandler

	GetPool              queries.GetPoolQueryHandler
	GetMyDeliveries      queries.GetMyDeliveriesQueryHandler
	GetAvailableVehicles queries.GetAvailableVehiclesQueryHandler
	GetDeliveryLog       queries.GetDeliveryLogQueryHandler
	GetNotifications     queries.GetNotificationsQueryHandler
}

// NewServer creates the HTTP server facade over the use case handlers.
func NewServer(h ServerHandlers) *Server {
	return &Server{
		createDeliveryHandler:       h.CreateDelivery,
		claimHandler:                h.Claim,
		startRouteHandler:           h.StartRoute,
		delayHandler:                h.Delay,
		completeHandler:             h.Complete,
		cancelHandler:               h.Cancel,
		archiveHandler:              h.Archive,
		checkInHandler:              h.CheckIn,
		checkOutHandler:             h.CheckOut,
		editLogHandler:              h.EditLog,
		addVehicleHandler:           h.AddVehicle,
		addWorkerHandler:            h.AddWorker,
		getPoolHandler:              h.GetPool,
		getMyDeliveriesHandler:      h.GetMyDeliveries,
		getAvailableVehiclesHandler: h.GetAvailableVehicles,
		getDeliveryLogHandler:       h.GetDeliveryLog,
		getNotificationsHandler:     h.GetNotifications,
	}
}

// RegisterRoutes wires the API surface onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/deliveries/pool", s.GetPool)
	api.GET("/deliveries/mine", s.GetMyDeliveries)
	api.POST("/deliveries", s.CreateDelivery)
	api.POST("/deliveries/:id/claim", s.ClaimDelivery)
	api.POST("/deliveries/:id/start", s.StartRoute)
	api.POST("/deliveries/:id/delay", s.DelayDelivery)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)
	api.POST("/deliveries/:id/cancel", s.CancelDelivery)
	api.POST("/deliveries/:id/archive", s.ArchiveDelivery)
	api.GET("/deliveries/:id/log", s.GetDeliveryLog)
	api.PATCH("/delivery-logs/:id", s.EditDeliveryLog)

	api.GET("/vehicles/available", s.GetAvailableVehicles)
	api.POST("/vehicles", s.AddVehicle)
	api.POST("/workers", s.AddWorker)

	api.POST("/attendance/check-in", s.CheckIn)
	api.POST("/attendance/check-out", s.CheckOut)

	api.GET("/notifications", s.GetNotifications)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// workerID extracts the caller's worker identity from the request header.
func workerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(workerHeader)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, workerHeader+" header is required")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, workerHeader+" header must be a UUID")
	}

	return id, nil
}

// pathID extracts a UUID path parameter.
func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, name+" must be a UUID")
	}
	return id, nil
}
