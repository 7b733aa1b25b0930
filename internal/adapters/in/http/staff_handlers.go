package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// GetAvailableVehicles handles GET /api/v1/vehicles/available.
func (s *Server) GetAvailableVehicles(ctx echo.Context) error {
	vehicles, err := s.getAvailableVehiclesHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetAvailableVehiclesQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]vehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		response = append(response, vehicleResponse{
			ID:   v.ID.String(),
			Name: v.Name,
			Type: v.Type.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddVehicle handles POST /api/v1/vehicles.
func (s *Server) AddVehicle(ctx echo.Context) error {
	var req addVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	vtype, err := vehicle.TypeFromString(req.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddVehicleCommand(req.Name, vtype)
	if err != nil {
		return writeError(ctx, err)
	}

	v, err := s.addVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, vehicleResponse{
		ID:   v.ID().String(),
		Name: v.Name(),
		Type: v.Type().String(),
	})
}

// AddWorker handles POST /api/v1/workers.
func (s *Server) AddWorker(ctx echo.Context) error {
	var req addWorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAddWorkerCommand(req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	w, err := s.addWorkerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, workerResponse{
		ID:     w.ID().String(),
		Name:   w.Name(),
		Active: w.IsActive(),
	})
}

// CheckIn handles POST /api/v1/attendance/check-in.
// Idempotent per calendar day.
func (s *Server) CheckIn(ctx echo.Context) error {
	actorID, err := workerID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCheckInCommand(actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.checkInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAttendanceResponse(record))
}

// CheckOut handles POST /api/v1/attendance/check-out.
func (s *Server) CheckOut(ctx echo.Context) error {
	actorID, err := workerID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCheckOutCommand(actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.checkOutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAttendanceResponse(record))
}

// GetNotifications handles GET /api/v1/notifications.
// Listing the feed acknowledges its unread items.
func (s *Server) GetNotifications(ctx echo.Context) error {
	actorID, err := workerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetNotificationsQuery(actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	feed, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := notificationsResponse{
		Items:       make([]notificationResponse, 0, len(feed.Items)),
		UnreadCount: feed.UnreadCount,
	}
	for _, item := range feed.Items {
		response.Items = append(response.Items, notificationResponse{
			ID:        item.ID.String(),
			Message:   item.Message,
			CreatedAt: item.CreatedAt,
			Read:      item.Read,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
