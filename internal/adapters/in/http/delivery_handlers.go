package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetPool handles GET /api/v1/deliveries/pool.
// Every worker sees the same pool, oldest first.
func (s *Server) GetPool(ctx echo.Context) error {
	pool, err := s.getPoolHandler.Handle(ctx.Request().Context(), queries.NewGetPoolQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]deliveryResponse, 0, len(pool))
	for _, d := range pool {
		response = append(response, deliveryResponse{
			ID:         d.ID.String(),
			InvoiceRef: d.InvoiceRef,
			Items:      toItemResponses(d.Items),
			Status:     "Pooled",
			CreatedAt:  d.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyDeliveries handles GET /api/v1/deliveries/mine.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	actorID, err := workerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetMyDeliveriesQuery(actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveries, err := s.getMyDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	workerStr := actorID.String()
	response := make([]deliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		resp := deliveryResponse{
			ID:         d.ID.String(),
			InvoiceRef: d.InvoiceRef,
			Items:      toItemResponses(d.Items),
			Status:     d.Status.String(),
			WorkerID:   &workerStr,
			ClaimedAt:  d.ClaimedAt,
			CreatedAt:  d.CreatedAt,
		}
		if d.VehicleID != nil {
			v := d.VehicleID.String()
			resp.VehicleID = &v
		}
		response = append(response, resp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDelivery handles POST /api/v1/deliveries.
// Ingests one external invoice into the pool.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req createDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	items := make([]commands.ItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemSpec{
			SKU:      item.SKU,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	cmd, err := commands.NewCreateDeliveryCommand(req.InvoiceRef, items)
	if err != nil {
		return writeError(ctx, err)
	}

	d, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDeliveryResponse(d))
}

// ClaimDelivery handles POST /api/v1/deliveries/:id/claim.
func (s *Server) ClaimDelivery(ctx echo.Context) error {
	actorID, err := workerID(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req claimRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "vehicleId must be a UUID")
	}

	cmd, err := commands.NewClaimDeliveryCommand(deliveryID, vehicleID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	d, err := s.claimHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(d))
}

// StartRoute handles POST /api/v1/deliveries/:id/start.
func (s *Server) StartRoute(ctx echo.Context) error {
	actorID, err := workerID(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartRouteCommand(deliveryID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	d, err := s.startRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(d))
}

// DelayDelivery handles POST /api/v1/deliveries/:id/delay.
func (s *Server) DelayDelivery(ctx echo.Context) error {
	actorID, err := workerID(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req delayRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewDelayDeliveryCommand(deliveryID, actorID, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	d, err := s.delayHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(d))
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	actorID, err := workerID(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req completeRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, actorID, req.Notes, req.PhotoProofURL)
	if err != nil {
		return writeError(ctx, err)
	}

	d, err := s.completeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(d))
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel.
// Administrative override from the operations console.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	actorID, err := workerID(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req cancelRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, actorID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	d, err := s.cancelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(d))
}

// ArchiveDelivery handles POST /api/v1/deliveries/:id/archive.
func (s *Server) ArchiveDelivery(ctx echo.Context) error {
	deliveryID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewArchiveDeliveryCommand(deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	d, err := s.archiveHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(d))
}

// GetDeliveryLog handles GET /api/v1/deliveries/:id/log.
func (s *Server) GetDeliveryLog(ctx echo.Context) error {
	deliveryID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryLogQuery(deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getDeliveryLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]logEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp := logEntryResponse{
			ID:            entry.ID.String(),
			EventType:     entry.EventType.String(),
			Notes:         entry.Notes,
			PhotoProofURL: entry.PhotoProofURL,
			CreatedBy:     entry.CreatedBy.String(),
			CreatedAt:     entry.CreatedAt,
		}
		if entry.Status != nil {
			statusStr := entry.Status.String()
			resp.Status = &statusStr
		}
		response = append(response, resp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// EditDeliveryLog handles PATCH /api/v1/delivery-logs/:id.
func (s *Server) EditDeliveryLog(ctx echo.Context) error {
	actorID, err := workerID(ctx)
	if err != nil {
		return err
	}

	entryID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req editLogRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewEditDeliveryLogCommand(entryID, actorID, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	entry, err := s.editLogHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := logEntryResponse{
		ID:            entry.ID().String(),
		EventType:     entry.Type().String(),
		Notes:         entry.Value().Notes,
		PhotoProofURL: entry.Value().PhotoProofURL,
		CreatedBy:     entry.CreatedBy().String(),
		CreatedAt:     entry.CreatedAt(),
	}
	if status := entry.Value().Status; status != nil {
		statusStr := status.String()
		resp.Status = &statusStr
	}

	return ctx.JSON(http.StatusOK, resp)
}
