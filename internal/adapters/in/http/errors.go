package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain and application errors onto HTTP statuses.
//
// Contention losses are 409: the request was well formed, somebody else just
// got there first. Authorization failures are 403, temporal and invalid-state
// rejections 422, unknown objects 404, malformed input 400.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Internal error"

	switch {
	case errors.Is(err, commands.ErrDeliveryAlreadyClaimed):
		code = http.StatusConflict
		message = "Delivery already claimed by another worker"
	case errors.Is(err, commands.ErrVehicleUnavailable):
		code = http.StatusConflict
		message = "Vehicle no longer available, pick another"
	case errors.Is(err, services.ErrWorkerNotEligible):
		code = http.StatusForbidden
		message = "Worker is not eligible to claim"
	case errors.Is(err, delivery.ErrNotOwner):
		code = http.StatusForbidden
		message = "Delivery is owned by another worker"
	case errors.Is(err, deliverylog.ErrNotAuthor):
		code = http.StatusForbidden
		message = "Log entries can only be edited by their author"
	case errors.Is(err, deliverylog.ErrEditWindowExpired):
		code = http.StatusUnprocessableEntity
		message = "Edit window has expired"
	case errors.Is(err, delivery.ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
		message = "Transition not allowed from the current status"
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		code = http.StatusUnprocessableEntity
		message = "Already checked out for today"
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		code = http.StatusUnprocessableEntity
		message = "Check-out must come after check-in"
	case errors.Is(err, commands.ErrNotCheckedIn):
		code = http.StatusUnprocessableEntity
		message = "Worker has not checked in today"
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
