package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator adapts go-playground/validator to echo's Validator interface.
// Binding a request then calling ctx.Validate runs the struct tags of the
// request DTOs.
type requestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the echo validator used by the server.
func NewRequestValidator() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
