package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError translates a use case error into an HTTP response. The
// mapping is by error class, never by message text.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAuthorizationDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	case errors.Is(err, queries.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal server error"
		ctx.Logger().Error(err)
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// badRequest reports a malformed request body or parameter.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
