package http

import (
	"errors"
	"net/http"

	"opsconsole/internal/core/application/usecases/commands"
	"opsconsole/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates a use-case error into an HTTP response.
// Anything not recognized as a domain error is reported as a 500 without
// leaking its message.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrAccessForbidden):
		return respond(ctx, http.StatusForbidden, err)
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		return respond(ctx, http.StatusUnprocessableEntity, err)
	case errors.Is(err, errs.ErrOrderStateConflict),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, commands.ErrCannotDeleteOwnAccount),
		errors.Is(err, commands.ErrOrderNumberExhausted):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func respond(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

// badRequest reports a malformed request before it reaches a use case.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
