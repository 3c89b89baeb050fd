package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// response is the uniform payload envelope. Every endpoint answers with it,
// success and failure alike, so clients can always read the same shape.
type response struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func ok(ctx echo.Context, message string, data any) error {
	return ctx.JSON(http.StatusOK, response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func created(ctx echo.Context, message string, data any) error {
	return ctx.JSON(http.StatusCreated, response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// fail maps a domain error to its HTTP status and wraps it in the envelope.
// Invariant violations mean a corrupted aggregate reached the boundary, so
// they are logged before the generic 500 goes out.
func fail(ctx echo.Context, err error) error {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err,
		)
	}

	return failWithStatus(ctx, status, err.Error())
}

func failWithStatus(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, response{
		Success:   false,
		Message:   "request failed",
		Error:     message,
		Timestamp: time.Now().UTC(),
	})
}

// statusForError translates the error taxonomy into HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrPreconditionFailed),
		errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
