package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusOf maps the error taxonomy onto HTTP statuses. A rolled-back bundle
// takes the status of its cause; one without a mapped cause is a 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, services.ErrCourierIsUnavailable),
		errors.Is(err, courier.ErrCourierIsDeleted):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, prize.ErrNoPrizesConfigured),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// NewErrorHandler renders every error as an Error body. Internal failures are
// logged and their detail withheld from the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			code    int
			message string
			he      *echo.HTTPError
		)
		if errors.As(err, &he) {
			code, message = he.Code, fmt.Sprint(he.Message)
		} else {
			code, message = statusOf(err), err.Error()
		}

		if code == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
			message = http.StatusText(code)
			if errors.Is(err, errs.ErrBundleRolledBack) {
				message = "checkout failed and was rolled back"
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, Error{Code: code, Message: message})
	}
}
