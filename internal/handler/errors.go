package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "labadmin/internal/errors"
	"labadmin/internal/logging"
)

// HTTPErrorHandler renders every error as {"error": "..."}. Errors that are
// not *echo.HTTPError are unexpected; they are logged and reported as a
// generic server error.
func HTTPErrorHandler(log logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := msgServerError

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		} else {
			log.Error(c.Request().Context(), "unhandled error", "err", err, "path", c.Path())
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, apperrors.ErrorResponse{Error: msg})
		}
		if err != nil {
			log.Error(c.Request().Context(), "write error response", "err", err)
		}
	}
}

// fail maps err with msgs and returns it as an echo error. Server errors are
// logged with op; their cause never reaches the client.
func fail(c echo.Context, log logging.Logger, op string, err error, msgs apperrors.Messages) error {
	httpErr := apperrors.MapErrorToHTTP(err, msgs)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Error(c.Request().Context(), op, "err", err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
}
