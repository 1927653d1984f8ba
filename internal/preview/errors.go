package preview

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/taigram/docs-theme/internal/component"
	"github.com/taigram/docs-theme/internal/i18n"
	"github.com/taigram/docs-theme/internal/middleware"
)

// setupErrorHandling installs the central error handler. Precondition
// failures from a component become 400s; anything else is logged with a
// stack trace and becomes a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		case errors.Is(err, component.ErrMissingSlug),
			errors.Is(err, component.ErrMissingConfig),
			errors.Is(err, i18n.ErrUnknownLocale):
			code = http.StatusBadRequest
			message = err.Error()
		default:
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if code < http.StatusInternalServerError {
			slog.Debug("Request failed", "status", code, "error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.String(code, message)
	}
}
