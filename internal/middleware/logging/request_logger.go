package loggingmw

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/autoshowroom/backend/internal/logging"
)

// RequestLogger stores a request-scoped logger in the request context and
// logs one line per request. Handler errors are rendered before logging so
// the logged status is the one the client saw.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		HandleError:     true,
		LogStatus:       true,
		LogLatency:      true,
		LogError:        true,
		LogResponseSize: true,
		BeforeNextFunc: func(c echo.Context) {
			l := scoped(base, c)
			c.SetRequest(c.Request().WithContext(logging.IntoContext(c.Request().Context(), l)))
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			l := logging.FromContext(c.Request().Context())
			attrs := []any{"status", v.Status, "duration_ms", v.Latency.Milliseconds()}
			switch {
			case v.Status >= 500:
				if v.Error != nil {
					attrs = append(attrs, "error", v.Error.Error())
				}
				l.Error("request completed", attrs...)
			case v.Status >= 400:
				l.Warn("request completed", attrs...)
			default:
				l.Info("request completed", append(attrs, "bytes", v.ResponseSize)...)
			}
			return nil
		},
	})
}

func scoped(base *slog.Logger, c echo.Context) *slog.Logger {
	req := c.Request()
	l := base.With(
		"method", req.Method,
		"path", c.Path(),
		"url", req.URL.Path,
		"remote_ip", c.RealIP(),
		"user_agent", req.UserAgent(),
	)
	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	if rid == "" {
		rid = req.Header.Get(echo.HeaderXRequestID)
	}
	if rid != "" {
		l = l.With("request_id", rid)
	}
	return l
}
