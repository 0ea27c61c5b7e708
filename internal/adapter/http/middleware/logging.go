package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// quietPath reports whether a path is health-check or documentation traffic
// whose access logs would drown out the planning endpoints.
func quietPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/swagger")
}

// AccessLog writes one line per request once the handler chain finishes.
// 5xx responses log at error level and 4xx at warn, so inventory trouble and
// client mistakes separate cleanly in the stream.
func AccessLog(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			if quietPath(req.URL.Path) {
				return nil
			}

			res := c.Response()
			var event *zerolog.Event
			switch {
			case res.Status >= 500:
				event = log.Error()
			case res.Status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", RequestIDFrom(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Msg("request completed")

			return nil
		}
	}
}
