package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-search-and-planning-system/internal/adapter/http/response"
)

// Recover converts handler panics into 500 responses so one bad search cannot
// take the server down. The panic value and stack are logged together with
// the request ID, and the client gets the same error body shape every other
// failure produces.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					msg := fmt.Sprintf("%v", r)
					if err, ok := r.(error); ok {
						msg = err.Error()
					}

					log.Error().
						Str("request_id", RequestIDFrom(c)).
						Str("panic", msg).
						Str("stack", string(debug.Stack())).
						Msg("panic recovered")

					if !c.Response().Committed {
						_ = response.InternalServerError(c)
					}
				}
			}()

			return next(c)
		}
	}
}
