// Package middleware carries the cross-cutting HTTP concerns of the planning
// API: request correlation, access logging and panic containment.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID is the correlation header honoured on incoming requests
// and echoed on every response.
const HeaderRequestID = "X-Request-ID"

const contextKeyRequestID = "request_id"

// RequestID tags every request with a correlation ID. A caller-supplied
// X-Request-ID is kept so a gateway in front of the API can trace a search
// across services; otherwise a fresh UUID is issued.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(contextKeyRequestID, id)
			c.Response().Header().Set(HeaderRequestID, id)
			return next(c)
		}
	}
}

// RequestIDFrom returns the correlation ID tagged on the context, or an empty
// string outside the middleware chain.
func RequestIDFrom(c echo.Context) string {
	id, _ := c.Get(contextKeyRequestID).(string)
	return id
}
