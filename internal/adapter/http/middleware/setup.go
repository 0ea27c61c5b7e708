package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup installs the full chain. RequestID runs first so the access log and
// the panic log both carry the correlation ID; Recover runs innermost so a
// panicking handler still produces a logged 500 with the ID attached.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(AccessLog(log))
	e.Use(Recover(log))
}
