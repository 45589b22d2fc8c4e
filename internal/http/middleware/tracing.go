package middleware

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

// untracedPaths are probe and scrape endpoints that would only add noise to traces.
var untracedPaths = map[string]struct{}{
	MetricsPath: {},
	"/healthz":  {},
	"/health":   {},
}

// Tracing starts a server span per request using the global tracer provider.
func Tracing() fiber.Handler {
	return otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			_, skip := untracedPaths[c.Path()]
			return skip
		}),
	)
}
