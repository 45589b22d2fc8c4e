package handler

import (
	"github.com/gofiber/fiber/v2"

	"skaffolddemo/internal/service"
)

// RegisterRoutes attaches the demo and probe routes to the provided Fiber app.
// Routes are resolved once here; handlers stay free of business logic.
func RegisterRoutes(app *fiber.App, serviceName string, svc service.DemoService) {
	app.Get("/healthz", LivenessProbe())
	app.Get("/health", HealthCheck(serviceName))

	app.Get("/hello", Hello(svc))
	app.Get("/user", User(svc))
}
