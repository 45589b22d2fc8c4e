package handler

import "github.com/gofiber/fiber/v2"

// HealthCheck reports the service as healthy; there are no dependencies to probe.
func HealthCheck(serviceName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": serviceName,
		})
	}
}

// LivenessProbe answers 200 with an empty body.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
