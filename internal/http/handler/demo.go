package handler

import (
	"github.com/gofiber/fiber/v2"

	"skaffolddemo/internal/service"
)

// Hello godoc
// @Summary Greeting
// @Produce plain
// @Success 200 {string} string "hello world"
// @Router /hello [get]
func Hello(svc service.DemoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(svc.Hello(c.UserContext()))
	}
}

// User godoc
// @Summary Demo user record
// @Produce json
// @Success 200 {object} model.Person
// @Router /user [get]
func User(svc service.DemoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.User(c.UserContext()))
	}
}
