package service

import (
	"context"

	"skaffolddemo/internal/model"
)

// Greeting is the fixed text returned by GET /hello.
const Greeting = "hello world"

// DemoService defines the use cases served by the demo endpoints.
type DemoService interface {
	// Hello returns the greeting text.
	Hello(ctx context.Context) string

	// User returns the demo user record.
	User(ctx context.Context) model.Person
}

// demoService is a concrete implementation of DemoService. It holds no state,
// so a single instance is shared by every request.
type demoService struct{}

// NewDemoService constructs a new DemoService.
func NewDemoService() DemoService {
	return demoService{}
}

func (demoService) Hello(context.Context) string {
	return Greeting
}

func (demoService) User(context.Context) model.Person {
	return model.DemoUser()
}
