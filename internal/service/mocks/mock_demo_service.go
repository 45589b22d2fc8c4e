package mocks

import (
	"context"

	"skaffolddemo/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDemoService struct {
	mock.Mock
}

func (m *MockDemoService) Hello(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockDemoService) User(ctx context.Context) model.Person {
	args := m.Called(ctx)
	return args.Get(0).(model.Person)
}
