package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kolosaldash/internal/domain"
)

// MockEngineService is a mock implementation of service.EngineService.
type MockEngineService struct {
	mock.Mock
}

func (m *MockEngineService) Status(ctx context.Context) (*domain.InferenceStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InferenceStatus), args.Error(1)
}

func (m *MockEngineService) AddModel(ctx context.Context, req domain.AddModelRequest) (map[string]any, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockEngineService) RemoveModel(ctx context.Context, engineID string) error {
	args := m.Called(ctx, engineID)
	return args.Error(0)
}
