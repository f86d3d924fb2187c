package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kolosaldash/internal/domain"
)

// MockRetriever is a mock implementation of port.Retriever.
type MockRetriever struct {
	mock.Mock
}

func (m *MockRetriever) Retrieve(ctx context.Context, q domain.RetrieveQuery) ([]domain.RetrievedDocument, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RetrievedDocument), args.Error(1)
}

// MockModelManager is a mock implementation of port.ModelManager.
type MockModelManager struct {
	mock.Mock
}

func (m *MockModelManager) Status(ctx context.Context) (*domain.InferenceStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InferenceStatus), args.Error(1)
}

func (m *MockModelManager) AddModel(ctx context.Context, req domain.AddModelRequest) (map[string]any, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockModelManager) RemoveModel(ctx context.Context, engineID string) error {
	args := m.Called(ctx, engineID)
	return args.Error(0)
}

// MockHealthChecker is a mock implementation of port.HealthChecker.
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Health(ctx context.Context) (*domain.ServiceStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceStatus), args.Error(1)
}
