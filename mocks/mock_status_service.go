package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kolosaldash/internal/domain"
)

// MockStatusService is a mock implementation of service.StatusService.
type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) Dashboard(ctx context.Context) *domain.DashboardStatus {
	args := m.Called(ctx)
	return args.Get(0).(*domain.DashboardStatus)
}
