package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kolosaldash/internal/domain"
)

// MockRetrieveService is a mock implementation of service.RetrieveService.
type MockRetrieveService struct {
	mock.Mock
}

func (m *MockRetrieveService) Retrieve(ctx context.Context, query string, limit int, scoreThreshold float64) (*domain.RetrieveResult, error) {
	args := m.Called(ctx, query, limit, scoreThreshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RetrieveResult), args.Error(1)
}
