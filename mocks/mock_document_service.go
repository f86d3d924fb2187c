package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kolosaldash/internal/domain"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context) (*domain.DocumentList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentList), args.Error(1)
}

func (m *MockDocumentService) Info(ctx context.Context, ids []string) (*domain.DocumentInfoResult, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentInfoResult), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, ids []string) (map[string]any, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockDocumentService) Page(ctx context.Context, page int) (*domain.DocumentPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentPage), args.Error(1)
}

func (m *MockDocumentService) Export(ctx context.Context) (*domain.DocumentExport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentExport), args.Error(1)
}
