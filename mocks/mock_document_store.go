package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kolosaldash/internal/domain"
)

// MockDocumentStore is a mock implementation of port.DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) ListDocuments(ctx context.Context) (*domain.DocumentList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentList), args.Error(1)
}

func (m *MockDocumentStore) InfoDocuments(ctx context.Context, ids []string) (*domain.DocumentInfoResult, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentInfoResult), args.Error(1)
}

func (m *MockDocumentStore) RemoveDocuments(ctx context.Context, ids []string) (map[string]any, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockDocumentStore) AddDocuments(ctx context.Context, docs []domain.DocumentInput) (map[string]any, error) {
	args := m.Called(ctx, docs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
