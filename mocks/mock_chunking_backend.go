package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"kolosaldash/internal/port"
)

// MockChunkingBackend is a mock implementation of port.ChunkingBackend.
type MockChunkingBackend struct {
	mock.Mock
}

func (m *MockChunkingBackend) Chunk(ctx context.Context, req port.ChunkRequest) ([]json.RawMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}
