package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/ingest"
	"kolosaldash/internal/parser"
)

// MockIngestService is a mock implementation of service.IngestService.
type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) CreateRun() ingest.Snapshot {
	args := m.Called()
	return args.Get(0).(ingest.Snapshot)
}

func (m *MockIngestService) GetRun(id string) (*ingest.Snapshot, error) {
	args := m.Called(id)
	return snapshotArg(args, 0), args.Error(1)
}

func (m *MockIngestService) DiscardRun(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockIngestService) Configure(id string, settings ingest.Settings, src parser.Source) (*ingest.Snapshot, error) {
	args := m.Called(id, settings, src)
	return snapshotArg(args, 0), args.Error(1)
}

func (m *MockIngestService) Parse(ctx context.Context, id string) (*ingest.Snapshot, error) {
	args := m.Called(ctx, id)
	return snapshotArg(args, 0), args.Error(1)
}

func (m *MockIngestService) Chunk(ctx context.Context, id string) (*ingest.Snapshot, error) {
	args := m.Called(ctx, id)
	return snapshotArg(args, 0), args.Error(1)
}

func (m *MockIngestService) Process(ctx context.Context, id string) (*ingest.Snapshot, error) {
	args := m.Called(ctx, id)
	return snapshotArg(args, 0), args.Error(1)
}

func (m *MockIngestService) BeginEdit(id, chunkID string) (*ingest.Snapshot, error) {
	args := m.Called(id, chunkID)
	return snapshotArg(args, 0), args.Error(1)
}

func (m *MockIngestService) SaveEdit(id, chunkID, text, metadataJSON string) (*ingest.Snapshot, error) {
	args := m.Called(id, chunkID, text, metadataJSON)
	return snapshotArg(args, 0), args.Error(1)
}

func (m *MockIngestService) CancelEdit(id, chunkID string) (*ingest.Snapshot, error) {
	args := m.Called(id, chunkID)
	return snapshotArg(args, 0), args.Error(1)
}

func (m *MockIngestService) DeleteChunk(id, chunkID string) (*ingest.Snapshot, error) {
	args := m.Called(id, chunkID)
	return snapshotArg(args, 0), args.Error(1)
}

func (m *MockIngestService) Commit(ctx context.Context, id string) (*ingest.CommitResult, *ingest.Snapshot, error) {
	args := m.Called(ctx, id)
	var result *ingest.CommitResult
	if args.Get(0) != nil {
		result = args.Get(0).(*ingest.CommitResult)
	}
	return result, snapshotArg(args, 1), args.Error(2)
}

func (m *MockIngestService) ParseDocument(ctx context.Context, src parser.Source, docType domain.DocumentType, p domain.ParserType) (*domain.ParsedDocument, error) {
	args := m.Called(ctx, src, docType, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedDocument), args.Error(1)
}

func (m *MockIngestService) ChunkText(ctx context.Context, text string, method domain.ChunkingMethod, threshold float64, metadata map[string]any) ([]domain.Chunk, error) {
	args := m.Called(ctx, text, method, threshold, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chunk), args.Error(1)
}

func (m *MockIngestService) AddDocuments(ctx context.Context, docs []domain.DocumentInput) (map[string]any, error) {
	args := m.Called(ctx, docs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func snapshotArg(args mock.Arguments, i int) *ingest.Snapshot {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*ingest.Snapshot)
}
