package service

import (
	"context"
	"fmt"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/ingest"
	"kolosaldash/internal/parser"
	"kolosaldash/internal/port"
)

// IngestService exposes ingestion runs by ID along with the single-shot
// parse, chunk and add-documents operations.
type IngestService interface {
	CreateRun() ingest.Snapshot
	GetRun(id string) (*ingest.Snapshot, error)
	DiscardRun(id string) error
	Configure(id string, settings ingest.Settings, src parser.Source) (*ingest.Snapshot, error)
	Parse(ctx context.Context, id string) (*ingest.Snapshot, error)
	Chunk(ctx context.Context, id string) (*ingest.Snapshot, error)
	Process(ctx context.Context, id string) (*ingest.Snapshot, error)
	BeginEdit(id, chunkID string) (*ingest.Snapshot, error)
	SaveEdit(id, chunkID, text, metadataJSON string) (*ingest.Snapshot, error)
	CancelEdit(id, chunkID string) (*ingest.Snapshot, error)
	DeleteChunk(id, chunkID string) (*ingest.Snapshot, error)
	Commit(ctx context.Context, id string) (*ingest.CommitResult, *ingest.Snapshot, error)

	ParseDocument(ctx context.Context, src parser.Source, docType domain.DocumentType, p domain.ParserType) (*domain.ParsedDocument, error)
	ChunkText(ctx context.Context, text string, method domain.ChunkingMethod, threshold float64, metadata map[string]any) ([]domain.Chunk, error)
	AddDocuments(ctx context.Context, docs []domain.DocumentInput) (map[string]any, error)
}

type ingestService struct {
	store    *ingest.Store
	pipeline *ingest.Pipeline
	parser   ingest.DocumentParser
	chunker  *ingest.Chunker
	docs     port.DocumentStore
}

// NewIngestService creates a new IngestService implementation.
func NewIngestService(store *ingest.Store, p ingest.DocumentParser, chunker *ingest.Chunker, committer *ingest.Committer, docs port.DocumentStore) IngestService {
	return &ingestService{
		store:    store,
		pipeline: ingest.NewPipeline(p, chunker, committer),
		parser:   p,
		chunker:  chunker,
		docs:     docs,
	}
}

func (s *ingestService) CreateRun() ingest.Snapshot {
	return s.store.Create().Snapshot()
}

func (s *ingestService) GetRun(id string) (*ingest.Snapshot, error) {
	run, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return snapshot(run), nil
}

func (s *ingestService) DiscardRun(id string) error {
	return s.store.Delete(id)
}

func (s *ingestService) Configure(id string, settings ingest.Settings, src parser.Source) (*ingest.Snapshot, error) {
	return s.withRun(id, func(run *ingest.Run) error {
		return s.pipeline.Configure(run, settings, src)
	})
}

func (s *ingestService) Parse(ctx context.Context, id string) (*ingest.Snapshot, error) {
	return s.withRun(id, func(run *ingest.Run) error {
		_, err := s.pipeline.Parse(ctx, run)
		return err
	})
}

func (s *ingestService) Chunk(ctx context.Context, id string) (*ingest.Snapshot, error) {
	return s.withRun(id, func(run *ingest.Run) error {
		_, err := s.pipeline.Chunk(ctx, run)
		return err
	})
}

func (s *ingestService) Process(ctx context.Context, id string) (*ingest.Snapshot, error) {
	return s.withRun(id, func(run *ingest.Run) error {
		_, err := s.pipeline.Process(ctx, run)
		return err
	})
}

func (s *ingestService) BeginEdit(id, chunkID string) (*ingest.Snapshot, error) {
	return s.withRun(id, func(run *ingest.Run) error {
		return run.BeginEdit(chunkID)
	})
}

func (s *ingestService) SaveEdit(id, chunkID, text, metadataJSON string) (*ingest.Snapshot, error) {
	return s.withRun(id, func(run *ingest.Run) error {
		return run.SaveEdit(chunkID, text, metadataJSON)
	})
}

func (s *ingestService) CancelEdit(id, chunkID string) (*ingest.Snapshot, error) {
	return s.withRun(id, func(run *ingest.Run) error {
		return run.CancelEdit(chunkID)
	})
}

func (s *ingestService) DeleteChunk(id, chunkID string) (*ingest.Snapshot, error) {
	return s.withRun(id, func(run *ingest.Run) error {
		return run.DeleteChunk(chunkID)
	})
}

func (s *ingestService) Commit(ctx context.Context, id string) (*ingest.CommitResult, *ingest.Snapshot, error) {
	var result *ingest.CommitResult
	snap, err := s.withRun(id, func(run *ingest.Run) error {
		var err error
		result, err = s.pipeline.Commit(ctx, run)
		return err
	})
	return result, snap, err
}

func (s *ingestService) ParseDocument(ctx context.Context, src parser.Source, docType domain.DocumentType, p domain.ParserType) (*domain.ParsedDocument, error) {
	return s.parser.Parse(ctx, src, docType, p)
}

func (s *ingestService) ChunkText(ctx context.Context, text string, method domain.ChunkingMethod, threshold float64, metadata map[string]any) ([]domain.Chunk, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	return s.chunker.Chunk(ctx, text, method, threshold, metadata)
}

func (s *ingestService) AddDocuments(ctx context.Context, docs []domain.DocumentInput) (map[string]any, error) {
	if len(docs) == 0 {
		return nil, domain.ErrNothingToCommit
	}
	res, err := s.docs.AddDocuments(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCommitFailed, err)
	}
	return res, nil
}

// withRun applies fn to the run and returns its state afterwards. The
// snapshot is returned alongside fn's error so callers can show both.
func (s *ingestService) withRun(id string, fn func(run *ingest.Run) error) (*ingest.Snapshot, error) {
	run, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	err = fn(run)
	return snapshot(run), err
}

func snapshot(run *ingest.Run) *ingest.Snapshot {
	snap := run.Snapshot()
	return &snap
}
