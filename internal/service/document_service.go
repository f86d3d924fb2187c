package service

import (
	"context"
	"fmt"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
)

// DefaultPageSize is the number of documents on one browser page.
const DefaultPageSize = 10

// exportBatchSize bounds the number of IDs sent in one info request during export.
const exportBatchSize = 200

// DocumentService manages the stored document collection.
type DocumentService interface {
	List(ctx context.Context) (*domain.DocumentList, error)
	Info(ctx context.Context, ids []string) (*domain.DocumentInfoResult, error)
	Delete(ctx context.Context, ids []string) (map[string]any, error)
	Page(ctx context.Context, page int) (*domain.DocumentPage, error)
	Export(ctx context.Context) (*domain.DocumentExport, error)
}

type documentService struct {
	store    port.DocumentStore
	pageSize int
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(store port.DocumentStore, pageSize int) DocumentService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &documentService{store: store, pageSize: pageSize}
}

func (s *documentService) List(ctx context.Context) (*domain.DocumentList, error) {
	list, err := s.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteRequest, err)
	}
	return list, nil
}

func (s *documentService) Info(ctx context.Context, ids []string) (*domain.DocumentInfoResult, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: document IDs array is required", domain.ErrInvalidInput)
	}
	info, err := s.store.InfoDocuments(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteRequest, err)
	}
	return info, nil
}

func (s *documentService) Delete(ctx context.Context, ids []string) (map[string]any, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: document IDs array is required", domain.ErrInvalidInput)
	}
	res, err := s.store.RemoveDocuments(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteRequest, err)
	}
	return res, nil
}

// Page lists the collection and fetches details for one page of it. A page
// outside the available range falls back to page 1.
func (s *documentService) Page(ctx context.Context, page int) (*domain.DocumentPage, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	total := len(list.DocumentIDs)
	totalPages := (total + s.pageSize - 1) / s.pageSize
	if page < 1 || page > totalPages {
		page = 1
	}

	out := &domain.DocumentPage{
		CollectionName: list.CollectionName,
		Documents:      []domain.DocumentInfo{},
		Page:           page,
		PageSize:       s.pageSize,
		TotalPages:     totalPages,
		TotalCount:     total,
	}
	if total == 0 {
		return out, nil
	}

	start := (page - 1) * s.pageSize
	end := min(start+s.pageSize, total)
	info, err := s.Info(ctx, list.DocumentIDs[start:end])
	if err != nil {
		return nil, err
	}
	if info.Documents != nil {
		out.Documents = info.Documents
	}
	return out, nil
}

// Export fetches every stored document in batches.
func (s *documentService) Export(ctx context.Context) (*domain.DocumentExport, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &domain.DocumentExport{
		CollectionName: list.CollectionName,
		Documents:      make([]domain.DocumentInfo, 0, len(list.DocumentIDs)),
	}
	for start := 0; start < len(list.DocumentIDs); start += exportBatchSize {
		end := min(start+exportBatchSize, len(list.DocumentIDs))
		info, err := s.Info(ctx, list.DocumentIDs[start:end])
		if err != nil {
			return nil, err
		}
		out.Documents = append(out.Documents, info.Documents...)
		out.NotFoundIDs = append(out.NotFoundIDs, info.NotFoundIDs...)
	}
	return out, nil
}
