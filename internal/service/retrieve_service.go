package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
)

// Retrieval defaults used when the caller leaves them out.
const (
	DefaultRetrieveLimit  = 10
	DefaultScoreThreshold = 0.5
)

// RetrieveService runs similarity search against the collection.
type RetrieveService interface {
	Retrieve(ctx context.Context, query string, limit int, scoreThreshold float64) (*domain.RetrieveResult, error)
}

type retrieveService struct {
	retriever port.Retriever
}

// NewRetrieveService creates a new RetrieveService implementation.
func NewRetrieveService(retriever port.Retriever) RetrieveService {
	return &retrieveService{retriever: retriever}
}

// Retrieve searches the collection. A non-positive limit or a zero threshold
// falls back to the defaults.
func (s *retrieveService) Retrieve(ctx context.Context, query string, limit int, scoreThreshold float64) (*domain.RetrieveResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultRetrieveLimit
	}
	if scoreThreshold == 0 {
		scoreThreshold = DefaultScoreThreshold
	}

	start := time.Now()
	docs, err := s.retriever.Retrieve(ctx, domain.RetrieveQuery{
		Query:          query,
		Limit:          limit,
		ScoreThreshold: scoreThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteRequest, err)
	}
	if docs == nil {
		docs = []domain.RetrievedDocument{}
	}

	return &domain.RetrieveResult{
		Documents:    docs,
		Query:        query,
		TotalResults: len(docs),
		ElapsedTime:  time.Since(start).Milliseconds(),
	}, nil
}
