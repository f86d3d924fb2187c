package ingest

import (
	"context"
	"fmt"
	"log"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
)

// CommitResult reports a successful batch submission.
type CommitResult struct {
	Count    int            `json:"count"`
	Message  string         `json:"message"`
	Response map[string]any `json:"response,omitempty"`
}

// Committer submits staged chunks to the document collection.
type Committer struct {
	store port.DocumentStore
}

// NewCommitter creates a Committer.
func NewCommitter(store port.DocumentStore) *Committer {
	return &Committer{store: store}
}

// Commit sends every chunk's {text, metadata} pair in a single call.
// An empty list fails with ErrNothingToCommit and makes no call.
func (c *Committer) Commit(ctx context.Context, chunks []domain.Chunk) (*CommitResult, error) {
	if len(chunks) == 0 {
		return nil, domain.ErrNothingToCommit
	}

	docs := make([]domain.DocumentInput, len(chunks))
	for i, ch := range chunks {
		metadata := ch.Metadata
		if metadata == nil {
			metadata = map[string]any{}
		}
		docs[i] = domain.DocumentInput{Text: ch.Text, Metadata: metadata}
	}

	resp, err := c.store.AddDocuments(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCommitFailed, err)
	}

	log.Printf("ingest.Committer: added %d documents", len(docs))
	return &CommitResult{
		Count:    len(docs),
		Message:  fmt.Sprintf("Successfully added %d documents to the collection", len(docs)),
		Response: resp,
	}, nil
}
