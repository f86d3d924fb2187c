package port

import (
	"context"
	"encoding/json"

	"kolosaldash/internal/domain"
)

// DocumentStore abstracts the document collection on the inference server.
type DocumentStore interface {
	ListDocuments(ctx context.Context) (*domain.DocumentList, error)
	InfoDocuments(ctx context.Context, ids []string) (*domain.DocumentInfoResult, error)
	RemoveDocuments(ctx context.Context, ids []string) (map[string]any, error)
	AddDocuments(ctx context.Context, docs []domain.DocumentInput) (map[string]any, error)
}

// Retriever runs similarity search against the document collection.
type Retriever interface {
	Retrieve(ctx context.Context, q domain.RetrieveQuery) ([]domain.RetrievedDocument, error)
}

// ChunkRequest is the payload of a remote chunking call.
type ChunkRequest struct {
	Text                string   `json:"text"`
	ModelName           string   `json:"model_name"`
	Method              string   `json:"method"`
	SimilarityThreshold *float64 `json:"similarity_threshold,omitempty"`
}

// ChunkingBackend segments text remotely. Each element is either a JSON
// string or an object with a "text" field; a missing list comes back nil.
type ChunkingBackend interface {
	Chunk(ctx context.Context, req ChunkRequest) ([]json.RawMessage, error)
}

// ModelManager manages engines loaded on the inference server.
type ModelManager interface {
	Status(ctx context.Context) (*domain.InferenceStatus, error)
	AddModel(ctx context.Context, req domain.AddModelRequest) (map[string]any, error)
	RemoveModel(ctx context.Context, engineID string) error
}

// HealthChecker reports the health of a conversion service.
type HealthChecker interface {
	Health(ctx context.Context) (*domain.ServiceStatus, error)
}
