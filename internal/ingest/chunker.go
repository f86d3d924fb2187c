package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
)

// Chunker splits parsed text into staged chunks.
type Chunker struct {
	backend port.ChunkingBackend
	model   string
}

// NewChunker creates a Chunker that asks backend to segment text with the given embedding model.
func NewChunker(backend port.ChunkingBackend, model string) *Chunker {
	return &Chunker{backend: backend, model: model}
}

// Chunk returns the ordered chunks for text. The "none" method keeps the whole
// text as chunk "1" with the parent metadata and makes no remote call. The
// remote methods yield chunk-1..chunk-n, each tagged with its 1-based chunk_index.
// The similarity threshold is forwarded as given for semantic chunking; a zero
// threshold is left out of the request.
func (c *Chunker) Chunk(ctx context.Context, text string, method domain.ChunkingMethod, threshold float64, parent map[string]any) ([]domain.Chunk, error) {
	switch method {
	case domain.ChunkingNone:
		return []domain.Chunk{{ID: "1", Text: text, Metadata: copyMetadata(parent)}}, nil
	case domain.ChunkingRegular, domain.ChunkingSemantic:
	default:
		return nil, fmt.Errorf("%w: unknown chunking method %q", domain.ErrInvalidInput, method)
	}

	req := port.ChunkRequest{
		Text:      text,
		ModelName: c.model,
		Method:    string(method),
	}
	if method == domain.ChunkingSemantic && threshold != 0 {
		t := threshold
		req.SimilarityThreshold = &t
	}

	raw, err := c.backend.Chunk(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrChunkingFailed, err)
	}

	spans := chunkTexts(raw)
	if len(spans) == 0 {
		log.Printf("ingest.Chunker: %s chunking returned no chunks, keeping the full text", method)
		spans = []string{text}
	}

	chunks := make([]domain.Chunk, len(spans))
	for i, span := range spans {
		metadata := copyMetadata(parent)
		metadata["chunk_index"] = i + 1
		chunks[i] = domain.Chunk{
			ID:       fmt.Sprintf("chunk-%d", i+1),
			Text:     span,
			Metadata: metadata,
		}
	}
	return chunks, nil
}

// chunkTexts reads each element as a plain string or an object with a text
// field. Anything else is kept as its JSON form.
func chunkTexts(raw []json.RawMessage) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := bytes.TrimSpace(item); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var obj struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(item, &obj); err == nil && obj.Text != "" {
			out = append(out, obj.Text)
			continue
		}
		out = append(out, string(item))
	}
	return out
}
