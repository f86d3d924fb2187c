// Package kolosal is a client for the inference and document server.
package kolosal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
	"kolosaldash/internal/remote"
)

const serviceName = "kolosal"

// Endpoint paths on the inference server.
const (
	pathStatus          = "/status"
	pathListDocuments   = "/list_documents"
	pathInfoDocuments   = "/info_documents"
	pathRemoveDocuments = "/remove_documents"
	pathAddDocuments    = "/add_documents"
	pathRetrieve        = "/retrieve"
	pathChunking        = "/chunking"
	pathModels          = "/models"
)

// Client talks to the inference server over HTTP/JSON.
type Client struct {
	http *remote.Client
}

// NewClient creates an inference server client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{http: remote.NewClient(serviceName, baseURL, timeout)}
}

// Status handles GET /status.
func (c *Client) Status(ctx context.Context) (*domain.InferenceStatus, error) {
	var out domain.InferenceStatus
	if err := c.http.DoJSON(ctx, http.MethodGet, pathStatus, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDocuments handles GET /list_documents.
func (c *Client) ListDocuments(ctx context.Context) (*domain.DocumentList, error) {
	var out domain.DocumentList
	if err := c.http.DoJSON(ctx, http.MethodGet, pathListDocuments, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InfoDocuments fetches stored documents by ID.
func (c *Client) InfoDocuments(ctx context.Context, ids []string) (*domain.DocumentInfoResult, error) {
	var out domain.DocumentInfoResult
	body := map[string]any{"ids": ids}
	if err := c.http.DoJSON(ctx, http.MethodPost, pathInfoDocuments, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveDocuments deletes stored documents by ID and returns the raw server response.
func (c *Client) RemoveDocuments(ctx context.Context, ids []string) (map[string]any, error) {
	out := map[string]any{}
	body := map[string]any{"document_ids": ids}
	if err := c.http.DoJSON(ctx, http.MethodPost, pathRemoveDocuments, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddDocuments submits documents in a single batch and returns the raw server response.
func (c *Client) AddDocuments(ctx context.Context, docs []domain.DocumentInput) (map[string]any, error) {
	out := map[string]any{}
	body := map[string]any{"documents": docs}
	if err := c.http.DoJSON(ctx, http.MethodPost, pathAddDocuments, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Retrieve runs a similarity search.
func (c *Client) Retrieve(ctx context.Context, q domain.RetrieveQuery) ([]domain.RetrievedDocument, error) {
	var out struct {
		Documents []domain.RetrievedDocument `json:"documents"`
	}
	if err := c.http.DoJSON(ctx, http.MethodPost, pathRetrieve, q, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

// Chunk handles POST /chunking.
func (c *Client) Chunk(ctx context.Context, req port.ChunkRequest) ([]json.RawMessage, error) {
	var out struct {
		Chunks []json.RawMessage `json:"chunks"`
	}
	if err := c.http.DoJSON(ctx, http.MethodPost, pathChunking, req, &out); err != nil {
		return nil, err
	}
	return out.Chunks, nil
}

// ParseFast submits file bytes to POST /parse_{type} in fast mode and returns
// the loosely typed response body.
func (c *Client) ParseFast(ctx context.Context, docType domain.DocumentType, data []byte) (json.RawMessage, error) {
	body := map[string]any{
		"data":   base64.StdEncoding.EncodeToString(data),
		"method": "fast",
	}
	var out json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPost, fmt.Sprintf("/parse_%s", docType), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddModel registers a model with the server.
func (c *Client) AddModel(ctx context.Context, req domain.AddModelRequest) (map[string]any, error) {
	out := map[string]any{}
	if err := c.http.DoJSON(ctx, http.MethodPost, pathModels, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveModel handles DELETE /models/{engineId}.
func (c *Client) RemoveModel(ctx context.Context, engineID string) error {
	return c.http.DoJSON(ctx, http.MethodDelete, pathModels+"/"+url.PathEscape(engineID), nil, nil)
}
