// Package markitdown is a client for the markdown-conversion service.
package markitdown

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
	"kolosaldash/internal/remote"
)

const serviceName = "markitdown"

// Client talks to the markdown-conversion service.
type Client struct {
	http *remote.Client
}

// NewClient creates a markdown-conversion client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{http: remote.NewClient(serviceName, baseURL, timeout)}
}

// Health handles GET /health.
func (c *Client) Health(ctx context.Context) (*domain.ServiceStatus, error) {
	var out domain.ServiceStatus
	if err := c.http.DoJSON(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Convert uploads the raw file as the multipart "file" field.
func (c *Client) Convert(ctx context.Context, docType domain.DocumentType, filename string, data []byte) (*port.MarkdownResult, error) {
	form := remote.NewForm().File("file", filename, data)
	var out port.MarkdownResult
	if err := c.http.DoMultipart(ctx, fmt.Sprintf("/parse_%s", docType), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
