// Package docling is a client for the OCR-capable conversion service.
package docling

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
	"kolosaldash/internal/remote"
)

const serviceName = "docling"

// Options are the processing flags sent with every file.
type Options struct {
	ToFormats        []string
	DoOCR            bool
	DoTableStructure bool
	IncludeImages    bool
	TableMode        string
	PDFBackend       string
	ImageExportMode  string
}

// DefaultOptions requests markdown and structured output with OCR, table
// structure recognition, embedded images and the accurate table mode.
func DefaultOptions() Options {
	return Options{
		ToFormats:        []string{"md", "json"},
		DoOCR:            true,
		DoTableStructure: true,
		IncludeImages:    true,
		TableMode:        "accurate",
		PDFBackend:       "dlparse_v4",
		ImageExportMode:  "embedded",
	}
}

// Client talks to the OCR-conversion service.
type Client struct {
	http *remote.Client
	opts Options
}

// NewClient creates an OCR-conversion client using DefaultOptions.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: remote.NewClient(serviceName, baseURL, timeout),
		opts: DefaultOptions(),
	}
}

// Health handles GET /health.
func (c *Client) Health(ctx context.Context) (*domain.ServiceStatus, error) {
	var out domain.ServiceStatus
	if err := c.http.DoJSON(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProcessFile uploads the raw file as the multipart "files" field together
// with the processing flags. A pending conversion is returned as-is; callers
// decide how to surface it.
func (c *Client) ProcessFile(ctx context.Context, filename string, data []byte) (*port.OCRResult, error) {
	form := remote.NewForm().File("files", filename, data)
	for _, f := range c.opts.ToFormats {
		form.Field("to_formats", f)
	}
	form.Field("do_ocr", strconv.FormatBool(c.opts.DoOCR)).
		Field("do_table_structure", strconv.FormatBool(c.opts.DoTableStructure)).
		Field("include_images", strconv.FormatBool(c.opts.IncludeImages)).
		Field("table_mode", c.opts.TableMode).
		Field("pdf_backend", c.opts.PDFBackend).
		Field("image_export_mode", c.opts.ImageExportMode)

	var out port.OCRResult
	if err := c.http.DoMultipart(ctx, "/processFile", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
