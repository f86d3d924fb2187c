package port

import (
	"context"
	"encoding/json"

	"kolosaldash/internal/domain"
)

// FastParser extracts text from a document on the inference server.
// The response schema is loosely typed and returned as raw JSON.
type FastParser interface {
	ParseFast(ctx context.Context, docType domain.DocumentType, data []byte) (json.RawMessage, error)
}

// MarkdownResult is the response of the markdown-conversion service.
type MarkdownResult struct {
	Filename        string         `json:"filename"`
	Title           string         `json:"title"`
	MarkdownContent string         `json:"markdown_content"`
	Metadata        map[string]any `json:"metadata"`
}

// MarkdownConverter converts a document into markdown.
type MarkdownConverter interface {
	Convert(ctx context.Context, docType domain.DocumentType, filename string, data []byte) (*MarkdownResult, error)
}

// OCR conversion statuses.
const (
	OCRStatusSuccess        = "success"
	OCRStatusPartialSuccess = "partial_success"
	OCRStatusPending        = "pending"
	OCRStatusStarted        = "started"
	OCRStatusFailure        = "failure"
	OCRStatusSkipped        = "skipped"
)

// OCRDocument is the converted document nested in an OCR response.
type OCRDocument struct {
	Filename    string         `json:"filename"`
	MDContent   string         `json:"md_content"`
	TextContent string         `json:"text_content"`
	JSONContent map[string]any `json:"json_content"`
	Metadata    map[string]any `json:"metadata"`
}

// OCRResult is the loosely typed response of the OCR-conversion service.
type OCRResult struct {
	Document       *OCRDocument      `json:"document"`
	Status         string            `json:"status"`
	TaskID         string            `json:"task_id"`
	TaskStatus     string            `json:"task_status"`
	Errors         []json.RawMessage `json:"errors"`
	ProcessingTime *float64          `json:"processing_time"`
	Timings        map[string]any    `json:"timings"`
}

// Pending reports whether the conversion has not finished on the server.
func (r *OCRResult) Pending() bool {
	for _, s := range []string{r.Status, r.TaskStatus} {
		if s == OCRStatusPending || s == OCRStatusStarted {
			return true
		}
	}
	return false
}

// OCRConverter converts a document with OCR and table recognition.
type OCRConverter interface {
	ProcessFile(ctx context.Context, filename string, data []byte) (*OCRResult, error)
}
