package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
)

// Source is a raw document handed to the dispatcher: either file bytes or literal text.
type Source struct {
	Filename string
	Data     []byte
	Text     string
}

// fastTextKeys is the priority order for the text body of a fast-parse response.
var fastTextKeys = []string{"text", "content", "markdown_content", "markdown"}

// Dispatcher routes a document to one of the parser backends and normalizes
// each backend's response into a ParsedDocument.
type Dispatcher struct {
	fast     port.FastParser
	markdown port.MarkdownConverter
	ocr      port.OCRConverter
}

// NewDispatcher creates a Dispatcher. A nil backend makes its parser unsupported.
func NewDispatcher(fast port.FastParser, markdown port.MarkdownConverter, ocr port.OCRConverter) *Dispatcher {
	return &Dispatcher{fast: fast, markdown: markdown, ocr: ocr}
}

// Supports reports whether the parser can handle the document type, without any network call.
func (d *Dispatcher) Supports(docType domain.DocumentType, parser domain.ParserType) error {
	if docType == domain.DocumentTypeText {
		if parser == domain.ParserNone {
			return nil
		}
		return fmt.Errorf("%w: %s cannot parse literal text", domain.ErrUnsupportedParser, parser)
	}
	if !docType.IsFile() {
		return fmt.Errorf("%w: unknown document type %q", domain.ErrUnsupportedParser, docType)
	}

	var available bool
	switch parser {
	case domain.ParserFastParse:
		available = d.fast != nil
	case domain.ParserMarkdownConversion:
		available = d.markdown != nil
	case domain.ParserOCRConversion:
		available = d.ocr != nil
	default:
		return fmt.Errorf("%w: %s cannot parse %s documents", domain.ErrUnsupportedParser, parser, docType)
	}
	if !available {
		return fmt.Errorf("%w: %s backend is not configured", domain.ErrUnsupportedParser, parser.Backend())
	}
	return nil
}

// Parse turns the source into {text, metadata}. Literal text never leaves the process.
func (d *Dispatcher) Parse(ctx context.Context, src Source, docType domain.DocumentType, parser domain.ParserType) (*domain.ParsedDocument, error) {
	if err := d.Supports(docType, parser); err != nil {
		return nil, err
	}

	if docType == domain.DocumentTypeText {
		if strings.TrimSpace(src.Text) == "" {
			return nil, fmt.Errorf("%w: text content is required", domain.ErrInvalidInput)
		}
		return &domain.ParsedDocument{
			Filename: src.Filename,
			Text:     src.Text,
			Metadata: map[string]any{
				"type":   string(domain.DocumentTypeText),
				"length": utf8.RuneCountInString(src.Text),
			},
		}, nil
	}

	if len(src.Data) == 0 {
		return nil, fmt.Errorf("%w: a %s file is required", domain.ErrInvalidInput, docType)
	}

	log.Printf("parser.Dispatcher: parsing %q (%s, %d bytes) with %s", src.Filename, docType, len(src.Data), parser.Backend())

	switch parser {
	case domain.ParserFastParse:
		return d.parseFast(ctx, src, docType)
	case domain.ParserMarkdownConversion:
		return d.parseMarkdown(ctx, src, docType)
	default:
		return d.parseOCR(ctx, src)
	}
}

func (d *Dispatcher) parseFast(ctx context.Context, src Source, docType domain.DocumentType) (*domain.ParsedDocument, error) {
	raw, err := d.fast.ParseFast(ctx, docType, src.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParseFailed, err)
	}
	text, ok := extractFastText(raw)
	if !ok {
		return nil, fmt.Errorf("%w: kolosal returned an empty response", domain.ErrParseFailed)
	}
	return &domain.ParsedDocument{
		Filename: src.Filename,
		Text:     text,
		Metadata: map[string]any{},
	}, nil
}

// extractFastText returns the first non-empty string among fastTextKeys,
// falling back to the serialized response body.
func extractFastText(raw json.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		for _, key := range fastTextKeys {
			var s string
			if err := json.Unmarshal(fields[key], &s); err == nil && s != "" {
				return s, true
			}
		}
	}
	return trimmed, true
}

func (d *Dispatcher) parseMarkdown(ctx context.Context, src Source, docType domain.DocumentType) (*domain.ParsedDocument, error) {
	res, err := d.markdown.Convert(ctx, docType, src.Filename, src.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParseFailed, err)
	}
	metadata := res.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &domain.ParsedDocument{
		Filename: src.Filename,
		Text:     res.MarkdownContent,
		Metadata: metadata,
	}, nil
}

func (d *Dispatcher) parseOCR(ctx context.Context, src Source) (*domain.ParsedDocument, error) {
	res, err := d.ocr.ProcessFile(ctx, src.Filename, src.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParseFailed, err)
	}
	if res.Pending() {
		log.Printf("parser.Dispatcher: docling conversion of %q not ready (task %q)", src.Filename, res.TaskID)
		return nil, fmt.Errorf("%w: docling conversion of %q is still pending, retry later", domain.ErrParseNotReady, src.Filename)
	}
	if res.Status == port.OCRStatusFailure || res.Status == port.OCRStatusSkipped {
		return nil, fmt.Errorf("%w: docling conversion %s%s", domain.ErrParseFailed, res.Status, joinOCRErrors(res.Errors))
	}
	if res.Document == nil {
		return nil, fmt.Errorf("%w: docling response has no document", domain.ErrParseFailed)
	}

	text := res.Document.MDContent
	if text == "" {
		text = res.Document.TextContent
	}
	if text == "" {
		return nil, fmt.Errorf("%w: docling returned neither markdown nor text", domain.ErrParseFailed)
	}

	return &domain.ParsedDocument{
		Filename: src.Filename,
		Text:     text,
		Metadata: flattenOCRMetadata(res, src.Filename),
	}, nil
}

// flattenOCRMetadata keeps filename, processing time, status and timings from
// the response and merges in any metadata nested under the document.
func flattenOCRMetadata(res *port.OCRResult, fallbackName string) map[string]any {
	metadata := map[string]any{}
	if nested, ok := res.Document.JSONContent["metadata"].(map[string]any); ok {
		for k, v := range nested {
			metadata[k] = v
		}
	}
	for k, v := range res.Document.Metadata {
		metadata[k] = v
	}

	filename := res.Document.Filename
	if filename == "" {
		filename = fallbackName
	}
	metadata["filename"] = filename
	metadata["status"] = res.Status
	if res.ProcessingTime != nil {
		metadata["processing_time"] = *res.ProcessingTime
	}
	if len(res.Timings) > 0 {
		metadata["timings"] = res.Timings
	}
	return metadata
}

func joinOCRErrors(errs []json.RawMessage) string {
	if len(errs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		var withMessage struct {
			ErrorMessage string `json:"error_message"`
			Message      string `json:"message"`
		}
		var s string
		switch {
		case json.Unmarshal(e, &s) == nil:
			parts = append(parts, s)
		case json.Unmarshal(e, &withMessage) == nil && withMessage.ErrorMessage != "":
			parts = append(parts, withMessage.ErrorMessage)
		case withMessage.Message != "":
			parts = append(parts, withMessage.Message)
		default:
			parts = append(parts, string(e))
		}
	}
	return ": " + strings.Join(parts, "; ")
}
