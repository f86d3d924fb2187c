package domain

import (
	"fmt"
	"strings"
)

// DocumentType identifies the kind of document being ingested.
type DocumentType string

const (
	DocumentTypePDF  DocumentType = "pdf"
	DocumentTypeDOCX DocumentType = "docx"
	DocumentTypeXLSX DocumentType = "xlsx"
	DocumentTypePPTX DocumentType = "pptx"
	DocumentTypeHTML DocumentType = "html"
	DocumentTypeText DocumentType = "text"
)

// FileDocumentTypes lists the document types that arrive as an uploaded file.
var FileDocumentTypes = []DocumentType{
	DocumentTypePDF,
	DocumentTypeDOCX,
	DocumentTypeXLSX,
	DocumentTypePPTX,
	DocumentTypeHTML,
}

// IsFile reports whether the document type is supplied as a binary upload.
func (t DocumentType) IsFile() bool {
	for _, ft := range FileDocumentTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// ParseDocumentType validates a raw document type string.
func ParseDocumentType(s string) (DocumentType, error) {
	t := DocumentType(strings.ToLower(strings.TrimSpace(s)))
	if t == DocumentTypeText || t.IsFile() {
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, s)
}

// ParserType selects the backend used to turn a document into text.
type ParserType string

const (
	ParserFastParse          ParserType = "fast-parse"
	ParserMarkdownConversion ParserType = "markdown-conversion"
	ParserOCRConversion      ParserType = "ocr-conversion"
	// ParserNone is the only choice for literal text input.
	ParserNone ParserType = "none"
)

// parserAliases maps backend service names onto parser identifiers.
var parserAliases = map[string]ParserType{
	"kolosal":    ParserFastParse,
	"markitdown": ParserMarkdownConversion,
	"docling":    ParserOCRConversion,
}

// ParseParserType validates a raw parser identifier. Backend names
// (kolosal, markitdown, docling) are accepted as aliases.
func ParseParserType(s string) (ParserType, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := parserAliases[raw]; ok {
		return alias, nil
	}
	switch p := ParserType(raw); p {
	case ParserFastParse, ParserMarkdownConversion, ParserOCRConversion, ParserNone:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedParser, s)
}

// Backend returns the name of the external service behind the parser.
func (p ParserType) Backend() string {
	switch p {
	case ParserFastParse:
		return "kolosal"
	case ParserMarkdownConversion:
		return "markitdown"
	case ParserOCRConversion:
		return "docling"
	default:
		return string(p)
	}
}

// ChunkingMethod selects how parsed text is split into chunks.
type ChunkingMethod string

const (
	ChunkingRegular  ChunkingMethod = "regular"
	ChunkingSemantic ChunkingMethod = "semantic"
	ChunkingNone     ChunkingMethod = "none"
)

// DefaultSimilarityThreshold is the semantic chunking threshold used when none is given.
const DefaultSimilarityThreshold = 0.6

// ParseChunkingMethod validates a raw chunking method string.
func ParseChunkingMethod(s string) (ChunkingMethod, error) {
	switch m := ChunkingMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case ChunkingRegular, ChunkingSemantic, ChunkingNone:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown chunking method %q", ErrInvalidInput, s)
}

// ServiceAvailability values reported by status checks.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
