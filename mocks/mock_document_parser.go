package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/parser"
)

// MockDocumentParser is a mock implementation of ingest.DocumentParser.
type MockDocumentParser struct {
	mock.Mock
}

func (m *MockDocumentParser) Supports(docType domain.DocumentType, p domain.ParserType) error {
	args := m.Called(docType, p)
	return args.Error(0)
}

func (m *MockDocumentParser) Parse(ctx context.Context, src parser.Source, docType domain.DocumentType, p domain.ParserType) (*domain.ParsedDocument, error) {
	args := m.Called(ctx, src, docType, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedDocument), args.Error(1)
}
