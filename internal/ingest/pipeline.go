package ingest

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/parser"
)

// DocumentParser turns a source document into text and metadata.
type DocumentParser interface {
	Supports(docType domain.DocumentType, p domain.ParserType) error
	Parse(ctx context.Context, src parser.Source, docType domain.DocumentType, p domain.ParserType) (*domain.ParsedDocument, error)
}

// Pipeline drives runs through parse, chunk and commit.
type Pipeline struct {
	parser    DocumentParser
	chunker   *Chunker
	committer *Committer
}

// NewPipeline creates a Pipeline.
func NewPipeline(p DocumentParser, chunker *Chunker, committer *Committer) *Pipeline {
	return &Pipeline{parser: p, chunker: chunker, committer: committer}
}

// Configure validates the settings and source and puts the run in configuring.
// Literal text defaults to the "none" parser and semantic chunking to the
// default similarity threshold.
func (p *Pipeline) Configure(run *Run, settings Settings, src parser.Source) error {
	if settings.DocumentType == "" {
		return fmt.Errorf("%w: document type is required", domain.ErrInvalidInput)
	}
	if settings.DocumentType == domain.DocumentTypeText && settings.Parser == "" {
		settings.Parser = domain.ParserNone
	}
	if settings.Parser == "" {
		return fmt.Errorf("%w: parser is required", domain.ErrInvalidInput)
	}
	if settings.Chunking == "" {
		return fmt.Errorf("%w: chunking method is required", domain.ErrInvalidInput)
	}
	if _, err := domain.ParseChunkingMethod(string(settings.Chunking)); err != nil {
		return err
	}
	if t := settings.SimilarityThreshold; math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("%w: similarity threshold must be a finite number", domain.ErrInvalidInput)
	}
	if settings.Chunking == domain.ChunkingSemantic && settings.SimilarityThreshold == 0 {
		settings.SimilarityThreshold = domain.DefaultSimilarityThreshold
	}
	if err := p.parser.Supports(settings.DocumentType, settings.Parser); err != nil {
		return err
	}

	if settings.DocumentType == domain.DocumentTypeText {
		if strings.TrimSpace(src.Text) == "" {
			return fmt.Errorf("%w: text content is required", domain.ErrInvalidInput)
		}
		src.Data = nil
	} else if len(src.Data) == 0 {
		return fmt.Errorf("%w: a %s file is required", domain.ErrInvalidInput, settings.DocumentType)
	}

	return run.configure(settings, src)
}

// Parse runs the configured parser. On failure the run stays in parsing and
// calling Parse again re-issues the same request.
func (p *Pipeline) Parse(ctx context.Context, run *Run) (*domain.ParsedDocument, error) {
	settings, src, err := run.startParse()
	if err != nil {
		return nil, err
	}

	doc, err := p.parser.Parse(context.WithoutCancel(ctx), src, settings.DocumentType, settings.Parser)
	if err != nil {
		log.Printf("ingest.Pipeline: run %s parse failed: %v", run.ID(), err)
	}
	run.finishParse(doc, err)
	return doc, err
}

// Chunk splits the parsed text and stages the chunks for review. On failure
// the run stays in chunking and calling Chunk again retries.
func (p *Pipeline) Chunk(ctx context.Context, run *Run) ([]domain.Chunk, error) {
	settings, doc, err := run.startChunk()
	if err != nil {
		return nil, err
	}

	chunks, err := p.chunker.Chunk(context.WithoutCancel(ctx), doc.Text, settings.Chunking, settings.SimilarityThreshold, doc.Metadata)
	if err != nil {
		log.Printf("ingest.Pipeline: run %s chunking failed: %v", run.ID(), err)
	}
	run.finishChunk(chunks, err)
	return chunks, err
}

// Process parses and then chunks, stopping at the first failure.
func (p *Pipeline) Process(ctx context.Context, run *Run) ([]domain.Chunk, error) {
	if _, err := p.Parse(ctx, run); err != nil {
		return nil, err
	}
	return p.Chunk(ctx, run)
}

// Commit submits the staged chunks. Success resets the run to idle; failure
// keeps every field so the commit can be retried.
func (p *Pipeline) Commit(ctx context.Context, run *Run) (*CommitResult, error) {
	chunks, err := run.startCommit()
	if err != nil {
		return nil, err
	}

	result, err := p.committer.Commit(context.WithoutCancel(ctx), chunks)
	if err != nil {
		log.Printf("ingest.Pipeline: run %s commit failed: %v", run.ID(), err)
		run.finishCommit("", err)
		return nil, err
	}
	run.finishCommit(result.Message, nil)
	return result, nil
}
