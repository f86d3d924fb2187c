package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/ingest"
	"kolosaldash/internal/parser"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file...]",
	Short: "Parse, chunk and commit documents",
	Long: `Runs each document through the ingestion pipeline and adds the resulting
chunks to the collection. The document type is taken from the file extension
unless --type is given; --type text sends the file content as literal text.
Several files are processed concurrently, --workers at a time.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

var (
	ingestType      string
	ingestParser    string
	ingestChunking  string
	ingestThreshold float64
	ingestDryRun    bool
	ingestWorkers   int
)

func init() {
	flags := ingestCmd.Flags()
	flags.StringVar(&ingestType, "type", "", "Document type (pdf, docx, xlsx, pptx, html, text)")
	flags.StringVar(&ingestParser, "parser", "", "Parser (fast-parse, markdown-conversion, ocr-conversion, none)")
	flags.StringVar(&ingestChunking, "chunking", string(domain.ChunkingRegular), "Chunking method (regular, semantic, none)")
	flags.Float64Var(&ingestThreshold, "threshold", domain.DefaultSimilarityThreshold, "Similarity threshold for semantic chunking")
	flags.BoolVar(&ingestDryRun, "dry-run", false, "Print the chunks without committing them")
	flags.IntVarP(&ingestWorkers, "workers", "w", 2, "Files processed at the same time")
	rootCmd.AddCommand(ingestCmd)
}

// ingestOutcome is the buffered output of one file, printed in argument order.
type ingestOutcome struct {
	out bytes.Buffer
	err error
}

func runIngest(cmd *cobra.Command, args []string) error {
	size := ingestWorkers
	if size < 1 {
		size = 1
	}
	if size > len(args) {
		size = len(args)
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return fmt.Errorf("failed to start workers: %w", err)
	}
	defer pool.Release()

	ctx := context.Background()
	outcomes := make([]*ingestOutcome, len(args))
	var wg sync.WaitGroup
	for i, path := range args {
		outcome := &ingestOutcome{}
		outcomes[i] = outcome
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			outcome.err = ingestFile(ctx, &outcome.out, path)
		}); err != nil {
			wg.Done()
			outcome.err = fmt.Errorf("failed to schedule %s: %w", path, err)
		}
	}
	wg.Wait()

	var errs []error
	for _, o := range outcomes {
		cmd.Print(o.out.String())
		if o.err != nil {
			errs = append(errs, o.err)
		}
	}
	return errors.Join(errs...)
}

// ingestFile runs one file through its own ingestion run.
func ingestFile(ctx context.Context, out io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	settings, err := ingestSettings(path)
	if err != nil {
		return err
	}
	src := parser.Source{Filename: filepath.Base(path)}
	if settings.DocumentType == domain.DocumentTypeText {
		src.Text = string(data)
	} else {
		src.Data = data
	}

	run := services.Ingest.CreateRun()
	defer func() { _ = services.Ingest.DiscardRun(run.ID) }()

	if _, err := services.Ingest.Configure(run.ID, settings, src); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	fmt.Fprintf(out, "Processing %s (%s, %s, %s)\n", src.Filename, settings.DocumentType, settings.Parser, settings.Chunking)

	snap, err := services.Ingest.Process(ctx, run.ID)
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", src.Filename, err)
	}
	fmt.Fprintf(out, "Produced %d chunks\n", len(snap.Chunks))

	if ingestDryRun {
		for _, c := range snap.Chunks {
			fmt.Fprintf(out, "\n[%s] %s\n", c.ID, preview(c.Text, 120))
		}
		return nil
	}

	res, _, err := services.Ingest.Commit(ctx, run.ID)
	if err != nil {
		return fmt.Errorf("failed to commit %s: %w", src.Filename, err)
	}
	fmt.Fprintln(out, res.Message)
	return nil
}

// ingestSettings resolves the flags against the file name.
func ingestSettings(path string) (ingest.Settings, error) {
	rawType := ingestType
	if rawType == "" {
		rawType = typeFromExtension(path)
	}
	docType, err := domain.ParseDocumentType(rawType)
	if err != nil {
		return ingest.Settings{}, err
	}

	rawParser := ingestParser
	if rawParser == "" {
		rawParser = string(domain.ParserFastParse)
		if docType == domain.DocumentTypeText {
			rawParser = string(domain.ParserNone)
		}
	}
	p, err := domain.ParseParserType(rawParser)
	if err != nil {
		return ingest.Settings{}, err
	}

	method, err := domain.ParseChunkingMethod(ingestChunking)
	if err != nil {
		return ingest.Settings{}, err
	}

	return ingest.Settings{
		DocumentType:        docType,
		Parser:              p,
		Chunking:            method,
		SimilarityThreshold: ingestThreshold,
	}, nil
}

func typeFromExtension(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "htm":
		return string(domain.DocumentTypeHTML)
	case "txt", "md", "markdown":
		return string(domain.DocumentTypeText)
	}
	return ext
}
