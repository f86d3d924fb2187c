package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/ingest"
	"kolosaldash/internal/parser"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestIngestCmd_CommitsFile(t *testing.T) {
	ts := setupTestServices(t)
	path := writeTemp(t, "report.pdf", "%PDF-1.4")

	settings := ingest.Settings{
		DocumentType:        domain.DocumentTypePDF,
		Parser:              domain.ParserFastParse,
		Chunking:            domain.ChunkingRegular,
		SimilarityThreshold: domain.DefaultSimilarityThreshold,
	}
	src := parser.Source{Filename: "report.pdf", Data: []byte("%PDF-1.4")}
	chunks := []domain.Chunk{{ID: "chunk-1", Text: "a"}, {ID: "chunk-2", Text: "b"}}

	ts.ingest.On("CreateRun").Return(ingest.Snapshot{ID: "run-1"})
	ts.ingest.On("Configure", "run-1", settings, src).Return(&ingest.Snapshot{ID: "run-1"}, nil)
	ts.ingest.On("Process", mock.Anything, "run-1").Return(&ingest.Snapshot{ID: "run-1", Chunks: chunks}, nil)
	ts.ingest.On("Commit", mock.Anything, "run-1").Return(&ingest.CommitResult{Count: 2, Message: "Successfully added 2 documents to the collection"}, &ingest.Snapshot{ID: "run-1"}, nil)
	ts.ingest.On("DiscardRun", "run-1").Return(nil)

	out, err := execute(t, "ingest", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Produced 2 chunks")
	assert.Contains(t, out, "Successfully added 2 documents to the collection")
	ts.ingest.AssertExpectations(t)
}

func TestIngestCmd_TextFileDryRun(t *testing.T) {
	ts := setupTestServices(t)
	path := writeTemp(t, "notes.txt", "hello world")

	settings := ingest.Settings{
		DocumentType:        domain.DocumentTypeText,
		Parser:              domain.ParserNone,
		Chunking:            domain.ChunkingNone,
		SimilarityThreshold: domain.DefaultSimilarityThreshold,
	}
	src := parser.Source{Filename: "notes.txt", Text: "hello world"}

	ts.ingest.On("CreateRun").Return(ingest.Snapshot{ID: "run-2"})
	ts.ingest.On("Configure", "run-2", settings, src).Return(&ingest.Snapshot{ID: "run-2"}, nil)
	ts.ingest.On("Process", mock.Anything, "run-2").Return(&ingest.Snapshot{
		ID:     "run-2",
		Chunks: []domain.Chunk{{ID: "1", Text: "hello world"}},
	}, nil)
	ts.ingest.On("DiscardRun", "run-2").Return(nil)

	out, err := execute(t, "ingest", path, "--chunking", "none", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out, "[1] hello world")
	ts.ingest.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

func TestIngestCmd_ProcessFailureDiscardsRun(t *testing.T) {
	ts := setupTestServices(t)
	path := writeTemp(t, "deck.pptx", "zip")

	ts.ingest.On("CreateRun").Return(ingest.Snapshot{ID: "run-3"})
	ts.ingest.On("Configure", "run-3", mock.Anything, mock.Anything).Return(&ingest.Snapshot{ID: "run-3"}, nil)
	ts.ingest.On("Process", mock.Anything, "run-3").Return(&ingest.Snapshot{ID: "run-3"}, domain.ErrParseFailed)
	ts.ingest.On("DiscardRun", "run-3").Return(nil)

	_, err := execute(t, "ingest", path, "--parser", "markitdown")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParseFailed)
	ts.ingest.AssertCalled(t, "DiscardRun", "run-3")
}

func TestIngestCmd_UnknownExtension(t *testing.T) {
	ts := setupTestServices(t)
	path := writeTemp(t, "image.png", "png")

	_, err := execute(t, "ingest", path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	ts.ingest.AssertNotCalled(t, "CreateRun")
}

func TestIngestCmd_MissingFile(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "ingest", filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestTypeFromExtension(t *testing.T) {
	tests := map[string]string{
		"a.PDF":      "pdf",
		"page.htm":   "html",
		"page.html":  "html",
		"notes.md":   "text",
		"notes.txt":  "text",
		"sheet.xlsx": "xlsx",
	}
	for path, want := range tests {
		assert.Equal(t, want, typeFromExtension(path), path)
	}
}

func TestIngestCmd_MultipleFilesKeepArgumentOrder(t *testing.T) {
	ts := setupTestServices(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.pdf")
	second := filepath.Join(dir, "second.docx")
	require.NoError(t, os.WriteFile(first, []byte("pdf"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("docx"), 0o600))

	ts.ingest.On("CreateRun").Return(ingest.Snapshot{ID: "run-a"}).Once()
	ts.ingest.On("CreateRun").Return(ingest.Snapshot{ID: "run-b"}).Once()
	for _, id := range []string{"run-a", "run-b"} {
		ts.ingest.On("Configure", id, mock.Anything, mock.Anything).Return(&ingest.Snapshot{ID: id}, nil)
		ts.ingest.On("Process", mock.Anything, id).Return(&ingest.Snapshot{ID: id, Chunks: []domain.Chunk{{ID: "1"}}}, nil)
		ts.ingest.On("Commit", mock.Anything, id).Return(&ingest.CommitResult{Count: 1, Message: "Successfully added 1 documents to the collection"}, &ingest.Snapshot{ID: id}, nil)
		ts.ingest.On("DiscardRun", id).Return(nil)
	}

	out, err := execute(t, "ingest", first, second, "--workers", "2")

	require.NoError(t, err)
	firstAt := strings.Index(out, "Processing first.pdf")
	secondAt := strings.Index(out, "Processing second.docx")
	require.GreaterOrEqual(t, firstAt, 0)
	require.GreaterOrEqual(t, secondAt, 0)
	assert.Less(t, firstAt, secondAt)
	ts.ingest.AssertNumberOfCalls(t, "Commit", 2)
}

func TestIngestCmd_OneBadFileDoesNotStopOthers(t *testing.T) {
	ts := setupTestServices(t)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.pdf")
	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(good, []byte("pdf"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("png"), 0o600))

	ts.ingest.On("CreateRun").Return(ingest.Snapshot{ID: "run-g"})
	ts.ingest.On("Configure", "run-g", mock.Anything, mock.Anything).Return(&ingest.Snapshot{ID: "run-g"}, nil)
	ts.ingest.On("Process", mock.Anything, "run-g").Return(&ingest.Snapshot{ID: "run-g"}, nil)
	ts.ingest.On("Commit", mock.Anything, "run-g").Return(&ingest.CommitResult{Message: "done"}, &ingest.Snapshot{ID: "run-g"}, nil)
	ts.ingest.On("DiscardRun", "run-g").Return(nil)

	out, err := execute(t, "ingest", good, bad)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, out, "done")
	ts.ingest.AssertNumberOfCalls(t, "CreateRun", 1)
}
