package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kolosaldash/internal/domain"
)

func TestDocumentsListCmd_PrintsPage(t *testing.T) {
	ts := setupTestServices(t)
	ts.documents.On("Page", mock.Anything, 2).Return(&domain.DocumentPage{
		CollectionName: "documents",
		Documents:      []domain.DocumentInfo{{ID: "doc-11", Text: "first line\nsecond line"}},
		Page:           2,
		PageSize:       10,
		TotalPages:     2,
		TotalCount:     11,
	}, nil)

	out, err := execute(t, "documents", "list", "--page", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "page 2 of 2 (11 documents)")
	assert.Contains(t, out, "doc-11")
	assert.Contains(t, out, "first line second line")
}

func TestDocumentsListCmd_Empty(t *testing.T) {
	ts := setupTestServices(t)
	ts.documents.On("Page", mock.Anything, 1).Return(&domain.DocumentPage{Page: 1}, nil)

	out, err := execute(t, "documents", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No documents found")
}

func TestDocumentsListCmd_Error(t *testing.T) {
	ts := setupTestServices(t)
	ts.documents.On("Page", mock.Anything, 1).Return(nil, domain.ErrRemoteRequest)

	_, err := execute(t, "documents", "list")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRemoteRequest))
}

func TestDocumentsDeleteCmd(t *testing.T) {
	ts := setupTestServices(t)
	ts.documents.On("Delete", mock.Anything, []string{"a", "b"}).Return(map[string]any{}, nil)

	out, err := execute(t, "documents", "delete", "a", "b")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 documents")
	ts.documents.AssertExpectations(t)
}

func TestDocumentsDeleteCmd_RequiresID(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "documents", "delete")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))
	assert.Equal(t, "a b", preview("a\nb", 10))
	assert.Equal(t, strings.Repeat("é", 3)+"...", preview(strings.Repeat("é", 5), 3))
}

func TestDocumentsExportCmd_WritesCSV(t *testing.T) {
	ts := setupTestServices(t)
	ts.documents.On("Export", mock.Anything).Return(&domain.DocumentExport{
		CollectionName: "documents",
		Documents:      []domain.DocumentInfo{{ID: "doc-1", Text: "alpha"}, {ID: "doc-2", Text: "beta"}},
		NotFoundIDs:    []string{"doc-3"},
	}, nil)
	path := filepath.Join(t.TempDir(), "out.csv")

	out, err := execute(t, "documents", "export", "--out", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 documents to "+path)
	assert.Contains(t, out, "1 documents disappeared during export")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "doc-2,,,4,beta,")
}

func TestDocumentsExportCmd_UnknownFormat(t *testing.T) {
	ts := setupTestServices(t)

	_, err := execute(t, "documents", "export", "--format", "pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	ts.documents.AssertNotCalled(t, "Export", mock.Anything)
}
