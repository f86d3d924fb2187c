package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kolosaldash/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)

	assert.Len(t, row, 6)
	assert.Equal(t, "Document ID", row[0])
	assert.Equal(t, "Metadata", row[5])
}

func TestDocumentToRow(t *testing.T) {
	doc := domain.DocumentInfo{
		ID:   "doc-1",
		Text: "héllo",
		Metadata: map[string]any{
			"filename":    "report.pdf",
			"chunk_index": float64(3),
		},
	}

	row := documentToRow(&doc)

	assert.Equal(t, "doc-1", row[0])
	assert.Equal(t, "report.pdf", row[1])
	assert.Equal(t, "3", row[2])
	assert.Equal(t, "5", row[3])
	assert.Equal(t, "héllo", row[4])
	assert.JSONEq(t, `{"filename":"report.pdf","chunk_index":3}`, row[5])
}

func TestDocumentToRow_NoMetadata(t *testing.T) {
	row := documentToRow(&domain.DocumentInfo{ID: "doc-2", Text: "x"})

	assert.Empty(t, row[1])
	assert.Empty(t, row[2])
	assert.Empty(t, row[5])
}

func TestWrite_CSVStartsWithBOM(t *testing.T) {
	var buf bytes.Buffer
	docs := []domain.DocumentInfo{{ID: "a", Text: "line one\nline two"}, {ID: "b", Text: "comma, inside"}}

	require.NoError(t, Write(&buf, FormatCSV, docs))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, BOM))
	rows, err := csv.NewReader(bytes.NewReader(data[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "line one\nline two", rows[1][4])
	assert.Equal(t, "comma, inside", rows[2][4])
}

func TestWrite_XLSX(t *testing.T) {
	var buf bytes.Buffer
	docs := []domain.DocumentInfo{{ID: "a", Text: "alpha"}, {ID: "b", Text: "beta"}}

	require.NoError(t, Write(&buf, FormatXLSX, docs))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Document ID", rows[0][0])
	assert.Equal(t, "b", rows[2][0])
	assert.Equal(t, "beta", rows[2][4])
}

func TestTruncateCell(t *testing.T) {
	long := strings.Repeat("a", maxCellChars+10)
	assert.Len(t, truncateCell(long), maxCellChars)
	assert.Equal(t, "short", truncateCell("short"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"documents", "documents"},
		{"Q3 Knowledge Base", "Q3_Knowledge_Base"},
		{"a//b..c", "a_b_c"},
		{"***", "documents"},
		{strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.input))
	}
}

func TestBuildFilename(t *testing.T) {
	date := time.Now().Format("2006-01-02")
	assert.Equal(t, "kb_"+date+".xlsx", BuildFilename("kb", FormatXLSX))
	assert.Equal(t, "kb_"+date+".csv", BuildFilename("kb", FormatCSV))
}
