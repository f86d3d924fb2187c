package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"kolosaldash/internal/domain"
)

const sheetName = "Documents"

// maxCellChars is the cell text limit of the XLSX format.
const maxCellChars = 32767

// WriteXLSX writes docs as a single-sheet workbook.
func WriteXLSX(w io.Writer, docs []domain.DocumentInfo) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i := range docs {
		row := documentToRow(&docs[i])
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = truncateCell(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

func truncateCell(s string) string {
	runes := []rune(s)
	if len(runes) <= maxCellChars {
		return s
	}
	return string(runes[:maxCellChars])
}
