package excel

import (
	"github.com/xuri/excelize/v2"

	"splicegen/domain/splice"
	"splicegen/internal"
	"splicegen/internal/errors"
)

const sheetName = "Sheet1"

// Column width hints so the sheet reads without manual resizing: narrow
// port/tube/fiber number columns, wide cable and address columns.
const (
	narrowColWidth  = 9
	defaultColWidth = 14
	addressColWidth = 26
)

// TableWriter serializes splice tables to .xlsx files.
type TableWriter struct {
	log *internal.Logger
}

// NewTableWriter creates a writer using the default logger.
func NewTableWriter() *TableWriter {
	return &TableWriter{log: internal.DefaultLogger}
}

// WriteTable writes the table to path as a single-sheet workbook, header
// in row 1 and one row per port below it.
func (w *TableWriter) WriteTable(path string, table splice.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for rowIdx, row := range table.Grid() {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return errors.IOError("invalid cell coordinates", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return errors.IOError("failed to set cell value", err)
			}
		}
	}

	if err := w.setColumnWidths(f, table); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return errors.IOError("failed to save workbook", err)
	}

	w.log.Info("[TableWriter] wrote %d rows to %s", len(table.Rows), path)
	return nil
}

func (w *TableWriter) setColumnWidths(f *excelize.File, table splice.Table) error {
	for i, name := range table.Header {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.IOError("invalid column number", err)
		}

		width := float64(defaultColWidth)
		switch name {
		case "Port #", "Buffer Tube", "Fiber #":
			width = narrowColWidth
		case "Address", "MST":
			width = addressColWidth
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return errors.IOError("failed to set column width", err)
		}
	}
	return nil
}
