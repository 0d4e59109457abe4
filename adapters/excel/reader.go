// Package excel adapts splice tables to and from spreadsheet files with
// excelize, plus a CSV fallback for uploads.
package excel

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"splicegen/domain/splice"
	"splicegen/internal"
	"splicegen/internal/errors"
)

// AddressReader extracts address/terminal records from uploaded sheets.
// Parsing is best-effort: column positions are sniffed from the header
// row by name, with positional fallbacks when nothing matches.
type AddressReader struct {
	log *internal.Logger
}

// NewAddressReader creates a reader using the default logger.
func NewAddressReader() *AddressReader {
	return &AddressReader{log: internal.DefaultLogger}
}

// ReadAddresses parses an uploaded workbook or CSV into address records.
// The file type is chosen by extension; anything that is not .csv is
// treated as a workbook.
func (r *AddressReader) ReadAddresses(filename string, src io.Reader) ([]splice.AddressRecord, error) {
	var (
		rows [][]string
		err  error
	)

	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		rows, err = r.readCSVRows(src)
	} else {
		rows, err = r.readWorkbookRows(src)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.InputParseError("file must have at least a header row and one data row", nil)
	}

	records := r.parseRows(rows)
	r.log.Info("[AddressReader] %s parsed (%d data rows, %d records)", filename, len(rows)-1, len(records))
	return records, nil
}

func (r *AddressReader) readWorkbookRows(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.InputParseError("failed to open workbook", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.InputParseError("failed to read first sheet", err)
	}
	return rows, nil
}

func (r *AddressReader) readCSVRows(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.InputParseError("failed to read CSV file", err)
	}
	return rows, nil
}

// columnMap holds the sniffed column index per logical field, -1 when the
// header row names no matching column.
type columnMap struct {
	mst      int
	address  int
	sheet    int
	terminal int
}

func sniffColumns(header []string) columnMap {
	cols := columnMap{mst: -1, address: -1, sheet: -1, terminal: -1}
	for j, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		switch {
		case cols.mst == -1 && (strings.Contains(key, "mst") || strings.Contains(key, "service terminal")):
			cols.mst = j
		case cols.address == -1 && (strings.Contains(key, "address") || strings.Contains(key, "street")):
			cols.address = j
		case cols.sheet == -1 && strings.Contains(key, "sheet"):
			cols.sheet = j
		case cols.terminal == -1 && (strings.Contains(key, "terminal") || strings.Contains(key, "tap")):
			cols.terminal = j
		}
	}

	// Positional fallback: first column is the terminal ID, second the
	// address. Lossy by nature, but better than rejecting the upload.
	if cols.mst == -1 {
		cols.mst = 0
	}
	if cols.address == -1 && len(header) > 1 {
		cols.address = 1
	}
	return cols
}

func (r *AddressReader) parseRows(rows [][]string) []splice.AddressRecord {
	cols := sniffColumns(rows[0])

	var records []splice.AddressRecord
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}

		record := splice.AddressRecord{
			MST:     cellAt(row, cols.mst),
			Address: cellAt(row, cols.address),
		}

		if n, ok := parseSheetNumber(cellAt(row, cols.sheet)); ok {
			record.Sheet = &n
		} else {
			// No usable sheet value: fall back to the same deterministic
			// rule the sample provider uses, keyed by record order.
			n := splice.SampleSheet(len(records))
			record.Sheet = &n
		}

		if cols.terminal != -1 {
			record.Terminal = cellAt(row, cols.terminal)
		}

		records = append(records, record)
	}
	return records
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseSheetNumber accepts a bare number or labeled forms like
// "SHEET # 12" by keeping only the digits.
func parseSheetNumber(cell string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cell)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
