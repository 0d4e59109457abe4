// Package ports holds the interfaces the HTTP layer depends on, so
// spreadsheet I/O stays swappable and mockable.
package ports

import (
	"io"

	"splicegen/domain/splice"
)

// SheetWriter serializes a built splice table to a spreadsheet file.
type SheetWriter interface {
	WriteTable(path string, table splice.Table) error
}

// SheetReader extracts address records from an uploaded workbook or CSV.
// Parsing is best-effort by design; it only fails when the file itself is
// unreadable or carries no data rows.
type SheetReader interface {
	ReadAddresses(filename string, src io.Reader) ([]splice.AddressRecord, error)
}
