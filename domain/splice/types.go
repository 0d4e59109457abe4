// Package splice builds splice sheets: port-per-row tables mapping a
// distribution hub's ports to physical fiber positions and customer
// terminal assignments.
package splice

import (
	"fmt"
	"strconv"

	"splicegen/domain/fiber"
)

// Unused marks an address cell with no customer behind it. The empty
// string is the canonical blank for every other cell so tables round-trip
// cleanly through spreadsheets.
const Unused = "Unused"

// CableBundle is one physical distribution cable entering the hub.
// Bundle order is significant: it fixes the left-to-right column order.
type CableBundle struct {
	Name       string `json:"name"`
	FiberCount int    `json:"fiber_count"`
}

// AddressRecord is one customer premise / service terminal assignment.
// Records are consumed in order, one per block of four ports.
type AddressRecord struct {
	MST      string `json:"mst"`
	Address  string `json:"address"`
	Sheet    *int   `json:"sheet,omitempty"`
	Terminal string `json:"terminal,omitempty"`
}

// Config is the full description of a hub to generate a sheet for.
type Config struct {
	Ports         int             `json:"ports"`
	MainCableName string          `json:"main_cable_name"`
	Cables        []CableBundle   `json:"cables"`
	Addresses     []AddressRecord `json:"addresses"`
}

// CableGroup is the six-cell block a single cable contributes to a row.
// A port past the cable's capacity leaves the group unpopulated, which
// flattens to six blank cells.
type CableGroup struct {
	Populated bool
	Port      int
	Cable     string
	Position  fiber.Position
}

// Row holds one port's cells as named fields. Flattening to a positional
// slice happens only at the serialization boundary, so the conditional
// sheet/terminal cells cannot shift fixed columns around.
type Row struct {
	Port       int
	MainCable  string
	Groups     []CableGroup
	MST        string
	Address    string
	SheetLabel string
	Terminal   string
}

// Cells flattens the row into its positional cell sequence. Length varies:
// the sheet label and terminal cells are appended only when present.
func (r Row) Cells() []string {
	cells := make([]string, 0, 4+6*len(r.Groups))
	cells = append(cells, strconv.Itoa(r.Port), r.MainCable)

	for _, g := range r.Groups {
		if g.Populated {
			cells = append(cells,
				strconv.Itoa(g.Port),
				g.Cable,
				strconv.Itoa(g.Position.BufferTube),
				g.Position.BufferColor,
				strconv.Itoa(g.Position.FiberNumber),
				g.Position.FiberColor,
			)
		} else {
			cells = append(cells, "", "", "", "", "", "")
		}
	}

	cells = append(cells, r.MST, r.Address)
	if r.SheetLabel != "" {
		cells = append(cells, r.SheetLabel)
	}
	if r.Terminal != "" {
		cells = append(cells, r.Terminal)
	}
	return cells
}

// Table is a complete splice sheet: the header plus one row per port.
type Table struct {
	Header []string
	Rows   []Row
}

// Grid flattens the whole table, header first, for tabular serialization.
func (t Table) Grid() [][]string {
	grid := make([][]string, 0, len(t.Rows)+1)
	grid = append(grid, t.Header)
	for _, row := range t.Rows {
		grid = append(grid, row.Cells())
	}
	return grid
}

// SheetLabel renders a sheet number the way field techs expect to read it.
func SheetLabel(sheet int) string {
	return fmt.Sprintf("SHEET # %d", sheet)
}
