package splice

import "splicegen/domain/fiber"

// portsPerAddress is how many consecutive ports share one address record
// before the assignment walk moves to the next record.
const portsPerAddress = 4

// Build produces the splice table for cfg: a header row plus one row per
// port in ascending order. It is pure — it never mutates cfg, holds no
// state between calls, and is safe for concurrent callers. Well-formed
// input never fails; the boundary layer rejects negative ports and
// non-positive fiber counts before calling Build.
func Build(cfg Config) Table {
	table := Table{Header: buildHeader(cfg)}

	// The assignment cursor lives here and nowhere else. It advances
	// after every fourth port, but only while a further record exists:
	// the last record absorbs all remaining ports.
	addressIndex := 0

	for port := 1; port <= cfg.Ports; port++ {
		row := Row{
			Port:      port,
			MainCable: cfg.MainCableName,
			Groups:    make([]CableGroup, 0, len(cfg.Cables)),
		}

		for _, cable := range cfg.Cables {
			if port <= cable.FiberCount {
				row.Groups = append(row.Groups, CableGroup{
					Populated: true,
					Port:      port,
					Cable:     cable.Name,
					Position:  fiber.Resolve(port, fiber.DefaultFibersPerTube),
				})
			} else {
				row.Groups = append(row.Groups, CableGroup{})
			}
		}

		if addressIndex < len(cfg.Addresses) {
			record := cfg.Addresses[addressIndex]
			row.MST = record.MST
			row.Address = record.Address
			if row.Address == "" {
				row.Address = Unused
			}
			if record.Sheet != nil {
				row.SheetLabel = SheetLabel(*record.Sheet)
			}
			row.Terminal = record.Terminal
		} else {
			row.Address = Unused
		}

		if port%portsPerAddress == 0 && addressIndex+1 < len(cfg.Addresses) {
			addressIndex++
		}

		table.Rows = append(table.Rows, row)
	}

	return table
}

func buildHeader(cfg Config) []string {
	header := make([]string, 0, 4+6*len(cfg.Cables))
	header = append(header, "Port #", cfg.MainCableName)
	for range cfg.Cables {
		header = append(header,
			"Port #", "Cable", "Buffer Tube", "Buffer Color", "Fiber #", "Fiber Color")
	}
	return append(header, "MST", "Address")
}
