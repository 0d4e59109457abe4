// Package fiber maps 1-based fiber indexes to their physical position
// inside a loose-tube cable: buffer tube, in-tube fiber number, and the
// TIA-598-C color codes for both.
package fiber

// DefaultFibersPerTube is the fiber count per buffer tube used for all
// splice sheets. Standard loose-tube construction packs 12 fibers per tube.
const DefaultFibersPerTube = 12

// TIA-598-C ordering: Blue, Orange, Green, Brown, Slate, White, Red,
// Black, Yellow, Violet, Rose, Aqua. Buffer tubes use the upper-case
// codes, individual fibers the lower-case ones.
var (
	colorNames = [12]string{
		"Blue", "Orange", "Green", "Brown", "Slate", "White",
		"Red", "Black", "Yellow", "Violet", "Rose", "Aqua",
	}

	bufferColorCycle = [12]string{
		"BL", "OR", "GR", "BR", "SL", "WH",
		"RD", "BK", "YL", "VI", "RS", "AQ",
	}

	fiberColorCycle = [12]string{
		"bl", "or", "gr", "br", "sl", "wh",
		"rd", "bk", "yl", "vi", "rs", "aq",
	}
)

// Position is the physical location of a single fiber. It is derived on
// demand and never stored.
type Position struct {
	BufferTube  int    `json:"buffer_tube"`
	BufferColor string `json:"buffer_color"`
	FiberNumber int    `json:"fiber_number"`
	FiberColor  string `json:"fiber_color"`
}

// Resolve maps a 1-based fiber index to its position. The buffer tube and
// in-tube fiber number grow monotonically with the index; the color codes
// wrap on the 12-entry cycles. Callers must pass positive values; the
// boundary layer rejects anything else before it reaches here.
func Resolve(index, fibersPerTube int) Position {
	tube := (index-1)/fibersPerTube + 1
	number := (index-1)%fibersPerTube + 1

	return Position{
		BufferTube:  tube,
		BufferColor: bufferColorCycle[(tube-1)%12],
		FiberNumber: number,
		FiberColor:  fiberColorCycle[(number-1)%12],
	}
}

// StandardEntry is one row of the TIA-598-C color listing.
type StandardEntry struct {
	Position   int    `json:"position"`
	Name       string `json:"name"`
	BufferCode string `json:"buffer_code"`
	FiberCode  string `json:"fiber_code"`
}

// Standard returns the full 12-entry color standard in cycle order.
func Standard() []StandardEntry {
	entries := make([]StandardEntry, 0, len(colorNames))
	for i, name := range colorNames {
		entries = append(entries, StandardEntry{
			Position:   i + 1,
			Name:       name,
			BufferCode: bufferColorCycle[i],
			FiberCode:  fiberColorCycle[i],
		})
	}
	return entries
}
