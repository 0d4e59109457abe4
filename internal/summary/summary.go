// Package summary derives hub utilization figures for generate responses.
// Read-only over the config; the splice core stays untouched.
package summary

import (
	"github.com/montanaflynn/stats"

	"splicegen/domain/splice"
)

// CableUsage reports how much of one distribution cable the hub consumes.
type CableUsage struct {
	Cable     string  `json:"cable"`
	Capacity  int     `json:"capacity"`
	PortsUsed int     `json:"ports_used"`
	Fill      float64 `json:"fill"`
}

// HubSummary aggregates fill across all cables in a config.
type HubSummary struct {
	Ports    int          `json:"ports"`
	Cables   []CableUsage `json:"cables"`
	MeanFill float64      `json:"mean_fill"`
	MinFill  float64      `json:"min_fill"`
	MaxFill  float64      `json:"max_fill"`
}

// Summarize computes per-cable usage and the fill distribution for cfg.
// A hub with no cables yields zeroed aggregates.
func Summarize(cfg splice.Config) HubSummary {
	s := HubSummary{Ports: cfg.Ports}

	fills := make([]float64, 0, len(cfg.Cables))
	for _, cable := range cfg.Cables {
		used := cfg.Ports
		if used > cable.FiberCount {
			used = cable.FiberCount
		}
		fill := 0.0
		if cable.FiberCount > 0 {
			fill = float64(used) / float64(cable.FiberCount)
		}
		s.Cables = append(s.Cables, CableUsage{
			Cable:     cable.Name,
			Capacity:  cable.FiberCount,
			PortsUsed: used,
			Fill:      fill,
		})
		fills = append(fills, fill)
	}

	if len(fills) == 0 {
		return s
	}

	// stats only errors on empty input, which is excluded above.
	s.MeanFill, _ = stats.Mean(fills)
	s.MinFill, _ = stats.Min(fills)
	s.MaxFill, _ = stats.Max(fills)
	return s
}
