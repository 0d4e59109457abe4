package summary

import (
	"testing"

	"splicegen/domain/splice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	cfg := splice.Config{
		Ports: 48,
		Cables: []splice.CableBundle{
			{Name: "DIST A", FiberCount: 48},
			{Name: "DIST B", FiberCount: 96},
			{Name: "DIST C", FiberCount: 24},
		},
	}

	s := Summarize(cfg)

	require.Len(t, s.Cables, 3)
	assert.Equal(t, 48, s.Ports)

	assert.Equal(t, 48, s.Cables[0].PortsUsed)
	assert.InDelta(t, 1.0, s.Cables[0].Fill, 1e-9)

	assert.Equal(t, 48, s.Cables[1].PortsUsed)
	assert.InDelta(t, 0.5, s.Cables[1].Fill, 1e-9)

	// Usage is capped at the cable's capacity.
	assert.Equal(t, 24, s.Cables[2].PortsUsed)
	assert.InDelta(t, 1.0, s.Cables[2].Fill, 1e-9)

	assert.InDelta(t, (1.0+0.5+1.0)/3, s.MeanFill, 1e-9)
	assert.InDelta(t, 0.5, s.MinFill, 1e-9)
	assert.InDelta(t, 1.0, s.MaxFill, 1e-9)
}

func TestSummarize_NoCables(t *testing.T) {
	s := Summarize(splice.Config{Ports: 96})

	assert.Empty(t, s.Cables)
	assert.Zero(t, s.MeanFill)
	assert.Zero(t, s.MinFill)
	assert.Zero(t, s.MaxFill)
}
