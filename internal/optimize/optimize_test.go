package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airliftops/loadmaster/internal/balance"
	"github.com/airliftops/loadmaster/internal/catalog"
	"github.com/airliftops/loadmaster/pkg/core"
)

func c17(t *testing.T) *catalog.AircraftSpec {
	t.Helper()
	spec, err := catalog.SpecFor("C-17")
	require.NoError(t, err)
	return spec
}

func loadWithWeights(acType string, weights ...float64) core.FlightLoad {
	load := core.FlightLoad{ID: "RCH101", AircraftType: acType}
	for i, w := range weights {
		load.Pallets = append(load.Pallets, core.Pallet{
			ID:          string(rune('A' + i)),
			GrossWeight: w,
		})
	}
	return load
}

func TestReoptimize_EmptyLoadUnchanged(t *testing.T) {
	spec := c17(t)
	load := core.FlightLoad{ID: "RCH101", AircraftType: "C-17"}

	out := Reoptimize(load, spec)
	assert.Equal(t, load, out)
	assert.False(t, out.IsModified)
}

func TestReoptimize_PreservesCountAndWeight(t *testing.T) {
	spec := c17(t)
	load := loadWithWeights("C-17", 5000, 8000, 3000, 6500, 1200)
	load = balance.Rebuild(load, spec)

	out := Reoptimize(load, spec)

	assert.Len(t, out.Pallets, len(load.Pallets))
	assert.InDelta(t, load.TotalWeight, out.TotalWeight, 1e-9)
	assert.True(t, out.IsModified)
}

func TestReoptimize_Deterministic(t *testing.T) {
	spec := c17(t)
	load := loadWithWeights("C-17", 5000, 8000, 3000, 6500, 1200, 1200)

	first := Reoptimize(load, spec)
	second := Reoptimize(first, spec)

	// Re-optimizing an already optimized load keeps the assignment.
	require.Len(t, second.Pallets, len(first.Pallets))
	for i := range first.Pallets {
		assert.Equal(t, first.Pallets[i].ID, second.Pallets[i].ID, "pallet order at %d", i)
		assert.Equal(t, first.Pallets[i].Position, second.Pallets[i].Position, "placement at %d", i)
	}
}

func TestReoptimize_DoesNotMutateInput(t *testing.T) {
	spec := c17(t)
	load := loadWithWeights("C-17", 5000, 8000)

	_ = Reoptimize(load, spec)

	assert.Zero(t, load.Pallets[0].Position.LongitudinalCoord)
	assert.False(t, load.IsModified)
}

func TestReoptimize_HeaviestNearestTarget(t *testing.T) {
	spec := c17(t)
	load := loadWithWeights("C-17", 1000, 9000, 2000)

	out := Reoptimize(load, spec)

	target := spec.EnvelopeMidpoint() / 100 * spec.CargoLength
	closest := out.Pallets[0]
	for _, p := range out.Pallets {
		if abs(p.Position.LongitudinalCoord-target) < abs(closest.Position.LongitudinalCoord-target) {
			closest = p
		}
	}
	assert.InDelta(t, 9000, closest.GrossWeight, 1e-9)
}

func TestReoptimize_StationsContiguousAroundCenter(t *testing.T) {
	spec := c17(t)
	load := loadWithWeights("C-17", 4000, 4000, 4000, 4000)

	out := Reoptimize(load, spec)

	// Collected indices are a contiguous run once sorted.
	indices := make([]int, len(out.Pallets))
	for i, p := range out.Pallets {
		indices[i] = p.Position.StationIndex
	}
	for i := 1; i < len(indices); i++ {
		assert.Equal(t, indices[i-1]+1, indices[i], "indices not contiguous: %v", indices)
	}
}

func TestReoptimize_PlacementMatchesStationTable(t *testing.T) {
	spec := c17(t)
	load := loadWithWeights("C-17", 7000, 2500, 9900)

	out := Reoptimize(load, spec)

	for _, p := range out.Pallets {
		st := spec.Stations[p.Position.StationIndex]
		assert.InDelta(t, st.RDLDistance, p.Position.LongitudinalCoord, 1e-9)
		assert.Equal(t, st.IsRamp, p.Position.IsRamp)
	}
}

func TestReoptimize_FullBayUsesEveryStation(t *testing.T) {
	spec := c17(t)
	weights := make([]float64, spec.PalletPositions)
	for i := range weights {
		weights[i] = 1000 + float64(i)*10
	}
	load := loadWithWeights("C-17", weights...)

	out := Reoptimize(load, spec)

	seen := make(map[int]bool)
	for _, p := range out.Pallets {
		seen[p.Position.StationIndex] = true
	}
	assert.Len(t, seen, spec.PalletPositions)
}

func TestCollectCenterOut(t *testing.T) {
	tests := []struct {
		name   string
		center int
		count  int
		n      int
		want   []int
	}{
		{"center out alternating", 5, 18, 5, []int{5, 6, 4, 7, 3}},
		{"aft side exhausted", 16, 18, 5, []int{16, 17, 15, 14, 13}},
		{"forward side exhausted", 1, 18, 5, []int{1, 2, 0, 3, 4}},
		{"center at zero", 0, 18, 3, []int{0, 1, 2}},
		{"single station", 0, 1, 1, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collectCenterOut(tt.center, tt.count, tt.n))
		})
	}
}

func TestCenterIndex(t *testing.T) {
	spec := c17(t)
	target := spec.EnvelopeMidpoint() / 100 * spec.CargoLength
	idx := centerIndex(spec.Stations, target)

	require.Greater(t, idx, 0)
	assert.GreaterOrEqual(t, spec.Stations[idx].RDLDistance, target)
	assert.Less(t, spec.Stations[idx-1].RDLDistance, target)

	// Target aft of every station falls back to the geometric middle.
	assert.Equal(t, len(spec.Stations)/2, centerIndex(spec.Stations, 1e9))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
