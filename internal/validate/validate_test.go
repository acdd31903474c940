package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airliftops/loadmaster/internal/catalog"
	"github.com/airliftops/loadmaster/pkg/core"
)

func c17(t *testing.T) *catalog.AircraftSpec {
	t.Helper()
	spec, err := catalog.SpecFor("C-17")
	require.NoError(t, err)
	return spec
}

func palletsAtStations(weight float64, count int, spec *catalog.AircraftSpec) []core.Pallet {
	pallets := make([]core.Pallet, count)
	for i := range pallets {
		st := spec.Stations[min(i, len(spec.Stations)-1)]
		pallets[i] = core.Pallet{
			GrossWeight: weight,
			Position: core.Placement{
				StationIndex:      i,
				LongitudinalCoord: st.RDLDistance,
				IsRamp:            st.IsRamp,
			},
		}
	}
	return pallets
}

func TestValidate_CleanLoad(t *testing.T) {
	spec := c17(t)
	load := &core.FlightLoad{
		AircraftType: "C-17",
		Pallets:      palletsAtStations(5000, 18, spec),
	}

	result := Validate(load, spec)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}

func TestValidate_OverweightScenario(t *testing.T) {
	// 18 pallets of 12,000 lb each is 216,000 lb against a 170,900 lb
	// max payload.
	spec := c17(t)
	load := &core.FlightLoad{
		AircraftType: "C-17",
		Pallets:      palletsAtStations(12000, 18, spec),
	}

	result := Validate(load, spec)
	require.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "Overweight")
	assert.Contains(t, result.Issues[0], "216000 lbs")
	assert.Contains(t, result.Issues[0], "170900 lbs max")
}

func TestValidate_TooManyPallets(t *testing.T) {
	spec := c17(t)
	load := &core.FlightLoad{
		AircraftType: "C-17",
		Pallets:      palletsAtStations(1000, 20, spec),
	}

	result := Validate(load, spec)
	require.False(t, result.Valid)

	var found bool
	for _, issue := range result.Issues {
		if strings.Contains(issue, "Too many pallets: 20 exceeds 18 positions") {
			found = true
		}
	}
	assert.True(t, found, "issues: %v", result.Issues)
}

func TestValidate_CoBOutsideEnvelope(t *testing.T) {
	spec := c17(t)
	// Everything stacked at the forward-most station pulls the CoB far
	// forward of the envelope.
	st := spec.Stations[0]
	load := &core.FlightLoad{
		AircraftType: "C-17",
		Pallets: []core.Pallet{{
			GrossWeight: 8000,
			Position:    core.Placement{LongitudinalCoord: st.RDLDistance},
		}},
	}

	result := Validate(load, spec)
	require.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "Center of balance")
	assert.Contains(t, result.Issues[0], "outside safe envelope (20-35%)")
}

func TestValidate_AllViolationsReported(t *testing.T) {
	// 20 pallets of 12,000 lb all parked at station 0: overweight, too
	// many pallets, and CoB out of envelope, in that order.
	spec := c17(t)
	pallets := make([]core.Pallet, 20)
	for i := range pallets {
		pallets[i] = core.Pallet{
			GrossWeight: 12000,
			Position:    core.Placement{LongitudinalCoord: spec.Stations[0].RDLDistance},
		}
	}
	load := &core.FlightLoad{AircraftType: "C-17", Pallets: pallets}

	result := Validate(load, spec)
	require.False(t, result.Valid)
	require.Len(t, result.Issues, 3)
	assert.Contains(t, result.Issues[0], "Overweight")
	assert.Contains(t, result.Issues[1], "Too many pallets")
	assert.Contains(t, result.Issues[2], "Center of balance")
}

func TestValidate_IgnoresStaleDerivedFields(t *testing.T) {
	spec := c17(t)
	load := &core.FlightLoad{
		AircraftType: "C-17",
		Pallets:      palletsAtStations(12000, 18, spec),
		// Stale derived fields claim the load is fine.
		TotalWeight: 1000,
		CoBPercent:  27.5,
	}

	result := Validate(load, spec)
	assert.False(t, result.Valid)
}

func TestValidate_EmptyLoadIsValid(t *testing.T) {
	spec := c17(t)
	result := Validate(&core.FlightLoad{AircraftType: "C-17"}, spec)
	assert.True(t, result.Valid)
}
