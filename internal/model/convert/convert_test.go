package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airliftops/loadmaster/pkg/core"
)

func samplePallet() core.Pallet {
	return core.Pallet{
		ID:          "P1",
		GrossWeight: 7100,
		NetWeight:   6800,
		Height:      96,
		Hazmat:      true,
		Contents: []core.PalletContent{
			{Name: "MRE case", Weight: 42, Count: 12},
			{Name: "Generator", Weight: 900, Count: 1},
		},
		Position: core.Placement{StationIndex: 4, LongitudinalCoord: 268, IsRamp: false},
	}
}

func TestPalletRoundTrip(t *testing.T) {
	want := samplePallet()

	rec, err := PalletToModel(want)
	require.NoError(t, err)
	assert.Equal(t, "P1", rec.PalletID)
	assert.NotEmpty(t, rec.Contents)

	got, err := PalletToCore(rec)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPalletEmptyContents(t *testing.T) {
	p := core.Pallet{ID: "P2", GrossWeight: 500}

	rec, err := PalletToModel(p)
	require.NoError(t, err)

	got, err := PalletToCore(rec)
	require.NoError(t, err)
	assert.Nil(t, got.Contents)
	assert.Equal(t, p.GrossWeight, got.GrossWeight)
}

func TestVehicleRoundTrip(t *testing.T) {
	want := core.Vehicle{
		ID:                   "HMMWV-1",
		Weight:               7700,
		Length:               190,
		Width:                85,
		Height:               74,
		FrontAxleWeight:      3500,
		RearAxleWeight:       4200,
		LongitudinalPosition: 120,
		LateralPosition:      10,
	}

	got := VehicleToCore(VehicleToModel(want))
	assert.Equal(t, want, got)
}

func TestFlightRoundTrip(t *testing.T) {
	load := core.FlightLoad{
		ID:           "AC-1001",
		AircraftType: "C-17",
		Pallets:      []core.Pallet{samplePallet()},
		Vehicles: []core.Vehicle{
			{ID: "HMMWV-1", Weight: 7700, Length: 190, Width: 85, Height: 74},
		},
		Passengers:  core.PassengerBlock{Count: 30},
		TotalWeight: 21550,
		CoBPercent:  24.8,
		IsModified:  true,
	}
	result := core.ValidationResult{
		Valid:  false,
		Issues: []string{"Overweight: 200000 lbs exceeds 170900 lbs max"},
	}

	flight, err := FlightToModel(load, result)
	require.NoError(t, err)
	assert.Equal(t, "AC-1001", flight.FlightID)
	require.Len(t, flight.Pallets, 1)
	require.Len(t, flight.Vehicles, 1)

	gotLoad, gotResult, err := FlightToCore(flight)
	require.NoError(t, err)
	assert.Equal(t, load, gotLoad)
	assert.Equal(t, result, gotResult)
}

func TestFlightEmptyIssues(t *testing.T) {
	load := core.FlightLoad{ID: "AC-2", AircraftType: "C-130J"}

	flight, err := FlightToModel(load, core.ValidationResult{Valid: true})
	require.NoError(t, err)

	_, result, err := FlightToCore(flight)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}
