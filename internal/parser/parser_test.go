package parser

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	return NewParser(slog.Default())
}

func TestParseMovementList(t *testing.T) {
	input := `KIND,ID,W1,W2,D1,D2
# built-up pallets
PALLET,P-001,5200,4900,88,N
PALLET,P-002,7400,7000,96,Y,ammunition@7000
VEHICLE,HMMWV-1,12000,180,85,74,5200,6800
PAX,30
PAX,12
`
	list, err := newTestParser().ParseMovementList(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, list.Pallets, 2)
	require.Len(t, list.Vehicles, 1)
	assert.Equal(t, 42, list.Passengers)

	assert.Equal(t, "P-001", list.Pallets[0].ID)
	assert.InDelta(t, 5200, list.Pallets[0].GrossWeight, 1e-9)
	assert.False(t, list.Pallets[0].Hazmat)
	assert.True(t, list.Pallets[1].Hazmat)
	assert.Equal(t, "HMMWV-1", list.Vehicles[0].ID)
	assert.InDelta(t, 6800, list.Vehicles[0].RearAxleWeight, 1e-9)
}

func TestParseMovementList_MalformedRowFailsWholeList(t *testing.T) {
	input := "PALLET,P-001,5200,4900,88\nPALLET,P-002,not-a-weight,0,88\n"

	_, err := newTestParser().ParseMovementList(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseMovementList_UnknownKind(t *testing.T) {
	_, err := newTestParser().ParseMovementList(strings.NewReader("CONTAINER,C-1,100\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown row kind")
}

func TestParseMovementList_Empty(t *testing.T) {
	list, err := newTestParser().ParseMovementList(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, list.Pallets)
	assert.Empty(t, list.Vehicles)
	assert.Zero(t, list.Passengers)
}

func TestParsePalletRow(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		wantErr string
	}{
		{"minimal", []string{"P-1", "5000", "4700", "88"}, ""},
		{"float weights", []string{"P-1", "5000.00", "4700.5", "88"}, ""},
		{"thousands separator", []string{"P-1", `12,500`, "12000", "88"}, ""},
		{"missing id", []string{" ", "5000", "4700", "88"}, "missing ID"},
		{"too few fields", []string{"P-1", "5000"}, "need at least 4"},
		{"negative weight", []string{"P-1", "-10", "0", "88"}, "gross weight"},
		{"bad hazmat", []string{"P-1", "5000", "4700", "88", "maybe"}, "hazmat"},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pallet, err := p.ParsePalletRow(tt.fields)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "P-1", pallet.ID)
		})
	}
}

func TestParsePalletRow_Contents(t *testing.T) {
	p := newTestParser()
	pallet, err := p.ParsePalletRow([]string{
		"P-1", "5000", "4700", "88", "N", "MRE case@42x12; generator@1800",
	})
	require.NoError(t, err)

	require.Len(t, pallet.Contents, 2)
	assert.Equal(t, "MRE case", pallet.Contents[0].Name)
	assert.InDelta(t, 42, pallet.Contents[0].Weight, 1e-9)
	assert.Equal(t, 12, pallet.Contents[0].Count)
	assert.Equal(t, "generator", pallet.Contents[1].Name)
	assert.Equal(t, 1, pallet.Contents[1].Count)
}

func TestParseVehicleRow(t *testing.T) {
	p := newTestParser()

	vehicle, err := p.ParseVehicleRow([]string{"LMTV-1", "21000", "254", "96", "106"})
	require.NoError(t, err)
	assert.Equal(t, "LMTV-1", vehicle.ID)
	assert.InDelta(t, 21000, vehicle.Weight, 1e-9)
	assert.Zero(t, vehicle.FrontAxleWeight)

	_, err = p.ParseVehicleRow([]string{"LMTV-1", "21000"})
	assert.Error(t, err)
}

func TestParsePaxRow(t *testing.T) {
	p := newTestParser()

	block, err := p.ParsePaxRow([]string{"30"})
	require.NoError(t, err)
	assert.Equal(t, 30, block.Count)

	// Float-formatted counts come out of spreadsheet exports.
	block, err = p.ParsePaxRow([]string{"30.00"})
	require.NoError(t, err)
	assert.Equal(t, 30, block.Count)

	_, err = p.ParsePaxRow([]string{"-4"})
	assert.Error(t, err)
}
