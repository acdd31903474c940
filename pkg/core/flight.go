// pkg/core/flight.go
package core

// FlightLoad is the full cargo set assigned to one airframe on one
// mission leg. TotalWeight and CoBPercent are derived from the cargo
// lists and are only written by the rebuild path (balance.Rebuild);
// callers never set them independently of the lists.
//
// Mutation is always whole-list replacement followed by a rebuild, so
// a FlightLoad can be copied and passed by value safely.
type FlightLoad struct {
	ID           string         `json:"id"` // flight identifier, e.g. mission number
	AircraftType string         `json:"aircraftType"`
	Pallets      []Pallet       `json:"pallets"` // ordered by station assignment
	Vehicles     []Vehicle      `json:"vehicles,omitempty"`
	Passengers   PassengerBlock `json:"passengers"`

	// Derived fields, see balance.Rebuild.
	TotalWeight float64 `json:"totalWeight"` // lbs
	CoBPercent  float64 `json:"cobPercent"`  // raw %MAC, unclamped

	// IsModified is set after the optimizer has reassigned placements.
	IsModified bool `json:"isModified,omitempty"`
}

// PalletWeight sums gross pallet weight only, excluding rolling stock
// and passengers.
func (f *FlightLoad) PalletWeight() float64 {
	var total float64
	for i := range f.Pallets {
		total += f.Pallets[i].GrossWeight
	}
	return total
}

// ClonePallets returns a deep copy of the pallet list so a caller can
// build a replacement list without touching the original.
func (f *FlightLoad) ClonePallets() []Pallet {
	if f.Pallets == nil {
		return nil
	}
	out := make([]Pallet, len(f.Pallets))
	copy(out, f.Pallets)
	for i := range out {
		if out[i].Contents != nil {
			contents := make([]PalletContent, len(out[i].Contents))
			copy(contents, out[i].Contents)
			out[i].Contents = contents
		}
	}
	return out
}
