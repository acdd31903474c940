// pkg/core/cargo.go
package core

// PalletContent is a single line item riding on a pallet.
type PalletContent struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"` // lbs
	Count  int     `json:"count"`
}

// Placement locates a pallet on the cargo floor.
// LongitudinalCoord is measured in inches from the forward edge of the
// cargo bay (the RDL), not from the aircraft datum. Arms against the
// aircraft datum are resolved by adding the spec's CargoBayFSStart.
type Placement struct {
	StationIndex      int     `json:"stationIndex"`
	LongitudinalCoord float64 `json:"longitudinalCoord"`
	IsRamp            bool    `json:"isRamp"`
}

// Pallet represents a built-up 463L pallet ready for loading.
type Pallet struct {
	ID          string          `json:"id"`
	GrossWeight float64         `json:"grossWeight"` // lbs, pallet + net load
	NetWeight   float64         `json:"netWeight"`   // lbs
	Height      float64         `json:"height"`      // inches
	Hazmat      bool            `json:"hazmat"`
	Contents    []PalletContent `json:"contents,omitempty"`
	Position    Placement       `json:"position"`
}

// Vehicle represents a piece of rolling stock loaded on the cargo floor.
// LongitudinalPosition and LateralPosition locate its center in cargo-bay
// coordinates (inches from the RDL, inches from the bay centerline).
type Vehicle struct {
	ID                   string  `json:"id"`
	Weight               float64 `json:"weight"` // lbs
	Length               float64 `json:"length"` // inches
	Width                float64 `json:"width"`
	Height               float64 `json:"height"`
	FrontAxleWeight      float64 `json:"frontAxleWeight"`
	RearAxleWeight       float64 `json:"rearAxleWeight"`
	LongitudinalPosition float64 `json:"longitudinalPosition"`
	LateralPosition      float64 `json:"lateralPosition"`
}

// PassengerBlock is a group of passengers seated in the seating zone.
// Individual passengers are not tracked; planning weight is a fixed
// per-head constant (see catalog.PassengerWeight).
type PassengerBlock struct {
	Count int `json:"count"`
}
