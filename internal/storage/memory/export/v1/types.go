// Package v1 contains the v1 manifest format for flight load plans.
// The format is what downstream ramp coordination tools consume.
package v1

// Export is the root JSON structure for v1 manifests
type Export struct {
	FormatVersion int      `json:"formatVersion"`
	FlightID      string   `json:"flightId"`
	AircraftType  string   `json:"aircraftType"`
	Passengers    int      `json:"passengers"`
	TotalWeight   float64  `json:"totalWeight"`
	CoBPercent    float64  `json:"cobPercent"`
	Valid         bool     `json:"valid"`
	Modified      bool     `json:"modified"`
	Issues        []string `json:"issues"`
	Stations      [][]any  `json:"stations"`
	Vehicles      [][]any  `json:"vehicles"`
}

// Station row layout:
//   [stationIndex, longitudinalCoord, isRamp, palletId, grossWeight, hazmat]
// Vehicle row layout:
//   [vehicleId, weight, length, width, longitudinalPosition, lateralPosition]
