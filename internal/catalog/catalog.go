// Package catalog holds the static physical and regulatory constants for
// each supported airframe: station tables, payload limits, and the
// center-of-balance envelope. The catalog is read-only; changing an
// aircraft requires a recompile, never runtime mutation.
package catalog

import (
	"errors"
	"fmt"
)

// Planning constants shared by every call site. These are deliberately
// centralized here rather than re-declared per function.
const (
	// PassengerWeight is the planning weight for one passenger with
	// carry-on gear, in lbs.
	PassengerWeight = 225.0

	// SeatingZoneSpan is the fixed longitudinal span of the passenger
	// seating zone, in inches. Passengers are modeled as a point load at
	// the middle of this span.
	SeatingZoneSpan = 100.0

	// SeatingZoneFraction locates the forward edge of the seating zone
	// as a fraction of cargo bay length, measured from the RDL.
	SeatingZoneFraction = 0.4

	// VehicleClearance is the minimum longitudinal gap between parked
	// vehicles, in inches.
	VehicleClearance = 12.0
)

// ErrUnknownAircraftType is returned by SpecFor for aircraft types not
// present in the catalog. The lookup never silently defaults.
var ErrUnknownAircraftType = errors.New("unknown aircraft type")

// StationConstraint describes one physical pallet position.
type StationConstraint struct {
	// RDLDistance is the station centroid in inches aft of the RDL
	// (forward edge of the cargo bay), not the aircraft datum.
	RDLDistance float64
	MaxHeight   float64 // inches
	MaxWidth    float64 // inches
	MaxWeight   float64 // lbs
	IsRamp      bool
}

// AircraftSpec is the immutable physical description of one aircraft
// type. All lengths are inches, all weights lbs, CoB bounds in %MAC.
type AircraftSpec struct {
	Type string

	CargoLength float64
	CargoWidth  float64
	CargoHeight float64

	PalletPositions int
	RampPositions   map[int]bool // 1-indexed station numbers on the ramp

	MaxPayload         float64
	PerPositionWeight  float64
	RampPositionWeight float64

	CoBMinPercent   float64
	CoBMaxPercent   float64
	MACLength       float64
	LEMACStation    float64
	CargoBayFSStart float64

	Stations []StationConstraint

	SeatCapacity int
}

// EnvelopeMidpoint is the CoB target for placement optimization and the
// defined default for an empty load.
func (s *AircraftSpec) EnvelopeMidpoint() float64 {
	return (s.CoBMinPercent + s.CoBMaxPercent) / 2
}

// PassengerArm returns the aircraft-datum arm of the passenger point
// load for this airframe.
func (s *AircraftSpec) PassengerArm() float64 {
	return s.CargoBayFSStart + s.CargoLength*SeatingZoneFraction + SeatingZoneSpan/2
}

// Validate checks the static invariants of a spec. A failure here is a
// programming error in the catalog, not a per-flight condition.
func (s *AircraftSpec) Validate() error {
	if len(s.Stations) == 0 {
		return fmt.Errorf("aircraft %s: empty station table", s.Type)
	}
	if len(s.Stations) != s.PalletPositions {
		return fmt.Errorf("aircraft %s: %d stations for %d pallet positions",
			s.Type, len(s.Stations), s.PalletPositions)
	}
	if s.CoBMinPercent >= s.CoBMaxPercent {
		return fmt.Errorf("aircraft %s: CoB envelope inverted (%.1f >= %.1f)",
			s.Type, s.CoBMinPercent, s.CoBMaxPercent)
	}
	if s.MACLength <= 0 {
		return fmt.Errorf("aircraft %s: non-positive MAC length", s.Type)
	}
	for pos := range s.RampPositions {
		if pos < 1 || pos > len(s.Stations) {
			return fmt.Errorf("aircraft %s: ramp position %d out of range", s.Type, pos)
		}
		if !s.Stations[pos-1].IsRamp {
			return fmt.Errorf("aircraft %s: ramp position %d maps to a non-ramp station", s.Type, pos)
		}
	}
	return nil
}

// stationRow builds evenly spaced station constraints. firstRDL is the
// centroid of station 1; rampFrom (1-indexed, 0 = none) marks the ramp
// stations, which carry the tighter height and weight limits.
func stationRow(count int, firstRDL, spacing, maxHeight, rampHeight, maxWidth, maxWeight, rampWeight float64, rampFrom int) []StationConstraint {
	stations := make([]StationConstraint, count)
	for i := range stations {
		st := StationConstraint{
			RDLDistance: firstRDL + float64(i)*spacing,
			MaxHeight:   maxHeight,
			MaxWidth:    maxWidth,
			MaxWeight:   maxWeight,
		}
		if rampFrom > 0 && i+1 >= rampFrom {
			st.IsRamp = true
			st.MaxHeight = rampHeight
			st.MaxWeight = rampWeight
		}
		stations[i] = st
	}
	return stations
}

// specs is the closed set of supported airframes.
var specs = map[string]*AircraftSpec{
	"C-17": {
		Type:        "C-17",
		CargoLength: 1056,
		CargoWidth:  216,
		CargoHeight: 148,

		PalletPositions: 18,
		RampPositions:   map[int]bool{17: true, 18: true},

		MaxPayload:         170900,
		PerPositionWeight:  10355,
		RampPositionWeight: 7500,

		CoBMinPercent:   20,
		CoBMaxPercent:   35,
		MACLength:       309.5,
		LEMACStation:    869.7,
		CargoBayFSStart: 428,

		Stations: stationRow(18, 40, 57, 148, 114, 108, 10355, 7500, 17),

		SeatCapacity: 102,
	},
	"C-130J": {
		Type:        "C-130J",
		CargoLength: 492,
		CargoWidth:  123,
		CargoHeight: 108,

		PalletPositions: 8,
		RampPositions:   map[int]bool{8: true},

		MaxPayload:         44000,
		PerPositionWeight:  10355,
		RampPositionWeight: 4664,

		CoBMinPercent:   15,
		CoBMaxPercent:   30,
		MACLength:       164.5,
		LEMACStation:    487.4,
		CargoBayFSStart: 245,

		Stations: stationRow(8, 24, 61, 108, 76, 108, 10355, 4664, 8),

		SeatCapacity: 92,
	},
}

func init() {
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
	}
}

// SpecFor returns the spec for an aircraft type. The returned spec is
// shared and must not be mutated.
func SpecFor(aircraftType string) (*AircraftSpec, error) {
	s, ok := specs[aircraftType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAircraftType, aircraftType)
	}
	return s, nil
}

// Types lists the supported aircraft types.
func Types() []string {
	return []string{"C-17", "C-130J"}
}
