// Package balance implements the weight aggregator and the moment-based
// center-of-balance solver. Everything here is a pure function over the
// cargo lists: no I/O, no stored state, safe to call concurrently as
// long as each call gets its own FlightLoad.
package balance

import (
	"math"

	"github.com/airliftops/loadmaster/internal/catalog"
	"github.com/airliftops/loadmaster/pkg/core"
)

// CoBResult is the solver output for one cargo set.
type CoBResult struct {
	// CGStation is the center of gravity in inches from the aircraft
	// datum. Zero when the load is empty.
	CGStation float64

	// CoBPercent is the raw %MAC value. It can fall outside [0,100]
	// depending on datum placement; the raw value drives the envelope
	// decision.
	CoBPercent float64

	// DisplayPercent is CoBPercent clamped to [0,100] for presentation
	// only. Never use it for the envelope check: clamping can mask an
	// actual overshoot.
	DisplayPercent float64

	// InEnvelope reports whether the raw percent is inside the spec's
	// CoB envelope.
	InEnvelope bool

	// Deviation is the signed distance in %MAC to the nearest violated
	// envelope bound, 0 when in envelope. Negative means too far
	// forward, positive too far aft.
	Deviation float64
}

// TotalWeight sums pallet gross weight, vehicle weight, and passenger
// planning weight. The empty cargo set weighs 0.
func TotalWeight(pallets []core.Pallet, vehicles []core.Vehicle, paxCount int) float64 {
	var total float64
	for i := range pallets {
		total += pallets[i].GrossWeight
	}
	for i := range vehicles {
		total += vehicles[i].Weight
	}
	total += float64(paxCount) * catalog.PassengerWeight
	return total
}

// SolveCoB converts placed cargo into a CG station and %MAC figure and
// decides envelope membership. A zero-weight load is not an error: it
// resolves to the envelope midpoint so an empty aircraft reads as
// trivially balanced.
func SolveCoB(pallets []core.Pallet, vehicles []core.Vehicle, paxCount int, spec *catalog.AircraftSpec) CoBResult {
	var totalMoment, totalWeight float64

	for i := range pallets {
		arm := spec.CargoBayFSStart + pallets[i].Position.LongitudinalCoord
		totalMoment += pallets[i].GrossWeight * arm
		totalWeight += pallets[i].GrossWeight
	}
	for i := range vehicles {
		arm := spec.CargoBayFSStart + vehicles[i].LongitudinalPosition
		totalMoment += vehicles[i].Weight * arm
		totalWeight += vehicles[i].Weight
	}
	if paxCount > 0 {
		weight := float64(paxCount) * catalog.PassengerWeight
		totalMoment += weight * spec.PassengerArm()
		totalWeight += weight
	}

	if totalWeight == 0 {
		mid := spec.EnvelopeMidpoint()
		return CoBResult{
			CoBPercent:     mid,
			DisplayPercent: clampPercent(mid),
			InEnvelope:     true,
		}
	}

	cg := totalMoment / totalWeight
	percent := (cg - spec.LEMACStation) / spec.MACLength * 100

	result := CoBResult{
		CGStation:      cg,
		CoBPercent:     percent,
		DisplayPercent: clampPercent(percent),
		InEnvelope:     percent >= spec.CoBMinPercent && percent <= spec.CoBMaxPercent,
	}
	if percent < spec.CoBMinPercent {
		result.Deviation = percent - spec.CoBMinPercent
	} else if percent > spec.CoBMaxPercent {
		result.Deviation = percent - spec.CoBMaxPercent
	}
	return result
}

// Rebuild returns a copy of the load with its derived fields recomputed
// from the cargo lists. Every mutation of the lists goes through here;
// the derived fields have no other writer.
func Rebuild(load core.FlightLoad, spec *catalog.AircraftSpec) core.FlightLoad {
	load.TotalWeight = TotalWeight(load.Pallets, load.Vehicles, load.Passengers.Count)
	load.CoBPercent = SolveCoB(load.Pallets, load.Vehicles, load.Passengers.Count, spec).CoBPercent
	return load
}

func clampPercent(p float64) float64 {
	return math.Min(100, math.Max(0, p))
}
