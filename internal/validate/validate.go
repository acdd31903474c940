// Package validate applies the catalog's hard limits to a flight load
// and reports violations as structured data. Violations are never
// errors: the caller always gets a computed result it can display,
// valid or not.
package validate

import (
	"fmt"

	"github.com/airliftops/loadmaster/internal/balance"
	"github.com/airliftops/loadmaster/internal/catalog"
	"github.com/airliftops/loadmaster/pkg/core"
)

// Validate checks a load against max payload, pallet position count,
// and the CoB envelope, in that fixed order. Every violated rule is
// reported; checks never short-circuit.
//
// Weight and CoB are recomputed from the cargo lists here rather than
// read from the load's derived fields, so a stale caller-side field can
// never produce a false "valid".
func Validate(load *core.FlightLoad, spec *catalog.AircraftSpec) core.ValidationResult {
	issues := []string{}

	totalWeight := balance.TotalWeight(load.Pallets, load.Vehicles, load.Passengers.Count)
	if totalWeight > spec.MaxPayload {
		issues = append(issues, fmt.Sprintf(
			"Overweight: %.0f lbs exceeds %.0f lbs max", totalWeight, spec.MaxPayload))
	}

	if len(load.Pallets) > spec.PalletPositions {
		issues = append(issues, fmt.Sprintf(
			"Too many pallets: %d exceeds %d positions", len(load.Pallets), spec.PalletPositions))
	}

	// Envelope membership uses the raw solver percent, never the
	// display-clamped one.
	cob := balance.SolveCoB(load.Pallets, load.Vehicles, load.Passengers.Count, spec)
	if !cob.InEnvelope {
		issues = append(issues, fmt.Sprintf(
			"Center of balance %.1f%% outside safe envelope (%.0f-%.0f%%)",
			cob.CoBPercent, spec.CoBMinPercent, spec.CoBMaxPercent))
	}

	return core.ValidationResult{
		Valid:  len(issues) == 0,
		Issues: issues,
	}
}
