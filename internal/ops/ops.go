// Package ops implements the higher-level flight mutations: splitting
// one flight's cargo into two and transferring pallets between flights.
// Every operation returns new FlightLoad values with derived fields
// rebuilt; handing back a load with a stale weight or CoB is a defect.
package ops

import (
	"math"

	"github.com/airliftops/loadmaster/internal/balance"
	"github.com/airliftops/loadmaster/internal/catalog"
	"github.com/airliftops/loadmaster/pkg/core"
)

// RollingStockStaysForward names the split policy: vehicles and
// passengers always remain with the first half, which keeps the
// original flight identity. Special cargo stays with the original tail
// number; only palletized cargo moves to the new flight.
const RollingStockStaysForward = true

// Split partitions a flight's pallet list at splitIndex. Pass a
// non-positive index for the default split at the ceiling of half the
// pallet count. The second half gets the original ID with a "-B"
// suffix and its pallets re-seated densely from station zero.
func Split(load core.FlightLoad, splitIndex int) (first, second core.FlightLoad, err error) {
	spec, err := catalog.SpecFor(load.AircraftType)
	if err != nil {
		return core.FlightLoad{}, core.FlightLoad{}, err
	}

	n := len(load.Pallets)
	if splitIndex <= 0 {
		splitIndex = int(math.Ceil(float64(n) / 2))
	}
	if splitIndex > n {
		splitIndex = n
	}

	pallets := load.ClonePallets()

	first = load
	first.Pallets = pallets[:splitIndex]
	first = balance.Rebuild(first, spec)

	second = core.FlightLoad{
		ID:           load.ID + "-B",
		AircraftType: load.AircraftType,
		Pallets:      reindex(pallets[splitIndex:], spec),
	}
	second = balance.Rebuild(second, spec)

	return first, second, nil
}

// Transfer moves the named pallets from source to target, re-seating
// both sides densely from station zero. IDs not present on the source
// are ignored. Both loads come back rebuilt.
func Transfer(source, target core.FlightLoad, unitIDs []string) (newSource, newTarget core.FlightLoad, err error) {
	srcSpec, err := catalog.SpecFor(source.AircraftType)
	if err != nil {
		return core.FlightLoad{}, core.FlightLoad{}, err
	}
	dstSpec, err := catalog.SpecFor(target.AircraftType)
	if err != nil {
		return core.FlightLoad{}, core.FlightLoad{}, err
	}

	moving := make(map[string]bool, len(unitIDs))
	for _, id := range unitIDs {
		moving[id] = true
	}

	var kept, moved []core.Pallet
	for _, p := range source.ClonePallets() {
		if moving[p.ID] {
			moved = append(moved, p)
		} else {
			kept = append(kept, p)
		}
	}

	newSource = source
	newSource.Pallets = reindex(kept, srcSpec)
	newSource = balance.Rebuild(newSource, srcSpec)

	newTarget = target
	newTarget.Pallets = reindex(append(target.ClonePallets(), moved...), dstSpec)
	newTarget = balance.Rebuild(newTarget, dstSpec)

	return newSource, newTarget, nil
}

// reindex assigns pallets to a dense zero-based station sequence with
// coordinates taken from the spec's station table. Pallets beyond the
// station count keep their running index but sit at the last station's
// coordinate; the validator reports the overflow.
func reindex(pallets []core.Pallet, spec *catalog.AircraftSpec) []core.Pallet {
	for i := range pallets {
		station := spec.Stations[min(i, len(spec.Stations)-1)]
		pallets[i].Position = core.Placement{
			StationIndex:      i,
			LongitudinalCoord: station.RDLDistance,
			IsRamp:            station.IsRamp,
		}
	}
	return pallets
}
