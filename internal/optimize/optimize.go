// Package optimize reassigns pallets to stations so the realized center
// of balance pulls toward the middle of the safe envelope. The
// assignment is a weight-sorted, center-out, alternating-side greedy
// pass. Output is deterministic for a given manifest.
package optimize

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/airliftops/loadmaster/internal/balance"
	"github.com/airliftops/loadmaster/internal/catalog"
	"github.com/airliftops/loadmaster/pkg/core"
)

// Reoptimize returns a new load with every pallet reassigned to a
// station. The input is never mutated. A load with no pallets is
// returned unchanged.
//
// Ties in gross weight keep their original list order (stable sort), so
// the same input always yields the same assignment.
func Reoptimize(load core.FlightLoad, spec *catalog.AircraftSpec) core.FlightLoad {
	if len(load.Pallets) == 0 {
		return load
	}
	start := time.Now()

	// Target position inside the bay corresponding to the envelope
	// midpoint.
	targetPercent := spec.EnvelopeMidpoint()
	targetPosition := targetPercent / 100 * spec.CargoLength

	// Heaviest first: the heaviest pallets land closest to the target
	// so their moment arms contribute the least error.
	pallets := load.ClonePallets()
	sort.SliceStable(pallets, func(i, j int) bool {
		return pallets[i].GrossWeight > pallets[j].GrossWeight
	})

	center := centerIndex(spec.Stations, targetPosition)
	indices := collectCenterOut(center, len(spec.Stations), min(len(pallets), len(spec.Stations)))

	// Floor order: indices ascending, i-th heaviest pallet to the i-th
	// index.
	sort.Ints(indices)
	for i := range pallets {
		idx := indices[min(i, len(indices)-1)]
		station := spec.Stations[idx]
		pallets[i].Position = core.Placement{
			StationIndex:      idx,
			LongitudinalCoord: station.RDLDistance,
			IsRamp:            station.IsRamp,
		}
	}

	out := load
	out.Pallets = pallets
	out = balance.Rebuild(out, spec)
	out.IsModified = true

	recordReoptimize(context.Background(), time.Since(start),
		attribute.String("aircraft", spec.Type),
		attribute.Int("pallets", len(pallets)))
	return out
}

// centerIndex finds the first station whose centroid sits at or aft of
// the target position, falling back to the geometric middle when the
// target is aft of every station.
func centerIndex(stations []catalog.StationConstraint, targetPosition float64) int {
	for i := range stations {
		if stations[i].RDLDistance >= targetPosition {
			return i
		}
	}
	return len(stations) / 2
}

// collectCenterOut gathers n station indices alternating outward from
// the center: c, c+1, c-1, c+2, c-2, ... When one side runs out the
// remaining side is consumed in order.
func collectCenterOut(center, stationCount, n int) []int {
	indices := make([]int, 0, n)
	indices = append(indices, center)
	lo, hi := center-1, center+1
	aft := true
	for len(indices) < n {
		switch {
		case aft && hi < stationCount:
			indices = append(indices, hi)
			hi++
		case !aft && lo >= 0:
			indices = append(indices, lo)
			lo--
		case hi < stationCount:
			indices = append(indices, hi)
			hi++
		case lo >= 0:
			indices = append(indices, lo)
			lo--
		}
		aft = !aft
	}
	return indices
}

func recordReoptimize(ctx context.Context, d time.Duration, attrs ...attribute.KeyValue) {
	if reoptimizeCount == nil || reoptimizeDuration == nil {
		return
	}
	reoptimizeCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	reoptimizeDuration.Record(ctx, float64(d.Microseconds())/1000, metric.WithAttributes(attrs...))
}
