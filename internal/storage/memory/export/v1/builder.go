package v1

import (
	"sort"

	"github.com/airliftops/loadmaster/pkg/core"
)

// FormatVersion identifies the current manifest layout.
const FormatVersion = 1

// PlanData contains everything needed to build a manifest.
type PlanData struct {
	Load   core.FlightLoad
	Result core.ValidationResult
}

// Build creates an Export from a planned flight load. Station rows are
// ordered by station index so the manifest reads nose to tail.
func Build(data *PlanData) Export {
	export := Export{
		FormatVersion: FormatVersion,
		FlightID:      data.Load.ID,
		AircraftType:  data.Load.AircraftType,
		Passengers:    data.Load.Passengers.Count,
		TotalWeight:   data.Load.TotalWeight,
		CoBPercent:    data.Load.CoBPercent,
		Valid:         data.Result.Valid,
		Modified:      data.Load.IsModified,
		Issues:        make([]string, 0, len(data.Result.Issues)),
		Stations:      make([][]any, 0, len(data.Load.Pallets)),
		Vehicles:      make([][]any, 0, len(data.Load.Vehicles)),
	}

	export.Issues = append(export.Issues, data.Result.Issues...)

	pallets := make([]core.Pallet, len(data.Load.Pallets))
	copy(pallets, data.Load.Pallets)
	sort.SliceStable(pallets, func(i, j int) bool {
		return pallets[i].Position.StationIndex < pallets[j].Position.StationIndex
	})

	for _, p := range pallets {
		export.Stations = append(export.Stations, []any{
			p.Position.StationIndex,
			p.Position.LongitudinalCoord,
			p.Position.IsRamp,
			p.ID,
			p.GrossWeight,
			p.Hazmat,
		})
	}

	for _, v := range data.Load.Vehicles {
		export.Vehicles = append(export.Vehicles, []any{
			v.ID,
			v.Weight,
			v.Length,
			v.Width,
			v.LongitudinalPosition,
			v.LateralPosition,
		})
	}

	return export
}
