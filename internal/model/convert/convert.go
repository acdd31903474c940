// Package convert maps the engine's in-memory flight types to and from
// their database representations.
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/airliftops/loadmaster/internal/model"
	"github.com/airliftops/loadmaster/pkg/core"
)

// FlightToModel produces the persistable row set for a flight load and
// its latest validation result.
func FlightToModel(load core.FlightLoad, result core.ValidationResult) (model.Flight, error) {
	issues, err := json.Marshal(result.Issues)
	if err != nil {
		return model.Flight{}, fmt.Errorf("failed to marshal validation issues: %w", err)
	}

	flight := model.Flight{
		FlightID:     load.ID,
		AircraftType: load.AircraftType,
		Passengers:   load.Passengers.Count,
		TotalWeight:  load.TotalWeight,
		CoBPercent:   load.CoBPercent,
		Valid:        result.Valid,
		Issues:       issues,
		IsModified:   load.IsModified,
	}

	for _, p := range load.Pallets {
		rec, err := PalletToModel(p)
		if err != nil {
			return model.Flight{}, err
		}
		flight.Pallets = append(flight.Pallets, rec)
	}
	for _, v := range load.Vehicles {
		flight.Vehicles = append(flight.Vehicles, VehicleToModel(v))
	}

	return flight, nil
}

// FlightToCore rebuilds the in-memory flight load and validation result
// from its stored rows.
func FlightToCore(flight model.Flight) (core.FlightLoad, core.ValidationResult, error) {
	load := core.FlightLoad{
		ID:           flight.FlightID,
		AircraftType: flight.AircraftType,
		Passengers:   core.PassengerBlock{Count: flight.Passengers},
		TotalWeight:  flight.TotalWeight,
		CoBPercent:   flight.CoBPercent,
		IsModified:   flight.IsModified,
	}

	for _, rec := range flight.Pallets {
		p, err := PalletToCore(rec)
		if err != nil {
			return core.FlightLoad{}, core.ValidationResult{}, err
		}
		load.Pallets = append(load.Pallets, p)
	}
	for _, rec := range flight.Vehicles {
		load.Vehicles = append(load.Vehicles, VehicleToCore(rec))
	}

	result := core.ValidationResult{Valid: flight.Valid}
	if len(flight.Issues) > 0 {
		if err := json.Unmarshal(flight.Issues, &result.Issues); err != nil {
			return core.FlightLoad{}, core.ValidationResult{}, fmt.Errorf("failed to unmarshal validation issues: %w", err)
		}
	}

	return load, result, nil
}

// PalletToModel converts one pallet, serializing its contents manifest.
func PalletToModel(p core.Pallet) (model.PalletRecord, error) {
	contents, err := json.Marshal(p.Contents)
	if err != nil {
		return model.PalletRecord{}, fmt.Errorf("failed to marshal contents for pallet %s: %w", p.ID, err)
	}

	return model.PalletRecord{
		PalletID:          p.ID,
		GrossWeight:       p.GrossWeight,
		NetWeight:         p.NetWeight,
		Height:            p.Height,
		Hazmat:            p.Hazmat,
		Contents:          contents,
		StationIndex:      p.Position.StationIndex,
		LongitudinalCoord: p.Position.LongitudinalCoord,
		IsRamp:            p.Position.IsRamp,
	}, nil
}

// PalletToCore is the inverse of PalletToModel.
func PalletToCore(rec model.PalletRecord) (core.Pallet, error) {
	p := core.Pallet{
		ID:          rec.PalletID,
		GrossWeight: rec.GrossWeight,
		NetWeight:   rec.NetWeight,
		Height:      rec.Height,
		Hazmat:      rec.Hazmat,
		Position: core.Placement{
			StationIndex:      rec.StationIndex,
			LongitudinalCoord: rec.LongitudinalCoord,
			IsRamp:            rec.IsRamp,
		},
	}

	if len(rec.Contents) > 0 {
		if err := json.Unmarshal(rec.Contents, &p.Contents); err != nil {
			return core.Pallet{}, fmt.Errorf("failed to unmarshal contents for pallet %s: %w", rec.PalletID, err)
		}
	}

	return p, nil
}

// VehicleToModel converts one vehicle.
func VehicleToModel(v core.Vehicle) model.VehicleRecord {
	return model.VehicleRecord{
		VehicleID:            v.ID,
		Weight:               v.Weight,
		Length:               v.Length,
		Width:                v.Width,
		Height:               v.Height,
		FrontAxleWeight:      v.FrontAxleWeight,
		RearAxleWeight:       v.RearAxleWeight,
		LongitudinalPosition: v.LongitudinalPosition,
		LateralPosition:      v.LateralPosition,
	}
}

// VehicleToCore is the inverse of VehicleToModel.
func VehicleToCore(rec model.VehicleRecord) core.Vehicle {
	return core.Vehicle{
		ID:                   rec.VehicleID,
		Weight:               rec.Weight,
		Length:               rec.Length,
		Width:                rec.Width,
		Height:               rec.Height,
		FrontAxleWeight:      rec.FrontAxleWeight,
		RearAxleWeight:       rec.RearAxleWeight,
		LongitudinalPosition: rec.LongitudinalPosition,
		LateralPosition:      rec.LateralPosition,
	}
}
