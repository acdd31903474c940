// Package planner orchestrates the load planning pipeline: movement
// list ingestion, initial seating, balance solving, validation, floor
// checks, and plan persistence.
package planner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/airliftops/loadmaster/internal/balance"
	"github.com/airliftops/loadmaster/internal/cache"
	"github.com/airliftops/loadmaster/internal/catalog"
	"github.com/airliftops/loadmaster/internal/floor"
	"github.com/airliftops/loadmaster/internal/influx"
	"github.com/airliftops/loadmaster/internal/ops"
	"github.com/airliftops/loadmaster/internal/optimize"
	"github.com/airliftops/loadmaster/internal/parser"
	"github.com/airliftops/loadmaster/internal/storage"
	"github.com/airliftops/loadmaster/internal/validate"
	"github.com/airliftops/loadmaster/pkg/core"
)

// Dependencies holds everything the planner needs
type Dependencies struct {
	Backend storage.Backend
	Cache   *cache.PlanCache
	Logger  *slog.Logger
	Influx  *influx.Manager // optional, nil disables plan metrics
}

// Plan is the result of a planning pipeline run for one flight.
type Plan struct {
	Load       core.FlightLoad
	Result     core.ValidationResult
	Advisories []string
}

// Service runs the planning pipeline
type Service struct {
	deps    Dependencies
	parser  *parser.Parser
	metrics metrics
}

// NewService creates a new planner service
func NewService(deps Dependencies) (*Service, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Cache == nil {
		deps.Cache = cache.NewPlanCache()
	}
	m, err := newMetrics()
	if err != nil {
		return nil, err
	}
	return &Service{
		deps:    deps,
		parser:  parser.NewParser(deps.Logger),
		metrics: m,
	}, nil
}

// PlanFlight parses a movement list and produces a stored, validated
// flight load. Pallets are seated nose to tail in manifest order;
// rolling stock parks aft of them on the centerline.
func (s *Service) PlanFlight(ctx context.Context, flightID, aircraftType string, manifest io.Reader) (Plan, error) {
	start := time.Now()

	spec, err := catalog.SpecFor(aircraftType)
	if err != nil {
		return Plan{}, err
	}

	list, err := s.parser.ParseMovementList(manifest)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to parse movement list: %w", err)
	}

	load := core.FlightLoad{
		ID:           flightID,
		AircraftType: aircraftType,
		Pallets:      seatPallets(list.Pallets, spec),
		Vehicles:     seatVehicles(list.Vehicles, spec),
		Passengers:   core.PassengerBlock{Count: list.Passengers},
	}

	plan, err := s.finish(ctx, load, spec, start)
	if err != nil {
		return Plan{}, err
	}

	s.deps.Logger.Info("flight planned",
		"flightId", flightID,
		"aircraftType", aircraftType,
		"pallets", len(plan.Load.Pallets),
		"vehicles", len(plan.Load.Vehicles),
		"passengers", plan.Load.Passengers.Count,
		"totalWeight", plan.Load.TotalWeight,
		"cobPercent", plan.Load.CoBPercent,
		"valid", plan.Result.Valid,
	)
	return plan, nil
}

// ValidateFlight re-runs validation and floor checks on a stored flight.
func (s *Service) ValidateFlight(id string) (Plan, error) {
	load, spec, err := s.lookup(id)
	if err != nil {
		return Plan{}, err
	}

	result := validate.Validate(&load, spec)
	advisories, err := floor.Advisories(&load, spec)
	if err != nil {
		return Plan{}, err
	}

	return Plan{Load: load, Result: result, Advisories: advisories}, nil
}

// OptimizeFlight re-seats pallets around the balance target and stores
// the updated plan.
func (s *Service) OptimizeFlight(ctx context.Context, id string) (Plan, error) {
	start := time.Now()

	load, spec, err := s.lookup(id)
	if err != nil {
		return Plan{}, err
	}

	optimized := optimize.Reoptimize(load, spec)

	plan, err := s.finish(ctx, optimized, spec, start)
	if err != nil {
		return Plan{}, err
	}

	s.deps.Logger.Info("flight optimized",
		"flightId", id,
		"cobPercent", plan.Load.CoBPercent,
		"valid", plan.Result.Valid,
	)
	return plan, nil
}

// SplitFlight divides a flight into two and stores both halves.
func (s *Service) SplitFlight(ctx context.Context, id string, splitIndex int) (Plan, Plan, error) {
	start := time.Now()

	load, spec, err := s.lookup(id)
	if err != nil {
		return Plan{}, Plan{}, err
	}

	first, second, err := ops.Split(load, splitIndex)
	if err != nil {
		return Plan{}, Plan{}, err
	}

	firstPlan, err := s.finish(ctx, first, spec, start)
	if err != nil {
		return Plan{}, Plan{}, err
	}
	secondPlan, err := s.finish(ctx, second, spec, start)
	if err != nil {
		return Plan{}, Plan{}, err
	}

	s.deps.Logger.Info("flight split",
		"flightId", id,
		"secondFlightId", second.ID,
		"firstPallets", len(first.Pallets),
		"secondPallets", len(second.Pallets),
	)
	return firstPlan, secondPlan, nil
}

// TransferUnits moves pallets between two stored flights and stores
// both updated plans.
func (s *Service) TransferUnits(ctx context.Context, sourceID, targetID string, unitIDs []string) (Plan, Plan, error) {
	start := time.Now()

	source, spec, err := s.lookup(sourceID)
	if err != nil {
		return Plan{}, Plan{}, err
	}
	target, _, err := s.lookup(targetID)
	if err != nil {
		return Plan{}, Plan{}, err
	}
	if source.AircraftType != target.AircraftType {
		return Plan{}, Plan{}, fmt.Errorf("aircraft type mismatch: %s vs %s", source.AircraftType, target.AircraftType)
	}

	newSource, newTarget, err := ops.Transfer(source, target, unitIDs)
	if err != nil {
		return Plan{}, Plan{}, err
	}

	sourcePlan, err := s.finish(ctx, newSource, spec, start)
	if err != nil {
		return Plan{}, Plan{}, err
	}
	targetPlan, err := s.finish(ctx, newTarget, spec, start)
	if err != nil {
		return Plan{}, Plan{}, err
	}

	s.deps.Logger.Info("units transferred",
		"sourceFlightId", sourceID,
		"targetFlightId", targetID,
		"units", len(unitIDs),
	)
	return sourcePlan, targetPlan, nil
}

// GetFlight returns a stored flight, preferring the cache.
func (s *Service) GetFlight(id string) (core.FlightLoad, error) {
	if load, ok := s.deps.Cache.Get(id); ok {
		return load, nil
	}
	load, _, err := s.deps.Backend.GetFlightLoad(id)
	if err != nil {
		return core.FlightLoad{}, err
	}
	s.deps.Cache.Put(load)
	return load, nil
}

// ListFlights returns the IDs of all stored flights.
func (s *Service) ListFlights() ([]string, error) {
	return s.deps.Backend.ListFlightIDs()
}

// DeleteFlight removes a stored flight from both backend and cache.
func (s *Service) DeleteFlight(id string) error {
	if err := s.deps.Backend.DeleteFlightLoad(id); err != nil {
		return err
	}
	s.deps.Cache.Delete(id)
	return nil
}

// finish runs the common tail of every pipeline: rebuild, validate,
// floor checks, persistence, and metrics.
func (s *Service) finish(ctx context.Context, load core.FlightLoad, spec *catalog.AircraftSpec, start time.Time) (Plan, error) {
	load = balance.Rebuild(load, spec)
	result := validate.Validate(&load, spec)

	advisories, err := floor.Advisories(&load, spec)
	if err != nil {
		return Plan{}, err
	}
	for _, a := range advisories {
		s.deps.Logger.Warn("floor advisory", "flightId", load.ID, "advisory", a)
	}

	if err := s.deps.Backend.SaveFlightLoad(load, result); err != nil {
		return Plan{}, fmt.Errorf("failed to store flight %s: %w", load.ID, err)
	}
	s.deps.Cache.Put(load)

	elapsed := time.Since(start)
	s.metrics.recordPlan(ctx, elapsed, result.Valid,
		attribute.String("aircraft.type", load.AircraftType))

	if s.deps.Influx != nil {
		if err := s.deps.Influx.RecordPlan(load, result, elapsed); err != nil {
			s.deps.Logger.Warn("failed to record plan metrics", "flightId", load.ID, "error", err)
		}
	}

	return Plan{Load: load, Result: result, Advisories: advisories}, nil
}

// lookup fetches a flight and resolves its aircraft spec.
func (s *Service) lookup(id string) (core.FlightLoad, *catalog.AircraftSpec, error) {
	load, err := s.GetFlight(id)
	if err != nil {
		return core.FlightLoad{}, nil, err
	}
	spec, err := catalog.SpecFor(load.AircraftType)
	if err != nil {
		return core.FlightLoad{}, nil, err
	}
	return load, spec, nil
}

// seatPallets assigns initial positions in manifest order, nose to
// tail. Overflow pallets share the last station so the validator can
// still count them.
func seatPallets(pallets []core.Pallet, spec *catalog.AircraftSpec) []core.Pallet {
	if len(pallets) == 0 {
		return pallets
	}
	out := make([]core.Pallet, len(pallets))
	copy(out, pallets)

	last := len(spec.Stations) - 1
	for i := range out {
		idx := i
		if idx > last {
			idx = last
		}
		station := spec.Stations[idx]
		out[i].Position = core.Placement{
			StationIndex:      idx,
			LongitudinalCoord: station.RDLDistance,
			IsRamp:            station.IsRamp,
		}
	}
	return out
}

// seatVehicles parks rolling stock on the centerline, bumper to bumper
// from the aft end of the bay forward in manifest order. A train longer
// than the bay overhangs the forward edge and shows up in the floor
// advisories rather than being silently clamped.
func seatVehicles(vehicles []core.Vehicle, spec *catalog.AircraftSpec) []core.Vehicle {
	if len(vehicles) == 0 {
		return vehicles
	}
	out := make([]core.Vehicle, len(vehicles))
	copy(out, vehicles)

	rear := spec.CargoLength
	for i := range out {
		out[i].LongitudinalPosition = rear - out[i].Length/2
		out[i].LateralPosition = 0
		rear -= out[i].Length + catalog.VehicleClearance
	}
	return out
}
