// Package memory stores flight load plans in process memory and writes
// a JSON manifest per save for downstream ramp tools.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/airliftops/loadmaster/internal/config"
	"github.com/airliftops/loadmaster/pkg/core"
)

// planRecord groups a flight load with its latest validation result
type planRecord struct {
	Load   core.FlightLoad
	Result core.ValidationResult
}

// Backend stores plan data in memory and exports manifests to JSON
type Backend struct {
	cfg   config.MemoryConfig
	plans map[string]*planRecord // keyed by flight ID
	mu    sync.RWMutex

	lastExportPath string
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{
		cfg:   cfg,
		plans: make(map[string]*planRecord),
	}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// SaveFlightLoad stores the plan and writes its manifest file.
// Saving an existing flight ID replaces the stored plan.
func (b *Backend) SaveFlightLoad(load core.FlightLoad, result core.ValidationResult) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.plans[load.ID] = &planRecord{
		Load:   cloneLoad(load),
		Result: cloneResult(result),
	}

	return b.exportJSON(load.ID)
}

// GetFlightLoad returns the stored plan for the given flight ID.
func (b *Backend) GetFlightLoad(id string) (core.FlightLoad, core.ValidationResult, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	record, ok := b.plans[id]
	if !ok {
		return core.FlightLoad{}, core.ValidationResult{}, fmt.Errorf("flight %s not found", id)
	}
	return cloneLoad(record.Load), cloneResult(record.Result), nil
}

// ListFlightIDs returns all stored flight IDs in sorted order.
func (b *Backend) ListFlightIDs() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.plans))
	for id := range b.plans {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// DeleteFlightLoad removes a stored plan. Deleting an unknown ID is an error.
func (b *Backend) DeleteFlightLoad(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.plans[id]; !ok {
		return fmt.Errorf("flight %s not found", id)
	}
	delete(b.plans, id)
	return nil
}

// GetExportedFilePath returns the path of the most recently written manifest.
func (b *Backend) GetExportedFilePath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastExportPath
}

// cloneLoad copies a flight load so callers cannot mutate stored state
func cloneLoad(load core.FlightLoad) core.FlightLoad {
	out := load
	out.Pallets = load.ClonePallets()
	if load.Vehicles != nil {
		out.Vehicles = make([]core.Vehicle, len(load.Vehicles))
		copy(out.Vehicles, load.Vehicles)
	}
	return out
}

func cloneResult(result core.ValidationResult) core.ValidationResult {
	out := result
	if result.Issues != nil {
		out.Issues = make([]string, len(result.Issues))
		copy(out.Issues, result.Issues)
	}
	return out
}
