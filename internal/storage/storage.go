package storage

import "github.com/airliftops/loadmaster/pkg/core"

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Plan persistence. SaveFlightLoad stores the load together with
	// its latest validation result; saving an existing ID replaces it.
	SaveFlightLoad(load core.FlightLoad, result core.ValidationResult) error
	GetFlightLoad(id string) (core.FlightLoad, core.ValidationResult, error)
	ListFlightIDs() ([]string, error)
	DeleteFlightLoad(id string) error
}

// Exportable is an optional interface for storage backends that produce
// load plan manifest files.
type Exportable interface {
	GetExportedFilePath() string
}
