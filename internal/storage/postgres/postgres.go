// Package postgres persists flight load plans in a PostgreSQL
// database, falling back to a local SQLite file when the server is
// unreachable. Connection settings come from the db.* config keys.
package postgres

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/airliftops/loadmaster/internal/config"
	"github.com/airliftops/loadmaster/internal/database"
	"github.com/airliftops/loadmaster/pkg/core"
)

// Backend stores plan data in a shared PostgreSQL database
type Backend struct {
	cfg     config.PostgresConfig
	manager *database.Manager
	store   *database.Store
}

// New creates a new Postgres backend
func New(cfg config.PostgresConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init connects to Postgres, or to the SQLite fallback file when the
// server is down, and migrates the schema.
func (b *Backend) Init() error {
	manager := database.NewManager(zerolog.New(os.Stderr).With().Timestamp().Logger())
	manager.SqliteFilePath = b.cfg.FallbackPath

	if err := manager.Connect(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := manager.Setup(); err != nil {
		return err
	}

	b.manager = manager
	b.store = database.NewStore(manager.DB)
	return nil
}

// Close releases the database connection
func (b *Backend) Close() error {
	if b.manager == nil {
		return nil
	}
	return b.manager.Close()
}

// SaveFlightLoad upserts the plan.
func (b *Backend) SaveFlightLoad(load core.FlightLoad, result core.ValidationResult) error {
	return b.store.SaveFlightLoad(load, result)
}

// GetFlightLoad returns the stored plan for the given flight ID.
func (b *Backend) GetFlightLoad(id string) (core.FlightLoad, core.ValidationResult, error) {
	return b.store.GetFlightLoad(id)
}

// ListFlightIDs returns all stored flight IDs in sorted order.
func (b *Backend) ListFlightIDs() ([]string, error) {
	return b.store.ListFlightIDs()
}

// DeleteFlightLoad removes a stored plan and its cargo rows.
func (b *Backend) DeleteFlightLoad(id string) error {
	return b.store.DeleteFlightLoad(id)
}
