// Package sqlite persists flight load plans in a local SQLite database
// through GORM.
package sqlite

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/airliftops/loadmaster/internal/config"
	"github.com/airliftops/loadmaster/internal/database"
	"github.com/airliftops/loadmaster/internal/model"
	"github.com/airliftops/loadmaster/pkg/core"
)

// Backend stores plan data in a SQLite database file
type Backend struct {
	cfg   config.SQLiteConfig
	db    *gorm.DB
	store *database.Store
}

// New creates a new SQLite backend
func New(cfg config.SQLiteConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init opens the database and migrates the schema
func (b *Backend) Init() error {
	manager := database.NewManager(zerolog.Nop())

	db, err := manager.GetSqliteDB(b.cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite db: %w", err)
	}
	b.db = db

	if err := db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	b.store = database.NewStore(db)
	return nil
}

// Close releases the database connection
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
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
