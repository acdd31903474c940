package storage

import (
	"fmt"

	"github.com/airliftops/loadmaster/internal/config"
	"github.com/airliftops/loadmaster/internal/storage/memory"
	"github.com/airliftops/loadmaster/internal/storage/postgres"
	"github.com/airliftops/loadmaster/internal/storage/sqlite"
)

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Type {
	case "sqlite":
		return sqlite.New(cfg.SQLite), nil
	case "postgres":
		return postgres.New(cfg.Postgres), nil
	case "memory":
		return memory.New(cfg.Memory), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
