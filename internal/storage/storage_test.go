package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airliftops/loadmaster/internal/config"
	"github.com/airliftops/loadmaster/internal/storage"
	"github.com/airliftops/loadmaster/internal/storage/memory"
	"github.com/airliftops/loadmaster/internal/storage/postgres"
	"github.com/airliftops/loadmaster/internal/storage/sqlite"
)

func TestNewBackendMemory(t *testing.T) {
	b, err := storage.NewBackend(config.StorageConfig{
		Type:   "memory",
		Memory: config.MemoryConfig{OutputDir: t.TempDir()},
	})
	require.NoError(t, err)
	assert.IsType(t, &memory.Backend{}, b)
}

func TestNewBackendSqlite(t *testing.T) {
	b, err := storage.NewBackend(config.StorageConfig{
		Type:   "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "plans.db")},
	})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Backend{}, b)
}

func TestNewBackendPostgres(t *testing.T) {
	b, err := storage.NewBackend(config.StorageConfig{
		Type:     "postgres",
		Postgres: config.PostgresConfig{FallbackPath: filepath.Join(t.TempDir(), "fallback.db")},
	})
	require.NoError(t, err)
	assert.IsType(t, &postgres.Backend{}, b)
}

func TestNewBackendUnknownType(t *testing.T) {
	_, err := storage.NewBackend(config.StorageConfig{Type: "carrier-pigeon"})
	assert.ErrorContains(t, err, "unknown storage type")
}

func TestMemoryBackendIsExportable(t *testing.T) {
	b, err := storage.NewBackend(config.StorageConfig{
		Type:   "memory",
		Memory: config.MemoryConfig{OutputDir: t.TempDir()},
	})
	require.NoError(t, err)

	_, ok := b.(storage.Exportable)
	assert.True(t, ok)
}
