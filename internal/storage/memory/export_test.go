package memory

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airliftops/loadmaster/internal/config"
	v1 "github.com/airliftops/loadmaster/internal/storage/memory/export/v1"
	"github.com/airliftops/loadmaster/pkg/core"
)

func TestSaveWritesManifest(t *testing.T) {
	dir := t.TempDir()
	b := New(config.MemoryConfig{OutputDir: dir})

	require.NoError(t, b.SaveFlightLoad(sampleLoad("AC-1001"), core.ValidationResult{Valid: true}))

	path := b.GetExportedFilePath()
	require.NotEmpty(t, path)
	assert.True(t, strings.HasSuffix(path, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export v1.Export
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, "AC-1001", export.FlightID)
	assert.Equal(t, "C-17", export.AircraftType)
	require.Len(t, export.Stations, 1)
}

func TestSaveWritesGzippedManifest(t *testing.T) {
	dir := t.TempDir()
	b := New(config.MemoryConfig{OutputDir: dir, CompressOutput: true})

	require.NoError(t, b.SaveFlightLoad(sampleLoad("AC-1002"), core.ValidationResult{Valid: true}))

	path := b.GetExportedFilePath()
	require.True(t, strings.HasSuffix(path, ".json.gz"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer gz.Close()

	var export v1.Export
	require.NoError(t, json.NewDecoder(gz).Decode(&export))
	assert.Equal(t, "AC-1002", export.FlightID)
}

func TestManifestFilenameSanitized(t *testing.T) {
	dir := t.TempDir()
	b := New(config.MemoryConfig{OutputDir: dir})

	load := sampleLoad("AC 10:01")
	require.NoError(t, b.SaveFlightLoad(load, core.ValidationResult{Valid: true}))

	path := b.GetExportedFilePath()
	assert.NotContains(t, path, " ")
	assert.Contains(t, path, "AC_10_01")
}
