package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airliftops/loadmaster/internal/cache"
	"github.com/airliftops/loadmaster/internal/config"
	"github.com/airliftops/loadmaster/internal/planner"
	"github.com/airliftops/loadmaster/internal/storage/memory"
)

func newTestService(t *testing.T) *planner.Service {
	t.Helper()
	backend := memory.New(config.MemoryConfig{OutputDir: t.TempDir()})
	require.NoError(t, backend.Init())
	t.Cleanup(func() { backend.Close() })

	service, err := planner.NewService(planner.Dependencies{
		Backend: backend,
		Cache:   cache.NewPlanCache(),
	})
	require.NoError(t, err)
	return service
}

func writeManifest(t *testing.T, dir, name string, pallets int) string {
	t.Helper()
	content := "KIND,ID,GROSS,NET,HEIGHT\n"
	for i := 0; i < pallets; i++ {
		content += fmt.Sprintf("PALLET,P%d,5000,4800,96\n", i+1)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPlanAll(t *testing.T) {
	service := newTestService(t)
	dir := t.TempDir()

	jobs := make([]Job, 0, 6)
	for i := 0; i < 6; i++ {
		id := fmt.Sprintf("AC-%d", i+1)
		jobs = append(jobs, Job{
			FlightID:     id,
			AircraftType: "C-17",
			ManifestPath: writeManifest(t, dir, id+".csv", i+1),
		})
	}

	m := NewManager(service, nil, 3)
	results := m.PlanAll(context.Background(), jobs)

	require.Len(t, results, 6)
	for i, r := range results {
		assert.NoError(t, r.Err)
		assert.Equal(t, fmt.Sprintf("AC-%d", i+1), r.Plan.Load.ID)
		assert.Len(t, r.Plan.Load.Pallets, i+1)
	}

	ids, err := service.ListFlights()
	require.NoError(t, err)
	assert.Len(t, ids, 6)
}

func TestPlanAllBadManifestDoesNotStopBatch(t *testing.T) {
	service := newTestService(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("PALLET,oops\n"), 0644))

	jobs := []Job{
		{FlightID: "AC-1", AircraftType: "C-17", ManifestPath: writeManifest(t, dir, "a.csv", 2)},
		{FlightID: "AC-2", AircraftType: "C-17", ManifestPath: bad},
		{FlightID: "AC-3", AircraftType: "C-17", ManifestPath: filepath.Join(dir, "missing.csv")},
	}

	m := NewManager(service, nil, 2)
	results := m.PlanAll(context.Background(), jobs)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Error(t, results[2].Err)

	ids, err := service.ListFlights()
	require.NoError(t, err)
	assert.Equal(t, []string{"AC-1"}, ids)
}

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager(newTestService(t), nil, 0)
	assert.Equal(t, DefaultWorkers, m.workers)
}
