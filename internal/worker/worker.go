// Package worker runs the planning pipeline over many manifests
// concurrently, for surge taskings where dozens of movement lists
// arrive at once.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/airliftops/loadmaster/internal/planner"
	"github.com/airliftops/loadmaster/internal/queue"
)

// DefaultWorkers is the pool size used when none is configured.
const DefaultWorkers = 4

// Job is one manifest to plan.
type Job struct {
	FlightID     string
	AircraftType string
	ManifestPath string
}

// Result pairs a job with its outcome.
type Result struct {
	Job  Job
	Plan planner.Plan
	Err  error
}

// Manager runs planning jobs on a fixed-size worker pool.
type Manager struct {
	service *planner.Service
	logger  *slog.Logger
	workers int
}

// NewManager creates a new worker manager. workers <= 0 selects
// DefaultWorkers.
func NewManager(service *planner.Service, logger *slog.Logger, workers int) *Manager {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		service: service,
		logger:  logger,
		workers: workers,
	}
}

// PlanAll plans every job and returns one result per job, sorted by
// flight ID. A failed job never stops the batch.
func (m *Manager) PlanAll(ctx context.Context, jobs []Job) []Result {
	pending := queue.New[Job]()
	pending.Push(jobs...)

	results := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < m.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				job, ok := pending.Pop()
				if !ok {
					return
				}
				results <- m.planOne(ctx, job)
			}
		}()
	}
	wg.Wait()
	close(results)

	out := make([]Result, 0, len(jobs))
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Job.FlightID < out[j].Job.FlightID
	})
	return out
}

func (m *Manager) planOne(ctx context.Context, job Job) Result {
	f, err := os.Open(job.ManifestPath)
	if err != nil {
		m.logger.Error("failed to open manifest", "flightId", job.FlightID, "path", job.ManifestPath, "error", err)
		return Result{Job: job, Err: fmt.Errorf("failed to open manifest: %w", err)}
	}
	defer f.Close()

	plan, err := m.service.PlanFlight(ctx, job.FlightID, job.AircraftType, f)
	if err != nil {
		m.logger.Error("failed to plan flight", "flightId", job.FlightID, "error", err)
		return Result{Job: job, Err: err}
	}
	return Result{Job: job, Plan: plan}
}
