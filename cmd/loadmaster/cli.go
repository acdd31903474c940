package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/airliftops/loadmaster/internal/api"
	"github.com/airliftops/loadmaster/internal/planner"
	"github.com/airliftops/loadmaster/internal/storage"
	"github.com/airliftops/loadmaster/internal/worker"
)

const usage = `usage: loadmaster <command> [args]

commands:
  plan <flightId> <manifest.csv> [aircraftType]   plan a flight from a movement list
  plan-batch <dir> [aircraftType]                 plan every .csv manifest in a directory
  validate <flightId>                             re-run validation on a stored flight
  optimize <flightId>                             re-seat pallets around the balance target
  split <flightId> [index]                        split a flight's pallets into two flights
  transfer <sourceId> <targetId> <palletId>...    move pallets between flights
  upload <flightId>                               send a plan manifest to the coordination server
  list                                            list stored flight IDs
  show <flightId>                                 print a stored flight summary
  delete <flightId>                               remove a stored flight
`

// run dispatches one CLI invocation against the planner service.
func run(service *planner.Service, backend storage.Backend, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("no command provided")
	}

	ctx := context.Background()

	switch strings.ToLower(args[0]) {
	case "plan":
		if len(args) < 3 {
			return fmt.Errorf("plan needs a flight ID and a manifest path")
		}
		flightID := args[1]
		manifestPath := args[2]
		aircraftType := viper.GetString("defaultAircraft")
		if len(args) > 3 {
			aircraftType = args[3]
		}

		f, err := os.Open(manifestPath)
		if err != nil {
			return fmt.Errorf("failed to open manifest: %w", err)
		}
		defer f.Close()

		plan, err := service.PlanFlight(ctx, flightID, aircraftType, f)
		if err != nil {
			return err
		}
		printPlan(plan)
		return nil

	case "plan-batch":
		if len(args) < 2 {
			return fmt.Errorf("plan-batch needs a manifest directory")
		}
		aircraftType := viper.GetString("defaultAircraft")
		if len(args) > 2 {
			aircraftType = args[2]
		}

		manifests, err := filepath.Glob(filepath.Join(args[1], "*.csv"))
		if err != nil {
			return err
		}
		if len(manifests) == 0 {
			return fmt.Errorf("no .csv manifests in %s", args[1])
		}

		jobs := make([]worker.Job, 0, len(manifests))
		for _, path := range manifests {
			base := filepath.Base(path)
			jobs = append(jobs, worker.Job{
				FlightID:     strings.TrimSuffix(base, filepath.Ext(base)),
				AircraftType: aircraftType,
				ManifestPath: path,
			})
		}

		m := worker.NewManager(service, Logger, viper.GetInt("batch.workers"))
		failed := 0
		for _, r := range m.PlanAll(ctx, jobs) {
			if r.Err != nil {
				failed++
				fmt.Printf("%s  FAILED: %v\n", r.Job.FlightID, r.Err)
				continue
			}
			printPlan(r.Plan)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d manifests failed", failed, len(jobs))
		}
		return nil

	case "validate":
		if len(args) < 2 {
			return fmt.Errorf("validate needs a flight ID")
		}
		plan, err := service.ValidateFlight(args[1])
		if err != nil {
			return err
		}
		printPlan(plan)
		return nil

	case "optimize":
		if len(args) < 2 {
			return fmt.Errorf("optimize needs a flight ID")
		}
		plan, err := service.OptimizeFlight(ctx, args[1])
		if err != nil {
			return err
		}
		printPlan(plan)
		return nil

	case "split":
		if len(args) < 2 {
			return fmt.Errorf("split needs a flight ID")
		}
		splitIndex := 0
		if len(args) > 2 {
			idx, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("split index %q: %w", args[2], err)
			}
			splitIndex = idx
		}
		first, second, err := service.SplitFlight(ctx, args[1], splitIndex)
		if err != nil {
			return err
		}
		printPlan(first)
		printPlan(second)
		return nil

	case "transfer":
		if len(args) < 4 {
			return fmt.Errorf("transfer needs source ID, target ID, and at least one pallet ID")
		}
		source, target, err := service.TransferUnits(ctx, args[1], args[2], args[3:])
		if err != nil {
			return err
		}
		printPlan(source)
		printPlan(target)
		return nil

	case "upload":
		if len(args) < 2 {
			return fmt.Errorf("upload needs a flight ID")
		}
		baseURL := viper.GetString("api.url")
		if baseURL == "" {
			return fmt.Errorf("api.url is not configured")
		}

		plan, err := service.ValidateFlight(args[1])
		if err != nil {
			return err
		}

		// refresh the manifest file before sending it
		if err := backend.SaveFlightLoad(plan.Load, plan.Result); err != nil {
			return err
		}
		exportable, ok := backend.(storage.Exportable)
		if !ok {
			return fmt.Errorf("storage backend %q does not produce manifest files", viper.GetString("storage.type"))
		}

		client := api.New(baseURL, viper.GetString("api.key"))
		if err := client.Healthcheck(); err != nil {
			return err
		}
		if err := client.Upload(exportable.GetExportedFilePath(), api.UploadMetadata{
			FlightID:     plan.Load.ID,
			AircraftType: plan.Load.AircraftType,
			TotalWeight:  plan.Load.TotalWeight,
			Valid:        plan.Result.Valid,
		}); err != nil {
			return err
		}
		fmt.Println("uploaded", plan.Load.ID)
		return nil

	case "list":
		ids, err := service.ListFlights()
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil

	case "show":
		if len(args) < 2 {
			return fmt.Errorf("show needs a flight ID")
		}
		plan, err := service.ValidateFlight(args[1])
		if err != nil {
			return err
		}
		printPlan(plan)
		for _, p := range plan.Load.Pallets {
			fmt.Printf("  station %2d  %-12s %8.0f lbs", p.Position.StationIndex, p.ID, p.GrossWeight)
			if p.Hazmat {
				fmt.Print("  HAZMAT")
			}
			if p.Position.IsRamp {
				fmt.Print("  RAMP")
			}
			fmt.Println()
		}
		for _, v := range plan.Load.Vehicles {
			fmt.Printf("  vehicle     %-12s %8.0f lbs\n", v.ID, v.Weight)
		}
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("delete needs a flight ID")
		}
		return service.DeleteFlight(args[1])

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// printPlan writes a one-flight summary to stdout.
func printPlan(plan planner.Plan) {
	status := "VALID"
	if !plan.Result.Valid {
		status = "INVALID"
	}
	fmt.Printf("%s  %s  %d pallets  %d vehicles  %d pax  %.0f lbs  CoB %.1f%%  %s\n",
		plan.Load.ID,
		plan.Load.AircraftType,
		len(plan.Load.Pallets),
		len(plan.Load.Vehicles),
		plan.Load.Passengers.Count,
		plan.Load.TotalWeight,
		plan.Load.CoBPercent,
		status,
	)
	for _, issue := range plan.Result.Issues {
		fmt.Println("  issue:", issue)
	}
	for _, advisory := range plan.Advisories {
		fmt.Println("  advisory:", advisory)
	}
}
