// Command loadmaster plans, validates, and rebalances airlift cargo
// loads from movement-list manifests.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/airliftops/loadmaster/internal/cache"
	"github.com/airliftops/loadmaster/internal/config"
	"github.com/airliftops/loadmaster/internal/influx"
	"github.com/airliftops/loadmaster/internal/logging"
	"github.com/airliftops/loadmaster/internal/planner"
	"github.com/airliftops/loadmaster/internal/storage"
)

// Version can be set at build time via ldflags
var (
	Version   string = "0.0.1"
	BuildDate string = "unknown"

	AppName string = "loadmaster"
)

var (
	SlogManager *logging.SlogManager
	Logger      *slog.Logger

	SessionStartTime time.Time = time.Now()
)

func main() {
	configDir := os.Getenv("LOADMASTER_CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}
	if err := config.Load(configDir); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	SlogManager = logging.NewSlogManager()
	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open log file:", err)
		os.Exit(1)
	}
	var logWriter io.Writer
	if logFile != nil {
		defer logFile.Close()
		logWriter = logFile
	}
	SlogManager.Setup(logWriter, viper.GetString("logLevel"))
	Logger = SlogManager.Logger()

	Logger.Info("Starting up", "version", Version, "buildDate", BuildDate)

	backend, err := storage.NewBackend(config.GetStorageConfig())
	if err != nil {
		Logger.Error("failed to create storage backend", "error", err)
		os.Exit(1)
	}
	if err := backend.Init(); err != nil {
		Logger.Error("failed to initialize storage backend", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	deps := planner.Dependencies{
		Backend: backend,
		Cache:   cache.NewPlanCache(),
		Logger:  Logger,
	}

	if viper.GetBool("influx.enabled") {
		backupPath := logging.LogFilePath(viper.GetString("logsDir"), AppName+"_metrics_backup", SessionStartTime) + ".gz"
		influxManager := influx.NewManager(zerolog.New(os.Stderr).With().Timestamp().Logger(), backupPath)
		if err := influxManager.Connect(); err != nil {
			Logger.Warn("plan metrics disabled", "error", err)
		} else {
			deps.Influx = influxManager
			defer influxManager.Close()
		}
	}

	service, err := planner.NewService(deps)
	if err != nil {
		Logger.Error("failed to initialize planner", "error", err)
		os.Exit(1)
	}

	if err := run(service, backend, os.Args[1:]); err != nil {
		Logger.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func openLogFile() (*os.File, error) {
	logsDir := viper.GetString("logsDir")
	if logsDir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, err
	}
	path := logging.LogFilePath(logsDir, AppName, SessionStartTime)
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
