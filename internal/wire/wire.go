// Package wire provides dependency injection for the jmap application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/journeymap/internal/adapters/cli"
	"github.com/example/journeymap/internal/adapters/filesystem"
	"github.com/example/journeymap/internal/adapters/sqlite"
	"github.com/example/journeymap/internal/app"
	"github.com/example/journeymap/internal/config"
	"github.com/example/journeymap/internal/db"
	"github.com/example/journeymap/internal/logging"
	"github.com/example/journeymap/internal/ports/primary"
	"github.com/example/journeymap/internal/ports/secondary"
)

var (
	configDir string
	verbose   bool

	cfg             *config.Config
	logger          *zap.Logger
	database        *sql.DB
	store           secondary.SnapshotStore
	journeyService  primary.JourneyService
	healthService   primary.HealthService
	exportService   primary.ExportService
	snapshotService primary.SnapshotService
	once            sync.Once
	initErr         error
)

// Configure sets the config directory and verbosity. It must be called before
// the first service is requested.
func Configure(dir string, v bool) {
	configDir = dir
	verbose = v
}

// Init builds every service, returning the first error encountered.
func Init() error {
	once.Do(initServices)
	return initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, initErr = config.LoadOrDefault(configDir)
	if initErr != nil {
		return
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger, initErr = logging.New(cfg.Log.Mode, level)
	if initErr != nil {
		return
	}

	// Create the snapshot store (secondary port) for the configured backend
	switch cfg.Store {
	case config.StoreJSON:
		store = filesystem.NewSnapshotFile(cfg.SnapshotPath)
	default:
		database, initErr = db.Open(cfg.DatabasePath)
		if initErr != nil {
			initErr = fmt.Errorf("failed to initialize database: %w", initErr)
			return
		}
		store = sqlite.NewSnapshotStore(database)
	}
	sink := filesystem.NewExportDir(cfg.ExportDir)

	logger.Debug("services initialized",
		zap.String("store", cfg.Store),
		zap.String("config_dir", configDir))

	// Create services (primary ports implementation)
	journeyService = app.NewJourneyService(store, logger)
	healthService = app.NewHealthService(store, logger)
	exportService = app.NewExportService(store, sink, logger)
	snapshotService = app.NewSnapshotService(store, filesystem.OpenSnapshotFile, logger)
}

func mustInit() {
	if err := Init(); err != nil {
		log.Fatalf("failed to initialize jmap: %v", err)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	mustInit()
	return cfg
}

// Close releases the database and flushes the logger.
func Close() {
	if database != nil {
		database.Close()
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

// JourneyAdapter returns a new JourneyAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func JourneyAdapter() *cliadapter.JourneyAdapter {
	return JourneyAdapterWithOutput(os.Stdout)
}

// JourneyAdapterWithOutput returns a new JourneyAdapter writing to the given output.
func JourneyAdapterWithOutput(out io.Writer) *cliadapter.JourneyAdapter {
	mustInit()
	return cliadapter.NewJourneyAdapter(journeyService, out)
}

// HealthAdapter returns a new HealthAdapter writing to stdout.
func HealthAdapter() *cliadapter.HealthAdapter {
	return HealthAdapterWithOutput(os.Stdout)
}

// HealthAdapterWithOutput returns a new HealthAdapter writing to the given output.
func HealthAdapterWithOutput(out io.Writer) *cliadapter.HealthAdapter {
	mustInit()
	return cliadapter.NewHealthAdapter(healthService, out)
}

// ExportAdapter returns a new ExportAdapter writing to stdout.
func ExportAdapter() *cliadapter.ExportAdapter {
	return ExportAdapterWithOutput(os.Stdout)
}

// ExportAdapterWithOutput returns a new ExportAdapter writing to the given output.
func ExportAdapterWithOutput(out io.Writer) *cliadapter.ExportAdapter {
	mustInit()
	return cliadapter.NewExportAdapter(exportService, out)
}

// SnapshotAdapter returns a new SnapshotAdapter writing to stdout.
func SnapshotAdapter() *cliadapter.SnapshotAdapter {
	return SnapshotAdapterWithOutput(os.Stdout)
}

// SnapshotAdapterWithOutput returns a new SnapshotAdapter writing to the given output.
func SnapshotAdapterWithOutput(out io.Writer) *cliadapter.SnapshotAdapter {
	mustInit()
	return cliadapter.NewSnapshotAdapter(snapshotService, out)
}
