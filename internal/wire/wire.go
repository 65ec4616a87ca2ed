// Package wire provides dependency injection for the clerk application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/example/clerk/internal/adapters/snapshot"
	"github.com/example/clerk/internal/adapters/sqlite"
	"github.com/example/clerk/internal/app"
	"github.com/example/clerk/internal/config"
	"github.com/example/clerk/internal/ports/primary"
)

var (
	cfgFile string

	cfg                *config.Config
	logger             *logrus.Logger
	hotelService       primary.HotelService
	bankService        primary.BankService
	universityService  primary.UniversityService
	arenaService       primary.ArenaService
	persistenceService primary.PersistenceService
	seedService        *app.SeedService
	once               sync.Once
)

// SetConfigFile overrides the config lookup. Must be called before the
// first service accessor; the root command does this from --config.
func SetConfigFile(path string) { cfgFile = path }

// Config returns the resolved configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the shared logger.
func Logger() *logrus.Logger {
	once.Do(initServices)
	return logger
}

// HotelService returns the singleton HotelService instance.
func HotelService() primary.HotelService {
	once.Do(initServices)
	return hotelService
}

// BankService returns the singleton BankService instance.
func BankService() primary.BankService {
	once.Do(initServices)
	return bankService
}

// UniversityService returns the singleton UniversityService instance.
func UniversityService() primary.UniversityService {
	once.Do(initServices)
	return universityService
}

// ArenaService returns the singleton ArenaService instance.
func ArenaService() primary.ArenaService {
	once.Do(initServices)
	return arenaService
}

// PersistenceService returns the singleton PersistenceService instance.
func PersistenceService() primary.PersistenceService {
	once.Do(initServices)
	return persistenceService
}

// SeedService returns the singleton SeedService instance.
func SeedService() *app.SeedService {
	once.Do(initServices)
	return seedService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger = logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	ledger := app.NewLedger(cfg.Capacities)

	files, err := snapshot.NewFileStore(filepath.Join(cfg.DataDir, "snapshots"), logger)
	if err != nil {
		log.Fatalf("failed to initialize snapshot store: %v", err)
	}

	archive, err := sqlite.Open(filepath.Join(cfg.DataDir, "archive.db"))
	if err != nil {
		log.Fatalf("failed to initialize archive: %v", err)
	}

	hotelService = app.NewHotelService(ledger)
	bankService = app.NewBankService(ledger)
	universityService = app.NewUniversityService(ledger)
	arenaService = app.NewArenaService(ledger)
	persistenceService = app.NewPersistenceService(ledger, cfg.Capacities, files, archive, logger)
	seedService = app.NewSeedService(hotelService, bankService, universityService, arenaService)
}
