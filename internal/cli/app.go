package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
	"task-tracker/internal/repository/jsonfile"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/scoring"
	"task-tracker/internal/services"
	"task-tracker/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles the services and configuration the command handlers need
type App struct {
	tasks     services.TaskService
	reporting services.ReportingService
	config    *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(container *services.ServiceContainer, cfg *config.Config) *App {
	return &App{
		tasks:     container.TaskService,
		reporting: container.ReportingService,
		config:    cfg,
	}
}

// NewStoreFromConfig opens the task store selected by the configuration
func NewStoreFromConfig(cfg *config.Config) (repository.Store, error) {
	store, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Store.WriteTimeout > 0 {
		store = &writeTimeoutStore{Store: store, timeout: cfg.Store.WriteTimeout}
	}
	return store, nil
}

func openBackend(cfg *config.Config) (repository.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendJSON:
		return jsonfile.New(cfg.GetStorePath(), os.FileMode(cfg.Store.DirPermissions))
	case config.BackendSQLite:
		path := cfg.GetStorePath()
		// The sqlite backend keeps the store directory convention but
		// swaps the file extension
		if strings.HasSuffix(path, ".json") {
			path = strings.TrimSuffix(path, ".json") + ".db"
		}
		if err := os.MkdirAll(cfg.Store.Dir, os.FileMode(cfg.Store.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
		return sqlite.New(path)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

// writeTimeoutStore bounds every save with the configured write timeout
type writeTimeoutStore struct {
	repository.Store
	timeout time.Duration
}

func (s *writeTimeoutStore) Save(ctx context.Context, tasks map[string]*domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.Store.Save(ctx, tasks)
}

// NewServices wires the store into the service container
func NewServices(store repository.Store, cfg *config.Config) *services.ServiceContainer {
	engine := scoring.NewEngine(cfg.Scoring.BoostTags)
	validator := validation.NewTaskValidatorWithConfig(cfg)

	return &services.ServiceContainer{
		TaskService:      services.NewTaskService(store, engine, validator),
		ReportingService: services.NewReportingService(store, engine),
	}
}
