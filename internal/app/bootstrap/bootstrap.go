package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	roleassignment "hexclan/contexts/event-management/role-assignment-service"
	postgresadapter "hexclan/contexts/event-management/role-assignment-service/adapters/postgres"
	"hexclan/internal/platform/config"
	"hexclan/internal/platform/db"
	"hexclan/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type SeedApp struct {
	module   roleassignment.Module
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, module, pg, logger, err := buildModule("api")
	if err != nil {
		return nil, err
	}

	return &APIApp{
		server:   httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort)),
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildSeed() (*SeedApp, error) {
	_, module, pg, logger, err := buildModule("seed")
	if err != nil {
		return nil, err
	}

	return &SeedApp{
		module:   module,
		postgres: pg,
		logger:   logger,
	}, nil
}

func buildModule(process string) (config.Config, roleassignment.Module, *db.Postgres, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, roleassignment.Module{}, nil, nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", process)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return config.Config{}, roleassignment.Module{}, nil, nil, errors.New("POSTGRES_DSN is required")
	}

	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.PostgresDSN, cfg.MigrationsPath); err != nil {
			return config.Config{}, roleassignment.Module{}, nil, nil, err
		}
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return config.Config{}, roleassignment.Module{}, nil, nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	module := roleassignment.NewModule(roleassignment.Dependencies{
		Events:       repo,
		Users:        repo,
		Memberships:  repo,
		SeedStore:    repo,
		Clock:        postgresadapter.SystemClock{},
		IDGenerator:  postgresadapter.UUIDGenerator{},
		TenantDomain: cfg.SeedDemoDomain,
		Logger:       logger,
	})

	return cfg, module, pg, logger, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (s *SeedApp) Run(ctx context.Context) error {
	_, err := s.module.Seeder.SeedDemoData(ctx)
	return err
}

func (s *SeedApp) Close() error {
	if s.postgres != nil {
		return s.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
