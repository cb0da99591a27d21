package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chrisdamba/foodcatalogsim/internal/database"
	"github.com/chrisdamba/foodcatalogsim/internal/extractor"
	"github.com/chrisdamba/foodcatalogsim/internal/factories"
	"github.com/chrisdamba/foodcatalogsim/internal/logging"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
	"github.com/chrisdamba/foodcatalogsim/internal/output"
	"github.com/chrisdamba/foodcatalogsim/internal/repositories/sqlrepo"
)

// app holds what a database-backed command needs.
type app struct {
	cfg    *models.Config
	logger *slog.Logger
	db     *database.DB
	store  *sqlrepo.Store
	events output.Destination
}

func loadConfig() (*models.Config, *slog.Logger, error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newApp(ctx context.Context) (*app, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	events, err := output.New(cfg.Events)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create event destination: %w", err)
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		db:     db,
		store:  sqlrepo.NewFromDB(db, sqlrepo.WithLogger(logger)),
		events: events,
	}, nil
}

func (a *app) coordinator(opts ...extractor.Option) *extractor.Coordinator {
	base := []extractor.Option{
		extractor.WithLogger(a.logger),
		extractor.WithIDResolution(a.cfg.IDResolution),
	}
	if a.events != nil {
		base = append(base, extractor.WithEvents(a.events))
	}
	return extractor.NewCoordinator(a.store, factories.NewSource(a.cfg.Seed), append(base, opts...)...)
}

func (a *app) Close() {
	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.logger.Warn("failed to close event destination", "error", err)
		}
	}
	a.db.Close()
}
