package app

import (
	"context"
	"fmt"
	"log/slog"

	"travelnews/internal/config"
	"travelnews/internal/infrastructure/export"
	"travelnews/internal/infrastructure/parser"
	"travelnews/internal/infrastructure/storage"
	"travelnews/internal/report"
	"travelnews/internal/scanner"
	"travelnews/internal/usecase"
)

// Application wires configs to the pipeline and owns the store lifecycle.
type Application struct {
	cfg        config.Config
	logger     *slog.Logger
	repository *storage.SQLiteRepository
	pipeline   *usecase.Pipeline
}

// New builds a runnable application instance.
func New(cfg config.Config, logger *slog.Logger) (*Application, error) {
	registry := scanner.NewRegistry()
	registry.Register(parser.NewSkiftScanner(nil, logger.With("component", "scanner.skift")))
	registry.Register(parser.NewPhocusWireScanner(nil, logger.With("component", "scanner.phocuswire")))

	source := parser.NewStrategySource(registry, cfg.Sites, logger.With("component", "source"))

	repository, err := storage.Open(cfg.Storage.DatabasePath, logger.With("component", "storage"))
	if err != nil {
		return nil, fmt.Errorf("open article store: %w", err)
	}

	exporter := export.NewCSVWriter(cfg.Storage.ExportPath, logger.With("component", "export"))
	reporter := report.NewTableReporter(repository, report.DefaultLimit, logger.With("component", "report"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     source,
		Repository: repository,
		Exporter:   exporter,
		Reporter:   reporter,
		Logger:     logger.With("component", "pipeline"),
	})

	return &Application{
		cfg:        cfg,
		logger:     logger,
		repository: repository,
		pipeline:   pipeline,
	}, nil
}

// Run executes a single pipeline pass and releases the store.
func (a *Application) Run(ctx context.Context) error {
	defer func() {
		if err := a.repository.Close(); err != nil {
			a.logger.Error("close article store", "error", err)
		}
	}()

	err := a.pipeline.Run(ctx)

	a.logger.Info("run artifacts",
		"log_file", a.cfg.Logging.File,
		"database", a.cfg.Storage.DatabasePath,
		"export", a.cfg.Storage.ExportPath,
	)

	return err
}
