package usecase

import (
	"context"
	"log/slog"

	"travelnews/internal/domain"
	"travelnews/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source     ports.ArticleSource
	Repository ports.ArticleRepository
	Exporter   ports.Exporter
	Reporter   ports.Reporter
	Logger     *slog.Logger
}

// Pipeline runs the collection workflow: fetch, store, export, report.
// Every stage failure is contained within its stage; the run always reaches
// the reporting stage.
type Pipeline struct {
	source     ports.ArticleSource
	repository ports.ArticleRepository
	exporter   ports.Exporter
	reporter   ports.Reporter
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		repository: deps.Repository,
		exporter:   deps.Exporter,
		reporter:   deps.Reporter,
		logger:     deps.Logger,
	}
}

// Run performs one full, independent pipeline pass.
func (p *Pipeline) Run(ctx context.Context) error {
	p.info("starting news pipeline")

	var collected []domain.Article
	if p.source != nil {
		articles, err := p.source.FetchAll(ctx)
		if err != nil {
			p.error("fetch stage failed", "error", err)
		} else {
			collected = articles
		}
	}

	if p.repository != nil {
		inserted, err := p.repository.SaveAll(ctx, collected)
		if err != nil {
			p.error("store write failed", "error", err)
		} else {
			p.info("stored articles", "offered", len(collected), "inserted", inserted)
		}
	}

	if p.exporter != nil {
		if err := p.exporter.Export(collected); err != nil {
			p.error("export failed", "error", err)
		}
	}

	if p.reporter != nil {
		if err := p.reporter.Report(ctx); err != nil {
			p.error("report failed", "error", err)
		}
	}

	p.info("news pipeline completed")
	return nil
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) error(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}
