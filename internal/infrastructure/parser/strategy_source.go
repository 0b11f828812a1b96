package parser

import (
	"context"
	"fmt"
	"log/slog"

	"travelnews/internal/config"
	"travelnews/internal/domain"
	"travelnews/internal/ports"
	"travelnews/internal/scanner"
)

// StrategySource implements ArticleSource via registered scanner strategies.
// It is the failure boundary for fetching: a site whose scan fails
// contributes an empty list and the remaining sites still run.
type StrategySource struct {
	registry *scanner.Registry
	sites    []config.SiteConfig
	logger   *slog.Logger
}

var _ ports.ArticleSource = (*StrategySource)(nil)

// NewStrategySource wires the scanner registry with config-defined sites.
func NewStrategySource(reg *scanner.Registry, sites []config.SiteConfig, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		sites:    sites,
		logger:   log,
	}
}

// FetchAll iterates over configured sites and executes their scanners.
func (s *StrategySource) FetchAll(ctx context.Context) ([]domain.Article, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	var aggregated []domain.Article
	for _, site := range s.sites {
		s.info("scraping news articles", "site", site.Name, "url", site.URL)

		strategy, err := s.registry.Resolve(site.Scanner)
		if err != nil {
			s.error("site skipped", "site", site.Name, "error", err)
			continue
		}

		results, err := strategy.Scan(ctx, scanner.Request{
			SiteName: site.Name,
			URL:      site.URL,
		})
		if err != nil {
			s.error("scrape failed", "site", site.Name, "error", err)
			continue
		}

		s.info("fetched articles", "site", site.Name, "count", len(results))
		for i, article := range results {
			s.debug("extracted article",
				"site", site.Name,
				"n", i+1,
				"url", article.URL,
				"title", article.Title,
				"published_at", article.PublishedText(),
			)
		}

		aggregated = append(aggregated, results...)
	}

	return aggregated, nil
}

func (s *StrategySource) info(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *StrategySource) error(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}

func (s *StrategySource) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
