package ports

import (
	"context"

	"travelnews/internal/domain"
)

// ArticleSource pulls fresh articles from all configured sites.
type ArticleSource interface {
	FetchAll(ctx context.Context) ([]domain.Article, error)
}

// ArticleRepository persists articles to the durable store and serves
// the latest-N query for reporting.
type ArticleRepository interface {
	SaveAll(ctx context.Context, articles []domain.Article) (int, error)
	Latest(ctx context.Context, limit int) ([]domain.Article, error)
	Close() error
}

// Exporter writes the current run's articles to a flat-file snapshot.
type Exporter interface {
	Export(articles []domain.Article) error
}

// Reporter renders the most recent stored articles to the log stream.
type Reporter interface {
	Report(ctx context.Context) error
}
