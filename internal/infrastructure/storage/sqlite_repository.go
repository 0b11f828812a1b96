package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"travelnews/internal/domain"
	"travelnews/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS articles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	url TEXT UNIQUE,
	title TEXT,
	published_at TEXT,
	source TEXT
)`

// SQLiteRepository persists articles into a single-file SQLite store.
// Duplicate URLs are dropped on insert, never updated.
type SQLiteRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ ports.ArticleRepository = (*SQLiteRepository)(nil)

// Open creates the store file if needed and ensures the articles table exists.
func Open(path string, logger *slog.Logger) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &SQLiteRepository{db: db, logger: logger}, nil
}

// Close releases the underlying connection.
func (r *SQLiteRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// SaveAll inserts the batch in one transaction with insert-or-ignore
// semantics keyed on url. A failing row is logged and skipped; the rest of
// the batch proceeds. Returns the number of rows actually inserted, which
// is lower than the offered count when duplicates are present.
func (r *SQLiteRepository) SaveAll(ctx context.Context, articles []domain.Article) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, article := range articles {
		query, args, err := sq.Insert("articles").
			Options("OR IGNORE").
			Columns("url", "title", "published_at", "source").
			Values(article.URL, article.Title, article.PublishedText(), article.Source).
			ToSql()
		if err != nil {
			r.warn("build insert failed", "url", article.URL, "error", err)
			continue
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			r.warn("insert article failed", "url", article.URL, "error", err)
			continue
		}

		affected, err := res.RowsAffected()
		if err != nil {
			r.warn("rows affected unavailable", "url", article.URL, "error", err)
			continue
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit batch: %w", err)
	}

	return inserted, nil
}

// Latest returns up to limit articles ordered most-recent-first by the
// parsed published_at timestamp, not lexicographically.
func (r *SQLiteRepository) Latest(ctx context.Context, limit int) ([]domain.Article, error) {
	query, args, err := sq.Select("url", "title", "published_at", "source").
		From("articles").
		OrderBy("datetime(published_at) DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query latest: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var (
			article   domain.Article
			published string
		)
		if err := rows.Scan(&article.URL, &article.Title, &published, &article.Source); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}

		article.PublishedAt, err = time.Parse(domain.TimeLayout, published)
		if err != nil {
			return nil, fmt.Errorf("parse published_at %q: %w", published, err)
		}

		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return articles, nil
}

func (r *SQLiteRepository) warn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
