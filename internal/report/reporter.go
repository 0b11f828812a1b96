package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"travelnews/internal/ports"
)

// DefaultLimit is how many recent articles the report shows.
const DefaultLimit = 5

// TableReporter renders the most recent stored articles as a table emitted
// through the log stream.
type TableReporter struct {
	store  ports.ArticleRepository
	limit  int
	logger *slog.Logger
}

var _ ports.Reporter = (*TableReporter)(nil)

// NewTableReporter binds the reporter to the store it queries.
func NewTableReporter(store ports.ArticleRepository, limit int, logger *slog.Logger) *TableReporter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &TableReporter{store: store, limit: limit, logger: logger}
}

// Report queries the latest articles and logs them most-recent-first. An
// empty store produces an explicit "no articles found" line, not an empty
// table.
func (r *TableReporter) Report(ctx context.Context) error {
	articles, err := r.store.Latest(ctx, r.limit)
	if err != nil {
		return fmt.Errorf("load latest articles: %w", err)
	}

	if len(articles) == 0 {
		r.info("no articles found in the database")
		return nil
	}

	rows := make([][]string, 0, len(articles))
	for _, article := range articles {
		rows = append(rows, []string{article.Title, article.Source, article.PublishedText(), article.URL})
	}

	r.info("latest articles\n" + renderTable(rows))
	return nil
}

func renderTable(rows [][]string) string {
	var sb strings.Builder
	table := tablewriter.NewTable(&sb,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
	)
	table.Header([]string{"Title", "Source", "Published At", "URL"})
	table.Bulk(rows)
	table.Render()
	return sb.String()
}

func (r *TableReporter) info(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}
