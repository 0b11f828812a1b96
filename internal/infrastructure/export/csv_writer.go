package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"travelnews/internal/domain"
	"travelnews/internal/ports"
)

var header = []string{"url", "title", "published_at", "source"}

// CSVWriter exports the current run's articles as a snapshot file: the
// target is truncated and fully rewritten on every export, header included.
type CSVWriter struct {
	path   string
	logger *slog.Logger
}

var _ ports.Exporter = (*CSVWriter)(nil)

// NewCSVWriter binds the exporter to a target path.
func NewCSVWriter(path string, logger *slog.Logger) *CSVWriter {
	return &CSVWriter{path: path, logger: logger}
}

// Export replaces the snapshot file with this run's records.
func (w *CSVWriter) Export(articles []domain.Article) error {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create export %s: %w", w.path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		_ = file.Close()
		return fmt.Errorf("write header: %w", err)
	}

	for _, article := range articles {
		record := []string{article.URL, article.Title, article.PublishedText(), article.Source}
		if err := writer.Write(record); err != nil {
			_ = file.Close()
			return fmt.Errorf("write record %s: %w", article.URL, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flush export: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}

	if w.logger != nil {
		w.logger.Info("wrote article snapshot", "path", w.path, "count", len(articles))
	}
	return nil
}
