package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelnews/internal/domain"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportWritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "articles.csv")
	writer := NewCSVWriter(path, nil)

	published := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	err := writer.Export([]domain.Article{
		{URL: "https://skift.com/a", Title: "A, with comma", PublishedAt: published, Source: domain.SourceSkift},
	})
	require.NoError(t, err)

	records := readAll(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"url", "title", "published_at", "source"}, records[0])
	assert.Equal(t, []string{"https://skift.com/a", "A, with comma", "2024-03-05 10:00:00", "Skift"}, records[1])
}

func TestExportOverwritesPriorSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "articles.csv")
	writer := NewCSVWriter(path, nil)
	published := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	first := []domain.Article{
		{URL: "https://skift.com/first", Title: "First", PublishedAt: published, Source: domain.SourceSkift},
		{URL: "https://skift.com/second", Title: "Second", PublishedAt: published, Source: domain.SourceSkift},
	}
	require.NoError(t, writer.Export(first))

	second := []domain.Article{
		{URL: "https://www.phocuswire.com/only", Title: "Only", PublishedAt: published, Source: domain.SourcePhocusWire},
	}
	require.NoError(t, writer.Export(second))

	// Snapshot semantics: only the second run's records remain.
	records := readAll(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, "https://www.phocuswire.com/only", records[1][0])
}

func TestExportEmptyRunStillWritesHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "articles.csv")
	writer := NewCSVWriter(path, nil)

	require.NoError(t, writer.Export(nil))

	records := readAll(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"url", "title", "published_at", "source"}, records[0])
}

func TestExportUnwritablePath(t *testing.T) {
	t.Parallel()

	writer := NewCSVWriter(filepath.Join(t.TempDir(), "missing-dir", "articles.csv"), nil)

	err := writer.Export(nil)
	require.Error(t, err)
}
