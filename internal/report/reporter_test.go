package report

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelnews/internal/domain"
)

type fakeStore struct {
	articles []domain.Article
	err      error
	gotLimit int
}

func (f *fakeStore) SaveAll(ctx context.Context, articles []domain.Article) (int, error) {
	return 0, nil
}

func (f *fakeStore) Latest(ctx context.Context, limit int) ([]domain.Article, error) {
	f.gotLimit = limit
	return f.articles, f.err
}

func (f *fakeStore) Close() error { return nil }

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestReportRendersLatestArticles(t *testing.T) {
	t.Parallel()

	published := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{articles: []domain.Article{
		{URL: "https://skift.com/a", Title: "Airlines Rebound", PublishedAt: published, Source: domain.SourceSkift},
		{URL: "https://www.phocuswire.com/b", Title: "Booking Surge", PublishedAt: published.Add(-time.Hour), Source: domain.SourcePhocusWire},
	}}

	logger, buf := newBufferLogger()
	reporter := NewTableReporter(store, 5, logger)

	require.NoError(t, reporter.Report(context.Background()))

	assert.Equal(t, 5, store.gotLimit)
	out := buf.String()
	assert.Contains(t, out, "Airlines Rebound")
	assert.Contains(t, out, "Booking Surge")
	assert.Contains(t, out, "2024-03-05 10:00:00")
	// Most-recent-first: the newer title renders before the older one.
	assert.Less(t, strings.Index(out, "Airlines Rebound"), strings.Index(out, "Booking Surge"))
}

func TestReportEmptyStore(t *testing.T) {
	t.Parallel()

	logger, buf := newBufferLogger()
	reporter := NewTableReporter(&fakeStore{}, 5, logger)

	require.NoError(t, reporter.Report(context.Background()))
	assert.Contains(t, buf.String(), "no articles found")
}

func TestReportStoreFailure(t *testing.T) {
	t.Parallel()

	reporter := NewTableReporter(&fakeStore{err: errors.New("boom")}, 5, nil)

	err := reporter.Report(context.Background())
	require.Error(t, err)
}

func TestNewTableReporterDefaultsLimit(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	reporter := NewTableReporter(store, 0, nil)

	require.NoError(t, reporter.Report(context.Background()))
	assert.Equal(t, DefaultLimit, store.gotLimit)
}
