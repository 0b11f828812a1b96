package parser

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"travelnews/internal/domain"
	"travelnews/internal/scanner"
)

// SkiftScanner extracts article metadata from the Skift homepage. Each
// <article> block yields at most one record; blocks without a link or a
// heading are skipped.
type SkiftScanner struct {
	client *http.Client
	logger *slog.Logger
}

var _ scanner.Scanner = (*SkiftScanner)(nil)

// NewSkiftScanner wires an HTTP client; nil falls back to the default
// 10-second-timeout client.
func NewSkiftScanner(client *http.Client, logger *slog.Logger) *SkiftScanner {
	if client == nil {
		client = defaultClient()
	}
	return &SkiftScanner{client: client, logger: logger}
}

// Name identifies the strategy inside the registry.
func (s *SkiftScanner) Name() string {
	return "skift"
}

// Scan fetches the page and extracts one article per well-formed block.
func (s *SkiftScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Article, error) {
	doc, err := fetchDocument(ctx, s.client, req.URL)
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0)
	doc.Find("article").Each(func(i int, block *goquery.Selection) {
		link, _ := block.Find("a[href]").First().Attr("href")
		link = strings.TrimSpace(link)
		title := strings.TrimSpace(block.Find("h2, h3").First().Text())

		if link == "" || title == "" {
			s.warn("skipping article block with missing link or title", "site", req.SiteName, "block", i)
			return
		}

		articles = append(articles, domain.Article{
			URL:         link,
			Title:       title,
			PublishedAt: s.publishedAt(block),
			Source:      req.SiteName,
		})
	})

	return articles, nil
}

// publishedAt reads the <time datetime> attribute as RFC 3339. Missing or
// malformed dates fall back to the current UTC time.
func (s *SkiftScanner) publishedAt(block *goquery.Selection) time.Time {
	raw, exists := block.Find("time").First().Attr("datetime")
	if !exists {
		return time.Now().UTC()
	}

	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Now().UTC()
	}
	return parsed.UTC()
}

func (s *SkiftScanner) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
