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

const (
	phocusWireBaseURL    = "https://www.phocuswire.com"
	phocusWireDateLayout = "January 2, 2006"
)

// PhocusWireScanner extracts article metadata from the PhocusWire
// Latest-News listing. Item links are relative and get prefixed with the
// site base URL; the publish date is the last |-separated field of the
// byline text.
type PhocusWireScanner struct {
	client *http.Client
	logger *slog.Logger
}

var _ scanner.Scanner = (*PhocusWireScanner)(nil)

// NewPhocusWireScanner wires an HTTP client; nil falls back to the default
// 10-second-timeout client.
func NewPhocusWireScanner(client *http.Client, logger *slog.Logger) *PhocusWireScanner {
	if client == nil {
		client = defaultClient()
	}
	return &PhocusWireScanner{client: client, logger: logger}
}

// Name identifies the strategy inside the registry.
func (p *PhocusWireScanner) Name() string {
	return "phocuswire"
}

// Scan fetches the listing page and extracts one article per well-formed item.
func (p *PhocusWireScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Article, error) {
	doc, err := fetchDocument(ctx, p.client, req.URL)
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0)
	doc.Find(".list-view .item").Each(func(i int, item *goquery.Selection) {
		anchor := item.Find("a.title").First()
		href, _ := anchor.Attr("href")
		href = strings.TrimSpace(href)
		title := strings.TrimSpace(anchor.Text())

		if href == "" || title == "" {
			p.warn("skipping list item with missing link or title", "site", req.SiteName, "item", i)
			return
		}

		if !strings.HasPrefix(href, "http") {
			href = phocusWireBaseURL + href
		}

		articles = append(articles, domain.Article{
			URL:         href,
			Title:       title,
			PublishedAt: p.publishedAt(item),
			Source:      req.SiteName,
		})
	})

	return articles, nil
}

// publishedAt parses the "Author Name | January 2, 2006" byline. Missing or
// malformed dates fall back to the current UTC time.
func (p *PhocusWireScanner) publishedAt(item *goquery.Selection) time.Time {
	byline := item.Find(".author").First().Text()
	if byline == "" {
		return time.Now().UTC()
	}

	fields := strings.Split(byline, "|")
	raw := strings.TrimSpace(fields[len(fields)-1])

	parsed, err := time.Parse(phocusWireDateLayout, raw)
	if err != nil {
		return time.Now().UTC()
	}
	return parsed
}

func (p *PhocusWireScanner) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
