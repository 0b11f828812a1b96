package domain

import "time"

// TimeLayout is the canonical textual form for published_at in the store,
// the CSV export, and the report.
const TimeLayout = "2006-01-02 15:04:05"

// Known source identities for the configured sites.
const (
	SourceSkift      = "Skift"
	SourcePhocusWire = "PhocusWire"
)

// Article is the normalized record every pipeline stage operates on.
// URL is the identity key; duplicates are dropped on write.
type Article struct {
	URL         string
	Title       string
	PublishedAt time.Time
	Source      string
}

// PublishedText renders the timestamp in the canonical layout.
func (a Article) PublishedText() string {
	return a.PublishedAt.Format(TimeLayout)
}
