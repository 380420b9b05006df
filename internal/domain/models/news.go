package models

// RawNews is a single article as the CryptoCompare news feed returns it.
type RawNews struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	URL         string `json:"url"`
	PublishedOn int64  `json:"published_on"`
	SourceInfo  struct {
		Name string `json:"name"`
	} `json:"source_info"`
}

// NewsItem is the normalized article shape. Items are built fresh per
// request and never persisted.
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source"`
	Sentiment   string `json:"sentiment"`
	AISummary   string `json:"ai_summary"`
}
