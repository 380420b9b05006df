package repository

import (
	"context"
	"encoding/json"

	"SentientToken/internal/domain/models"
)

// MarketData fetches listings and raw passthrough objects from the market
// data provider.
type MarketData interface {
	Markets(ctx context.Context) ([]models.RawCurrency, error)
	CoinDetail(ctx context.Context, id string) (json.RawMessage, error)
	MarketChart(ctx context.Context, id string, days int) (json.RawMessage, error)
}

// NewsFeed fetches recent articles. Implementations must return a non-empty
// result on upstream failure instead of an error.
type NewsFeed interface {
	News(ctx context.Context) []models.RawNews
}

// TextGenerator sends a prompt to the configured text-generation backend and
// returns the raw response text. Callers own their fallback behavior; the
// generator reports failures as plain errors.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnalysisStore persists MarketAnalysis records append-only, keyed by
// currency identifier.
type AnalysisStore interface {
	Insert(ctx context.Context, a *models.MarketAnalysis) error
	Latest(ctx context.Context, cryptoID string, limit int) ([]models.MarketAnalysis, error)
	Close(ctx context.Context) error
}

// Metrics records operational counters for the gateway.
type Metrics interface {
	RecordUpstreamRequest(provider, outcome string)
	RecordFallback(feature string)
	RecordAnalysis(analysisType string)
	RecordLatency(op string, seconds float64)
}
