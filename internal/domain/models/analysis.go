package models

import "time"

// Analysis timeframes accepted by POST /api/analysis/:id.
const (
	AnalysisShortTerm  = "short_term"
	AnalysisMediumTerm = "medium_term"
	AnalysisLongTerm   = "long_term"
)

// MarketAnalysis is an AI-generated prediction for one currency. Records
// are append-only; they are never updated or deleted.
type MarketAnalysis struct {
	ID           string    `json:"id" bson:"id"`
	CryptoID     string    `json:"crypto_id" bson:"crypto_id"`
	AnalysisType string    `json:"analysis_type" bson:"analysis_type"`
	Prediction   string    `json:"prediction" bson:"prediction"`
	Confidence   float64   `json:"confidence" bson:"confidence"`
	Explanation  string    `json:"explanation" bson:"explanation"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
}

// Prediction is the parsed PREDICTION|CONFIDENCE|EXPLANATION payload
// produced by the analysis pipeline before it is wrapped for persistence.
type Prediction struct {
	Prediction  string  `json:"prediction"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// AIQuery is a free-form assistant question, optionally scoped to a coin.
type AIQuery struct {
	Question string `json:"question" validate:"required"`
	CryptoID string `json:"crypto_id,omitempty"`
}

// AIResponse is the assistant answer. Not persisted.
type AIResponse struct {
	Answer         string   `json:"answer"`
	Confidence     float64  `json:"confidence"`
	RelatedCryptos []string `json:"related_cryptos"`
}

// AnalysisRequest carries the analysis_type query parameter.
type AnalysisRequest struct {
	AnalysisType string `query:"analysis_type" json:"analysis_type" validate:"required,oneof=short_term medium_term long_term"`
}

// ChartRequest carries the days query parameter for chart lookups.
type ChartRequest struct {
	Days int `query:"days" json:"days" default:"7" validate:"gte=1,lte=365"`
}
