package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"SentientToken/internal/domain/models"
	drepo "SentientToken/internal/domain/repository"
	applogger "SentientToken/pkg/logger"
)

// assistantUnavailable is the fixed apology reply with zero confidence.
const assistantUnavailable = "I'm sorry, I'm currently unable to process your question. " +
	"Please try again later."

// AssistantService answers free-form questions, optionally scoped to a
// specific currency for context.
type AssistantService struct {
	market  drepo.MarketData
	gen     drepo.TextGenerator
	logger  *applogger.Logger
	metrics drepo.Metrics
}

func NewAssistantService(market drepo.MarketData, gen drepo.TextGenerator, l *applogger.Logger, m drepo.Metrics) *AssistantService {
	return &AssistantService{market: market, gen: gen, logger: l, metrics: m}
}

// Query answers the question. Any failure yields the fixed apology with
// confidence 0 instead of an error.
func (s *AssistantService) Query(ctx context.Context, q models.AIQuery) models.AIResponse {
	answer, err := s.answer(ctx, q)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("assistant degraded to fallback", applogger.Error(err))
		}
		if s.metrics != nil {
			s.metrics.RecordFallback("ai_query")
		}
		return models.AIResponse{
			Answer:         assistantUnavailable,
			Confidence:     0.0,
			RelatedCryptos: []string{},
		}
	}
	return models.AIResponse{
		Answer:         answer,
		Confidence:     85.0,
		RelatedCryptos: []string{},
	}
}

func (s *AssistantService) answer(ctx context.Context, q models.AIQuery) (string, error) {
	prefix := ""
	if q.CryptoID != "" {
		detail, err := s.market.CoinDetail(ctx, q.CryptoID)
		if err != nil {
			return "", err
		}
		var coin struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
		}
		if err := json.Unmarshal(detail, &coin); err != nil {
			return "", fmt.Errorf("decode coin detail: %w", err)
		}
		prefix = fmt.Sprintf("Context: User is asking about %s (%s). ", coin.Name, strings.ToUpper(coin.Symbol))
	}

	return s.gen.Generate(ctx, prefix+q.Question)
}
