package usecase

import (
	"context"
	"fmt"
	"strings"

	drepo "SentientToken/internal/domain/repository"
	applogger "SentientToken/pkg/logger"
)

// commentaryUnavailable is the fixed reply when any part of the commentary
// flow fails.
const commentaryUnavailable = "Market analysis is currently unavailable. " +
	"Please check back later for AI-powered insights."

const commentaryPrompt = `Based on this cryptocurrency market data, provide a brief market commentary (2-3 sentences) explaining the current market sentiment and any notable trends:

%s
Focus on overall market direction and highlight any significant movements.`

// CommentaryService generates a short AI commentary over the top of the
// market list.
type CommentaryService struct {
	market  drepo.MarketData
	gen     drepo.TextGenerator
	logger  *applogger.Logger
	metrics drepo.Metrics
}

func NewCommentaryService(market drepo.MarketData, gen drepo.TextGenerator, l *applogger.Logger, m drepo.Metrics) *CommentaryService {
	return &CommentaryService{market: market, gen: gen, logger: l, metrics: m}
}

// Commentary summarizes the top 5 currencies and asks the generator for
// 2-3 sentences. Any failure, including the market fetch, yields the fixed
// unavailable message instead of an error.
func (s *CommentaryService) Commentary(ctx context.Context) string {
	text, err := s.generate(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("commentary degraded to fallback", applogger.Error(err))
		}
		if s.metrics != nil {
			s.metrics.RecordFallback("commentary")
		}
		return commentaryUnavailable
	}
	return text
}

func (s *CommentaryService) generate(ctx context.Context) (string, error) {
	listing, err := s.market.Markets(ctx)
	if err != nil {
		return "", err
	}

	top := listing
	if len(top) > 5 {
		top = top[:5]
	}

	var summary strings.Builder
	summary.WriteString("Current top 5 cryptocurrencies:\n")
	for _, raw := range top {
		r := NormalizeCurrency(raw)
		fmt.Fprintf(&summary, "- %s (%s): $%.2f (%.2f%% 24h)\n",
			r.Name, strings.ToUpper(r.Symbol), r.CurrentPrice, r.PriceChangePercentage24h)
	}

	return s.gen.Generate(ctx, fmt.Sprintf(commentaryPrompt, summary.String()))
}
