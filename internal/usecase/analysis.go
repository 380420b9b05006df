package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"SentientToken/internal/domain/models"
	drepo "SentientToken/internal/domain/repository"
	applogger "SentientToken/pkg/logger"
	"SentientToken/pkg/util"

	"github.com/google/uuid"
)

// timeframePhrases resolves the enumerated timeframe into prompt wording.
var timeframePhrases = map[string]string{
	models.AnalysisShortTerm:  "next 7 days",
	models.AnalysisMediumTerm: "next 30 days",
	models.AnalysisLongTerm:   "next 3-6 months",
}

const analysisPrompt = `Analyze %s (%s) for %s prediction:

Current Price: $%s
24h Change: %.2f%%
Market Cap Rank: #%d

Provide:
1. Price prediction direction (bullish/bearish/neutral)
2. Confidence level (0-100%%)
3. Brief explanation (2-3 sentences)

Format: PREDICTION|CONFIDENCE|EXPLANATION`

// AnalysisService runs the prediction pipeline and persists its results.
type AnalysisService struct {
	market  drepo.MarketData
	gen     drepo.TextGenerator
	store   drepo.AnalysisStore
	logger  *applogger.Logger
	metrics drepo.Metrics
}

func NewAnalysisService(
	market drepo.MarketData,
	gen drepo.TextGenerator,
	store drepo.AnalysisStore,
	l *applogger.Logger,
	m drepo.Metrics,
) *AnalysisService {
	return &AnalysisService{market: market, gen: gen, store: store, logger: l, metrics: m}
}

// Analyze generates a prediction for the given currency and timeframe,
// wraps it in a MarketAnalysis record, and appends it to the store. The
// prediction step never fails: any error inside it degrades to the fixed
// neutral result before persistence.
func (s *AnalysisService) Analyze(ctx context.Context, cryptoID, analysisType string) (*models.MarketAnalysis, error) {
	pred, err := s.predict(ctx, cryptoID, analysisType)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("prediction degraded to neutral",
				applogger.String("crypto_id", cryptoID),
				applogger.Error(err),
			)
		}
		if s.metrics != nil {
			s.metrics.RecordFallback("analysis")
		}
		pred = models.Prediction{
			Prediction:  "neutral",
			Confidence:  50.0,
			Explanation: fmt.Sprintf("Unable to generate prediction: %v", err),
		}
	}

	analysis := &models.MarketAnalysis{
		ID:           uuid.NewString(),
		CryptoID:     cryptoID,
		AnalysisType: analysisType,
		Prediction:   pred.Prediction,
		Confidence:   pred.Confidence,
		Explanation:  pred.Explanation,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, analysis); err != nil {
		return nil, fmt.Errorf("persist analysis: %w", err)
	}
	if s.metrics != nil {
		s.metrics.RecordAnalysis(analysisType)
	}
	return analysis, nil
}

// Latest returns up to limit stored analyses for a currency, newest first.
func (s *AnalysisService) Latest(ctx context.Context, cryptoID string, limit int) ([]models.MarketAnalysis, error) {
	return s.store.Latest(ctx, cryptoID, limit)
}

// predict is the inner pipeline: locate the currency, build the prompt,
// invoke the generator, parse the delimited reply. Every failure surfaces
// as an error for the boundary in Analyze to map.
func (s *AnalysisService) predict(ctx context.Context, cryptoID, analysisType string) (models.Prediction, error) {
	record, err := s.locate(ctx, cryptoID)
	if err != nil {
		return models.Prediction{}, err
	}

	prompt := fmt.Sprintf(analysisPrompt,
		record.Name,
		strings.ToUpper(record.Symbol),
		timeframePhrases[analysisType],
		strconv.FormatFloat(record.CurrentPrice, 'f', -1, 64),
		record.PriceChangePercentage24h,
		record.MarketCapRank,
	)

	resp, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return models.Prediction{}, err
	}

	return parsePrediction(resp)
}

// locate fetches the market list and linearly searches for the identifier.
// An unknown identifier synthesizes a placeholder record instead of
// failing; a fetch error still propagates to the degrade boundary.
func (s *AnalysisService) locate(ctx context.Context, cryptoID string) (models.CurrencyRecord, error) {
	listing, err := s.market.Markets(ctx)
	if err != nil {
		return models.CurrencyRecord{}, err
	}
	for _, raw := range listing {
		if raw.ID == cryptoID {
			return NormalizeCurrency(raw), nil
		}
	}
	return models.CurrencyRecord{
		ID:                       cryptoID,
		Name:                     util.TitleCase(strings.ReplaceAll(cryptoID, "-", " ")),
		Symbol:                   util.SymbolFromID(cryptoID),
		CurrentPrice:             50000,
		PriceChangePercentage24h: -2.0,
		MarketCapRank:            1,
	}, nil
}

// parsePrediction splits a PREDICTION|CONFIDENCE|EXPLANATION reply. Fewer
// than three parts is not an error: the model simply ignored the format,
// so the fixed neutral result is returned directly.
func parsePrediction(resp string) (models.Prediction, error) {
	parts := strings.Split(resp, "|")
	if len(parts) < 3 {
		return models.Prediction{
			Prediction:  "neutral",
			Confidence:  50.0,
			Explanation: "Analysis temporarily unavailable",
		}, nil
	}

	confidence, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(parts[1]), "%", ""), 64)
	if err != nil {
		return models.Prediction{}, fmt.Errorf("parse confidence: %w", err)
	}

	return models.Prediction{
		Prediction:  strings.TrimSpace(parts[0]),
		Confidence:  confidence,
		Explanation: strings.TrimSpace(parts[2]),
	}, nil
}
