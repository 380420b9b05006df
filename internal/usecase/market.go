package usecase

import (
	"context"
	"encoding/json"

	"SentientToken/internal/domain/models"
	drepo "SentientToken/internal/domain/repository"
)

// MarketService serves normalized listings and raw passthrough lookups.
type MarketService struct {
	market drepo.MarketData
}

func NewMarketService(market drepo.MarketData) *MarketService {
	return &MarketService{market: market}
}

// TopCurrencies fetches the ranked market list and normalizes every row.
func (s *MarketService) TopCurrencies(ctx context.Context) ([]models.CurrencyRecord, error) {
	raw, err := s.market.Markets(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.CurrencyRecord, 0, len(raw))
	for _, r := range raw {
		out = append(out, NormalizeCurrency(r))
	}
	return out, nil
}

// Detail returns the upstream detail object for one currency, unshaped.
func (s *MarketService) Detail(ctx context.Context, id string) (json.RawMessage, error) {
	return s.market.CoinDetail(ctx, id)
}

// Chart returns the upstream chart object for one currency, unshaped.
func (s *MarketService) Chart(ctx context.Context, id string, days int) (json.RawMessage, error) {
	return s.market.MarketChart(ctx, id, days)
}
