package usecase

import (
	"SentientToken/internal/domain/models"
	"SentientToken/pkg/util"

	"github.com/google/uuid"
)

// descriptionLimit is the character budget for news bodies before the
// ellipsis marker is appended.
const descriptionLimit = 200

// NormalizeCurrency maps a raw market row into the stable currency shape.
// Missing or null numerics become zero. The 7-day change is the one
// exception: an explicit null (or absent field) is preserved as null
// instead of being coerced to zero.
func NormalizeCurrency(raw models.RawCurrency) models.CurrencyRecord {
	return models.CurrencyRecord{
		ID:                       raw.ID,
		Symbol:                   raw.Symbol,
		Name:                     raw.Name,
		CurrentPrice:             floatOrZero(raw.CurrentPrice),
		MarketCap:                int64(floatOrZero(raw.MarketCap)),
		MarketCapRank:            int(floatOrZero(raw.MarketCapRank)),
		PriceChangePercentage24h: floatOrZero(raw.PriceChangePercentage24h),
		PriceChangePercentage7d:  raw.PriceChangePercentage7d,
		TotalVolume:              int64(floatOrZero(raw.TotalVolume)),
		Image:                    raw.Image,
	}
}

// NormalizeNews maps a raw article into a NewsItem with a fresh identifier.
// Bodies longer than 200 characters are truncated by character count with
// an ellipsis marker; the published timestamp is converted from epoch
// seconds to ISO-8601.
func NormalizeNews(raw models.RawNews) models.NewsItem {
	source := raw.SourceInfo.Name
	if source == "" {
		source = "Unknown"
	}
	return models.NewsItem{
		ID:          uuid.NewString(),
		Title:       raw.Title,
		Description: util.Truncate(raw.Body, descriptionLimit),
		URL:         raw.URL,
		PublishedAt: util.EpochToISO(raw.PublishedOn),
		Source:      source,
		Sentiment:   "neutral",
		AISummary:   "",
	}
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
