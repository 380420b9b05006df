package models

// RawCurrency is a market listing row as CoinGecko returns it. Numeric
// fields are pointers so that absent and null JSON values survive decoding
// and can be defaulted during normalization.
type RawCurrency struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	MarketCapRank            *float64 `json:"market_cap_rank"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  *float64 `json:"price_change_percentage_7d_in_currency"`
	TotalVolume              *float64 `json:"total_volume"`
	Image                    string   `json:"image"`
}

// CurrencyRecord is the stable internal currency shape served to clients.
// Missing upstream numerics default to zero; the 7-day change keeps an
// explicit null instead (see usecase.NormalizeCurrency).
type CurrencyRecord struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	CurrentPrice             float64  `json:"current_price"`
	MarketCap                int64    `json:"market_cap"`
	MarketCapRank            int      `json:"market_cap_rank"`
	PriceChangePercentage24h float64  `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  *float64 `json:"price_change_percentage_7d"`
	TotalVolume              int64    `json:"total_volume"`
	Image                    string   `json:"image"`
}
