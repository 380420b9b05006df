package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"SentientToken/internal/domain/models"
	drepo "SentientToken/internal/domain/repository"
	xhttp "SentientToken/pkg/http"
	applogger "SentientToken/pkg/logger"
)

const provider = "coingecko"

// Client implements MarketData backed by the CoinGecko REST API.
type Client struct {
	baseURL string
	http    *xhttp.Client
	logger  *applogger.Logger
	metrics drepo.Metrics
}

// New creates a new CoinGecko MarketData client. The timeout bounds every
// request; there are no retries.
func New(baseURL string, timeout time.Duration, l *applogger.Logger, m drepo.Metrics) drepo.MarketData {
	return &Client{
		baseURL: baseURL,
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		logger:  l,
		metrics: m,
	}
}

// Markets fetches the top 50 currencies by market cap, in USD, with
// 1h/24h/7d percentage changes and no sparkline.
func (c *Client) Markets(ctx context.Context) ([]models.RawCurrency, error) {
	var out []models.RawCurrency
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/coins/markets",
		QueryParams: map[string]string{
			"vs_currency":             "usd",
			"order":                   "market_cap_desc",
			"per_page":                "50",
			"page":                    "1",
			"sparkline":               "false",
			"price_change_percentage": "1h,24h,7d",
		},
	}, &out)
	if err != nil {
		return nil, c.mapError("markets", err)
	}
	c.record("ok")
	return out, nil
}

// CoinDetail fetches the raw detail object for one currency, unshaped.
func (c *Client) CoinDetail(ctx context.Context, id string) (json.RawMessage, error) {
	var body []byte
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/coins/" + id,
	}, &body)
	if err != nil {
		return nil, c.mapError("coin_detail", err)
	}
	c.record("ok")
	return body, nil
}

// MarketChart fetches raw historical price data for charting, unshaped.
func (c *Client) MarketChart(ctx context.Context, id string, days int) (json.RawMessage, error) {
	var body []byte
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/coins/" + id + "/market_chart",
		QueryParams: map[string]string{
			"vs_currency": "usd",
			"days":        strconv.Itoa(days),
		},
	}, &body)
	if err != nil {
		return nil, c.mapError("market_chart", err)
	}
	c.record("ok")
	return body, nil
}

// mapError translates transport failures into the upstream error taxonomy:
// non-2xx keeps its status, a timeout becomes ErrUpstreamTimeout, anything
// else stays a wrapped fetch error.
func (c *Client) mapError(op string, err error) error {
	var se *xhttp.StatusError
	switch {
	case errors.As(err, &se):
		c.record("status_error")
		c.logError(op, err)
		return &drepo.UpstreamStatusError{Provider: provider, Status: se.Status}
	case isTimeout(err):
		c.record("timeout")
		c.logError(op, err)
		return fmt.Errorf("%s %s: %w", provider, op, drepo.ErrUpstreamTimeout)
	default:
		c.record("transport_error")
		c.logError(op, err)
		return fmt.Errorf("%s %s: %w", provider, op, err)
	}
}

func (c *Client) record(outcome string) {
	if c.metrics != nil {
		c.metrics.RecordUpstreamRequest(provider, outcome)
	}
}

func (c *Client) logError(op string, err error) {
	if c.logger != nil {
		c.logger.Error("coingecko request failed",
			applogger.String("op", op),
			applogger.Error(err),
		)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
