package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	drepo "SentientToken/internal/domain/repository"
)

func TestMarketsParsesListing(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":43250.75,
			 "market_cap_rank":1,"price_change_percentage_24h":2.5,
			 "price_change_percentage_7d_in_currency":null},
			{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":null}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil, nil)
	listing, err := c.Markets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/coins/markets" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	for key, want := range map[string]string{
		"vs_currency":             "usd",
		"order":                   "market_cap_desc",
		"per_page":                "50",
		"sparkline":               "false",
		"price_change_percentage": "1h,24h,7d",
	} {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Fatalf("query %s: want %q, got %v", key, want, got)
		}
	}
	if len(listing) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(listing))
	}
	if listing[0].PriceChangePercentage7d != nil {
		t.Fatalf("expected null 7d change to stay nil")
	}
	if listing[1].CurrentPrice != nil {
		t.Fatalf("expected null price to stay nil")
	}
}

func TestMarketsUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil, nil)
	_, err := c.Markets(context.Background())

	var se *drepo.UpstreamStatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected UpstreamStatusError, got %v", err)
	}
	if se.Status != http.StatusTooManyRequests {
		t.Fatalf("unexpected status %d", se.Status)
	}
	if se.Provider != "coingecko" {
		t.Fatalf("unexpected provider %q", se.Provider)
	}
}

func TestMarketsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 20*time.Millisecond, nil, nil)
	_, err := c.Markets(context.Background())

	if !errors.Is(err, drepo.ErrUpstreamTimeout) {
		t.Fatalf("expected ErrUpstreamTimeout, got %v", err)
	}
}

func TestCoinDetailPassthrough(t *testing.T) {
	body := `{"name":"Bitcoin","symbol":"btc","market_data":{"current_price":{"usd":43250.75}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil, nil)
	got, err := c.CoinDetail(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != body {
		t.Fatalf("expected verbatim body, got %q", got)
	}
}

func TestMarketChartQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/ethereum/market_chart" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("days"); got != "30" {
			t.Errorf("unexpected days %q", got)
		}
		if got := r.URL.Query().Get("vs_currency"); got != "usd" {
			t.Errorf("unexpected vs_currency %q", got)
		}
		w.Write([]byte(`{"prices":[[1700000000000,2000.5]]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil, nil)
	if _, err := c.MarketChart(context.Background(), "ethereum", 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
