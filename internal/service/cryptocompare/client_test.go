package cryptocompare

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestNewsParsesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/v2/news/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("categories"); got != "BTC,ETH,Trading,Blockchain" {
			t.Errorf("unexpected categories %q", got)
		}
		w.Write([]byte(`{"Data":[
			{"id":"42","title":"ETF inflows continue","body":"Spot ETF products saw net inflows.",
			 "url":"https://example.com/etf","published_on":1700000000,
			 "source_info":{"name":"CoinDesk"}}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil, nil)
	got := c.News(context.Background())
	if len(got) != 1 {
		t.Fatalf("expected 1 article, got %d", len(got))
	}
	if got[0].Title != "ETF inflows continue" || got[0].SourceInfo.Name != "CoinDesk" {
		t.Fatalf("unexpected article %+v", got[0])
	}
}

func TestNewsFallsBackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil, nil)
	first := c.News(context.Background())
	second := c.News(context.Background())

	if len(first) != 2 {
		t.Fatalf("expected 2 fallback articles, got %d", len(first))
	}
	if first[0].SourceInfo.Name != "CryptoNews" || first[1].SourceInfo.Name != "BlockchainToday" {
		t.Fatalf("unexpected fallback sources %q, %q", first[0].SourceInfo.Name, first[1].SourceInfo.Name)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("fallback must be identical on every failing call")
	}
}

func TestNewsFallsBackOnUnreachableHost(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, time.Second, nil, nil)
	if got := c.News(context.Background()); len(got) != 2 {
		t.Fatalf("expected fallback articles, got %d", len(got))
	}
}
