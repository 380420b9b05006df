package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"SentientToken/internal/domain/models"
	drepo "SentientToken/internal/domain/repository"
	internalrepo "SentientToken/internal/repository"
	"SentientToken/internal/usecase"
	applogger "SentientToken/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubMarket struct {
	listing  []models.RawCurrency
	listErr  error
	detail   json.RawMessage
	chart    json.RawMessage
	err      error
	lastDays int
}

func (s *stubMarket) Markets(context.Context) ([]models.RawCurrency, error) {
	return s.listing, s.listErr
}

func (s *stubMarket) CoinDetail(context.Context, string) (json.RawMessage, error) {
	return s.detail, s.err
}

func (s *stubMarket) MarketChart(_ context.Context, _ string, days int) (json.RawMessage, error) {
	s.lastDays = days
	return s.chart, s.err
}

type stubFeed struct {
	articles []models.RawNews
}

func (s *stubFeed) News(context.Context) []models.RawNews { return s.articles }

type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) Generate(context.Context, string) (string, error) {
	return s.reply, s.err
}

type fixture struct {
	echo  *echo.Echo
	store *internalrepo.MemoryAnalysisStore
}

func newFixture(t *testing.T, market drepo.MarketData, feed drepo.NewsFeed, gen drepo.TextGenerator) *fixture {
	t.Helper()

	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	store := internalrepo.NewMemoryAnalysisStore()
	h := NewGatewayHandler(l,
		usecase.NewMarketService(market),
		usecase.NewNewsService(feed),
		usecase.NewAnalysisService(market, gen, store, l, nil),
		usecase.NewCommentaryService(market, gen, l, nil),
		usecase.NewAssistantService(market, gen, l, nil),
	)

	e := echo.New()
	h.RegisterRoutes(e)
	return &fixture{echo: e, store: store}
}

func (f *fixture) do(method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func fptr(v float64) *float64 { return &v }

func TestRootWelcome(t *testing.T) {
	f := newFixture(t, &stubMarket{}, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodGet, "/api/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != welcomeMessage {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestTopCurrenciesBareArray(t *testing.T) {
	market := &stubMarket{listing: []models.RawCurrency{{
		ID:           "bitcoin",
		Symbol:       "btc",
		Name:         "Bitcoin",
		CurrentPrice: fptr(43250.75),
	}}}
	f := newFixture(t, market, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodGet, "/api/crypto/top", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a bare array: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "bitcoin" {
		t.Fatalf("unexpected body %v", body)
	}
	if v, ok := body[0]["price_change_percentage_7d"]; !ok || v != nil {
		t.Fatalf("expected explicit null 7d change, got %v (present=%v)", v, ok)
	}
}

func TestTopCurrenciesTimeout(t *testing.T) {
	market := &stubMarket{listErr: drepo.ErrUpstreamTimeout}
	f := newFixture(t, market, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodGet, "/api/crypto/top", "")
	if rec.Code != http.StatusRequestTimeout {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["detail"] != "Request timeout" {
		t.Fatalf("unexpected detail %q", body["detail"])
	}
}

func TestTopCurrenciesUpstreamStatusPassthrough(t *testing.T) {
	market := &stubMarket{listErr: &drepo.UpstreamStatusError{Provider: "coingecko", Status: http.StatusTooManyRequests}}
	f := newFixture(t, market, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodGet, "/api/crypto/top", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["detail"] != "Failed to fetch crypto data" {
		t.Fatalf("unexpected detail %q", body["detail"])
	}
}

func TestCoinDetailNotFound(t *testing.T) {
	market := &stubMarket{err: &drepo.UpstreamStatusError{Provider: "coingecko", Status: http.StatusNotFound}}
	f := newFixture(t, market, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodGet, "/api/crypto/doesnotexist", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["detail"] != "Cryptocurrency not found" {
		t.Fatalf("unexpected detail %q", body["detail"])
	}
}

func TestCoinDetailPassthroughBody(t *testing.T) {
	raw := `{"name":"Bitcoin","market_data":{"current_price":{"usd":43250.75}}}`
	market := &stubMarket{detail: json.RawMessage(raw)}
	f := newFixture(t, market, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodGet, "/api/crypto/bitcoin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != raw {
		t.Fatalf("expected verbatim upstream body, got %q", rec.Body.String())
	}
}

func TestCoinChartDefaultsDays(t *testing.T) {
	market := &stubMarket{chart: json.RawMessage(`{"prices":[]}`)}
	f := newFixture(t, market, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodGet, "/api/crypto/bitcoin/chart", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if market.lastDays != 7 {
		t.Fatalf("expected default days 7, got %d", market.lastDays)
	}

	f.do(http.MethodGet, "/api/crypto/bitcoin/chart?days=30", "")
	if market.lastDays != 30 {
		t.Fatalf("expected days 30, got %d", market.lastDays)
	}
}

func TestCoinChartRejectsOutOfRangeDays(t *testing.T) {
	f := newFixture(t, &stubMarket{}, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodGet, "/api/crypto/bitcoin/chart?days=400", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestNewsNormalized(t *testing.T) {
	article := models.RawNews{
		Title:       "ETF inflows continue",
		Body:        "Spot ETF products saw net inflows.",
		URL:         "https://example.com/etf",
		PublishedOn: 1700000000,
	}
	article.SourceInfo.Name = "CoinDesk"
	f := newFixture(t, &stubMarket{}, &stubFeed{articles: []models.RawNews{article}}, &stubGenerator{})

	rec := f.do(http.MethodGet, "/api/news", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body []models.NewsItem
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a bare array: %v", err)
	}
	if len(body) != 1 || body[0].Source != "CoinDesk" || body[0].Sentiment != "neutral" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestCommentaryShape(t *testing.T) {
	market := &stubMarket{listing: []models.RawCurrency{{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: fptr(43000)}}}
	f := newFixture(t, market, &stubFeed{}, &stubGenerator{reply: "Markets look stable."})

	rec := f.do(http.MethodGet, "/api/market/commentary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["commentary"] != "Markets look stable." {
		t.Fatalf("unexpected commentary %q", body["commentary"])
	}
	if body["timestamp"] == "" {
		t.Fatal("expected a timestamp")
	}
}

func TestCreateAnalysisRejectsInvalidType(t *testing.T) {
	f := newFixture(t, &stubMarket{}, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodPost, "/api/analysis/bitcoin?analysis_type=hourly", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	stored, _ := f.store.Latest(context.Background(), "bitcoin", 10)
	if len(stored) != 0 {
		t.Fatalf("rejected request must not persist, got %d records", len(stored))
	}
}

func TestCreateAnalysisRequiresType(t *testing.T) {
	f := newFixture(t, &stubMarket{}, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodPost, "/api/analysis/bitcoin", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestCreateAndListAnalyses(t *testing.T) {
	market := &stubMarket{listing: []models.RawCurrency{{
		ID:           "bitcoin",
		Symbol:       "btc",
		Name:         "Bitcoin",
		CurrentPrice: fptr(43000),
	}}}
	f := newFixture(t, market, &stubFeed{}, &stubGenerator{reply: "bullish|70|Looks strong."})

	rec := f.do(http.MethodPost, "/api/analysis/bitcoin?analysis_type=short_term", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	var created models.MarketAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Prediction != "bullish" || created.AnalysisType != "short_term" {
		t.Fatalf("unexpected analysis %+v", created)
	}

	rec = f.do(http.MethodGet, "/api/analysis/bitcoin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var listed []models.MarketAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("expected a bare array: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("unexpected listing %+v", listed)
	}
}

func TestAIQueryRequiresQuestion(t *testing.T) {
	f := newFixture(t, &stubMarket{}, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodPost, "/api/ai/query", `{"crypto_id":"bitcoin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestAIQueryAnswers(t *testing.T) {
	f := newFixture(t, &stubMarket{}, &stubFeed{}, &stubGenerator{reply: "Proof of stake secures the network via validators."})

	rec := f.do(http.MethodPost, "/api/ai/query", `{"question":"What is proof of stake?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body models.AIResponse
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Confidence != 85 {
		t.Fatalf("unexpected confidence %v", body.Confidence)
	}
}

func TestAIQueryDegradesOnGeneratorError(t *testing.T) {
	f := newFixture(t, &stubMarket{}, &stubFeed{}, &stubGenerator{err: errors.New("unavailable")})

	rec := f.do(http.MethodPost, "/api/ai/query", `{"question":"anything"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("fallback answers must still be 200, got %d", rec.Code)
	}
	var body models.AIResponse
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", body.Confidence)
	}
}

func TestEducationTerms(t *testing.T) {
	f := newFixture(t, &stubMarket{}, &stubFeed{}, &stubGenerator{})

	rec := f.do(http.MethodGet, "/api/education/terms", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body struct {
		Terms []models.EducationTerm `json:"terms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Terms) == 0 {
		t.Fatal("expected at least one term")
	}
}
