package di

import (
	"fmt"

	"SentientToken/internal/domain/repository"
	"SentientToken/internal/handler/api"
	internalrepo "SentientToken/internal/repository"
	"SentientToken/internal/service/ai"
	"SentientToken/internal/service/coingecko"
	"SentientToken/internal/service/cryptocompare"
	"SentientToken/internal/usecase"
	"SentientToken/pkg/config"
	xhttp "SentientToken/pkg/http"
	applogger "SentientToken/pkg/logger"
	"SentientToken/pkg/metrics"
	pkgmongo "SentientToken/pkg/mongo"
	"SentientToken/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideAnalysisStore creates the configured AnalysisStore backend.
func ProvideAnalysisStore(cfg *config.Config, l *applogger.Logger) (repository.AnalysisStore, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return internalrepo.NewMemoryAnalysisStore(), nil
	case "mongo":
		client, err := pkgmongo.NewClient(
			pkgmongo.WithURI(cfg.Mongo.URI),
			pkgmongo.WithDatabase(cfg.Mongo.Database),
			pkgmongo.WithConnectTimeout(cfg.Mongo.ConnectTimeout),
		)
		if err != nil {
			return nil, fmt.Errorf("mongo client: %w", err)
		}
		store := internalrepo.NewMongoAnalysisStore(client)
		store.SetLogger(l)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// ProvideMarketData creates the CoinGecko market client.
func ProvideMarketData(cfg *config.Config, l *applogger.Logger, m repository.Metrics) repository.MarketData {
	return coingecko.New(cfg.CoinGecko.BaseURL, cfg.CoinGecko.Timeout, l, m)
}

// ProvideNewsFeed creates the CryptoCompare news client.
func ProvideNewsFeed(cfg *config.Config, l *applogger.Logger, m repository.Metrics) repository.NewsFeed {
	return cryptocompare.New(cfg.CryptoCompare.BaseURL, cfg.CryptoCompare.Timeout, l, m)
}

// ProvideTextGenerator creates the configured text-generation backend.
func ProvideTextGenerator(cfg *config.Config) (repository.TextGenerator, error) {
	gen, err := ai.New(ai.Config{
		Provider: cfg.AI.Provider,
		Model:    cfg.AI.Model,
		APIKey:   cfg.AI.APIKey,
		Timeout:  cfg.AI.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("text generator: %w", err)
	}
	return gen, nil
}

// ProvideMarketService creates the market listing use case.
func ProvideMarketService(market repository.MarketData) *usecase.MarketService {
	return usecase.NewMarketService(market)
}

// ProvideNewsService creates the news listing use case.
func ProvideNewsService(feed repository.NewsFeed) *usecase.NewsService {
	return usecase.NewNewsService(feed)
}

// ProvideAnalysisService creates the analysis pipeline use case.
func ProvideAnalysisService(
	market repository.MarketData,
	gen repository.TextGenerator,
	store repository.AnalysisStore,
	l *applogger.Logger,
	m repository.Metrics,
) *usecase.AnalysisService {
	return usecase.NewAnalysisService(market, gen, store, l, m)
}

// ProvideCommentaryService creates the commentary use case.
func ProvideCommentaryService(
	market repository.MarketData,
	gen repository.TextGenerator,
	l *applogger.Logger,
	m repository.Metrics,
) *usecase.CommentaryService {
	return usecase.NewCommentaryService(market, gen, l, m)
}

// ProvideAssistantService creates the AI assistant use case.
func ProvideAssistantService(
	market repository.MarketData,
	gen repository.TextGenerator,
	l *applogger.Logger,
	m repository.Metrics,
) *usecase.AssistantService {
	return usecase.NewAssistantService(market, gen, l, m)
}

// ProvideHandler creates the API handler.
func ProvideHandler(
	l *applogger.Logger,
	market *usecase.MarketService,
	news *usecase.NewsService,
	analysis *usecase.AnalysisService,
	commentary *usecase.CommentaryService,
	assistant *usecase.AssistantService,
) xhttp.Handler {
	return api.NewGatewayHandler(l, market, news, analysis, commentary, assistant)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	store repository.AnalysisStore,
) *server.App {
	return server.New(cfg, l, handler, store)
}
