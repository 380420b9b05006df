//go:build wireinject
// +build wireinject

package di

import (
	"SentientToken/pkg/config"
	"SentientToken/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideAnalysisStore,
		ProvideMarketData,
		ProvideNewsFeed,
		ProvideTextGenerator,

		// Use cases
		ProvideMarketService,
		ProvideNewsService,
		ProvideAnalysisService,
		ProvideCommentaryService,
		ProvideAssistantService,

		// API surface
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
