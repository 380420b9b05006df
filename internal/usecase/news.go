package usecase

import (
	"context"

	"SentientToken/internal/domain/models"
	drepo "SentientToken/internal/domain/repository"
)

// NewsService serves normalized articles. Items are built fresh per request
// and never persisted.
type NewsService struct {
	feed drepo.NewsFeed
}

func NewNewsService(feed drepo.NewsFeed) *NewsService {
	return &NewsService{feed: feed}
}

// List returns the latest normalized articles. The feed itself falls back
// to a built-in sample set on failure, so this never errors.
func (s *NewsService) List(ctx context.Context) []models.NewsItem {
	raw := s.feed.News(ctx)
	out := make([]models.NewsItem, 0, len(raw))
	for _, r := range raw {
		out = append(out, NormalizeNews(r))
	}
	return out
}
