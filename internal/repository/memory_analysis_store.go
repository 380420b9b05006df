package repository

import (
	"context"
	"sort"
	"sync"

	"SentientToken/internal/domain/models"
)

// MemoryAnalysisStore implements AnalysisStore in process memory, for
// development and tests (storage.backend: memory).
type MemoryAnalysisStore struct {
	mu     sync.RWMutex
	byCoin map[string][]models.MarketAnalysis
}

func NewMemoryAnalysisStore() *MemoryAnalysisStore {
	return &MemoryAnalysisStore{byCoin: make(map[string][]models.MarketAnalysis)}
}

func (s *MemoryAnalysisStore) Insert(_ context.Context, a *models.MarketAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byCoin[a.CryptoID] = append(s.byCoin[a.CryptoID], *a)
	return nil
}

func (s *MemoryAnalysisStore) Latest(_ context.Context, cryptoID string, limit int) ([]models.MarketAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byCoin[cryptoID]
	out := make([]models.MarketAnalysis, len(stored))
	copy(out, stored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryAnalysisStore) Close(context.Context) error { return nil }
