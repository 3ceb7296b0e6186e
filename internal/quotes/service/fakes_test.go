package service

import (
	"context"
	"sync"
	"time"

	"tradequote_backend/internal/quotes/domain"
	"tradequote_backend/internal/quotes/repository"
	"tradequote_backend/platform/ai"
)

type fakeGenerator struct {
	mu       sync.Mutex
	response string
	err      error
	block    bool
	requests []ai.Request
}

func (g *fakeGenerator) Generate(ctx context.Context, req ai.Request) (string, error) {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()

	if g.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return g.response, g.err
}

type fakeMetrics struct {
	sources []string
	reasons []string
	saves   int
}

func (m *fakeMetrics) ObserveGeneration(source, _, reason string, _ time.Duration) {
	m.sources = append(m.sources, source)
	m.reasons = append(m.reasons, reason)
}

func (m *fakeMetrics) IncSaved() { m.saves++ }

// collidingStore reports the first n saves as slug collisions.
type collidingStore struct {
	*repository.MemoryStore
	collisions int
	attempts   int
	err        error
}

func (s *collidingStore) Save(ctx context.Context, quote domain.Quote) error {
	s.attempts++
	if s.err != nil {
		return s.err
	}
	if s.attempts <= s.collisions {
		return repository.ErrSlugTaken
	}
	return s.MemoryStore.Save(ctx, quote)
}
