package repository

import (
	"context"
	"slices"
	"sync"

	"tradequote_backend/internal/quotes/domain"
)

// MemoryStore keeps quotes in process memory. Contents are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	quotes map[string]domain.Quote
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{quotes: make(map[string]domain.Quote)}
}

// Save stores quote under its slug.
func (s *MemoryStore) Save(_ context.Context, quote domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.quotes[quote.Slug]; exists {
		return ErrSlugTaken
	}
	quote.Items = slices.Clone(quote.Items)
	s.quotes[quote.Slug] = quote
	return nil
}

// Get returns a copy of the quote stored under slug.
func (s *MemoryStore) Get(_ context.Context, slug string) (*domain.Quote, error) {
	s.mu.RLock()
	quote, ok := s.quotes[slug]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	quote.Items = slices.Clone(quote.Items)
	return &quote, nil
}

var _ Store = (*MemoryStore)(nil)
