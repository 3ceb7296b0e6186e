// Package repository stores saved quotes behind their share slugs.
package repository

import (
	"context"
	"errors"

	"tradequote_backend/internal/quotes/domain"
)

var (
	// ErrNotFound is returned when no quote is stored under a slug.
	ErrNotFound = errors.New("quote not found")
	// ErrSlugTaken is returned by Save when the slug is already in use.
	ErrSlugTaken = errors.New("slug already taken")
)

// Store persists immutable quotes keyed by slug. Implementations are safe for
// concurrent use and never overwrite an existing slug.
type Store interface {
	Save(ctx context.Context, quote domain.Quote) error
	Get(ctx context.Context, slug string) (*domain.Quote, error)
}
