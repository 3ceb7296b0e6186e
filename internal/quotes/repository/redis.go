package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tradequote_backend/internal/quotes/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tradequote:quote:"

// RedisStore keeps quotes in Redis so several API instances can share links.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client. A zero ttl stores quotes without expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// OpenRedis parses a redis:// URL and verifies the server is reachable.
func OpenRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

type redisRecord struct {
	ID             uuid.UUID          `json:"id"`
	Slug           string             `json:"slug"`
	CreatedAt      time.Time          `json:"createdAt"`
	CustomerName   string             `json:"customerName,omitempty"`
	Location       string             `json:"location,omitempty"`
	PropertyType   string             `json:"propertyType,omitempty"`
	Urgency        string             `json:"urgency,omitempty"`
	JobDescription string             `json:"jobDescription"`
	Items          []domain.QuoteItem `json:"items"`
	Subtotal       int                `json:"subtotal"`
	GST            int                `json:"gst"`
	Total          int                `json:"total"`
	Notes          string             `json:"notes,omitempty"`
}

// Save writes quote with SET NX so an existing slug is never overwritten.
func (s *RedisStore) Save(ctx context.Context, quote domain.Quote) error {
	data, err := json.Marshal(redisRecord{
		ID:             quote.ID,
		Slug:           quote.Slug,
		CreatedAt:      quote.CreatedAt,
		CustomerName:   quote.CustomerName,
		Location:       quote.Location,
		PropertyType:   string(quote.PropertyType),
		Urgency:        string(quote.Urgency),
		JobDescription: quote.JobDescription,
		Items:          quote.Items,
		Subtotal:       quote.Subtotal,
		GST:            quote.GST,
		Total:          quote.Total,
		Notes:          quote.Notes,
	})
	if err != nil {
		return fmt.Errorf("encode quote: %w", err)
	}

	ok, err := s.client.SetNX(ctx, redisKeyPrefix+quote.Slug, data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("save quote: %w", err)
	}
	if !ok {
		return ErrSlugTaken
	}
	return nil
}

// Get loads the quote stored under slug.
func (s *RedisStore) Get(ctx context.Context, slug string) (*domain.Quote, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+slug).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}

	var rec redisRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode quote %s: %w", slug, err)
	}
	return &domain.Quote{
		ID:             rec.ID,
		Slug:           rec.Slug,
		CreatedAt:      rec.CreatedAt,
		CustomerName:   rec.CustomerName,
		Location:       rec.Location,
		PropertyType:   domain.PropertyType(rec.PropertyType),
		Urgency:        domain.Urgency(rec.Urgency),
		JobDescription: rec.JobDescription,
		Items:          rec.Items,
		Subtotal:       rec.Subtotal,
		GST:            rec.GST,
		Total:          rec.Total,
		Notes:          rec.Notes,
	}, nil
}

var _ Store = (*RedisStore)(nil)
