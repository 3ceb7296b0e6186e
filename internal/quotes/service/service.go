package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tradequote_backend/internal/quotes/domain"
	"tradequote_backend/internal/quotes/repository"
	"tradequote_backend/platform/ai"
	"tradequote_backend/platform/apperr"
	"tradequote_backend/platform/logger"
	"tradequote_backend/platform/sanitize"

	"github.com/google/uuid"
)

// maxSlugAttempts bounds how many fresh slugs Save tries before giving up.
const maxSlugAttempts = 5

// MetricsRecorder is the narrow metrics surface the service reports to.
type MetricsRecorder interface {
	ObserveGeneration(source, trade, reason string, duration time.Duration)
	IncSaved()
}

type noopMetrics struct{}

func (noopMetrics) ObserveGeneration(string, string, string, time.Duration) {}
func (noopMetrics) IncSaved()                                               {}

// Service provides quote generation, saving and retrieval.
type Service struct {
	store     repository.Store
	generator ai.Generator // nil means no credential; every generation falls back
	timeout   time.Duration
	log       *logger.Logger
	metrics   MetricsRecorder
	newSlug   func() string
	now       func() time.Time
}

// New creates a quotes service backed by store.
func New(store repository.Store, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		store:   store,
		timeout: DefaultGenerationTimeout,
		log:     log,
		metrics: noopMetrics{},
		newSlug: repository.NewSlug,
		now:     time.Now,
	}
}

// SetGenerator injects the generation backend and the per-call timeout. A nil
// generator keeps the service on the fallback quote.
func (s *Service) SetGenerator(gen ai.Generator, timeout time.Duration) {
	s.generator = gen
	if timeout > 0 {
		s.timeout = timeout
	}
}

// SetMetrics injects the metrics recorder.
func (s *Service) SetMetrics(m MetricsRecorder) {
	if m != nil {
		s.metrics = m
	}
}

// GenerateInput is a request to draft a quote.
type GenerateInput struct {
	JobDescription string
	QuoteContext
}

// GenerateOutput is a drafted quote with totals.
type GenerateOutput struct {
	Items      []domain.QuoteItem
	Notes      string
	Totals     Totals
	Trade      string
	Confidence float64
	Source     Source
}

// Generate drafts items for the job and totals them. The untrimmed description drives
// the green-waste check while the trimmed one is sent to the generator.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	description := strings.TrimSpace(in.JobDescription)
	if description == "" {
		return nil, apperr.Validation("Job description is required")
	}

	qc := in.QuoteContext
	qc.CustomerName = strings.TrimSpace(qc.CustomerName)
	qc.Location = strings.TrimSpace(qc.Location)
	if !qc.PropertyType.Valid() {
		return nil, apperr.Validation("Invalid property type")
	}
	if !qc.Urgency.Valid() {
		return nil, apperr.Validation("Invalid urgency")
	}

	result := s.GenerateQuote(ctx, description, qc)
	return &GenerateOutput{
		Items:      result.Items,
		Notes:      result.Notes,
		Totals:     CalculateTotals(result.Items, in.JobDescription),
		Trade:      string(result.Trade),
		Confidence: result.Confidence,
		Source:     result.Source,
	}, nil
}

// SaveInput is a client-edited quote to persist. Items is the undecoded JSON array.
type SaveInput struct {
	CustomerName   string
	Location       string
	PropertyType   domain.PropertyType
	Urgency        domain.Urgency
	JobDescription string
	Items          any
	Notes          string
}

// Save validates and stores a quote under a fresh slug. Totals are always recomputed
// server-side. Item labels are stored verbatim; the other free-text fields are
// stripped of markup.
func (s *Service) Save(ctx context.Context, in SaveInput) (*domain.Quote, error) {
	if in.JobDescription == "" {
		return nil, apperr.Validation(MsgInvalidQuoteData)
	}
	items, verr := ValidateSavedItems(in.Items)
	if verr != nil {
		return nil, apperr.Validation(verr.Message()).WithOp("quotes.Save")
	}
	if !in.PropertyType.Valid() {
		return nil, apperr.Validation("Invalid property type")
	}
	if !in.Urgency.Valid() {
		return nil, apperr.Validation("Invalid urgency")
	}

	jobDescription := sanitize.Text(in.JobDescription)
	if jobDescription == "" {
		return nil, apperr.Validation(MsgInvalidQuoteData)
	}
	totals := CalculateTotals(items, jobDescription)
	quote := domain.Quote{
		ID:             uuid.New(),
		CreatedAt:      s.now().UTC(),
		CustomerName:   sanitize.Text(in.CustomerName),
		Location:       sanitize.Text(in.Location),
		PropertyType:   in.PropertyType,
		Urgency:        in.Urgency,
		JobDescription: jobDescription,
		Items:          items,
		Subtotal:       totals.Subtotal,
		GST:            totals.GST,
		Total:          totals.Total,
		Notes:          sanitize.Text(in.Notes),
	}

	if err := s.saveWithFreshSlug(ctx, &quote); err != nil {
		s.log.WithContext(ctx).StoreError("save", err)
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to save quote", err).WithOp("quotes.Save")
	}

	s.metrics.IncSaved()
	s.log.WithContext(ctx).Info("quote saved", "slug", quote.Slug, "items", len(items), "total", quote.Total)
	return &quote, nil
}

func (s *Service) saveWithFreshSlug(ctx context.Context, quote *domain.Quote) error {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		quote.Slug = s.newSlug()
		err := s.store.Save(ctx, *quote)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrSlugTaken) {
			return err
		}
	}
	return fmt.Errorf("no free slug after %d attempts: %w", maxSlugAttempts, repository.ErrSlugTaken)
}

// Get returns the quote shared under slug.
func (s *Service) Get(ctx context.Context, slug string) (*domain.Quote, error) {
	if !repository.ValidSlug(slug) {
		return nil, apperr.NotFound("Quote not found")
	}

	quote, err := s.store.Get(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("Quote not found")
	}
	if err != nil {
		s.log.WithContext(ctx).StoreError("get", err)
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to get quote", err).WithOp("quotes.Get")
	}
	return quote, nil
}
