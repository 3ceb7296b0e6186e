package service

import (
	"context"
	"errors"
	"time"

	"tradequote_backend/internal/quotes/domain"
	"tradequote_backend/internal/trades"
	"tradequote_backend/platform/ai"
)

// Source reports where a generated quote's items came from.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// Fallback reasons, also used as metric labels.
const (
	ReasonNoCredential = "no_credential"
	ReasonTimeout      = "timeout"
	ReasonTransport    = "transport"
	ReasonEmpty        = "empty_response"
	ReasonParse        = "parse"
	ReasonValidation   = "validation"
)

// DefaultGenerationTimeout bounds a generator call when none is configured.
const DefaultGenerationTimeout = 20 * time.Second

const fallbackNotes = "Includes disposal of all green waste. Weather permitting."

// GenerationResult is the outcome of GenerateQuote. Items and Notes are always usable.
type GenerationResult struct {
	Items          []domain.QuoteItem
	Notes          string
	Source         Source
	Trade          trades.Type
	Confidence     float64
	FallbackReason string
}

// FallbackItems returns a fresh copy of the demo quote lines.
func FallbackItems() []domain.QuoteItem {
	return []domain.QuoteItem{
		{Label: "Hedge trimming", Qty: 2, Unit: domain.UnitHour, UnitPrice: 90},
		{Label: "Lawn mowing", Qty: 1.5, Unit: domain.UnitHour, UnitPrice: 90},
		{Label: "Green waste removal", Qty: 1, Unit: domain.UnitItem, UnitPrice: 25},
	}
}

// GenerateQuote asks the generator for line items and never fails outward: without a
// generator, or when the call or its output is unusable, the fixed demo quote is
// returned instead and the cause is logged. Zero prices in generated items are filled
// from the detected trade's location-adjusted default rate.
func (s *Service) GenerateQuote(ctx context.Context, jobDescription string, qc QuoteContext) GenerationResult {
	start := time.Now()
	trade := trades.Detect(jobDescription)
	result := s.generate(ctx, jobDescription, qc, trade)
	result.Trade = trade
	result.Confidence = trades.Confidence(jobDescription, trade)

	s.metrics.ObserveGeneration(string(result.Source), string(trade), result.FallbackReason, time.Since(start))
	return result
}

func (s *Service) generate(ctx context.Context, jobDescription string, qc QuoteContext, trade trades.Type) GenerationResult {
	log := s.log.WithContext(ctx)

	if s.generator == nil {
		log.GenerationFallback(ReasonNoCredential, nil)
		return fallbackResult(ReasonNoCredential)
	}

	if trade != trades.Other {
		log.Info("trade detected", "trade", trade, "default_rate", trades.PricingFor(trade).DefaultRate)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.generator.Generate(callCtx, ai.Request{
		System: systemPrompt,
		Prompt: BuildPrompt(jobDescription, qc, trade),
		JSON:   true,
	})
	if err != nil {
		reason := ReasonTransport
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			reason = ReasonTimeout
		}
		log.GenerationFallback(reason, err)
		return fallbackResult(reason)
	}

	candidate, err := DecodeCandidate(raw)
	if err != nil {
		reason := ReasonParse
		if errors.Is(err, ErrEmptyCandidate) {
			reason = ReasonEmpty
		}
		log.GenerationFallback(reason, err)
		return fallbackResult(reason)
	}

	items, verr := ValidateCandidate(candidate)
	if verr != nil {
		log.GenerationFallback(ReasonValidation, verr)
		return fallbackResult(ReasonValidation)
	}

	log.Info("quote generated", "items", len(items), "trade", trade)
	return GenerationResult{
		Items:  ApplyDefaultPricing(items, trade, qc.Location),
		Notes:  CandidateNotes(candidate),
		Source: SourceGenerated,
	}
}

func fallbackResult(reason string) GenerationResult {
	return GenerationResult{
		Items:          FallbackItems(),
		Notes:          fallbackNotes,
		Source:         SourceFallback,
		FallbackReason: reason,
	}
}
