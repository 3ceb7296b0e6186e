package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tradequote_backend/internal/quotes/repository"
	"tradequote_backend/internal/trades"
)

func newGenerationService(gen *fakeGenerator, timeout time.Duration) (*Service, *fakeMetrics) {
	svc := New(repository.NewMemoryStore(), nil)
	if gen != nil {
		svc.SetGenerator(gen, timeout)
	}
	m := &fakeMetrics{}
	svc.SetMetrics(m)
	return svc, m
}

func assertFallback(t *testing.T, result GenerationResult, reason string) {
	t.Helper()
	if result.Source != SourceFallback || result.FallbackReason != reason {
		t.Fatalf("expected fallback (%s), got %s (%s)", reason, result.Source, result.FallbackReason)
	}
	want := FallbackItems()
	if len(result.Items) != len(want) {
		t.Fatalf("expected fallback items, got %+v", result.Items)
	}
	for i := range want {
		if result.Items[i] != want[i] {
			t.Fatalf("item %d: expected %+v, got %+v", i, want[i], result.Items[i])
		}
	}
	if result.Notes != "Includes disposal of all green waste. Weather permitting." {
		t.Fatalf("unexpected fallback notes %q", result.Notes)
	}
}

func TestGenerateQuoteWithoutCredentialFallsBack(t *testing.T) {
	tests := []struct {
		description string
		trade       trades.Type
	}{
		{description: "fix blocked drain", trade: trades.Plumbing},
		{description: "rewire kitchen", trade: trades.Electrical},
		{description: "paint the bedroom", trade: trades.Painting},
		{description: "general work", trade: trades.Handyman},
		{description: "quote please", trade: trades.Other},
	}

	svc, m := newGenerationService(nil, 0)
	for _, tt := range tests {
		result := svc.GenerateQuote(context.Background(), tt.description, QuoteContext{Location: "Perth"})
		assertFallback(t, result, ReasonNoCredential)
		if result.Trade != tt.trade {
			t.Fatalf("%q: expected detected trade %s, got %s", tt.description, tt.trade, result.Trade)
		}
	}
	if len(m.sources) != len(tests) {
		t.Fatalf("expected %d observations, got %v", len(tests), m.sources)
	}
	for _, source := range m.sources {
		if source != string(SourceFallback) {
			t.Fatalf("expected only fallback observations, got %v", m.sources)
		}
	}
}

func TestGenerateQuoteSuccessAppliesTradeDefaults(t *testing.T) {
	gen := &fakeGenerator{response: validCandidate}
	svc, m := newGenerationService(gen, time.Second)

	result := svc.GenerateQuote(context.Background(), "fix blocked drain", QuoteContext{Location: "Sydney"})
	if result.Source != SourceGenerated {
		t.Fatalf("expected generated result, got %s (%s)", result.Source, result.FallbackReason)
	}
	if result.Items[1].UnitPrice != 134 {
		t.Fatalf("expected zero price filled with Sydney plumbing rate, got %v", result.Items[1].UnitPrice)
	}
	if result.Items[0].UnitPrice != 80 {
		t.Fatalf("expected explicit price kept, got %v", result.Items[0].UnitPrice)
	}
	if result.Notes != "Includes materials" {
		t.Fatalf("unexpected notes %q", result.Notes)
	}
	if m.reasons[0] != "" {
		t.Fatalf("expected no fallback reason, got %q", m.reasons[0])
	}

	if len(gen.requests) != 1 {
		t.Fatalf("expected exactly one generator call, got %d", len(gen.requests))
	}
	req := gen.requests[0]
	if !req.JSON || req.System != systemPrompt {
		t.Fatalf("unexpected request settings: %+v", req)
	}
}

func TestGenerateQuoteFallsBackOnFailures(t *testing.T) {
	cases := []struct {
		name   string
		gen    *fakeGenerator
		reason string
	}{
		{"transport", &fakeGenerator{err: errors.New("connection reset")}, ReasonTransport},
		{"empty", &fakeGenerator{response: "  "}, ReasonEmpty},
		{"parse", &fakeGenerator{response: "Sure! Here is your quote."}, ReasonParse},
		{"validation", &fakeGenerator{response: `{"items": [{"label": "only one", "qty": 1, "unit": "hr", "unitPrice": 1}]}`}, ReasonValidation},
		{"timeout", &fakeGenerator{block: true}, ReasonTimeout},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newGenerationService(tc.gen, 20*time.Millisecond)
			result := svc.GenerateQuote(context.Background(), "mow the lawn", QuoteContext{})
			assertFallback(t, result, tc.reason)
		})
	}
}

func TestGenerateQuoteFallbackIsIndependentCopy(t *testing.T) {
	svc, _ := newGenerationService(nil, 0)
	first := svc.GenerateQuote(context.Background(), "mow lawn", QuoteContext{})
	first.Items[0].UnitPrice = 1

	second := svc.GenerateQuote(context.Background(), "mow lawn", QuoteContext{})
	if second.Items[0].UnitPrice != 90 {
		t.Fatal("fallback items must not be shared between calls")
	}
}
