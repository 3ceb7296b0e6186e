package service

import (
	"testing"

	"tradequote_backend/internal/quotes/domain"
	"tradequote_backend/internal/trades"
)

func TestHasGreenWaste(t *testing.T) {
	for _, description := range []string{"trim hedges", "mow lawn", "remove tree waste", "garden cleanup", "green waste removal", "LAWN"} {
		if !HasGreenWaste(description) {
			t.Fatalf("expected green waste for %q", description)
		}
	}
	for _, description := range []string{"paint house", "fix electrical", ""} {
		if HasGreenWaste(description) {
			t.Fatalf("expected no green waste for %q", description)
		}
	}
}

func TestCalculateSubtotalWithoutGreenWaste(t *testing.T) {
	items := []domain.QuoteItem{
		{Label: "Painting", Qty: 2, Unit: domain.UnitHour, UnitPrice: 90},
		{Label: "Materials", Qty: 1, Unit: domain.UnitItem, UnitPrice: 50},
	}
	if got := CalculateSubtotal(items, "paint house"); got != 230 {
		t.Fatalf("expected subtotal 230, got %d", got)
	}
}

func TestCalculateSubtotalAddsGreenWasteFee(t *testing.T) {
	items := []domain.QuoteItem{{Label: "Hedge trimming", Qty: 2, Unit: domain.UnitHour, UnitPrice: 90}}
	if got := CalculateSubtotal(items, "trim hedges"); got != 205 {
		t.Fatalf("expected subtotal 205, got %d", got)
	}
}

func TestCalculateSubtotalRoundsHalfUp(t *testing.T) {
	cases := []struct {
		price float64
		want  int
	}{
		{90.7, 91},
		{90.5, 91},
		{90.49, 90},
		{-2.5, -2},
	}
	for _, tc := range cases {
		items := []domain.QuoteItem{{Label: "Service", Qty: 1, Unit: domain.UnitHour, UnitPrice: tc.price}}
		if got := CalculateSubtotal(items, "service"); got != tc.want {
			t.Errorf("price %v: expected subtotal %d, got %d", tc.price, tc.want, got)
		}
	}
}

func TestCalculateSubtotalIgnoresItemOrder(t *testing.T) {
	items := []domain.QuoteItem{
		{Label: "Labour", Qty: 2.5, Unit: domain.UnitHour, UnitPrice: 85.3},
		{Label: "Turf", Qty: 12, Unit: domain.UnitM2, UnitPrice: 14.25},
		{Label: "Skip bin", Qty: 1, Unit: domain.UnitItem, UnitPrice: 320},
		{Label: "Mulch", Qty: 0.5, Unit: domain.UnitItem, UnitPrice: 49.99},
	}
	want := CalculateSubtotal(items, "new lawn")

	orders := [][]int{{3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}
	for _, order := range orders {
		permuted := make([]domain.QuoteItem, len(items))
		for i, j := range order {
			permuted[i] = items[j]
		}
		if got := CalculateSubtotal(permuted, "new lawn"); got != want {
			t.Fatalf("order %v: expected subtotal %d, got %d", order, want, got)
		}
	}
}

func TestCalculateSubtotalEmptyItems(t *testing.T) {
	if got := CalculateSubtotal(nil, "paint house"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := CalculateSubtotal(nil, "mow lawn"); got != GreenWasteFee {
		t.Fatalf("expected green waste fee alone, got %d", got)
	}
}

func TestCalculateGST(t *testing.T) {
	cases := map[int]int{100: 10, 230: 23, 205: 21, 0: 0, 5: 1, 4: 0}
	for subtotal, want := range cases {
		if got := CalculateGST(subtotal); got != want {
			t.Errorf("CalculateGST(%d) = %d, want %d", subtotal, got, want)
		}
	}
}

func TestCalculateTotal(t *testing.T) {
	if got := CalculateTotal(100, 10); got != 110 {
		t.Fatalf("expected 110, got %d", got)
	}
	if got := CalculateTotal(230, 23); got != 253 {
		t.Fatalf("expected 253, got %d", got)
	}
}

func TestCalculateTotalsAreConsistent(t *testing.T) {
	items := FallbackItems()
	totals := CalculateTotals(items, "trim hedges and mow lawn")
	// 2*90 + 1.5*90 + 25 + green waste fee 25
	if totals.Subtotal != 365 || totals.GST != 37 || totals.Total != 402 {
		t.Fatalf("unexpected totals %+v", totals)
	}
	if totals.Total != totals.Subtotal+totals.GST {
		t.Fatal("total must equal subtotal plus GST")
	}
}

func TestApplyDefaultPricing(t *testing.T) {
	items := []domain.QuoteItem{{Label: "Labour", Qty: 2, Unit: domain.UnitHour, UnitPrice: 0}}
	if got := ApplyDefaultPricing(items, "", ""); got[0].UnitPrice != DefaultHourlyRate {
		t.Fatalf("expected default rate 90, got %v", got[0].UnitPrice)
	}
	if items[0].UnitPrice != 0 {
		t.Fatal("input items must not be modified")
	}

	kept := []domain.QuoteItem{{Label: "Labour", Qty: 2, Unit: domain.UnitHour, UnitPrice: 100}}
	if got := ApplyDefaultPricing(kept, trades.Plumbing, "Sydney"); got[0].UnitPrice != 100 {
		t.Fatalf("expected existing price to be kept, got %v", got[0].UnitPrice)
	}
}

func TestApplyDefaultPricingUsesTradeAndLocation(t *testing.T) {
	items := []domain.QuoteItem{{Label: "Electrical work", Qty: 1, Unit: domain.UnitHour, UnitPrice: 0}}
	if got := ApplyDefaultPricing(items, trades.Electrical, ""); got[0].UnitPrice != 130 {
		t.Fatalf("expected electrical default 130, got %v", got[0].UnitPrice)
	}

	plumbing := []domain.QuoteItem{{Label: "Plumbing work", Qty: 1, Unit: domain.UnitHour, UnitPrice: 0}}
	if got := ApplyDefaultPricing(plumbing, trades.Plumbing, "Sydney"); got[0].UnitPrice != 134 {
		t.Fatalf("expected Sydney plumbing rate 134, got %v", got[0].UnitPrice)
	}
	if got := ApplyDefaultPricing(plumbing, trades.Plumbing, "Wagga Wagga"); got[0].UnitPrice != 114 {
		t.Fatalf("expected regional plumbing rate 114, got %v", got[0].UnitPrice)
	}
}

func TestApplyDefaultPricingFillsEveryUnit(t *testing.T) {
	items := []domain.QuoteItem{
		{Label: "Paving", Qty: 10, Unit: domain.UnitM2, UnitPrice: 0},
		{Label: "Skip bin", Qty: 1, Unit: domain.UnitItem, UnitPrice: 0},
	}
	for _, item := range ApplyDefaultPricing(items, trades.Concrete, "") {
		if item.UnitPrice != 100 {
			t.Fatalf("expected concrete default for %s, got %v", item.Unit, item.UnitPrice)
		}
	}
}
