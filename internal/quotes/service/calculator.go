package service

import (
	"math"
	"strings"

	"tradequote_backend/internal/quotes/domain"
	"tradequote_backend/internal/trades"
)

const (
	// DefaultHourlyRate fills zero-priced lines when no trade is known.
	DefaultHourlyRate = 90
	// GreenWasteFee is added to the subtotal when the job produces green waste.
	GreenWasteFee = 25

	gstRate = 0.10
)

var greenWasteKeywords = []string{"lawn", "hedge", "tree", "garden", "waste", "green waste"}

// Totals are the whole-dollar amounts of a quote.
type Totals struct {
	Subtotal int `json:"subtotal"`
	GST      int `json:"gst"`
	Total    int `json:"total"`
}

// roundHalfUp rounds to the nearest integer with halves going towards +Inf, so -2.5
// becomes -2 rather than math.Round's -3.
func roundHalfUp(x float64) int {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return int(r)
}

// HasGreenWaste reports whether the job description implies green-waste disposal.
func HasGreenWaste(jobDescription string) bool {
	lower := strings.ToLower(jobDescription)
	for _, keyword := range greenWasteKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// CalculateSubtotal sums qty*unitPrice over items, adds the green-waste fee when the
// description calls for it and rounds to whole dollars.
func CalculateSubtotal(items []domain.QuoteItem, jobDescription string) int {
	var sum float64
	for _, item := range items {
		sum += item.Qty * item.UnitPrice
	}
	if HasGreenWaste(jobDescription) {
		sum += GreenWasteFee
	}
	return roundHalfUp(sum)
}

// CalculateGST returns 10% of subtotal rounded to whole dollars.
func CalculateGST(subtotal int) int {
	return roundHalfUp(float64(subtotal) * gstRate)
}

// CalculateTotal returns subtotal plus GST.
func CalculateTotal(subtotal, gst int) int {
	return subtotal + gst
}

// CalculateTotals computes subtotal, GST and total in one pass.
func CalculateTotals(items []domain.QuoteItem, jobDescription string) Totals {
	subtotal := CalculateSubtotal(items, jobDescription)
	gst := CalculateGST(subtotal)
	return Totals{Subtotal: subtotal, GST: gst, Total: CalculateTotal(subtotal, gst)}
}

// ApplyDefaultPricing returns a copy of items where every zero unit price is replaced
// with the default rate. With a trade the rate is the trade default adjusted for
// location; without one it is DefaultHourlyRate. Non-zero prices are kept.
func ApplyDefaultPricing(items []domain.QuoteItem, trade trades.Type, location string) []domain.QuoteItem {
	rate := DefaultHourlyRate
	if trade != "" {
		rate = trades.DefaultRate(trade, location)
	}

	priced := make([]domain.QuoteItem, len(items))
	for i, item := range items {
		if item.UnitPrice == 0 {
			item.UnitPrice = float64(rate)
		}
		priced[i] = item
	}
	return priced
}
