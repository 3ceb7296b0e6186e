package pdf

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestGenerateQuotePDF(t *testing.T) {
	data := QuotePDFData{
		Slug:           "aB3dE6gH",
		CreatedAt:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CustomerName:   "Zoë",
		Location:       "Sydney",
		PropertyType:   "Residential House",
		JobDescription: "Trim hedges along the front fence and mow the lawn",
		Lines: []Line{
			{Label: "Hedge trimming", Quantity: "2 hr", UnitPrice: "$90", Amount: "$180"},
			{Label: "Green waste removal", Quantity: "1 item", UnitPrice: "$25", Amount: "$25"},
		},
		Subtotal: "$230",
		GST:      "$23",
		Total:    "$253",
		Notes:    "Weather permitting.",
		ShareURL: "https://quotes.example.com/share/aB3dE6gH",
	}

	out, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", out[:min(len(out), 8)])
	}
}

func TestGenerateQuotePDFWithoutOptionalFields(t *testing.T) {
	out, err := GenerateQuotePDF(QuotePDFData{Slug: "x", JobDescription: "job"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected output")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	got := truncate(strings.Repeat("a", 20), 10)
	if len(got) != 10 || !strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected %q", got)
	}
}
