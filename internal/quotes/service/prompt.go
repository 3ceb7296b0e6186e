package service

import (
	"fmt"
	"strings"

	"tradequote_backend/internal/quotes/domain"
	"tradequote_backend/internal/trades"
)

const systemPrompt = "You are a quote generator for Australian tradies. Always return valid JSON only. Never include markdown code blocks, just pure JSON."

const promptTemplate = `You are a professional quote generator for Australian tradies (tradespeople). You understand Australian market rates, regional pricing variations, and Australian business practices.

IMPORTANT: All prices must be in Australian Dollars (AUD). Use realistic Australian market rates:
- Premium/emergency work: 20-50%% surcharge
- Major cities (Sydney, Melbourne, Brisbane): Higher rates (typically 10-15%% premium)
- Regional areas: Slightly lower rates (typically 5%% reduction)
- Commercial/Industrial: Higher rates than residential (typically 20-30%% premium)
- Materials: Price realistically for Australian market

%s

Given the job details, generate a quote with 3-6 line items. Each item should have:
- A clear, customer-friendly label (plain English, professional)
- A reasonable quantity based on the job description
- A unit: "hr" (hours), "m2" (square meters), or "item"
- A unit price in whole Australian dollars (no cents)

Adjust pricing based on:
- Location (major cities vs regional)
- Property type (commercial/industrial = higher rates)
- Urgency (ASAP/emergency = premium pricing)
- Trade type (use the trade-specific guidance above)

Job Description: "%s"%s

Return ONLY valid JSON in this exact format:
{
  "items": [
    { "label": "Item name", "qty": 2, "unit": "hr", "unitPrice": 90 },
    ...
  ],
  "notes": "Optional notes here (e.g., 'Weather permitting', 'Includes materials', 'GST included')"
}

Make reasonable assumptions for missing details. Keep labels simple and professional. Consider Australian standards and practices.`

// QuoteContext is the optional job context supplied with a generation request.
type QuoteContext struct {
	CustomerName string
	Location     string
	PropertyType domain.PropertyType
	Urgency      domain.Urgency
}

// BuildPrompt renders the user prompt for jobDescription. Context lines are only
// emitted for the fields that are set, and trade guidance only for a detected trade.
func BuildPrompt(jobDescription string, qc QuoteContext, trade trades.Type) string {
	var contextLines []string
	if qc.Location != "" {
		contextLines = append(contextLines, "Location: "+qc.Location)
	}
	if label := qc.PropertyType.Label(); label != "" {
		contextLines = append(contextLines, "Property Type: "+label)
	}
	if label := qc.Urgency.Label(); label != "" {
		contextLines = append(contextLines, "Urgency: "+label)
	}
	if trade != trades.Other {
		contextLines = append(contextLines, "Detected Trade Type: "+trade.Title())
	}

	contextBlock := ""
	if len(contextLines) > 0 {
		contextBlock = "\n\nAdditional Context:\n" + strings.Join(contextLines, "\n")
	}

	return fmt.Sprintf(promptTemplate, tradeGuidanceBlock(trade), jobDescription, contextBlock)
}

func tradeGuidanceBlock(trade trades.Type) string {
	if trade == trades.Other {
		return ""
	}
	p := trades.PricingFor(trade)
	return fmt.Sprintf("\n\nTRADE-SPECIFIC GUIDANCE:\n%s\nTypical hourly rate range: $%d-$%d/hr\nDefault rate: $%d/hr\nCommon materials: %s\nPreferred units: %s",
		p.Guidance, p.MinRate, p.MaxRate, p.DefaultRate,
		strings.Join(p.Materials, ", "), strings.Join(p.Units, ", "))
}
