package transport

import (
	"encoding/json"

	"tradequote_backend/internal/quotes/domain"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// GenerateQuoteRequest is the request body for drafting a quote.
type GenerateQuoteRequest struct {
	JobDescription string `json:"jobDescription" validate:"notblank"`
	CustomerName   string `json:"customerName" validate:"max=200"`
	Location       string `json:"location" validate:"max=200"`
	PropertyType   string `json:"propertyType" validate:"omitempty,oneof=residential-house residential-unit commercial industrial other"`
	Urgency        string `json:"urgency" validate:"omitempty,oneof=asap this-week next-week this-month flexible"`
}

// SaveQuoteRequest is the request body for saving a quote. Items stay raw so each
// line can be checked and reported individually.
type SaveQuoteRequest struct {
	CustomerName   string          `json:"customerName" validate:"max=200"`
	Location       string          `json:"location" validate:"max=200"`
	PropertyType   string          `json:"propertyType" validate:"omitempty,oneof=residential-house residential-unit commercial industrial other"`
	Urgency        string          `json:"urgency" validate:"omitempty,oneof=asap this-week next-week this-month flexible"`
	JobDescription string          `json:"jobDescription"`
	Items          json.RawMessage `json:"items"`
	Notes          string          `json:"notes" validate:"max=2000"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// GenerateQuoteResponse is a drafted quote with server-computed totals.
type GenerateQuoteResponse struct {
	Items    []domain.QuoteItem `json:"items"`
	Notes    string             `json:"notes,omitempty"`
	Subtotal int                `json:"subtotal"`
	GST      int                `json:"gst"`
	Total    int                `json:"total"`
	Trade    string             `json:"trade"`
	Source   string             `json:"source"`
}

// SaveQuoteResponse points at the share page of a saved quote.
type SaveQuoteResponse struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// QuoteResponse is the public view of a saved quote. CreatedAt is epoch milliseconds.
type QuoteResponse struct {
	ID             string             `json:"id"`
	CreatedAt      int64              `json:"createdAt"`
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
	Slug           string             `json:"slug"`
}

// NewQuoteResponse maps a saved quote to its wire form.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID.String(),
		CreatedAt:      q.CreatedAt.UnixMilli(),
		CustomerName:   q.CustomerName,
		Location:       q.Location,
		PropertyType:   string(q.PropertyType),
		Urgency:        string(q.Urgency),
		JobDescription: q.JobDescription,
		Items:          q.Items,
		Subtotal:       q.Subtotal,
		GST:            q.GST,
		Total:          q.Total,
		Notes:          q.Notes,
		Slug:           q.Slug,
	}
}

// SharePath is the client route that displays a saved quote.
func SharePath(slug string) string {
	return "/share/" + slug
}
