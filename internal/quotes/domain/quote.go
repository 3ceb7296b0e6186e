// Package domain holds the quote value types shared by the quotes service, store and
// HTTP layers.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Unit is the billing unit of a quote line.
type Unit string

const (
	UnitHour Unit = "hr"
	UnitM2   Unit = "m2"
	UnitItem Unit = "item"
)

// Valid reports whether u is a billable unit.
func (u Unit) Valid() bool {
	switch u {
	case UnitHour, UnitM2, UnitItem:
		return true
	}
	return false
}

// QuoteItem is one priced line. Items are replaced whole, never edited in place.
type QuoteItem struct {
	Label     string  `json:"label"`
	Qty       float64 `json:"qty"`
	Unit      Unit    `json:"unit"`
	UnitPrice float64 `json:"unitPrice"`
}

// Quote is a saved, shareable quote. It is created once at save time and never mutated.
type Quote struct {
	ID             uuid.UUID
	Slug           string
	CreatedAt      time.Time
	CustomerName   string
	Location       string
	PropertyType   PropertyType
	Urgency        Urgency
	JobDescription string
	Items          []QuoteItem
	Subtotal       int
	GST            int
	Total          int
	Notes          string
}
