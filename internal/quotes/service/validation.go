package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"tradequote_backend/internal/quotes/domain"
)

const (
	minGeneratedItems = 3
	maxGeneratedItems = 6
)

// Save endpoint messages, reported verbatim to the client.
const (
	MsgInvalidQuoteData = "Invalid quote data"
	MsgInvalidLabel     = "Each item must have a valid label"
	MsgInvalidQty       = "Each item must have a valid quantity (non-negative number)"
	MsgInvalidUnit      = "Each item must have a valid unit (hr, m2, or item)"
	MsgInvalidUnitPrice = "Each item must have a valid unit price (non-negative number)"
)

// ValidationKind names the first rule a candidate broke.
type ValidationKind string

const (
	KindNotObject     ValidationKind = "not_object"
	KindItemsMissing  ValidationKind = "items_missing"
	KindItemsNotArray ValidationKind = "items_not_array"
	KindItemsEmpty    ValidationKind = "items_empty"
	KindItemCount     ValidationKind = "item_count"
	KindItemNotObject ValidationKind = "item_not_object"
	KindInvalidLabel  ValidationKind = "invalid_label"
	KindInvalidQty    ValidationKind = "invalid_qty"
	KindInvalidUnit   ValidationKind = "invalid_unit"
	KindInvalidPrice  ValidationKind = "invalid_unit_price"
)

// ValidationError describes why an untrusted quote payload was rejected. Index is -1
// when the failure is not tied to a single item.
type ValidationError struct {
	Kind  ValidationKind
	Index int
	Field string
	Value any
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid quote candidate: %s", e.Kind)
	}
	return fmt.Sprintf("invalid quote candidate: item %d: %s (%s=%v)", e.Index, e.Kind, e.Field, e.Value)
}

// Message maps the failure onto the client-facing save message.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case KindInvalidLabel:
		return MsgInvalidLabel
	case KindInvalidQty:
		return MsgInvalidQty
	case KindInvalidUnit:
		return MsgInvalidUnit
	case KindInvalidPrice:
		return MsgInvalidUnitPrice
	}
	return MsgInvalidQuoteData
}

var (
	// ErrEmptyCandidate is returned when the generator produced no content.
	ErrEmptyCandidate = errors.New("empty generator response")

	codeFence = regexp.MustCompile("```(?:json)?\\s*(\\{[\\s\\S]*\\})\\s*```")
)

// DecodeCandidate parses raw generator output into an untyped value. A JSON object
// wrapped in a markdown code fence is unwrapped first. Numbers are kept as
// json.Number so range problems surface in validation rather than here.
func DecodeCandidate(raw string) (any, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return nil, ErrEmptyCandidate
	}
	if m := codeFence.FindStringSubmatch(content); m != nil {
		content = m[1]
	}

	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()
	var candidate any
	if err := dec.Decode(&candidate); err != nil {
		return nil, fmt.Errorf("decode generator response: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode generator response: trailing data after JSON value")
	}
	return candidate, nil
}

// DecodeItems parses a raw JSON items array the same way DecodeCandidate does.
func DecodeItems(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var items any
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// ValidateCandidate checks a decoded generator response and returns its items. The
// candidate must be an object whose "items" is a sequence of 3 to 6 objects, each with
// a non-empty label, a finite qty, a unit of hr, m2 or item, and a finite unitPrice.
// Any violation rejects the whole candidate; the first one found is reported.
func ValidateCandidate(candidate any) ([]domain.QuoteItem, *ValidationError) {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return nil, &ValidationError{Kind: KindNotObject, Index: -1, Value: candidate}
	}
	rawItems, ok := obj["items"]
	if !ok || rawItems == nil {
		return nil, &ValidationError{Kind: KindItemsMissing, Index: -1, Field: "items"}
	}
	list, ok := rawItems.([]any)
	if !ok {
		return nil, &ValidationError{Kind: KindItemsNotArray, Index: -1, Field: "items", Value: rawItems}
	}
	if len(list) < minGeneratedItems || len(list) > maxGeneratedItems {
		return nil, &ValidationError{Kind: KindItemCount, Index: -1, Field: "items", Value: len(list)}
	}

	return validateItems(list, itemRules{})
}

// CandidateNotes returns the candidate's notes when they are a string.
func CandidateNotes(candidate any) string {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return ""
	}
	notes, _ := obj["notes"].(string)
	return notes
}

// ValidateSavedItems checks client-submitted items for the save endpoint. On top of
// the generator rules, labels must be non-blank and qty and unitPrice non-negative.
// There is no upper bound on the number of items, but there must be at least one.
func ValidateSavedItems(items any) ([]domain.QuoteItem, *ValidationError) {
	list, ok := items.([]any)
	if !ok {
		return nil, &ValidationError{Kind: KindItemsNotArray, Index: -1, Field: "items", Value: items}
	}
	if len(list) == 0 {
		return nil, &ValidationError{Kind: KindItemsEmpty, Index: -1, Field: "items"}
	}
	return validateItems(list, itemRules{trimLabel: true, nonNegative: true})
}

type itemRules struct {
	trimLabel   bool
	nonNegative bool
}

func validateItems(list []any, rules itemRules) ([]domain.QuoteItem, *ValidationError) {
	items := make([]domain.QuoteItem, 0, len(list))
	for i, raw := range list {
		obj, ok := raw.(map[string]any)
		if !ok {
			// nothing to read a label from
			return nil, &ValidationError{Kind: KindInvalidLabel, Index: i, Field: "label", Value: raw}
		}

		label, ok := obj["label"].(string)
		if !ok || label == "" || (rules.trimLabel && strings.TrimSpace(label) == "") {
			return nil, &ValidationError{Kind: KindInvalidLabel, Index: i, Field: "label", Value: obj["label"]}
		}

		qty, ok := finiteNumber(obj["qty"])
		if !ok || (rules.nonNegative && qty < 0) {
			return nil, &ValidationError{Kind: KindInvalidQty, Index: i, Field: "qty", Value: obj["qty"]}
		}

		unitStr, _ := obj["unit"].(string)
		unit := domain.Unit(unitStr)
		if !unit.Valid() {
			return nil, &ValidationError{Kind: KindInvalidUnit, Index: i, Field: "unit", Value: obj["unit"]}
		}

		price, ok := finiteNumber(obj["unitPrice"])
		if !ok || (rules.nonNegative && price < 0) {
			return nil, &ValidationError{Kind: KindInvalidPrice, Index: i, Field: "unitPrice", Value: obj["unitPrice"]}
		}

		items = append(items, domain.QuoteItem{Label: label, Qty: qty, Unit: unit, UnitPrice: price})
	}
	return items, nil
}

// finiteNumber accepts JSON numbers in either decoded form and rejects NaN and ±Inf,
// including literals too large for float64.
func finiteNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
