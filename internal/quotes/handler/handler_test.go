package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradequote_backend/internal/quotes/domain"
	"tradequote_backend/internal/quotes/repository"
	"tradequote_backend/internal/quotes/service"
	"tradequote_backend/internal/quotes/transport"
	"tradequote_backend/platform/httpkit"
	"tradequote_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const testBaseURL = "https://quotes.example.com"

func newTestEngine(t *testing.T) (*gin.Engine, *repository.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	svc := service.New(store, nil)

	engine := gin.New()
	api := engine.Group("/api")
	New(svc, validator.New()).RegisterRoutes(api)
	NewPublicHandler(svc, testBaseURL, nil).RegisterRoutes(api.Group("/share"))
	return engine, store
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body httpkit.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

func TestGenerateFallsBackWithoutGenerator(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/generate", `{"jobDescription":"Mow the lawn and trim hedges","location":"Sydney"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp transport.GenerateQuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Fatalf("expected 3 fallback items, got %d", len(resp.Items))
	}
	if resp.Subtotal != 365 || resp.GST != 37 || resp.Total != 402 {
		t.Fatalf("unexpected totals: %d/%d/%d", resp.Subtotal, resp.GST, resp.Total)
	}
	if resp.Source != string(service.SourceFallback) {
		t.Fatalf("expected fallback source, got %q", resp.Source)
	}
	if resp.Trade != "gardening" {
		t.Fatalf("expected gardening, got %q", resp.Trade)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "malformed", body: `{"jobDescription":`, want: msgInvalidRequest},
		{name: "missing description", body: `{}`, want: msgDescriptionRequired},
		{name: "blank description", body: `{"jobDescription":"   "}`, want: msgDescriptionRequired},
		{name: "unknown property type", body: `{"jobDescription":"paint fence","propertyType":"castle"}`, want: msgInvalidPropertyType},
		{name: "unknown urgency", body: `{"jobDescription":"paint fence","urgency":"yesterday"}`, want: msgInvalidUrgency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, engine, http.MethodPost, "/api/generate", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if got := decodeError(t, rec); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSaveThenShare(t *testing.T) {
	engine, _ := newTestEngine(t)

	body := `{
		"jobDescription": "Fix leaking tap",
		"customerName": "<b>Sam</b>",
		"propertyType": "residential-unit",
		"items": [
			{"label": "  Tap washer & <seal> replacement  ", "qty": 1, "unit": "hr", "unitPrice": 120},
			{"label": "R&amp;D parts a<b", "qty": 2, "unit": "item", "unitPrice": 15.5}
		],
		"subtotal": 1
	}`
	rec := doJSON(t, engine, http.MethodPost, "/api/save", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var saved transport.SaveQuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !repository.ValidSlug(saved.Slug) {
		t.Fatalf("invalid slug %q", saved.Slug)
	}
	if saved.URL != "/share/"+saved.Slug {
		t.Fatalf("unexpected url %q", saved.URL)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/share/"+saved.Slug, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var quote transport.QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &quote); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if quote.Subtotal != 151 || quote.GST != 15 || quote.Total != 166 {
		t.Fatalf("totals were not recomputed: %d/%d/%d", quote.Subtotal, quote.GST, quote.Total)
	}
	if quote.CustomerName != "Sam" {
		t.Fatalf("expected sanitized customer name, got %q", quote.CustomerName)
	}
	if quote.PropertyType != "residential-unit" || quote.Slug != saved.Slug {
		t.Fatalf("unexpected quote: %+v", quote)
	}

	want := []domain.QuoteItem{
		{Label: "  Tap washer & <seal> replacement  ", Qty: 1, Unit: domain.UnitHour, UnitPrice: 120},
		{Label: "R&amp;D parts a<b", Qty: 2, Unit: domain.UnitItem, UnitPrice: 15.5},
	}
	if len(quote.Items) != len(want) {
		t.Fatalf("expected %d items, got %+v", len(want), quote.Items)
	}
	for i := range want {
		if quote.Items[i] != want[i] {
			t.Fatalf("item %d changed on save: expected %+v, got %+v", i, want[i], quote.Items[i])
		}
	}
}

func TestSaveReportsFirstItemFailure(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "malformed", body: `[`, want: service.MsgInvalidQuoteData},
		{name: "no description", body: `{"items":[{"label":"a","qty":1,"unit":"hr","unitPrice":1}]}`, want: service.MsgInvalidQuoteData},
		{name: "no items", body: `{"jobDescription":"x"}`, want: service.MsgInvalidQuoteData},
		{name: "empty items", body: `{"jobDescription":"x","items":[]}`, want: service.MsgInvalidQuoteData},
		{name: "blank label", body: `{"jobDescription":"x","items":[{"label":"  ","qty":1,"unit":"hr","unitPrice":1}]}`, want: service.MsgInvalidLabel},
		{name: "negative qty", body: `{"jobDescription":"x","items":[{"label":"a","qty":-1,"unit":"hr","unitPrice":1}]}`, want: service.MsgInvalidQty},
		{name: "bad unit", body: `{"jobDescription":"x","items":[{"label":"a","qty":1,"unit":"day","unitPrice":1}]}`, want: service.MsgInvalidUnit},
		{name: "price as string", body: `{"jobDescription":"x","items":[{"label":"a","qty":1,"unit":"hr","unitPrice":"1"}]}`, want: service.MsgInvalidUnitPrice},
		{name: "second item wins after first passes", body: `{"jobDescription":"x","items":[{"label":"a","qty":1,"unit":"hr","unitPrice":1},{"label":"b","qty":1,"unit":"km","unitPrice":-1}]}`, want: service.MsgInvalidUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, engine, http.MethodPost, "/api/save", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if got := decodeError(t, rec); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestShareUnknownSlug(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, path := range []string{"/api/share/Zz9Zz9Zz", "/api/share/not-a-slug", "/api/share/Zz9Zz9Zz/pdf", "/api/share/Zz9Zz9Zz/qr"} {
		rec := doJSON(t, engine, http.MethodGet, path, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
		if got := decodeError(t, rec); got != "Quote not found" {
			t.Fatalf("%s: unexpected error %q", path, got)
		}
	}
}

func TestSharePDFAndQRCode(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/save", `{"jobDescription":"Paint the fence","items":[{"label":"Painting","qty":3,"unit":"hr","unitPrice":85}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("save failed: %d %s", rec.Code, rec.Body.String())
	}
	var saved transport.SaveQuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/share/"+saved.Slug+"/pdf", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("pdf: expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != contentTypePDF {
		t.Fatalf("pdf: unexpected content type %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("pdf: body is not a PDF")
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Quote-"+saved.Slug+".pdf") {
		t.Fatalf("pdf: unexpected disposition %q", cd)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/share/"+saved.Slug+"/qr", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("qr: expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != contentTypePNG {
		t.Fatalf("qr: unexpected content type %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatal("qr: body is not a PNG")
	}
}
