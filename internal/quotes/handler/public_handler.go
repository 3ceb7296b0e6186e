package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"tradequote_backend/internal/pdf"
	"tradequote_backend/internal/quotes/domain"
	"tradequote_backend/internal/quotes/service"
	"tradequote_backend/internal/quotes/transport"
	"tradequote_backend/platform/httpkit"
	"tradequote_backend/platform/logger"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	contentTypePDF = "application/pdf"
	contentTypePNG = "image/png"
	qrCodeSize     = 256
)

// PublicHandler serves saved quotes to anyone holding the share link.
type PublicHandler struct {
	svc     *service.Service
	baseURL string
	log     *logger.Logger
}

// NewPublicHandler creates a new public quotes handler. baseURL is the absolute
// origin printed on PDFs and encoded in QR codes.
func NewPublicHandler(svc *service.Service, baseURL string, log *logger.Logger) *PublicHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &PublicHandler{svc: svc, baseURL: baseURL, log: log}
}

// RegisterRoutes registers the share routes.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:slug", h.GetShared)
	rg.GET("/:slug/pdf", h.DownloadPDF)
	rg.GET("/:slug/qr", h.QRCode)
}

// GetShared handles GET /api/share/:slug
func (h *PublicHandler) GetShared(c *gin.Context) {
	quote, err := h.svc.Get(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.NewQuoteResponse(quote))
}

// DownloadPDF handles GET /api/share/:slug/pdf
func (h *PublicHandler) DownloadPDF(c *gin.Context) {
	quote, err := h.svc.Get(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, err) {
		return
	}

	pdfBytes, err := pdf.GenerateQuotePDF(h.pdfData(quote))
	if err != nil {
		h.log.WithContext(c.Request.Context()).Error("quote pdf failed", "slug", quote.Slug, "error", err)
		_ = c.Error(err)
		httpkit.Error(c, http.StatusInternalServerError, "Failed to render quote", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="Quote-%s.pdf"`, quote.Slug))
	c.Data(http.StatusOK, contentTypePDF, pdfBytes)
}

// QRCode handles GET /api/share/:slug/qr
func (h *PublicHandler) QRCode(c *gin.Context) {
	quote, err := h.svc.Get(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, err) {
		return
	}

	png, err := qrcode.Encode(h.shareURL(quote.Slug), qrcode.Medium, qrCodeSize)
	if err != nil {
		_ = c.Error(err)
		httpkit.Error(c, http.StatusInternalServerError, "Failed to render QR code", nil)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, contentTypePNG, png)
}

func (h *PublicHandler) shareURL(slug string) string {
	return h.baseURL + transport.SharePath(slug)
}

func (h *PublicHandler) pdfData(q *domain.Quote) pdf.QuotePDFData {
	lines := make([]pdf.Line, len(q.Items))
	for i, item := range q.Items {
		lines[i] = pdf.Line{
			Label:     item.Label,
			Quantity:  strconv.FormatFloat(item.Qty, 'f', -1, 64) + " " + string(item.Unit),
			UnitPrice: service.FormatPrice(item.UnitPrice),
			Amount:    service.FormatCurrency(service.CalculateSubtotal([]domain.QuoteItem{item}, "")),
		}
	}
	return pdf.QuotePDFData{
		Slug:           q.Slug,
		CreatedAt:      q.CreatedAt,
		CustomerName:   q.CustomerName,
		Location:       q.Location,
		PropertyType:   q.PropertyType.Label(),
		Urgency:        q.Urgency.Label(),
		JobDescription: q.JobDescription,
		Lines:          lines,
		Subtotal:       service.FormatCurrency(q.Subtotal),
		GST:            service.FormatCurrency(q.GST),
		Total:          service.FormatCurrency(q.Total),
		Notes:          q.Notes,
		ShareURL:       h.shareURL(q.Slug),
	}
}
