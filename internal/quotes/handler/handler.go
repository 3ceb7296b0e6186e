package handler

import (
	"net/http"

	"tradequote_backend/internal/quotes/domain"
	"tradequote_backend/internal/quotes/service"
	"tradequote_backend/internal/quotes/transport"
	"tradequote_backend/platform/httpkit"
	"tradequote_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest      = "Invalid request body"
	msgValidationFailed    = "validation failed"
	msgDescriptionRequired = "Job description is required"
	msgInvalidPropertyType = "Invalid property type"
	msgInvalidUrgency      = "Invalid urgency"
)

// Handler handles quote drafting and saving.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new quotes handler
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the quote routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.Generate)
	rg.POST("/save", h.Save)
}

// Generate handles POST /api/generate
func (h *Handler) Generate(c *gin.Context) {
	var req transport.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		h.validationError(c, err)
		return
	}

	out, err := h.svc.Generate(c.Request.Context(), service.GenerateInput{
		JobDescription: req.JobDescription,
		QuoteContext: service.QuoteContext{
			CustomerName: req.CustomerName,
			Location:     req.Location,
			PropertyType: domain.PropertyType(req.PropertyType),
			Urgency:      domain.Urgency(req.Urgency),
		},
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.GenerateQuoteResponse{
		Items:    out.Items,
		Notes:    out.Notes,
		Subtotal: out.Totals.Subtotal,
		GST:      out.Totals.GST,
		Total:    out.Totals.Total,
		Trade:    out.Trade,
		Source:   string(out.Source),
	})
}

// Save handles POST /api/save
func (h *Handler) Save(c *gin.Context) {
	var req transport.SaveQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, service.MsgInvalidQuoteData, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		h.validationError(c, err)
		return
	}

	var items any
	if len(req.Items) > 0 {
		decoded, err := service.DecodeItems(req.Items)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, service.MsgInvalidQuoteData, nil)
			return
		}
		items = decoded
	}

	quote, err := h.svc.Save(c.Request.Context(), service.SaveInput{
		CustomerName:   req.CustomerName,
		Location:       req.Location,
		PropertyType:   domain.PropertyType(req.PropertyType),
		Urgency:        domain.Urgency(req.Urgency),
		JobDescription: req.JobDescription,
		Items:          items,
		Notes:          req.Notes,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SaveQuoteResponse{
		Slug: quote.Slug,
		URL:  transport.SharePath(quote.Slug),
	})
}

func (h *Handler) validationError(c *gin.Context, err error) {
	field, _, ok := validator.FirstFieldError(err)
	if !ok {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, nil)
		return
	}
	switch field {
	case "jobDescription":
		httpkit.Error(c, http.StatusBadRequest, msgDescriptionRequired, nil)
	case "propertyType":
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPropertyType, nil)
	case "urgency":
		httpkit.Error(c, http.StatusBadRequest, msgInvalidUrgency, nil)
	default:
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, field)
	}
}
