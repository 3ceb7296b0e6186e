// Package quotes provides the quote drafting and sharing module.
package quotes

import (
	apphttp "tradequote_backend/internal/http"
	"tradequote_backend/internal/quotes/handler"
	"tradequote_backend/internal/quotes/service"
	"tradequote_backend/platform/config"
	"tradequote_backend/platform/logger"
	"tradequote_backend/platform/validator"
)

// Module represents the quotes domain module
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
}

// NewModule creates a new quotes module around an already wired service.
func NewModule(svc *service.Service, val *validator.Validator, shareCfg config.ShareConfig, log *logger.Logger) *Module {
	return &Module{
		handler:       handler.New(svc, val),
		publicHandler: handler.NewPublicHandler(svc, shareCfg.GetAppBaseURL(), log),
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "quotes"
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.API)
	m.publicHandler.RegisterRoutes(ctx.API.Group("/share"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
