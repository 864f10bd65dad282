package embed

import (
	apphttp "leadtracker_backend/internal/http"
	"leadtracker_backend/platform/config"
	"leadtracker_backend/platform/validator"
)

// Module is the embed generator module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the embed module.
func NewModule(cfg config.EmbedConfig, val *validator.Validator) *Module {
	svc := NewService(cfg.GetAppBaseURL())
	return &Module{handler: NewHandler(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "embed"
}

// RegisterRoutes mounts embed routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Admin.Group("/embed"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
