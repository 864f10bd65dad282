package visitors

import (
	"leadtracker_backend/internal/events"
	apphttp "leadtracker_backend/internal/http"
	"leadtracker_backend/platform/config"
	"leadtracker_backend/platform/logger"
	"leadtracker_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the visitors bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the visitors module.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, cfg config.VisitorConfig, log *logger.Logger) *Module {
	repo := NewRepository(pool)
	geo := NewGeoIPClient(cfg.GetGeoIPAPIURL(), cfg.GetLookupTimeout(), log)
	svc := NewService(repo, geo, eventBus, log)

	return &Module{handler: NewHandler(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "visitors"
}

// RegisterRoutes mounts visitor routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.Public.Group("/visitors"))
	m.handler.RegisterAdminRoutes(ctx.Admin.Group("/visitors"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
