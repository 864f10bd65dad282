// Package leads provides the lead capture and scoring bounded context.
// This file defines the module that encapsulates all leads setup and route
// registration.
package leads

import (
	"leadtracker_backend/internal/catalog"
	"leadtracker_backend/internal/events"
	apphttp "leadtracker_backend/internal/http"
	"leadtracker_backend/internal/leads/handler"
	"leadtracker_backend/internal/leads/repository"
	"leadtracker_backend/internal/leads/service"
	"leadtracker_backend/internal/leads/validation"
	"leadtracker_backend/internal/verify"
	"leadtracker_backend/platform/config"
	"leadtracker_backend/platform/logger"
	"leadtracker_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
	service       *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, redisClient *redis.Client, eventBus events.Bus, val *validator.Validator, cat *catalog.Catalog, cfg config.VerifyConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)

	// Presence and company lookups share one Redis-backed result cache.
	cache := verify.NewCache(redisClient, cfg.GetVerifyCacheTTL(), log)
	prober := verify.NewWebsiteClient(cfg.GetLookupTimeout(), log)
	presence := verify.NewPresenceClient(cfg.GetPresenceAPIURL(), cfg.GetPresenceAPIKey(), cfg.GetLookupTimeout(), cache, log)
	company := verify.NewCompanyClient(cfg.GetCompanyAPIURL(), cfg.GetCompanyAPIKey(), cfg.GetLookupTimeout(), cache, log)

	validationSvc := validation.New(cat, prober, presence, company, log)
	svc := service.New(repo, validationSvc, cat, eventBus, log)

	return &Module{
		handler:       handler.New(svc, val),
		publicHandler: handler.NewPublicHandler(svc, val),
		service:       svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the leads service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.publicHandler.RegisterRoutes(ctx.Public.Group("/leads"))
	m.handler.RegisterRoutes(ctx.Admin.Group("/leads"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
