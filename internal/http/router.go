package http

import (
	"net/http"
	"time"

	"leadtracker_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// NewRouter builds the gin engine, wires middleware, and registers all modules.
func NewRouter(app *App) *gin.Engine {
	if app.Config.GetCORSAllowAll() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app))

	engine.GET("/healthz", func(c *gin.Context) {
		if err := app.Health.Ping(c.Request.Context()); err != nil {
			httpkit.Error(c, http.StatusServiceUnavailable, "database unreachable", nil)
			return
		}
		httpkit.OK(c, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	publicLimiter := httpkit.NewIPRateLimiter(
		rate.Limit(app.Config.GetPublicRateLimit()),
		app.Config.GetPublicRateBurst(),
		app.Logger,
	)
	public := api.Group("/public")
	public.Use(publicLimiter.RateLimit())

	admin := api.Group("")

	ctx := &RouterContext{Public: public, Admin: admin}
	for _, m := range app.Modules {
		m.RegisterRoutes(ctx)
		app.Logger.Info("module registered", "module", m.Name())
	}

	return engine
}

// corsMiddleware configures CORS. The embed widget posts submissions and
// visitor beacons from arbitrary third-party origins, so the public API
// must accept cross-origin requests.
func corsMiddleware(app *App) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if app.Config.GetCORSAllowAll() {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = app.Config.GetCORSOrigins()
	}
	return cors.New(cfg)
}
