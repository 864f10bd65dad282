package http

import "github.com/gin-gonic/gin"

// RouterContext carries the route groups modules mount their endpoints on.
type RouterContext struct {
	// Public is the unauthenticated API group consumed by the embed widget.
	// It is rate limited per IP.
	Public *gin.RouterGroup
	// Admin is the dashboard-facing API group.
	Admin *gin.RouterGroup
}

// Module is a bounded-context module that registers HTTP routes.
type Module interface {
	// Name returns the module identifier for logging.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router context.
	RegisterRoutes(ctx *RouterContext)
}
