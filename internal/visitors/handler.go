package visitors

import (
	"net/http"

	"leadtracker_backend/platform/httpkit"
	"leadtracker_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the visitor tracking endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

// NewHandler creates a new visitors handler.
func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterPublicRoutes registers the beacon endpoint under /public/visitors.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Track)
}

// RegisterAdminRoutes registers dashboard routes under /visitors.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/stats", h.GetStats)
	rg.GET("/:id", h.GetByID)
}

// Track ingests a visitor beacon from the embed script.
func (h *Handler) Track(c *gin.Context) {
	var req TrackVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid input", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	visitor, err := h.svc.Track(c.Request.Context(), c.ClientIP(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	if visitor == nil {
		// Already tracked this visitor.
		httpkit.OK(c, gin.H{"tracked": false})
		return
	}

	httpkit.Created(c, visitor)
}

// List returns all visitors, most recent first.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// GetStats returns total, unique, and today's visitor counts.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.svc.GetStats(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, stats)
}

// GetByID returns a single visitor.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid visitor id", nil)
		return
	}

	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
