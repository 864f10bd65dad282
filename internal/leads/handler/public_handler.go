package handler

import (
	"net/http"

	"leadtracker_backend/internal/leads/service"
	"leadtracker_backend/internal/leads/transport"
	"leadtracker_backend/platform/httpkit"
	"leadtracker_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const publicMsgInvalidInput = "Invalid input"

// PublicHandler handles the unauthenticated endpoints consumed by the
// embed widget: form submission and the form option lists.
type PublicHandler struct {
	svc *service.Service
	val *validator.Validator
}

// NewPublicHandler creates a new public leads handler.
func NewPublicHandler(svc *service.Service, val *validator.Validator) *PublicHandler {
	return &PublicHandler{svc: svc, val: val}
}

// RegisterRoutes registers public lead routes under /public/leads.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
	rg.GET("/options", h.FormOptions)
}

// Submit accepts a widget form submission and runs the scoring pipeline.
func (h *PublicHandler) Submit(c *gin.Context) {
	var req transport.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, publicMsgInvalidInput, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, publicMsgInvalidInput, err.Error())
		return
	}

	lead, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, lead)
}

// FormOptions returns the option lists the widget form renders.
func (h *PublicHandler) FormOptions(c *gin.Context) {
	httpkit.OK(c, h.svc.FormOptions())
}
