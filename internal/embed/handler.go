package embed

import (
	"net/http"
	"strconv"

	"leadtracker_backend/platform/httpkit"
	"leadtracker_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the embed generator endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

// NewHandler creates a new embed handler.
func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers embed routes under /embed.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/snippet", h.BuildSnippet)
	rg.GET("/qr", h.QRCode)
}

// BuildSnippet validates embed options and returns the install snippet.
func (h *Handler) BuildSnippet(c *gin.Context) {
	var opts Options
	if err := c.ShouldBindJSON(&opts); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid input", nil)
		return
	}
	if err := h.val.Struct(opts); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	snippet, err := h.svc.Build(opts)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, snippet)
}

// QRCode returns a PNG QR code linking to the hosted form.
func (h *Handler) QRCode(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))

	png, err := h.svc.QRCode(size)
	if httpkit.HandleError(c, err) {
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
