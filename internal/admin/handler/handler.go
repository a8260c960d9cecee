// Package handler exposes the admin HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advanx_funnel_backend/internal/admin/repository"
	"advanx_funnel_backend/internal/admin/service"
	"advanx_funnel_backend/internal/admin/transport"
	"advanx_funnel_backend/platform/httpkit"
	"advanx_funnel_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for the admin dashboard.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates an admin handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterAuthRoutes mounts the unauthenticated auth endpoints.
func (h *Handler) RegisterAuthRoutes(group *gin.RouterGroup) {
	group.POST("/login", h.Login)
	group.POST("/logout", h.Logout)
}

// RegisterProtectedRoutes mounts the JWT-protected endpoints.
func (h *Handler) RegisterProtectedRoutes(group *gin.RouterGroup) {
	group.GET("/leads", h.ListLeads)
	group.GET("/leads/export.csv", h.ExportLeads)
	group.GET("/metrics", h.Metrics)
	group.GET("/pixels", h.Pixels)
	group.PUT("/pixels", h.SavePixels)
	group.GET("/pixels/platforms", h.Platforms)
}

// Login authenticates the admin and issues an access token.
// POST /api/v1/admin/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.svc.AccessTokenTTL().Seconds()),
	})
}

// Logout always succeeds; the session ends when the client drops the token.
// POST /api/v1/admin/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	httpkit.OK(c, gin.H{"status": "ok"})
}

// ListLeads returns the filtered lead listing.
// GET /api/v1/admin/leads?search=&revenue=
func (h *Handler) ListLeads(c *gin.Context) {
	leads, err := h.svc.ListLeads(c.Request.Context(), listParams(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromLeads(leads))
}

// ExportLeads streams the filtered leads as a CSV download.
// GET /api/v1/admin/leads/export.csv?search=&revenue=
func (h *Handler) ExportLeads(c *gin.Context) {
	filename, data, err := h.svc.ExportLeadsCSV(c.Request.Context(), listParams(c))
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Metrics returns the dashboard aggregates.
// GET /api/v1/admin/metrics
func (h *Handler) Metrics(c *gin.Context) {
	m, err := h.svc.Metrics(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, m)
}

// Pixels returns the persisted pixel configuration set.
// GET /api/v1/admin/pixels
func (h *Handler) Pixels(c *gin.Context) {
	configs, err := h.svc.Pixels(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.PixelListResponse{Pixels: configs})
}

// SavePixels replaces the pixel configuration set wholesale.
// PUT /api/v1/admin/pixels
func (h *Handler) SavePixels(c *gin.Context) {
	var req transport.SavePixelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	saved, err := h.svc.SavePixels(c.Request.Context(), req.ToConfigs())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.PixelListResponse{Pixels: saved})
}

// Platforms returns platform display metadata for the pixel manager.
// GET /api/v1/admin/pixels/platforms
func (h *Handler) Platforms(c *gin.Context) {
	httpkit.OK(c, gin.H{"platforms": h.svc.PlatformOptions()})
}

func listParams(c *gin.Context) repository.ListParams {
	return repository.ListParams{
		Search:  c.Query("search"),
		Revenue: c.Query("revenue"),
	}
}
