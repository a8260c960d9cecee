// Package handler exposes the public funnel HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"advanx_funnel_backend/internal/funnel/service"
	"advanx_funnel_backend/internal/funnel/transport"
	"advanx_funnel_backend/platform/httpkit"
	"advanx_funnel_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidSessionID = "invalid session ID"
)

// Handler handles HTTP requests for the funnel wizard.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a funnel handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the funnel routes on the given group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/sessions", h.Create)
	group.GET("/sessions/:id", h.Get)
	group.POST("/sessions/:id/advance", h.Advance)
	group.POST("/sessions/:id/retreat", h.Retreat)
	group.POST("/sessions/:id/goto", h.GoTo)
	group.PATCH("/sessions/:id/fields", h.UpdateField)
	group.POST("/sessions/:id/submit", h.Submit)
}

// Create starts a new funnel session.
// POST /api/v1/funnel/sessions
func (h *Handler) Create(c *gin.Context) {
	session, err := h.svc.Create(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, transport.FromSession(session, h.svc.GroupLink()))
}

// Get returns the session state.
// GET /api/v1/funnel/sessions/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromSession(session, h.svc.GroupLink()))
}

// Advance moves the session one step forward.
// POST /api/v1/funnel/sessions/:id/advance
func (h *Handler) Advance(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.svc.Advance(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromSession(session, h.svc.GroupLink()))
}

// Retreat moves the session one step back.
// POST /api/v1/funnel/sessions/:id/retreat
func (h *Handler) Retreat(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.svc.Retreat(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromSession(session, h.svc.GroupLink()))
}

// GoTo jumps the session to a given step.
// POST /api/v1/funnel/sessions/:id/goto
func (h *Handler) GoTo(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req transport.GoToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	session, err := h.svc.GoTo(c.Request.Context(), id, req.Step)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromSession(session, h.svc.GroupLink()))
}

// UpdateField sets one profile field.
// PATCH /api/v1/funnel/sessions/:id/fields
func (h *Handler) UpdateField(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req transport.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	session, err := h.svc.UpdateField(c.Request.Context(), id, req.Field, req.Value)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromSession(session, h.svc.GroupLink()))
}

// Submit finalizes the funnel and returns the diagnostic.
// POST /api/v1/funnel/sessions/:id/submit
func (h *Handler) Submit(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.svc.Submit(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromSession(session, h.svc.GroupLink()))
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidSessionID, nil)
		return uuid.UUID{}, false
	}
	return id, true
}
