// Package apihandlers contains the Gin handlers for the styling HTTP API.
// Handlers stay thin: parse the request, call the styling service, map the
// sentinel errors onto status codes.
package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bragi/internal/app"
)

// APIHandler holds the dependencies the HTTP endpoints need.
type APIHandler struct {
	App *app.App
}

// NewAPIHandler creates a handler instance bound to an initialized App.
func NewAPIHandler(application *app.App) *APIHandler {
	return &APIHandler{App: application}
}

// parseDeckID reads the :id route parameter. On failure it writes the 400
// response itself and returns false.
func parseDeckID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		BadRequest(c, "invalid deck id: "+raw)
		return uuid.Nil, false
	}
	return id, true
}

// HealthHandler reports liveness plus deck-store reachability.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	if err := h.App.DeckStore.Ping(c.Request.Context()); err != nil {
		ServiceUnavailable(c, "deck store unreachable: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
