package handler

import (
	"net/http"

	"github.com/mcoot/monopoly-go/internal/api/response"
	"github.com/mcoot/monopoly-go/internal/transport/websocket"
)

// HealthHandler reports liveness and the spectator count
type HealthHandler struct {
	hub *websocket.Hub
}

// NewHealthHandler creates a new health handler. hub may be nil.
func NewHealthHandler(hub *websocket.Hub) *HealthHandler {
	return &HealthHandler{hub: hub}
}

// Get handles GET /api/v1/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := response.Health{Status: "ok"}
	if h.hub != nil {
		resp.Spectators = h.hub.ClientCount()
	}
	response.JSON(w, http.StatusOK, resp)
}
