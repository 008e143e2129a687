package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/monopoly-go/internal/api/handler"
	"github.com/mcoot/monopoly-go/internal/api/middleware"
	"github.com/mcoot/monopoly-go/internal/services/board"
	"github.com/mcoot/monopoly-go/internal/services/scoring"
	"github.com/mcoot/monopoly-go/internal/storage"
	"github.com/mcoot/monopoly-go/internal/transport/websocket"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Storage        storage.Storage
	BoardService   *board.Service
	ScoringService *scoring.Service
	// Hub streams live game events. The events route is only registered
	// when a hub is set.
	Hub *websocket.Hub
}

// NewRouter creates a new API router with all routes configured. The API is
// read-only: games are only ever driven from the local console.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	healthHandler := handler.NewHealthHandler(cfg.Hub)
	saveHandler := handler.NewSaveHandler(cfg.Storage, cfg.ScoringService)
	mapHandler := handler.NewMapHandler(cfg.BoardService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/saves", saveHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/saves/{name}", saveHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/saves/{name}/standings", saveHandler.Standings).Methods(http.MethodGet)

	api.HandleFunc("/maps/validate", mapHandler.Validate).Methods(http.MethodPost)

	if cfg.Hub != nil {
		api.HandleFunc("/events", cfg.Hub.ServeWS).Methods(http.MethodGet)
	}

	return r
}
