package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/monopoly-go/internal/api/response"
	"github.com/mcoot/monopoly-go/internal/services/scoring"
	"github.com/mcoot/monopoly-go/internal/storage"
)

// SaveHandler serves saved games read-only
type SaveHandler struct {
	storage        storage.Storage
	scoringService *scoring.Service
}

// NewSaveHandler creates a new save handler
func NewSaveHandler(storage storage.Storage, scoringService *scoring.Service) *SaveHandler {
	return &SaveHandler{
		storage:        storage,
		scoringService: scoringService,
	}
}

// List handles GET /api/v1/saves
func (h *SaveHandler) List(w http.ResponseWriter, r *http.Request) {
	saves, err := h.storage.ListSaves(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	if saves == nil {
		saves = []string{}
	}
	response.JSON(w, http.StatusOK, response.SaveList{Saves: saves})
}

// Get handles GET /api/v1/saves/{name}
func (h *SaveHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	state, err := h.storage.LoadGame(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SaveFromModel(name, state))
}

// Standings handles GET /api/v1/saves/{name}/standings
func (h *SaveHandler) Standings(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	state, err := h.storage.LoadGame(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Standings{
		Name:      name,
		RoundNum:  state.RoundNum,
		Standings: h.scoringService.Standings(state),
	})
}
