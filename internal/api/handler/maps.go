package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/mcoot/monopoly-go/internal/api/response"
	"github.com/mcoot/monopoly-go/internal/services/board"
)

// maxMapBytes bounds the size of a map document sent for validation
const maxMapBytes = 1 << 20

// MapHandler validates map documents
type MapHandler struct {
	boardService *board.Service
}

// NewMapHandler creates a new map handler
func NewMapHandler(boardService *board.Service) *MapHandler {
	return &MapHandler{boardService: boardService}
}

// Validate handles POST /api/v1/maps/validate. A map that decodes is always
// answered with 200; its problems are listed in the body.
func (h *MapHandler) Validate(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxMapBytes))
	if err != nil {
		WriteError(w, NewInvalidRequestError("Could not read request body"))
		return
	}

	b, err := h.boardService.ParseMap(data)
	var verr *board.ValidationError
	switch {
	case errors.As(err, &verr):
		response.JSON(w, http.StatusOK, response.MapValidation{
			Valid:    false,
			Problems: verr.Problems,
			Summary:  board.Summary(b),
		})
	case err != nil:
		WriteError(w, err)
	default:
		response.JSON(w, http.StatusOK, response.MapValidation{
			Valid:    true,
			Problems: []string{},
			Summary:  board.Summary(b),
		})
	}
}
