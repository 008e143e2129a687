package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/monopoly-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeSaveNotFound   = "SAVE_NOT_FOUND"
	CodeInvalidSave    = "INVALID_SAVE"
	CodeMapNotFound    = "MAP_NOT_FOUND"
	CodeInvalidMap     = "INVALID_MAP"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error is reported with
func Status(err error) int {
	return toHTTPError(err).status
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSaveNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSaveNotFound, "Save not found"}}
	case errors.Is(err, model.ErrInvalidSave):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidSave, "Save file is corrupt"}}
	case errors.Is(err, model.ErrMapNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMapNotFound, "Map not found"}}
	case errors.Is(err, model.ErrInvalidMap):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMap, err.Error()}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
