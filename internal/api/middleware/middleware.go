package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/monopoly-go/internal/api/apierr"
	"github.com/mcoot/monopoly-go/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// Panics are answered with the JSON error envelope.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("component", "api")))
}
