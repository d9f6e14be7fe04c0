package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"datalib/internal/config"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	libraryRoot string
	logger      *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(libraryRoot string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		libraryRoot: libraryRoot,
		logger:      logger.With(slog.String("component", "health_handler")),
	}
}

// Healthz handles GET /healthz. The service is degraded when the library
// root is not reachable on disk.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK

	if !config.FileExists(h.libraryRoot) {
		status = "degraded"
		code = http.StatusServiceUnavailable
		h.logger.WarnContext(r.Context(), "library root not reachable",
			slog.String("library_root", h.libraryRoot))
	}

	render.Status(r, code)
	render.JSON(w, r, map[string]interface{}{
		"status":       status,
		"library_root": h.libraryRoot,
		"time":         time.Now().Format(time.RFC3339),
	})
}
