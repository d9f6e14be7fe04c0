package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "datalib/internal/errors"
	"datalib/internal/library"
	"datalib/internal/middleware"
	"datalib/internal/services"
)

// DataServiceInterface defines the service operations the handler depends on
type DataServiceInterface interface {
	GetTable(ctx context.Context, req services.LoadRequest) (*library.Table, error)
	ListTeams(ctx context.Context) ([]library.TeamInfo, error)
	ListFiles(ctx context.Context, team string) ([]library.FileInfo, error)
}

// DataHandler handles data library HTTP requests
type DataHandler struct {
	service DataServiceInterface
	logger  *slog.Logger
}

// NewDataHandler creates a new data handler
func NewDataHandler(service DataServiceInterface, logger *slog.Logger) *DataHandler {
	return &DataHandler{
		service: service,
		logger:  logger.With(slog.String("component", "data_handler")),
	}
}

// Routes returns the data library routes
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()

	// Use render for consistent JSON responses
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/teams", h.ListTeams)

	r.Route("/teams/{team}", func(r chi.Router) {
		r.Use(h.TeamCtx)
		r.Get("/files", h.ListFiles)
	})

	r.Route("/data/{team}/{file}", func(r chi.Router) {
		r.Use(h.TeamCtx)
		r.Get("/", h.GetTable)
	})

	return r
}

// TeamCtx middleware validates the team URL parameter
func (h *DataHandler) TeamCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")
		if team == "" {
			h.renderError(w, r, apierrors.ErrValidation("team", "Team folder is required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ListTeams handles GET /api/library/teams
func (h *DataHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	h.logger.InfoContext(r.Context(), "listing team folders",
		slog.String("request_id", reqID))

	teams, err := h.service.ListTeams(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list teams",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID))
		h.renderError(w, r, h.toAPIError(err, r))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   teams,
		"count":  len(teams),
	})
}

// ListFiles handles GET /api/library/teams/{team}/files
func (h *DataHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	reqID := middleware.GetReqID(r.Context())

	h.logger.InfoContext(r.Context(), "listing team files",
		slog.String("team", team),
		slog.String("request_id", reqID))

	files, err := h.service.ListFiles(r.Context(), team)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list team files",
			slog.String("team", team),
			slog.String("error", err.Error()),
			slog.String("request_id", reqID))
		h.renderError(w, r, h.toAPIError(err, r))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   files,
		"count":  len(files),
	})
}

// GetTable handles GET /api/library/data/{team}/{file}
func (h *DataHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	req := services.LoadRequest{
		Team:       chi.URLParam(r, "team"),
		File:       chi.URLParam(r, "file"),
		DateColumn: r.URL.Query().Get("date_column"),
	}
	reqID := middleware.GetReqID(r.Context())

	h.logger.InfoContext(r.Context(), "loading library table",
		slog.String("team", req.Team),
		slog.String("file", req.File),
		slog.String("date_column", req.DateColumn),
		slog.String("request_id", reqID))

	table, err := h.service.GetTable(r.Context(), req)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to load library table",
			slog.String("team", req.Team),
			slog.String("file", req.File),
			slog.String("error", err.Error()),
			slog.String("request_id", reqID))
		h.renderError(w, r, h.toAPIErrorForLoad(err, req))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   table,
		"rows":   table.Len(),
	})
}

// toAPIError maps service errors to API errors
func (h *DataHandler) toAPIError(err error, r *http.Request) *apierrors.APIError {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return apierrors.NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED",
			"Request validation failed", err.Error())
	case errors.Is(err, services.ErrTeamNotFound), errors.Is(err, library.ErrNotFound):
		return apierrors.NotFoundError("Team folder")
	default:
		return apierrors.ErrInternalServer
	}
}

// toAPIErrorForLoad maps load errors to API errors, preserving the
// not-found vs parse-failure distinction in the response
func (h *DataHandler) toAPIErrorForLoad(err error, req services.LoadRequest) *apierrors.APIError {
	var parseErr *library.ParseError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return apierrors.NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED",
			"Request validation failed", err.Error())
	case errors.As(err, &parseErr):
		return apierrors.ParseFailureError(parseErr)
	case errors.Is(err, library.ErrNotFound):
		return apierrors.FileNotFoundError(req.File, req.Team)
	default:
		return apierrors.ErrInternalServer
	}
}

// renderError writes an APIError response envelope
func (h *DataHandler) renderError(w http.ResponseWriter, r *http.Request, apiErr *apierrors.APIError) {
	if err := render.Render(w, r, apierrors.NewErrorResponse(apiErr)); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render error response",
			slog.String("error", err.Error()))
	}
}
