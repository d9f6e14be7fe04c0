package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"datalib/internal/library"
	"datalib/internal/metrics"
)

// LoadRequest is the validated boundary form of a library load.
// The loader itself accepts arbitrary team and file strings; shape checks
// happen only here, at the service boundary.
type LoadRequest struct {
	Team       string `json:"team" validate:"required"`
	File       string `json:"file" validate:"required"`
	DateColumn string `json:"date_column" validate:"omitempty,max=128"`
}

// DataService provides access to the shared data library
type DataService struct {
	loader   *library.Loader
	logger   *slog.Logger
	validate *validator.Validate
}

// NewDataService creates a new data service over the given loader
func NewDataService(loader *library.Loader, logger *slog.Logger) *DataService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("DataService initialized",
		slog.String("library_root", loader.Root()))

	return &DataService{
		loader:   loader,
		logger:   logger.With(slog.String("component", "data_service")),
		validate: validator.New(),
	}
}

// GetTable validates the request, loads the file from the library and
// records the outcome. Library failures pass through untranslated so that
// callers can distinguish library.ErrNotFound from *library.ParseError.
func (s *DataService) GetTable(ctx context.Context, req LoadRequest) (*library.Table, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.WarnContext(ctx, "load request rejected",
			slog.String("team", req.Team),
			slog.String("file", req.File),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start := time.Now()
	table, err := s.loader.Load(ctx, library.Request{
		Team:       req.Team,
		File:       req.File,
		DateColumn: req.DateColumn,
	})
	metrics.RecordLoad(loadOutcome(err), time.Since(start))

	return table, err
}

// ListTeams returns the team folders available under the library root
func (s *DataService) ListTeams(ctx context.Context) ([]library.TeamInfo, error) {
	teams, err := s.loader.ListTeams()
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	s.logger.DebugContext(ctx, "listed team folders",
		slog.Int("count", len(teams)))

	return teams, nil
}

// ListFiles returns the CSV files published by a team
func (s *DataService) ListFiles(ctx context.Context, team string) ([]library.FileInfo, error) {
	if team == "" {
		return nil, fmt.Errorf("%w: team folder is required", ErrInvalidInput)
	}

	files, err := s.loader.ListFiles(team)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, team)
		}
		return nil, fmt.Errorf("list files for team %s: %w", team, err)
	}

	s.logger.DebugContext(ctx, "listed team files",
		slog.String("team", team),
		slog.Int("count", len(files)))

	return files, nil
}

// loadOutcome maps a load result to a metrics outcome label
func loadOutcome(err error) string {
	var parseErr *library.ParseError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.As(err, &parseErr):
		return metrics.OutcomeParseError
	default:
		return metrics.OutcomeNotFound
	}
}
