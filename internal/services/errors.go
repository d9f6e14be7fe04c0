package services

import "errors"

// Data service errors
var (
	// Request errors
	ErrInvalidInput = errors.New("invalid input")

	// Team errors
	ErrTeamNotFound = errors.New("team folder not found")
	ErrNoTeamsFound = errors.New("no team folders found")
)
