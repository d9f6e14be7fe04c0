package library

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// DefaultDateColumn is the header name used as the row index when a
// request does not name one.
const DefaultDateColumn = "Date"

// tiers are the candidate locations inside a team folder, in scan order.
// Daily wins over quarterly, quarterly over processed.
var tiers = []struct {
	Name  string
	Parts []string
}{
	{Name: "daily", Parts: []string{"raw_data", "daily"}},
	{Name: "quarterly", Parts: []string{"raw_data", "quarterly"}},
	{Name: "processed", Parts: []string{"processed_data"}},
}

// dateLayouts are the accepted timestamp formats for the date column,
// tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"20060102",
}

// Request describes a single load from the shared data library
type Request struct {
	Team       string
	File       string
	DateColumn string
}

// Loader resolves and parses CSV files from the shared data library.
// It holds only immutable state and is safe for concurrent use.
type Loader struct {
	root   string
	logger *slog.Logger
}

// NewLoader creates a loader rooted at the given library directory
func NewLoader(root string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		root:   root,
		logger: logger.With(slog.String("component", "library_loader")),
	}
}

// Root returns the configured library root directory
func (l *Loader) Root() string {
	return l.root
}

// CandidatePaths returns the three locations checked for a requested file,
// in scan order
func (l *Loader) CandidatePaths(team, file string) []string {
	paths := make([]string, 0, len(tiers))
	for _, tier := range tiers {
		parts := append([]string{l.root, team}, tier.Parts...)
		parts = append(parts, file)
		paths = append(paths, filepath.Join(parts...))
	}
	return paths
}

// Resolve returns the first candidate path that exists on disk.
// Remaining candidates are not checked once a match is found.
// Returns ErrNotFound when no candidate exists.
func (l *Loader) Resolve(team, file string) (string, error) {
	for _, path := range l.CandidatePaths(team, file) {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: file %q in team folder %q", ErrNotFound, file, team)
}

// Load resolves the requested file and parses it into a date-indexed Table.
// A fresh Table is returned on every successful call; nothing is cached.
// Failures are returned as ErrNotFound or *ParseError, never as a panic.
func (l *Loader) Load(ctx context.Context, req Request) (*Table, error) {
	dateColumn := req.DateColumn
	if dateColumn == "" {
		dateColumn = DefaultDateColumn
	}

	path, err := l.Resolve(req.Team, req.File)
	if err != nil {
		l.logger.ErrorContext(ctx, "file not found in standard directories",
			slog.String("file", req.File),
			slog.String("team", req.Team))
		return nil, err
	}

	l.logger.InfoContext(ctx, "loading data from library",
		slog.String("path", path),
		slog.String("date_column", dateColumn))

	table, err := l.parseFile(path, dateColumn)
	if err != nil {
		l.logger.ErrorContext(ctx, "an error occurred while loading the file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, &ParseError{Path: path, Err: err}
	}

	l.logger.InfoContext(ctx, "file loaded successfully",
		slog.String("path", path),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Columns)))

	return table, nil
}

// parseFile reads a CSV file with a header row and builds a Table indexed
// by the named date column
func (l *Loader) parseFile(path, dateColumn string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	dateIdx := -1
	for i, col := range header {
		if col == dateColumn {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("date column %q not found in header %v", dateColumn, header)
	}

	columns := make([]string, 0, len(header)-1)
	for i, col := range header {
		if i != dateIdx {
			columns = append(columns, col)
		}
	}

	table := &Table{
		DateColumn: dateColumn,
		Columns:    columns,
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}

		date, err := parseDate(record[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", table.Len()+1, err)
		}

		row := make([]string, 0, len(record)-1)
		for i, cell := range record {
			if i != dateIdx {
				row = append(row, cell)
			}
		}

		table.Dates = append(table.Dates, date)
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// parseDate parses a date cell using the accepted layouts in order
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date value %q", value)
}
