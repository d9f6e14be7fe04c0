package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// TeamInfo represents a team folder discovered under the library root
type TeamInfo struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	ModTime time.Time `json:"modified"`
}

// FileInfo represents a CSV file discovered inside a team folder
type FileInfo struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Tier    string    `json:"tier"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modified"`
}

// ListTeams returns the team folders directly under the library root,
// sorted by name
func (l *Loader) ListTeams() ([]TeamInfo, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read library root %s: %w", l.root, err)
	}

	var teams []TeamInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		teams = append(teams, TeamInfo{
			Name:    entry.Name(),
			Path:    filepath.Join(l.root, entry.Name()),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})

	return teams, nil
}

// ListFiles returns the CSV files held in a team's candidate directories,
// tagged with the tier they live in and sorted by name. Tier directories
// that do not exist are skipped; scanning is not recursive.
func (l *Loader) ListFiles(team string) ([]FileInfo, error) {
	teamDir := filepath.Join(l.root, team)
	if _, err := os.Stat(teamDir); err != nil {
		return nil, fmt.Errorf("%w: team folder %q", ErrNotFound, team)
	}

	var files []FileInfo
	for _, tier := range tiers {
		parts := append([]string{teamDir}, tier.Parts...)
		dir := filepath.Join(parts...)

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			name := entry.Name()
			if !strings.HasSuffix(strings.ToLower(name), ".csv") {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				continue
			}

			files = append(files, FileInfo{
				Name:    name,
				Path:    filepath.Join(dir, name),
				Tier:    tier.Name,
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
		}
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Name == files[j].Name {
			return files[i].Tier < files[j].Tier
		}
		return files[i].Name < files[j].Name
	})

	return files, nil
}
