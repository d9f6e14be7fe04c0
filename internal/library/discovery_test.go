package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTeams(t *testing.T) {
	loader, root := newTestLoader(t)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "02_asset_pricing_factors"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "01_macro_indicators"), 0755))
	// Stray regular files in the root are not teams
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.txt"), []byte("x"), 0644))

	teams, err := loader.ListTeams()
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "01_macro_indicators", teams[0].Name)
	assert.Equal(t, "02_asset_pricing_factors", teams[1].Name)
}

func TestListTeamsMissingRoot(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "does-not-exist"), nil)

	_, err := loader.ListTeams()
	assert.Error(t, err)
}

func TestListFiles(t *testing.T) {
	loader, root := newTestLoader(t)

	writeLibraryFile(t, root, "teamX", "daily", "prices.csv", "Date,Close\n")
	writeLibraryFile(t, root, "teamX", "quarterly", "gdp.csv", "Date,Value\n")
	writeLibraryFile(t, root, "teamX", "processed", "factors.csv", "Date,Mom\n")
	// Non-CSV files are skipped
	writeLibraryFile(t, root, "teamX", "daily", "notes.txt", "ignore me")

	files, err := loader.ListFiles("teamX")
	require.NoError(t, err)
	require.Len(t, files, 3)

	byName := map[string]FileInfo{}
	for _, f := range files {
		byName[f.Name] = f
	}
	assert.Equal(t, "daily", byName["prices.csv"].Tier)
	assert.Equal(t, "quarterly", byName["gdp.csv"].Tier)
	assert.Equal(t, "processed", byName["factors.csv"].Tier)

	// Sorted by name
	assert.Equal(t, "factors.csv", files[0].Name)
	assert.Equal(t, "gdp.csv", files[1].Name)
	assert.Equal(t, "prices.csv", files[2].Name)
}

func TestListFilesUnknownTeam(t *testing.T) {
	loader, _ := newTestLoader(t)

	_, err := loader.ListFiles("no-such-team")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFilesEmptyTiers(t *testing.T) {
	loader, root := newTestLoader(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "teamX"), 0755))

	files, err := loader.ListFiles("teamX")
	require.NoError(t, err)
	assert.Empty(t, files)
}
