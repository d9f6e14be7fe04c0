package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datalib/internal/config"
	"datalib/internal/library"
	"datalib/internal/services"
)

// newTestServer wires a real loader and service over a temporary library
// root behind the full router
func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loader := library.NewLoader(root, logger)
	service := services.NewDataService(loader, logger)

	cfg := config.Default()
	cfg.Library.Root = root
	cfg.Server.RateLimit.Enabled = false

	server := httptest.NewServer(NewRouter(cfg, service, logger))
	t.Cleanup(server.Close)
	return server, root
}

func writeDaily(t *testing.T, root, team, name, content string) {
	t.Helper()
	dir := filepath.Join(root, team, "raw_data", "daily")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func getJSON(t *testing.T, url string) (int, map[string]interface{}) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestGetTableEndpoint(t *testing.T) {
	server, root := newTestServer(t)
	writeDaily(t, root, "teamX", "f.csv", "Date,Close\n2024-01-01,100\n2024-01-02,101\n")

	code, body := getJSON(t, server.URL+"/api/library/data/teamX/f.csv")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(2), body["rows"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Date", data["date_column"])
	assert.Equal(t, []interface{}{"Close"}, data["columns"])
}

func TestGetTableEndpointCustomDateColumn(t *testing.T) {
	server, root := newTestServer(t)
	writeDaily(t, root, "teamX", "f.csv", "date,Close\n2024-01-01,100\n")

	code, body := getJSON(t, server.URL+"/api/library/data/teamX/f.csv?date_column=date")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])
}

func TestGetTableEndpointNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	code, body := getJSON(t, server.URL+"/api/library/data/teamX/absent.csv")
	require.Equal(t, http.StatusNotFound, code)

	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "FILE_NOT_FOUND", errBody["error_code"])
}

func TestGetTableEndpointParseFailure(t *testing.T) {
	server, root := newTestServer(t)
	writeDaily(t, root, "teamX", "bad.csv", "Day,Close\n2024-01-01,100\n")

	code, body := getJSON(t, server.URL+"/api/library/data/teamX/bad.csv")
	require.Equal(t, http.StatusUnprocessableEntity, code)

	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "PARSE_FAILURE", errBody["error_code"])
}

func TestListTeamsEndpoint(t *testing.T) {
	server, root := newTestServer(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "teamA"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "teamB"), 0755))

	code, body := getJSON(t, server.URL+"/api/library/teams")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(2), body["count"])
}

func TestListFilesEndpoint(t *testing.T) {
	server, root := newTestServer(t)
	writeDaily(t, root, "teamX", "f.csv", "Date,Close\n")

	code, body := getJSON(t, server.URL+"/api/library/teams/teamX/files")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])
}

func TestListFilesEndpointUnknownTeam(t *testing.T) {
	server, _ := newTestServer(t)

	code, body := getJSON(t, server.URL+"/api/library/teams/ghost/files")
	require.Equal(t, http.StatusNotFound, code)

	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errBody["error_code"])
}

func TestHealthzEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	code, body := getJSON(t, server.URL+"/healthz")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
}

func TestHealthzEndpointMissingRoot(t *testing.T) {
	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loader := library.NewLoader(filepath.Join(root, "gone"), logger)
	service := services.NewDataService(loader, logger)

	cfg := config.Default()
	cfg.Library.Root = filepath.Join(root, "gone")
	cfg.Server.RateLimit.Enabled = false

	server := httptest.NewServer(NewRouter(cfg, service, logger))
	t.Cleanup(server.Close)

	code, body := getJSON(t, server.URL+"/healthz")
	require.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestIDHeaderSet(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
