package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/monopoly-go/internal/api"
	"github.com/mcoot/monopoly-go/internal/config"
	"github.com/mcoot/monopoly-go/internal/factory"
	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/storage/file"
	"github.com/mcoot/monopoly-go/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	saveDir    string
	mapDir     string
	envFile    string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "monopoly-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/monopoly")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	dir := t.TempDir()
	return &cliRunner{
		binaryPath: binaryPath,
		saveDir:    filepath.Join(dir, "save"),
		mapDir:     filepath.Join(dir, "map"),
		envFile:    filepath.Join(dir, "test.env"),
	}
}

func (r *cliRunner) command(args ...string) *exec.Cmd {
	fullArgs := append([]string{
		"--env-file", r.envFile,
		"--storage", "file",
		"--save-dir", r.saveDir,
		"--map-dir", r.mapDir,
		"--log-level", "error",
	}, args...)
	return exec.Command(r.binaryPath, fullArgs...)
}

func (r *cliRunner) run(args ...string) (string, error) {
	output, err := r.command(args...).CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithInput(input string, args ...string) (string, error) {
	cmd := r.command(args...)
	cmd.Stdin = strings.NewReader(input)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	url      string
	shutdown func()
}

func startTestServer(t *testing.T, saveDir, mapDir string) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{
		Logger:      logger,
		StorageType: config.StorageFile,
		SaveDir:     saveDir,
		MapDir:      mapDir,
	})
	require.NoError(t, err)
	go app.Hub.Run()

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		Storage:        app.Storage,
		BoardService:   app.BoardService,
		ScoringService: app.ScoringService,
		Hub:            app.Hub,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Addr = "127.0.0.1:0"
	server := api.NewServer(router, serverConfig, logger)
	require.NoError(t, server.Listen())

	go func() {
		if err := server.Start(); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	url := "http://" + server.Addr()
	waitForServer(t, url+"/api/v1/health")

	return &testServer{
		url: url,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			_ = app.Close()
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), string(body))
	return resp.StatusCode
}

// Response types for JSON parsing
type saveListResponse struct {
	Saves []string `json:"saves"`
}

type mapReportResponse struct {
	Path     string   `json:"path"`
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems"`
}

type standingsResponse struct {
	Name      string           `json:"name"`
	RoundNum  int              `json:"round_num"`
	Standings []model.Standing `json:"standings"`
}

type errorResponse struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

// Tests

func TestCLI_MapNewAndValidate(t *testing.T) {
	cli := newCLIRunner(t)
	path := filepath.Join(cli.mapDir, "standard.json")

	output, err := cli.run("map", "new", path, "--size", "16")
	require.NoError(t, err, output)
	assert.Contains(t, output, "Wrote 16-square map")

	output, err = cli.run("--output", "json", "map", "validate", path)
	require.NoError(t, err, output)

	var report mapReportResponse
	require.NoError(t, json.Unmarshal([]byte(output), &report), output)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Problems)
}

func TestCLI_MapValidateRejectsBrokenMap(t *testing.T) {
	cli := newCLIRunner(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"map_size": 2, "squares": {}}`), 0644))

	output, err := cli.run("map", "validate", path)
	require.Error(t, err)
	assert.Contains(t, output, "is not a valid map:")
}

func TestCLI_PlayUntilInputEnds(t *testing.T) {
	cli := newCLIRunner(t)
	_, err := cli.run("map", "new", filepath.Join(cli.mapDir, "standard.json"))
	require.NoError(t, err)

	// Setup, then view the map and every player before stdin runs out
	input := strings.Join([]string{"n", "n", "1", "2", "Alice", "Bob", "2", "4"}, "\n") + "\n"
	output, err := cli.runWithInput(input, "play")
	require.NoError(t, err, output)

	assert.Contains(t, output, "Welcome to Monopoly!")
	assert.Contains(t, output, "Game Start! Player List:")
	assert.Contains(t, output, "Alice: Initial cash $1500")
	assert.Contains(t, output, "Current map:")
	assert.Contains(t, output, "Player Bob status:")
}

func TestCLI_SavesAndServer(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("saves", "list")
	require.NoError(t, err, output)
	assert.Contains(t, output, "No save files available.")

	state := testutil.NewState("Alice", "Bob")
	state.RoundNum = 3
	state.PlayerByName("Bob").Cash = 1800
	name, err := file.New(cli.saveDir).SaveGame(context.Background(), state)
	require.NoError(t, err)

	output, err = cli.run("--output", "json", "saves", "list")
	require.NoError(t, err, output)
	var saves saveListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &saves), output)
	assert.Equal(t, []string{name}, saves.Saves)

	ts := startTestServer(t, cli.saveDir, cli.mapDir)
	defer ts.shutdown()

	var standings standingsResponse
	status := getJSON(t, ts.url+"/api/v1/saves/"+name+"/standings", &standings)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, standings.RoundNum)
	require.Len(t, standings.Standings, 2)
	assert.Equal(t, "Bob", standings.Standings[0].Name)
	assert.True(t, standings.Standings[0].Winner)

	output, err = cli.run("saves", "delete", name)
	require.NoError(t, err, output)

	var apiErr errorResponse
	status = getJSON(t, ts.url+"/api/v1/saves/"+name, &apiErr)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "SAVE_NOT_FOUND", apiErr.Error.Code)
}
