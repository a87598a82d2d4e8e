package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classicBody = `{"processes":[
	{"id":"P1","arrival":0,"burst":8,"priority":2},
	{"id":"P2","arrival":1,"burst":4,"priority":1},
	{"id":"P3","arrival":2,"burst":9,"priority":3},
	{"id":"P4","arrival":3,"burst":5,"priority":2}]}`

func testServerConfig() *ServerConfig {
	return &ServerConfig{Port: 9095, DefaultQuantum: 3, MaxProcesses: 10, MaxTotalBurst: 100}
}

func doRequest(t *testing.T, method, target, body string) (int, map[string]any) {
	t.Helper()
	app := NewServer(testServerConfig())
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestServer_Algorithms(t *testing.T) {
	status, out := doRequest(t, http.MethodGet, "/api/v1/algorithms", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"fcfs", "sjn", "priority", "rr"}, out["algorithms"])
	assert.Equal(t, float64(3), out["default_quantum"])
}

func TestServer_Schedule_RoundRobinUsesDefaultQuantum(t *testing.T) {
	status, out := doRequest(t, http.MethodPost, "/api/v1/schedule/rr", classicBody)
	require.Equal(t, http.StatusOK, status, out)

	metrics := out["metrics"].(map[string]any)
	assert.Equal(t, 13.5, metrics["avg_waiting_time"])
	assert.Equal(t, 20.0, metrics["avg_turnaround_time"])

	schedule := out["schedule"].(map[string]any)
	assert.Equal(t, float64(3), schedule["quantum"])
	assert.Len(t, schedule["segments"], 10)
}

func TestServer_Schedule_WithTrace(t *testing.T) {
	body := strings.Replace(classicBody, `{"processes"`, `{"trace":"decisions","quantum":4,"processes"`, 1)
	status, out := doRequest(t, http.MethodPost, "/api/v1/schedule/round-robin", body)
	require.Equal(t, http.StatusOK, status, out)
	assert.NotNil(t, out["trace"])
}

func TestServer_Schedule_FCFS(t *testing.T) {
	status, out := doRequest(t, http.MethodPost, "/api/v1/schedule/fcfs", classicBody)
	require.Equal(t, http.StatusOK, status, out)

	procs := out["schedule"].(map[string]any)["processes"].([]any)
	require.Len(t, procs, 4)
	last := procs[3].(map[string]any)
	assert.Equal(t, "P4", last["process_id"])
	assert.Equal(t, float64(21), last["start_time"])
	assert.Equal(t, float64(26), last["end_time"])
}

func TestServer_Schedule_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		want   string
	}{
		{"unknown algorithm", "/api/v1/schedule/mlfq", classicBody, "unknown algorithm"},
		{"negative quantum", "/api/v1/schedule/rr", strings.Replace(classicBody, `{"processes"`, `{"quantum":-1,"processes"`, 1), "quantum"},
		{"zero burst", "/api/v1/schedule/fcfs", `{"processes":[{"id":"A","arrival":0,"burst":0}]}`, "burst_time"},
		{"empty set", "/api/v1/schedule/fcfs", `{"processes":[]}`, "processes must not be empty"},
		{"malformed", "/api/v1/schedule/fcfs", `{"processes":`, "invalid request format"},
		{"bad trace", "/api/v1/schedule/fcfs", strings.Replace(classicBody, `{"processes"`, `{"trace":"all","processes"`, 1), "trace level"},
		{"too many", "/api/v1/schedule/fcfs", manyProcessesBody(11), "exceeds the limit"},
		{"huge burst", "/api/v1/schedule/rr", `{"quantum":1,"processes":[{"id":"A","arrival":0,"burst":1000000000000}]}`, "total burst_time exceeds the limit of 100"},
		{"total burst over limit", "/api/v1/schedule/fcfs", `{"processes":[{"id":"A","arrival":0,"burst":60},{"id":"B","arrival":0,"burst":41}]}`, "total burst_time"},
		{"clock overflow", "/api/v1/schedule/fcfs", `{"processes":[{"id":"A","arrival":9223372036854775806,"burst":5}]}`, "arrival_time"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, out := doRequest(t, http.MethodPost, tc.target, tc.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Contains(t, out["error"], tc.want)
		})
	}
}

func manyProcessesBody(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = `{"id":"p` + string(rune('a'+i)) + `","arrival":0,"burst":1}`
	}
	return `{"processes":[` + strings.Join(parts, ",") + `]}`
}

func TestServer_Schedule_TotalBurstAtLimit_Accepted(t *testing.T) {
	body := `{"quantum":1,"processes":[{"id":"A","arrival":0,"burst":60},{"id":"B","arrival":3,"burst":40}]}`
	status, out := doRequest(t, http.MethodPost, "/api/v1/schedule/rr", body)
	require.Equal(t, http.StatusOK, status, out)
	assert.Len(t, out["schedule"].(map[string]any)["segments"], 100)
}

func TestServer_Compare(t *testing.T) {
	status, out := doRequest(t, http.MethodPost, "/api/v1/compare", classicBody)
	require.Equal(t, http.StatusOK, status, out)
	metrics := out["metrics"].([]any)
	require.Len(t, metrics, 4)
	assert.Equal(t, "sjn", metrics[1].(map[string]any)["algorithm"])
}

func TestLoadServerConfig_DefaultsFileAndEnv(t *testing.T) {
	// GIVEN no file: defaults apply
	cfg, err := LoadServerConfig("")
	require.NoError(t, err)
	assert.Equal(t, &ServerConfig{Port: 9095, DefaultQuantum: 3, MaxProcesses: 10000, MaxTotalBurst: 1000000}, cfg)

	// GIVEN a file: its values apply
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8081\ndefault_quantum: 5\n"), 0644))
	cfg, err = LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, int64(5), cfg.DefaultQuantum)

	// GIVEN an env override: it wins over the file
	t.Setenv("SCHEDSIM_PORT", "7070")
	cfg, err = LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoadServerConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_quantum: 0\n"), 0644))
	_, err := LoadServerConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_quantum")

	require.NoError(t, os.WriteFile(path, []byte("max_total_burst: -1\n"), 0644))
	_, err = LoadServerConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_total_burst")

	_, err = LoadServerConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
