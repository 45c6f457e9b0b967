//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/termtrans-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/termtrans-backend/internal/app"
	"github.com/heartmarshall/termtrans-backend/internal/config"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer wires the real container on top of a PostgreSQL
// container shared via testhelper.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret-at-least-32-chars-long!!",
			JWTIssuer:  "test-issuer",
			SessionTTL: time.Hour,
			CookieName: "session",
			DevLogin:   true,
		},
		Appeal:  config.AppealConfig{MaxMessagesPerHour: 10},
		Harvest: config.HarvestConfig{BatchSize: 100, FieldsRaw: "prefLabel", Timeout: 5 * time.Second, MaxRetries: 1},
		LDES:    config.LDESConfig{BaseDir: t.TempDir(), PrefixURI: "http://localhost/ldes"},
		Tasks:   config.TasksConfig{Timeout: time.Minute},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	c, err := app.Wire(t.Context(), cfg, pool, logger)
	require.NoError(t, err)

	srv := httptest.NewServer(c.Handler(cfg, logger, nil))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// do sends a JSON request and decodes a JSON response into out when non-nil.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// login opens a dev session for an existing user and returns its token.
func (ts *testServer) login(t *testing.T, u domain.User) string {
	t.Helper()

	var res struct {
		Token string `json:"token"`
	}
	status := ts.do(t, http.MethodPost, "/auth/session", "", map[string]any{"username": u.Username}, &res)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, res.Token)
	return res.Token
}

// newUser seeds a contributor and logs it in.
func (ts *testServer) newUser(t *testing.T) (domain.User, string) {
	t.Helper()
	u := testhelper.SeedUser(t, ts.Pool)
	return u, ts.login(t, u)
}

// newAdmin seeds an admin and logs it in.
func (ts *testServer) newAdmin(t *testing.T) (domain.User, string) {
	t.Helper()
	u := testhelper.SeedAdmin(t, ts.Pool, false)
	return u, ts.login(t, u)
}
