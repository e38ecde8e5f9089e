//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/planner-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/planner-backend/internal/app"
	"github.com/heartmarshall/planner-backend/internal/config"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	C      *app.Container
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{MaxUploadBytes: 1 << 20},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   15 * time.Minute,
			PasswordHashCost: 4,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		// The log transport "delivers" every email, so dispatches are
		// recorded as sent.
		Email: config.EmailConfig{Provider: config.EmailProviderLog, From: "noreply@example.com"},
		Notification: config.NotificationConfig{
			Workers:     2,
			QueueSize:   64,
			SendTimeout: 5 * time.Second,
			Location:    time.UTC,
		},
		Activity: config.ActivityConfig{DuplicateStrategy: config.DuplicateStrategyAuto},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()
	clock := clockwork.NewRealClock()

	c, err := app.NewContainer(cfg, logger, pool, clock)
	require.NoError(t, err)

	require.NoError(t, c.Notifier.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = c.Notifier.Shutdown(ctx)
	})

	srv := httptest.NewServer(app.NewRouter(cfg, logger, c, pool, nil, clock))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, C: c}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

// do sends a JSON request and decodes the envelope.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// data decodes the envelope payload into T.
func data[T any](t *testing.T, r apiResponse) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(r.Data, &v))
	return v
}

type userJSON struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type authJSON struct {
	AccessToken string   `json:"accessToken"`
	User        userJSON `json:"user"`
}

type activityJSON struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	Title         string  `json:"title"`
	Area          string  `json:"area"`
	Priority      int     `json:"priority"`
	PriorityLabel string  `json:"priorityLabel"`
	Status        string  `json:"status"`
	StatusLabel   string  `json:"statusLabel"`
	Responsible   *string `json:"responsible"`
	DeletedAt     *string `json:"deletedAt"`
}

// register creates a fresh account through the API and returns its token.
func (ts *testServer) register(t *testing.T) authJSON {
	t.Helper()

	email := fmt.Sprintf("user-%d@example.com", time.Now().UnixNano())
	status, resp := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status, resp.Error.Message)
	return data[authJSON](t, resp)
}

// adminToken seeds an admin directly in the database and signs a token.
func (ts *testServer) adminToken(t *testing.T) (string, domain.User) {
	t.Helper()

	admin := testhelper.SeedAdmin(t, ts.Pool)
	tok, err := ts.C.JWT.GenerateAccessToken(admin.Actor())
	require.NoError(t, err)
	return tok, admin
}

func (ts *testServer) createActivity(t *testing.T, token string, body map[string]any) activityJSON {
	t.Helper()

	status, resp := ts.do(t, http.MethodPost, "/api/activities", token, body)
	require.Equal(t, http.StatusCreated, status, resp.Error.Message)
	return data[activityJSON](t, resp)
}
