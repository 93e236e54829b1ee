//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/debate-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/debate-backend/internal/app"
	"github.com/heartmarshall/debate-backend/internal/config"
	"github.com/heartmarshall/debate-backend/internal/transport/middleware"
)

const internalToken = "e2e-internal-token-0123456789"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	stack  *app.Stack
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
		Database: config.DatabaseConfig{TxIsolation: "read_committed"},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "e2e",
			AccessTokenTTL: 15 * time.Minute,
			InternalToken:  internalToken,
		},
		Debate: config.DebateConfig{
			ConflictRetries:           1,
			MinContentLength:          10,
			MaxArgumentsPerSubmission: 5,
			MaxReferencesPerItem:      10,
		},
		CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS"},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg := testConfig()

	stack, err := app.NewStack(cfg, logger, pool)
	require.NoError(t, err)
	t.Cleanup(stack.Close)

	srv := httptest.NewServer(stack.Handler(cfg, logger, pool))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		stack:  stack,
	}
}

// user is a caller with a valid access token.
type user struct {
	ID    uuid.UUID
	token string
}

func (ts *testServer) newUser(t *testing.T) user {
	t.Helper()
	id := uuid.New()
	token, err := ts.stack.Tokens.GenerateAccessToken(id)
	require.NoError(t, err)
	return user{ID: id, token: token}
}

type response struct {
	Status int
	Body   map[string]any
	List   []any
}

// do sends a JSON request as u. A zero user sends it anonymously.
func (ts *testServer) do(t *testing.T, u user, method, path string, body any, headers ...string) response {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if u.token != "" {
		req.Header.Set("Authorization", "Bearer "+u.token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := response{Status: resp.StatusCode}
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &out.List), "body: %s", raw)
	} else if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out.Body), "body: %s", raw)
	}
	return out
}

func (ts *testServer) forfeit(t *testing.T, debateID, participantID string) response {
	t.Helper()
	return ts.do(t, user{}, http.MethodPost,
		fmt.Sprintf("/debates/%s/participants/%s/forfeit", debateID, participantID), nil,
		middleware.InternalTokenHeader, internalToken)
}

// requireStatus asserts the status code and returns the body.
func requireStatus(t *testing.T, resp response, status int) map[string]any {
	t.Helper()
	require.Equal(t, status, resp.Status, "body: %v", resp.Body)
	return resp.Body
}

// requireCode asserts an error response with the given status and code.
func requireCode(t *testing.T, resp response, status int, code string) {
	t.Helper()
	require.Equal(t, status, resp.Status, "body: %v", resp.Body)
	require.Equal(t, code, resp.Body["code"], "body: %v", resp.Body)
}

func str(t *testing.T, m map[string]any, key string) string {
	t.Helper()
	v, ok := m[key].(string)
	require.True(t, ok, "expected string %q in %v", key, m)
	return v
}

func obj(t *testing.T, m map[string]any, key string) map[string]any {
	t.Helper()
	v, ok := m[key].(map[string]any)
	require.True(t, ok, "expected object %q in %v", key, m)
	return v
}

// debateSetup is a started one-vs-one debate between two users.
type debateSetup struct {
	ID       string
	Proposer user
	Opposer  user
	// OpposerParticipant is the participant id of the opposer.
	OpposerParticipant string
}

// startOneVsOne creates, joins and starts a debate.
func (ts *testServer) startOneVsOne(t *testing.T, turns, minRefs int) debateSetup {
	t.Helper()

	proposer := ts.newUser(t)
	opposer := ts.newUser(t)

	created := requireStatus(t, ts.do(t, proposer, http.MethodPost, "/debates", map[string]any{
		"title":         "Cities should ban private cars downtown",
		"format":        "ONE_VS_ONE",
		"turnsPerSide":  turns,
		"minReferences": minRefs,
	}), http.StatusCreated)
	debateID := str(t, obj(t, created, "debate"), "id")

	joined := requireStatus(t, ts.do(t, opposer, http.MethodPost, "/debates/"+debateID+"/participants",
		map[string]any{"role": "OPPOSER"}), http.StatusCreated)

	started := requireStatus(t, ts.do(t, proposer, http.MethodPost, "/debates/"+debateID+"/start", nil), http.StatusOK)
	require.Equal(t, "IN_PROGRESS", started["status"])
	require.Equal(t, "PROPOSER", started["currentTurnSide"])
	require.EqualValues(t, 1, started["currentTurnNumber"])

	return debateSetup{ID: debateID, Proposer: proposer, Opposer: opposer, OpposerParticipant: str(t, joined, "id")}
}

func argumentBody(content string, refs int) map[string]any {
	references := make([]map[string]any, refs)
	for i := range references {
		references[i] = map[string]any{
			"type":  "ARTICLE",
			"title": fmt.Sprintf("Source %d", i+1),
			"url":   fmt.Sprintf("https://example.org/source/%d", i+1),
		}
	}
	return map[string]any{"arguments": []map[string]any{{"content": content, "references": references}}}
}
