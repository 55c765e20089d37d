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
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/qatrack-backend/internal/adapter/postgres"
	resultrepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/result"
	runrepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/run"
	suiterepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/suite"
	caserepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/testcase"
	"github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/qatrack-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/qatrack-backend/internal/auth"
	"github.com/heartmarshall/qatrack-backend/internal/config"
	authsvc "github.com/heartmarshall/qatrack-backend/internal/service/auth"
	resultsvc "github.com/heartmarshall/qatrack-backend/internal/service/result"
	runsvc "github.com/heartmarshall/qatrack-backend/internal/service/run"
	suitesvc "github.com/heartmarshall/qatrack-backend/internal/service/suite"
	casesvc "github.com/heartmarshall/qatrack-backend/internal/service/testcase"
	"github.com/heartmarshall/qatrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/qatrack-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authCfg := config.AuthConfig{
		JWTSecret:      "e2e-test-secret-key-at-least-32-chars",
		JWTIssuer:      "qatrack-e2e",
		Algorithm:      "HS256",
		AccessTokenTTL: time.Hour,
		BcryptCost:     4,
	}

	jwtMgr, err := authpkg.NewJWTManager(
		authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.Algorithm, authCfg.AccessTokenTTL,
	)
	require.NoError(t, err)

	users := userrepo.New(pool)
	suites := suiterepo.New(pool)
	cases := caserepo.New(pool)
	runs := runrepo.New(pool)
	results := resultrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	authService := authsvc.NewService(logger, users, jwtMgr, authCfg)
	suiteService := suitesvc.NewService(logger, suites)
	caseService := casesvc.NewService(logger, cases, suites, txManager)
	runService := runsvc.NewService(logger, runs)
	resultService := resultsvc.NewService(logger, results)

	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Suites:  rest.NewSuiteHandler(suiteService, logger),
		Cases:   rest.NewCaseHandler(caseService, logger),
		Runs:    rest.NewRunHandler(runService, logger),
		Results: rest.NewResultHandler(resultService, logger),
		Health:  rest.NewHealthHandler(pool, "qatrack", "e2e"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(authService),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// uniqueEmail returns an email no other test in the shared database uses.
func uniqueEmail() string {
	return fmt.Sprintf("e2e-%s@example.com", uuid.New().String()[:8])
}

// registerAndLogin creates a fresh user and returns its bearer token.
func (ts *testServer) registerAndLogin(t *testing.T) (string, string) {
	t.Helper()

	email := uniqueEmail()
	status, _ := ts.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    email,
		"password": "correct horse battery staple",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := ts.doForm(t, "/api/v1/auth/login", url.Values{
		"username": {email},
		"password": {"correct horse battery staple"},
	})
	require.Equal(t, http.StatusOK, status)

	token, ok := body["access_token"].(string)
	require.True(t, ok, "expected access_token in login response")
	return token, email
}

// doJSON sends a JSON request and returns status + decoded body.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeObject(t, resp)
}

// doJSONList is doJSON for endpoints returning a JSON array.
func (ts *testServer) doJSONList(t *testing.T, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return resp.StatusCode, list
}

// doForm sends a form-encoded POST and returns status + decoded body.
func (ts *testServer) doForm(t *testing.T, path string, form url.Values) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeObject(t, resp)
}

func decodeObject(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		// Lists are decoded by doJSONList; callers hitting this path
		// only care about the status code.
		return nil
	}
	return body
}

// envelopeStatus extracts error.status from the uniform error envelope.
func envelopeStatus(t *testing.T, body map[string]any) int {
	t.Helper()
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %v", body)
	status, ok := errObj["status"].(float64)
	require.True(t, ok, "expected numeric error.status")
	return int(status)
}

// id extracts the numeric id field from a decoded response object.
func id(t *testing.T, body map[string]any) int64 {
	t.Helper()
	v, ok := body["id"].(float64)
	require.True(t, ok, "expected id in response, got %v", body)
	return int64(v)
}
