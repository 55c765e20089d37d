package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Suites  *SuiteHandler
	Cases   *CaseHandler
	Runs    *RunHandler
	Results *ResultHandler
	Health  *HealthHandler
}

// NewRouter builds the HTTP mux. API routes live under /api/v1; health
// probes stay at the root for orchestrators.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/v1/auth/me", h.Auth.Me)

	mux.HandleFunc("POST /api/v1/test-suites/{$}", h.Suites.Create)
	mux.HandleFunc("GET /api/v1/test-suites/{$}", h.Suites.List)
	mux.HandleFunc("GET /api/v1/test-suites/{id}", h.Suites.Get)
	mux.HandleFunc("PATCH /api/v1/test-suites/{id}", h.Suites.Update)
	mux.HandleFunc("DELETE /api/v1/test-suites/{id}", h.Suites.Delete)

	mux.HandleFunc("POST /api/v1/test-cases/{$}", h.Cases.Create)
	mux.HandleFunc("GET /api/v1/test-cases/{$}", h.Cases.List)
	mux.HandleFunc("GET /api/v1/test-cases/{id}", h.Cases.Get)
	mux.HandleFunc("PATCH /api/v1/test-cases/{id}", h.Cases.Update)
	mux.HandleFunc("DELETE /api/v1/test-cases/{id}", h.Cases.Delete)

	mux.HandleFunc("POST /api/v1/test-runs/{$}", h.Runs.Create)
	mux.HandleFunc("GET /api/v1/test-runs/{$}", h.Runs.List)
	mux.HandleFunc("GET /api/v1/test-runs/{id}", h.Runs.Get)
	mux.HandleFunc("PATCH /api/v1/test-runs/{id}", h.Runs.Update)
	mux.HandleFunc("DELETE /api/v1/test-runs/{id}", h.Runs.Delete)

	mux.HandleFunc("POST /api/v1/test-results/{$}", h.Results.Create)
	mux.HandleFunc("GET /api/v1/test-results/{$}", h.Results.List)
	mux.HandleFunc("GET /api/v1/test-results/{id}", h.Results.Get)
	mux.HandleFunc("PATCH /api/v1/test-results/{id}", h.Results.Update)
	mux.HandleFunc("DELETE /api/v1/test-results/{id}", h.Results.Delete)

	return mux
}
