package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/internal/service/run"
)

// runService defines the minimal interface needed by RunHandler.
type runService interface {
	CreateRun(ctx context.Context, input run.CreateRunInput) (*domain.Run, error)
	GetRun(ctx context.Context, runID int64) (*domain.Run, error)
	ListRuns(ctx context.Context, input run.ListInput) ([]domain.Run, error)
	UpdateRun(ctx context.Context, input run.UpdateRunInput) (*domain.Run, error)
	DeleteRun(ctx context.Context, runID int64) (*domain.Run, error)
}

// RunHandler serves test-run REST endpoints.
type RunHandler struct {
	svc runService
	log *slog.Logger
}

// NewRunHandler creates a RunHandler.
func NewRunHandler(svc runService, logger *slog.Logger) *RunHandler {
	return &RunHandler{svc: svc, log: logger.With("handler", "runs")}
}

type createRunRequest struct {
	Name    string            `json:"name"`
	Status  *domain.RunStatus `json:"status"`
	SuiteID *int64            `json:"suite_id"`
}

type updateRunRequest struct {
	Name        *string           `json:"name"`
	Status      *domain.RunStatus `json:"status"`
	StartedAt   *time.Time        `json:"started_at"`
	CompletedAt *time.Time        `json:"completed_at"`
}

type runResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Status      domain.RunStatus `json:"status"`
	SuiteID     *int64           `json:"suite_id"`
	StartedAt   *time.Time       `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toRunResponse(rn *domain.Run) runResponse {
	return runResponse{
		ID:          rn.ID,
		Name:        rn.Name,
		Status:      rn.Status,
		SuiteID:     rn.SuiteID,
		StartedAt:   rn.StartedAt,
		CompletedAt: rn.CompletedAt,
		CreatedAt:   rn.CreatedAt,
	}
}

func toRunList(runs []domain.Run) []runResponse {
	out := make([]runResponse, 0, len(runs))
	for i := range runs {
		out = append(out, toRunResponse(&runs[i]))
	}
	return out
}

// Create handles POST /test-runs/.
func (h *RunHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rn, err := h.svc.CreateRun(r.Context(), run.CreateRunInput{
		Name:    req.Name,
		Status:  req.Status,
		SuiteID: req.SuiteID,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRunResponse(rn))
}

// List handles GET /test-runs/. Runs are not scoped to an owner; any
// authenticated user sees the full table.
func (h *RunHandler) List(w http.ResponseWriter, r *http.Request) {
	p, verr := parsePaging(r)
	if verr != nil {
		writeValidationError(w, "query", verr)
		return
	}

	runs, err := h.svc.ListRuns(r.Context(), run.ListInput{
		Skip:  p.Skip,
		Limit: p.Limit,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRunList(runs))
}

// Get handles GET /test-runs/{id}.
func (h *RunHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	rn, err := h.svc.GetRun(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRunResponse(rn))
}

// Update handles PATCH /test-runs/{id}.
func (h *RunHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	var req updateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rn, err := h.svc.UpdateRun(r.Context(), run.UpdateRunInput{
		RunID:       id,
		Name:        req.Name,
		Status:      req.Status,
		StartedAt:   req.StartedAt,
		CompletedAt: req.CompletedAt,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRunResponse(rn))
}

// Delete handles DELETE /test-runs/{id}.
func (h *RunHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	rn, err := h.svc.DeleteRun(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRunResponse(rn))
}
