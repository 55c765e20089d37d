package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/internal/service/result"
)

// resultService defines the minimal interface needed by ResultHandler.
type resultService interface {
	CreateResult(ctx context.Context, input result.CreateResultInput) (*domain.Result, error)
	GetResult(ctx context.Context, resultID int64) (*domain.Result, error)
	ListResults(ctx context.Context, input result.ListResultsInput) ([]domain.Result, error)
	UpdateResult(ctx context.Context, input result.UpdateResultInput) (*domain.Result, error)
	DeleteResult(ctx context.Context, resultID int64) (*domain.Result, error)
}

// ResultHandler serves test-result REST endpoints.
type ResultHandler struct {
	svc resultService
	log *slog.Logger
}

// NewResultHandler creates a ResultHandler.
func NewResultHandler(svc resultService, logger *slog.Logger) *ResultHandler {
	return &ResultHandler{svc: svc, log: logger.With("handler", "results")}
}

type createResultRequest struct {
	RunID      int64               `json:"run_id"`
	CaseID     int64               `json:"test_case_id"`
	Status     domain.ResultStatus `json:"status"`
	Notes      *string             `json:"notes"`
	DurationMS *int64              `json:"duration_ms"`
}

type updateResultRequest struct {
	Status     *domain.ResultStatus `json:"status"`
	Notes      *string              `json:"notes"`
	DurationMS *int64               `json:"duration_ms"`
}

type resultResponse struct {
	ID         int64               `json:"id"`
	RunID      int64               `json:"run_id"`
	CaseID     int64               `json:"test_case_id"`
	Status     domain.ResultStatus `json:"status"`
	Notes      *string             `json:"notes"`
	DurationMS *int64              `json:"duration_ms"`
	ExecutedAt time.Time           `json:"executed_at"`
}

func toResultResponse(res *domain.Result) resultResponse {
	return resultResponse{
		ID:         res.ID,
		RunID:      res.RunID,
		CaseID:     res.CaseID,
		Status:     res.Status,
		Notes:      res.Notes,
		DurationMS: res.DurationMS,
		ExecutedAt: res.ExecutedAt,
	}
}

func toResultList(results []domain.Result) []resultResponse {
	out := make([]resultResponse, 0, len(results))
	for i := range results {
		out = append(out, toResultResponse(&results[i]))
	}
	return out
}

// Create handles POST /test-results/.
func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.CreateResult(r.Context(), result.CreateResultInput{
		RunID:      req.RunID,
		CaseID:     req.CaseID,
		Status:     req.Status,
		Notes:      req.Notes,
		DurationMS: req.DurationMS,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResultResponse(res))
}

// List handles GET /test-results/. The run_id query parameter is
// required; there is no unfiltered listing of results.
func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	runID, verr := parseQueryID(r, "run_id")
	if verr != nil {
		writeValidationError(w, "query", verr)
		return
	}

	p, verr := parsePaging(r)
	if verr != nil {
		writeValidationError(w, "query", verr)
		return
	}

	results, err := h.svc.ListResults(r.Context(), result.ListResultsInput{
		RunID: runID,
		Skip:  p.Skip,
		Limit: p.Limit,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultList(results))
}

// Get handles GET /test-results/{id}.
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	res, err := h.svc.GetResult(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponse(res))
}

// Update handles PATCH /test-results/{id}.
func (h *ResultHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	var req updateResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.UpdateResult(r.Context(), result.UpdateResultInput{
		ResultID:   id,
		Status:     req.Status,
		Notes:      req.Notes,
		DurationMS: req.DurationMS,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponse(res))
}

// Delete handles DELETE /test-results/{id}.
func (h *ResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	res, err := h.svc.DeleteResult(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponse(res))
}
