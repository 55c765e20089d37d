package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/internal/service/testcase"
)

// caseService defines the minimal interface needed by CaseHandler.
type caseService interface {
	CreateCase(ctx context.Context, input testcase.CreateCaseInput) (*domain.Case, error)
	GetCase(ctx context.Context, caseID int64) (*domain.Case, error)
	ListCases(ctx context.Context, input testcase.ListCasesInput) ([]domain.Case, error)
	UpdateCase(ctx context.Context, input testcase.UpdateCaseInput) (*domain.Case, error)
	DeleteCase(ctx context.Context, caseID int64) (*domain.Case, error)
}

// CaseHandler serves test-case REST endpoints.
type CaseHandler struct {
	svc caseService
	log *slog.Logger
}

// NewCaseHandler creates a CaseHandler.
func NewCaseHandler(svc caseService, logger *slog.Logger) *CaseHandler {
	return &CaseHandler{svc: svc, log: logger.With("handler", "cases")}
}

type createCaseRequest struct {
	Title          string             `json:"title"`
	Description    *string            `json:"description"`
	Steps          *string            `json:"steps"`
	ExpectedResult *string            `json:"expected_result"`
	Priority       *domain.Priority   `json:"priority"`
	Severity       *domain.Severity   `json:"severity"`
	Status         *domain.CaseStatus `json:"status"`
	SuiteID        int64              `json:"suite_id"`
}

type updateCaseRequest struct {
	Title          *string            `json:"title"`
	Description    *string            `json:"description"`
	Steps          *string            `json:"steps"`
	ExpectedResult *string            `json:"expected_result"`
	Priority       *domain.Priority   `json:"priority"`
	Severity       *domain.Severity   `json:"severity"`
	Status         *domain.CaseStatus `json:"status"`
}

type caseResponse struct {
	ID             int64             `json:"id"`
	Title          string            `json:"title"`
	Description    *string           `json:"description"`
	Steps          *string           `json:"steps"`
	ExpectedResult *string           `json:"expected_result"`
	Priority       domain.Priority   `json:"priority"`
	Severity       domain.Severity   `json:"severity"`
	Status         domain.CaseStatus `json:"status"`
	SuiteID        int64             `json:"suite_id"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func toCaseResponse(c *domain.Case) caseResponse {
	return caseResponse{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		Steps:          c.Steps,
		ExpectedResult: c.ExpectedResult,
		Priority:       c.Priority,
		Severity:       c.Severity,
		Status:         c.Status,
		SuiteID:        c.SuiteID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toCaseList(cases []domain.Case) []caseResponse {
	out := make([]caseResponse, 0, len(cases))
	for i := range cases {
		out = append(out, toCaseResponse(&cases[i]))
	}
	return out
}

// Create handles POST /test-cases/.
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.CreateCase(r.Context(), testcase.CreateCaseInput{
		Title:          req.Title,
		Description:    req.Description,
		Steps:          req.Steps,
		ExpectedResult: req.ExpectedResult,
		Priority:       req.Priority,
		Severity:       req.Severity,
		Status:         req.Status,
		SuiteID:        req.SuiteID,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCaseResponse(c))
}

// List handles GET /test-cases/. A suite_id query parameter is required;
// cases are always listed within one suite.
func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	suiteID, verr := parseQueryID(r, "suite_id")
	if verr != nil {
		writeValidationError(w, "query", verr)
		return
	}

	p, verr := parsePaging(r)
	if verr != nil {
		writeValidationError(w, "query", verr)
		return
	}

	cases, err := h.svc.ListCases(r.Context(), testcase.ListCasesInput{
		SuiteID: suiteID,
		Skip:    p.Skip,
		Limit:   p.Limit,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseList(cases))
}

// Get handles GET /test-cases/{id}.
func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	c, err := h.svc.GetCase(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseResponse(c))
}

// Update handles PATCH /test-cases/{id}.
func (h *CaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	var req updateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.UpdateCase(r.Context(), testcase.UpdateCaseInput{
		CaseID:         id,
		Title:          req.Title,
		Description:    req.Description,
		Steps:          req.Steps,
		ExpectedResult: req.ExpectedResult,
		Priority:       req.Priority,
		Severity:       req.Severity,
		Status:         req.Status,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseResponse(c))
}

// Delete handles DELETE /test-cases/{id}.
func (h *CaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	c, err := h.svc.DeleteCase(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseResponse(c))
}
