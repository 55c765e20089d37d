package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
	"github.com/heartmarshall/qatrack-backend/internal/service/suite"
)

// suiteService defines the minimal interface needed by SuiteHandler.
type suiteService interface {
	CreateSuite(ctx context.Context, input suite.CreateSuiteInput) (*domain.Suite, error)
	GetSuite(ctx context.Context, suiteID int64) (*domain.Suite, error)
	ListSuites(ctx context.Context, input suite.ListInput) ([]domain.Suite, error)
	UpdateSuite(ctx context.Context, input suite.UpdateSuiteInput) (*domain.Suite, error)
	DeleteSuite(ctx context.Context, suiteID int64) (*domain.Suite, error)
}

// SuiteHandler serves test-suite REST endpoints.
type SuiteHandler struct {
	svc suiteService
	log *slog.Logger
}

// NewSuiteHandler creates a SuiteHandler.
func NewSuiteHandler(svc suiteService, logger *slog.Logger) *SuiteHandler {
	return &SuiteHandler{svc: svc, log: logger.With("handler", "suites")}
}

type createSuiteRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateSuiteRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type suiteResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSuiteResponse(s *domain.Suite) suiteResponse {
	return suiteResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		OwnerID:     s.OwnerID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSuiteList(suites []domain.Suite) []suiteResponse {
	out := make([]suiteResponse, 0, len(suites))
	for i := range suites {
		out = append(out, toSuiteResponse(&suites[i]))
	}
	return out
}

// Create handles POST /test-suites/.
func (h *SuiteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSuiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.svc.CreateSuite(r.Context(), suite.CreateSuiteInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSuiteResponse(s))
}

// List handles GET /test-suites/.
func (h *SuiteHandler) List(w http.ResponseWriter, r *http.Request) {
	p, verr := parsePaging(r)
	if verr != nil {
		writeValidationError(w, "query", verr)
		return
	}

	suites, err := h.svc.ListSuites(r.Context(), suite.ListInput{
		Skip:  p.Skip,
		Limit: p.Limit,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuiteList(suites))
}

// Get handles GET /test-suites/{id}.
func (h *SuiteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	s, err := h.svc.GetSuite(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuiteResponse(s))
}

// Update handles PATCH /test-suites/{id}.
func (h *SuiteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	var req updateSuiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.svc.UpdateSuite(r.Context(), suite.UpdateSuiteInput{
		SuiteID:     id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuiteResponse(s))
}

// Delete handles DELETE /test-suites/{id}. The deleted suite is
// returned as it was before removal.
func (h *SuiteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, verr := parsePathID(r)
	if verr != nil {
		writeValidationError(w, "path", verr)
		return
	}

	s, err := h.svc.DeleteSuite(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuiteResponse(s))
}
