package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

// errorEnvelope is the uniform error response body. Every non-2xx
// response the API produces carries this shape.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Status  int           `json:"status"`
	Message string        `json:"message"`
	Details []errorDetail `json:"details,omitempty"`
}

type errorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldSeparator joins the segments of a field path in 422 details,
// e.g. "body → email".
const fieldSeparator = " → "

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Status:  status,
		Message: message,
	}})
}

func writeValidationError(w http.ResponseWriter, location string, verr *domain.ValidationError) {
	details := make([]errorDetail, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		details = append(details, errorDetail{
			Field:   location + fieldSeparator + fe.Field,
			Message: fe.Message,
		})
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorEnvelope{Error: errorBody{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation Failed",
		Details: details,
	}})
}

// writeDomainError maps a service error onto the envelope. Ownership
// failures and genuine absence arrive here as the same ErrNotFound, so
// both produce an identical 404. Anything unrecognized is logged and
// reported as an opaque 500.
func writeDomainError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidationError(w, "body", verr)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not Found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "Email already registered")
	default:
		log.ErrorContext(ctx, "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
