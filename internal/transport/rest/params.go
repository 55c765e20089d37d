package rest

import (
	"net/http"
	"strconv"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

const defaultListLimit = 100

// parsePathID reads the {id} path segment. A non-numeric value is a
// validation failure, not a 404.
func parsePathID(r *http.Request) (int64, *domain.ValidationError) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

// paging holds the skip/limit window of a list request.
type paging struct {
	Skip  int
	Limit int
}

// parsePaging reads skip and limit query parameters. Absent values fall
// back to skip 0 and limit 100; there is no upper bound on limit.
func parsePaging(r *http.Request) (paging, *domain.ValidationError) {
	p := paging{Skip: 0, Limit: defaultListLimit}
	var errs []domain.FieldError

	if raw := r.URL.Query().Get("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, domain.FieldError{Field: "skip", Message: "must be an integer"})
		case v < 0:
			errs = append(errs, domain.FieldError{Field: "skip", Message: "must be non-negative"})
		default:
			p.Skip = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		case v < 0:
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
		default:
			p.Limit = v
		}
	}

	if len(errs) > 0 {
		return paging{}, &domain.ValidationError{Errors: errs}
	}
	return p, nil
}

// parseQueryID reads a required int64 query parameter such as suite_id
// or run_id.
func parseQueryID(r *http.Request, name string) (int64, *domain.ValidationError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, domain.NewValidationError(name, "is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return id, nil
}
