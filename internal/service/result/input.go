package result

import (
	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

// CreateResultInput holds parameters for recording a result. Status is
// required and has no default.
type CreateResultInput struct {
	RunID      int64
	CaseID     int64
	Status     domain.ResultStatus
	Notes      *string
	DurationMS *int64
}

// Validate checks all fields and collects all errors.
func (i CreateResultInput) Validate() error {
	var errs []domain.FieldError

	if i.RunID == 0 {
		errs = append(errs, domain.FieldError{Field: "run_id", Message: "required"})
	}
	if i.CaseID == 0 {
		errs = append(errs, domain.FieldError{Field: "test_case_id", Message: "required"})
	}
	if i.Status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	} else if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.DurationMS != nil && *i.DurationMS < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateResultInput holds parameters for a partial result update.
type UpdateResultInput struct {
	ResultID   int64
	Status     *domain.ResultStatus
	Notes      *string
	DurationMS *int64
}

// Validate checks all fields and collects all errors.
// An input with no fields set is a valid no-op update.
func (i UpdateResultInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.DurationMS != nil && *i.DurationMS < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListResultsInput holds parameters for listing the results of one run.
// RunID is required; there is no unfiltered listing.
type ListResultsInput struct {
	RunID int64
	Skip  int
	Limit int
}

// Validate checks all fields and collects all errors.
func (i ListResultsInput) Validate() error {
	var errs []domain.FieldError

	if i.RunID == 0 {
		errs = append(errs, domain.FieldError{Field: "run_id", Message: "required"})
	}
	if i.Skip < 0 {
		errs = append(errs, domain.FieldError{Field: "skip", Message: "must be non-negative"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
