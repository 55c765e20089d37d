package run

import (
	"strings"
	"time"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

// CreateRunInput holds parameters for creating a run. SuiteID may be nil
// for an ad-hoc run; status falls back to pending when absent.
type CreateRunInput struct {
	Name    string
	Status  *domain.RunStatus
	SuiteID *int64
}

// Validate checks all fields and collects all errors.
func (i CreateRunInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRunInput holds parameters for a partial run update. An input
// with no fields set is a valid no-op update.
type UpdateRunInput struct {
	RunID       int64
	Name        *string
	Status      *domain.RunStatus
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateRunInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds offset pagination parameters for listing runs.
type ListInput struct {
	Skip  int
	Limit int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

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
