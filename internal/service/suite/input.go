package suite

import (
	"strings"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

// CreateSuiteInput holds parameters for creating a suite.
type CreateSuiteInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateSuiteInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSuiteInput holds parameters for a partial suite update. An input
// with no fields set is a valid no-op update.
type UpdateSuiteInput struct {
	SuiteID     int64
	Name        *string
	Description *string // nil = don't change
}

// Validate checks all fields and collects all errors.
func (i UpdateSuiteInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds offset pagination parameters shared by list operations.
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