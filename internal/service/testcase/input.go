package testcase

import (
	"strings"

	"github.com/heartmarshall/qatrack-backend/internal/domain"
)

// CreateCaseInput holds parameters for creating a case. Priority, severity
// and status fall back to their documented defaults when absent.
type CreateCaseInput struct {
	Title          string
	Description    *string
	Steps          *string
	ExpectedResult *string
	Priority       *domain.Priority
	Severity       *domain.Severity
	Status         *domain.CaseStatus
	SuiteID        int64
}

// Validate checks all fields and collects all errors.
func (i CreateCaseInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if i.SuiteID == 0 {
		errs = append(errs, domain.FieldError{Field: "suite_id", Message: "required"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Severity != nil && !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "invalid value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCaseInput holds parameters for a partial case update. An input
// with no fields set is a valid no-op update.
type UpdateCaseInput struct {
	CaseID         int64
	Title          *string
	Description    *string
	Steps          *string
	ExpectedResult *string
	Priority       *domain.Priority
	Severity       *domain.Severity
	Status         *domain.CaseStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateCaseInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if len(title) > 200 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Severity != nil && !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "invalid value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCasesInput holds parameters for listing cases of one suite.
type ListCasesInput struct {
	SuiteID int64
	Skip    int
	Limit   int
}

// Validate checks all fields and collects all errors.
func (i ListCasesInput) Validate() error {
	var errs []domain.FieldError

	if i.SuiteID == 0 {
		errs = append(errs, domain.FieldError{Field: "suite_id", Message: "required"})
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
