package domain

import "time"

// Case is a single testable scenario belonging to exactly one suite.
type Case struct {
	ID             int64
	Title          string
	Description    *string
	Steps          *string
	ExpectedResult *string
	Priority       Priority
	Severity       Severity
	Status         CaseStatus
	SuiteID        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCaseDefaults applies the documented defaults for fields the caller
// may omit at creation.
func NewCaseDefaults() (Priority, Severity, CaseStatus) {
	return PriorityMedium, SeverityMajor, CaseStatusDraft
}

// CaseUpdateParams carries the fields of a partial case update.
// Nil means "leave unchanged".
type CaseUpdateParams struct {
	Title          *string
	Description    *string
	Steps          *string
	ExpectedResult *string
	Priority       *Priority
	Severity       *Severity
	Status         *CaseStatus
}

// IsEmpty reports whether the update would change nothing.
func (p CaseUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Steps == nil &&
		p.ExpectedResult == nil && p.Priority == nil && p.Severity == nil &&
		p.Status == nil
}
