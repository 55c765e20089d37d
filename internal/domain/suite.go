package domain

import "time"

// Suite is a named collection of test cases owned by one user.
type Suite struct {
	ID          int64
	Name        string
	Description *string
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SuiteUpdateParams carries the fields of a partial suite update.
// Nil means "leave unchanged".
type SuiteUpdateParams struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether the update would change nothing.
func (p SuiteUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}
