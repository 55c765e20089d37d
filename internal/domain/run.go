package domain

import "time"

// Run is an execution session in which cases are exercised and results
// recorded. SuiteID is optional: an ad-hoc run is not linked to any suite,
// and deleting a suite nulls the link on surviving runs.
type Run struct {
	ID          int64
	Name        string
	Status      RunStatus
	SuiteID     *int64
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// RunUpdateParams carries the fields of a partial run update.
// Nil means "leave unchanged".
type RunUpdateParams struct {
	Name        *string
	Status      *RunStatus
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// IsEmpty reports whether the update would change nothing.
func (p RunUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Status == nil && p.StartedAt == nil && p.CompletedAt == nil
}
