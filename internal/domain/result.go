package domain

import "time"

// Result is the outcome of exercising one case within one run.
type Result struct {
	ID         int64
	RunID      int64
	CaseID     int64
	Status     ResultStatus
	Notes      *string
	DurationMS *int64
	ExecutedAt time.Time
}

// ResultUpdateParams carries the fields of a partial result update.
// Nil means "leave unchanged".
type ResultUpdateParams struct {
	Status     *ResultStatus
	Notes      *string
	DurationMS *int64
}

// IsEmpty reports whether the update would change nothing.
func (p ResultUpdateParams) IsEmpty() bool {
	return p.Status == nil && p.Notes == nil && p.DurationMS == nil
}
