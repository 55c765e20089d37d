package domain

// Priority ranks how important a test case is to execute.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Severity ranks the impact of the defect a test case guards against.
type Severity string

const (
	SeverityTrivial  Severity = "trivial"
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
	SeverityBlocker  Severity = "blocker"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityTrivial, SeverityMinor, SeverityMajor, SeverityCritical, SeverityBlocker:
		return true
	}
	return false
}

// CaseStatus is the lifecycle state of a test case.
type CaseStatus string

const (
	CaseStatusDraft      CaseStatus = "draft"
	CaseStatusActive     CaseStatus = "active"
	CaseStatusDeprecated CaseStatus = "deprecated"
)

func (s CaseStatus) String() string { return string(s) }

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusDraft, CaseStatusActive, CaseStatusDeprecated:
		return true
	}
	return false
}

// RunStatus is the execution state of a test run. No transition order is
// enforced beyond set membership.
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusAborted   RunStatus = "aborted"
)

func (s RunStatus) String() string { return string(s) }

func (s RunStatus) IsValid() bool {
	switch s {
	case RunStatusPending, RunStatusRunning, RunStatusCompleted, RunStatusAborted:
		return true
	}
	return false
}

// ResultStatus is the outcome of exercising one case within one run.
type ResultStatus string

const (
	ResultStatusPassed  ResultStatus = "passed"
	ResultStatusFailed  ResultStatus = "failed"
	ResultStatusSkipped ResultStatus = "skipped"
	ResultStatusBlocked ResultStatus = "blocked"
	ResultStatusError   ResultStatus = "error"
)

func (s ResultStatus) String() string { return string(s) }

func (s ResultStatus) IsValid() bool {
	switch s {
	case ResultStatusPassed, ResultStatusFailed, ResultStatusSkipped,
		ResultStatusBlocked, ResultStatusError:
		return true
	}
	return false
}
