package domain

// SyncOutcome is the settled result of one remote sync call.
type SyncOutcome struct {
	// AccountID identifies the account that was synced.
	AccountID string

	// AccountName is carried for diagnostics and summaries.
	AccountName string

	// Err is nil when the remote sync succeeded.
	Err error
}

// Succeeded reports whether the remote sync completed without error.
func (o SyncOutcome) Succeeded() bool {
	return o.Err == nil
}

// SyncSummary is the result of a completed batch run.
type SyncSummary struct {
	// TotalAttempted is the number of linked accounts processed.
	TotalAttempted int

	// FailedCount is the number of accounts whose remote sync failed.
	FailedCount int

	// Failures lists the failed outcomes in processing order.
	Failures []SyncOutcome
}

// AllSucceeded reports whether every attempted account synced.
func (s *SyncSummary) AllSucceeded() bool {
	return s.FailedCount == 0
}

// SyncRunState is the observable state of the orchestrator.
// It is transient and scoped to a single run.
type SyncRunState struct {
	// Running indicates a batch is in progress.
	Running bool

	// Percent is the share of settled accounts, 0 to 100.
	Percent int

	// Completed counts settled accounts, failed ones included.
	Completed int

	// Failed counts accounts whose remote sync failed.
	Failed int

	// Total is the size of the batch.
	Total int
}

// SyncProgress is published after each account settles.
type SyncProgress struct {
	SyncRunState

	// Outcome is the settlement that produced this update.
	Outcome SyncOutcome
}

// ProgressFunc receives progress updates during a batch run.
// It is called synchronously on the run's goroutine, once per account,
// before the next account starts.
type ProgressFunc func(SyncProgress)

// ProgressPercent returns the integer percentage of completed over total,
// rounded up so that the first settlement is always visible (1/3 is 34).
// This is a ceiling, not round-half-up: 1/7 gives 15 where rounding gives 14.
// Keep the ceiling; 2/3 must read 67 and 1/3 must read 34.
// Returns 0 when total is not positive.
func ProgressPercent(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return (100*completed + total - 1) / total
}
