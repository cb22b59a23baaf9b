package domain

import "fmt"

// NoticeKind classifies a user-facing notice.
type NoticeKind string

const (
	// NoticeSuccess marks a completed run, including degraded runs.
	NoticeSuccess NoticeKind = "success"

	// NoticeError marks a run that could not start.
	NoticeError NoticeKind = "error"
)

// Notice is the single report shown to the user for a sync run.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string

	// Degraded marks a success-kind notice for a run with failures.
	Degraded bool
}

// NoLinkedAccountsNotice is shown when a run finds nothing to sync.
func NoLinkedAccountsNotice() Notice {
	return Notice{
		Kind:    NoticeError,
		Title:   "No linked accounts",
		Message: "Link an account to a provider before syncing.",
	}
}

// NoticeForSummary maps a completed run to its notice. A run with failures,
// even one where every account failed, is still reported as a (degraded)
// success.
func NoticeForSummary(s SyncSummary) Notice {
	if s.AllSucceeded() {
		return Notice{
			Kind:    NoticeSuccess,
			Title:   "Sync complete",
			Message: fmt.Sprintf("Synced %d %s. All successful.", s.TotalAttempted, pluralAccounts(s.TotalAttempted)),
		}
	}
	return Notice{
		Kind:     NoticeSuccess,
		Title:    "Sync finished with errors",
		Message:  fmt.Sprintf("Synced %d %s. %d failed.", s.TotalAttempted, pluralAccounts(s.TotalAttempted), s.FailedCount),
		Degraded: true,
	}
}

func pluralAccounts(n int) string {
	if n == 1 {
		return "account"
	}
	return "accounts"
}
