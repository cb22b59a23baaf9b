// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/finsync/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewAccounts lists accounts and their link state.
	ViewAccounts ViewType = iota
	// ViewSync shows a running or finished sync.
	ViewSync
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewAccounts:
		return "accounts"
	case ViewSync:
		return "sync"
	default:
		return "unknown"
	}
}

// AccountsLoaded carries the account list back to the model.
type AccountsLoaded struct {
	Accounts []domain.Account
	Err      error
}

// SyncRequested asks the app to start a sync.
// An empty AccountID means every linked account.
type SyncRequested struct {
	AccountID string
}

// SyncProgressed is sent after each account in a run settles.
type SyncProgressed struct {
	Progress domain.SyncProgress
}

// SyncFinished is sent once a run has returned.
// Summary is nil when nothing was synced.
type SyncFinished struct {
	Summary *domain.SyncSummary
	Notices []domain.Notice
	Err     error
}

// ErrorOccurred is sent when an error occurs.
type ErrorOccurred struct {
	Err error
}
