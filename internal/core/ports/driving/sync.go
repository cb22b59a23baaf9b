package driving

import (
	"context"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

// SyncOrchestrator coordinates bulk synchronisation of linked accounts.
type SyncOrchestrator interface {
	// RunBatch syncs the linked subset of accounts one at a time, in order.
	// Returns domain.ErrNoLinkedAccounts if none of the accounts are linked
	// and domain.ErrSyncInProgress if another run is active. Per-account
	// failures are reported in the summary, never as an error.
	RunBatch(ctx context.Context, accounts []domain.Account, onProgress domain.ProgressFunc) (*domain.SyncSummary, error)

	// SyncAll runs a batch over every stored account and notifies the user
	// of the result. Returns a nil summary when there was nothing to sync.
	SyncAll(ctx context.Context, onProgress domain.ProgressFunc) (*domain.SyncSummary, error)

	// SyncAccount runs a batch over a single stored account.
	SyncAccount(ctx context.Context, accountID string) (*domain.SyncSummary, error)

	// Status returns a snapshot of the current run state.
	Status(ctx context.Context) domain.SyncRunState
}
