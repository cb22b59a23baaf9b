package driven

import (
	"context"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

// SyncProvider triggers synchronisation at the external aggregation provider.
type SyncProvider interface {
	// TriggerSync asks the provider to refresh the given account.
	// The provider addresses the account by its LinkedID.
	// Any non-nil error means the sync failed; callers treat all
	// failure reasons alike.
	TriggerSync(ctx context.Context, account domain.Account) error
}

// TransactionProvider fetches transaction records from the aggregation provider.
type TransactionProvider interface {
	// FetchTransactions returns the booked transactions for an account,
	// looked up by its LinkedID. Returned records carry the local account ID.
	FetchTransactions(ctx context.Context, account domain.Account) ([]domain.Transaction, error)
}
