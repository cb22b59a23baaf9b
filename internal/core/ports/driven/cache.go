package driven

import (
	"context"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

// TransactionCache holds transaction records fetched from the provider.
type TransactionCache interface {
	// Get returns cached transactions for an account.
	// The boolean is false on a cache miss.
	Get(ctx context.Context, accountID string) ([]domain.Transaction, bool)

	// Put stores transactions for an account.
	Put(ctx context.Context, accountID string, txns []domain.Transaction)

	// Invalidate marks all cached transactions stale so the next read refetches.
	Invalidate(ctx context.Context)
}
