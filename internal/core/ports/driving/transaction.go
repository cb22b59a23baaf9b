package driving

import (
	"context"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

// TransactionService reads transactions through the local cache.
type TransactionService interface {
	// List returns transactions for an account, newest first.
	List(ctx context.Context, accountID string) ([]domain.Transaction, error)
}
