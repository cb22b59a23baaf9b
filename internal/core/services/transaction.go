package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driven"
	"github.com/custodia-labs/finsync/internal/core/ports/driving"
	"github.com/custodia-labs/finsync/internal/logger"
)

// Ensure TransactionService implements the interface.
var _ driving.TransactionService = (*TransactionService)(nil)

// TransactionService serves transactions from the cache, fetching from the
// provider on a miss. A sync run invalidates the cache so the next read
// reflects the refreshed provider data.
type TransactionService struct {
	accountStore driven.AccountStore
	cache        driven.TransactionCache
	provider     driven.TransactionProvider
}

// NewTransactionService creates a new transaction service.
// The provider is optional; without it only cached transactions are served.
func NewTransactionService(
	accountStore driven.AccountStore,
	cache driven.TransactionCache,
	provider driven.TransactionProvider,
) *TransactionService {
	return &TransactionService{
		accountStore: accountStore,
		cache:        cache,
		provider:     provider,
	}
}

// List returns transactions for an account, newest first.
func (s *TransactionService) List(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	account, err := s.accountStore.Get(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	if txns, ok := s.cache.Get(ctx, account.ID); ok {
		logger.Debug("Transactions for %s served from cache", account.ID)
		return txns, nil
	}

	if !account.Syncable() {
		// Unlinked accounts have nothing at the provider.
		return nil, nil
	}
	if s.provider == nil {
		return nil, domain.ErrProviderUnavailable
	}

	txns, err := s.provider.FetchTransactions(ctx, *account)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	s.cache.Put(ctx, account.ID, txns)
	return txns, nil
}
