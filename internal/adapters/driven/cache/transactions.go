// Package cache provides in-process caching adapters backed by otter.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driven"
	"github.com/custodia-labs/finsync/internal/logger"
)

// Ensure TransactionCache implements the interface.
var _ driven.TransactionCache = (*TransactionCache)(nil)

const (
	// DefaultMaxAccounts bounds the number of accounts with cached transactions.
	DefaultMaxAccounts = 1024

	// DefaultTTL is how long cached transactions stay fresh without a sync.
	DefaultTTL = 15 * time.Minute
)

// TransactionCache caches transactions per account ID.
type TransactionCache struct {
	cache *otter.Cache[string, []domain.Transaction]
}

// NewTransactionCache creates a cache holding up to maxAccounts entries,
// each expiring ttl after it was written. A zero ttl disables expiry.
func NewTransactionCache(maxAccounts int, ttl time.Duration) (*TransactionCache, error) {
	if maxAccounts <= 0 {
		maxAccounts = DefaultMaxAccounts
	}

	opts := &otter.Options[string, []domain.Transaction]{
		MaximumSize: maxAccounts,
	}
	if ttl > 0 {
		opts.ExpiryCalculator = otter.ExpiryWriting[string, []domain.Transaction](ttl)
	}

	c, err := otter.New(opts)
	if err != nil {
		return nil, fmt.Errorf("creating transaction cache: %w", err)
	}
	return &TransactionCache{cache: c}, nil
}

// Get returns cached transactions for an account.
func (c *TransactionCache) Get(_ context.Context, accountID string) ([]domain.Transaction, bool) {
	return c.cache.GetIfPresent(accountID)
}

// Put stores transactions for an account.
func (c *TransactionCache) Put(_ context.Context, accountID string, txns []domain.Transaction) {
	c.cache.Set(accountID, txns)
}

// Invalidate drops every cached entry.
func (c *TransactionCache) Invalidate(_ context.Context) {
	logger.Debug("Invalidating transaction cache (%d entries)", c.cache.EstimatedSize())
	c.cache.InvalidateAll()
}
