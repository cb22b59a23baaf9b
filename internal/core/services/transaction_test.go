package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/finsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/finsync/internal/core/domain"
)

// txnMockCache is a map-backed driven.TransactionCache.
type txnMockCache struct {
	entries map[string][]domain.Transaction
}

func newTxnMockCache() *txnMockCache {
	return &txnMockCache{entries: make(map[string][]domain.Transaction)}
}

func (c *txnMockCache) Get(_ context.Context, accountID string) ([]domain.Transaction, bool) {
	txns, ok := c.entries[accountID]
	return txns, ok
}

func (c *txnMockCache) Put(_ context.Context, accountID string, txns []domain.Transaction) {
	c.entries[accountID] = txns
}

func (c *txnMockCache) Invalidate(_ context.Context) {
	c.entries = make(map[string][]domain.Transaction)
}

// txnMockProvider implements driven.TransactionProvider.
type txnMockProvider struct {
	txns     []domain.Transaction
	err      error
	calls    int
	linkedID string
}

func (p *txnMockProvider) FetchTransactions(_ context.Context, account domain.Account) ([]domain.Transaction, error) {
	p.calls++
	p.linkedID = account.LinkedID
	if p.err != nil {
		return nil, p.err
	}
	return append([]domain.Transaction(nil), p.txns...), nil
}

func newTxnTestService(t *testing.T, provider *txnMockProvider) (*TransactionService, *txnMockCache) {
	t.Helper()
	store := memory.NewAccountStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Account{ID: "linked", Name: "Linked", LinkedID: "prov-1"}))
	require.NoError(t, store.Save(ctx, domain.Account{ID: "manual", Name: "Manual"}))

	cache := newTxnMockCache()
	if provider == nil {
		return NewTransactionService(store, cache, nil), cache
	}
	return NewTransactionService(store, cache, provider), cache
}

func TestTransactionService_List_FetchesAndCaches(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	provider := &txnMockProvider{txns: []domain.Transaction{
		{ID: "t1", AccountID: "linked", Date: day, Amount: decimal.NewFromInt(-10)},
		{ID: "t2", AccountID: "linked", Date: day.AddDate(0, 0, 2), Amount: decimal.NewFromInt(25)},
		{ID: "t3", AccountID: "linked", Date: day.AddDate(0, 0, 1), Amount: decimal.NewFromInt(-3)},
	}}
	svc, cache := newTxnTestService(t, provider)
	ctx := context.Background()

	txns, err := svc.List(ctx, "linked")
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, []string{"t2", "t3", "t1"}, []string{txns[0].ID, txns[1].ID, txns[2].ID})
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "prov-1", provider.linkedID)

	_, err = svc.List(ctx, "linked")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls, "second read should hit the cache")

	cache.Invalidate(ctx)
	_, err = svc.List(ctx, "linked")
	require.NoError(t, err)
	assert.Equal(t, 2, provider.calls, "read after invalidation should refetch")
}

func TestTransactionService_List_UnlinkedAccount(t *testing.T) {
	provider := &txnMockProvider{}
	svc, _ := newTxnTestService(t, provider)

	txns, err := svc.List(context.Background(), "manual")

	require.NoError(t, err)
	assert.Empty(t, txns)
	assert.Equal(t, 0, provider.calls)
}

func TestTransactionService_List_Errors(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTxnTestService(t, &txnMockProvider{err: errors.New("502")})
	_, err := svc.List(ctx, "linked")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch transactions")

	_, err = svc.List(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	noProvider, _ := newTxnTestService(t, nil)
	_, err = noProvider.List(ctx, "linked")
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}
