package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

func TestNewAccountStore(t *testing.T) {
	store := NewAccountStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.accounts)
}

func TestAccountStore_SaveAndGet(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	account := domain.Account{
		ID:       "acc-1",
		Name:     "Checking",
		LinkedID: "prov-1",
		Balance:  decimal.RequireFromString("100.25"),
		Currency: "EUR",
	}
	require.NoError(t, store.Save(ctx, account))

	saved, err := store.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Checking", saved.Name)
	assert.Equal(t, "prov-1", saved.LinkedID)
	assert.True(t, saved.Balance.Equal(decimal.RequireFromString("100.25")))
	assert.False(t, saved.CreatedAt.IsZero())
	assert.False(t, saved.UpdatedAt.IsZero())
}

func TestAccountStore_Save_UpdateKeepsCreatedAt(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	store.now = func() time.Time { return first }
	require.NoError(t, store.Save(ctx, domain.Account{ID: "acc-1", Name: "Old"}))

	store.now = func() time.Time { return second }
	require.NoError(t, store.Save(ctx, domain.Account{ID: "acc-1", Name: "New"}))

	saved, err := store.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "New", saved.Name)
	assert.Equal(t, first, saved.CreatedAt)
	assert.Equal(t, second, saved.UpdatedAt)
}

func TestAccountStore_Get_NotFound(t *testing.T) {
	store := NewAccountStore()

	account, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, account)
}

func TestAccountStore_Get_ReturnsCopy(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Account{ID: "acc-1", Name: "Checking"}))

	got, err := store.Get(ctx, "acc-1")
	require.NoError(t, err)
	got.Name = "Mutated"

	again, err := store.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Checking", again.Name)
}

func TestAccountStore_Delete(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Account{ID: "acc-1", Name: "Checking"}))

	require.NoError(t, store.Delete(ctx, "acc-1"))
	_, err := store.Get(ctx, "acc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting a missing account is not an error.
	assert.NoError(t, store.Delete(ctx, "acc-1"))
}

func TestAccountStore_List_OrderedByCreation(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"zeta", "alpha", "mid"} {
		created := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Save(ctx, domain.Account{ID: id, Name: id, CreatedAt: created}))
	}

	accounts, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "zeta", accounts[0].ID)
	assert.Equal(t, "alpha", accounts[1].ID)
	assert.Equal(t, "mid", accounts[2].ID)
}

func TestAccountStore_List_Empty(t *testing.T) {
	store := NewAccountStore()

	accounts, err := store.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountStore_ConcurrentAccess(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			_ = store.Save(ctx, domain.Account{ID: id, Name: id})
			_, _ = store.Get(ctx, id)
			_, _ = store.List(ctx)
		}(i)
	}
	wg.Wait()

	accounts, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 20)
}
