package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account tracked by the user.
// Accounts are created and edited through the account service; the sync
// orchestrator only reads them.
type Account struct {
	// ID is the unique identifier for the account.
	ID string

	// Name is the human-readable name for this account.
	Name string

	// LinkedID is the identifier of the account at the aggregation provider.
	// Empty for manually tracked accounts.
	LinkedID string

	// Balance is the last known balance.
	Balance decimal.Decimal

	// Currency is the ISO 4217 code of the balance (e.g., "EUR").
	Currency string

	// CreatedAt is when the account was created.
	CreatedAt time.Time

	// UpdatedAt is when the account was last updated.
	UpdatedAt time.Time
}

// Syncable reports whether the account is linked to the aggregation provider
// and can therefore be synchronised remotely.
func (a *Account) Syncable() bool {
	return strings.TrimSpace(a.LinkedID) != ""
}

// DisplayBalance formats the balance with two decimal places and the currency.
func (a *Account) DisplayBalance() string {
	if a.Currency == "" {
		return a.Balance.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", a.Balance.StringFixed(2), a.Currency)
}

// SyncableAccounts returns the linked accounts in their original order.
// The input slice is not modified.
func SyncableAccounts(accounts []Account) []Account {
	batch := make([]Account, 0, len(accounts))
	for i := range accounts {
		if accounts[i].Syncable() {
			batch = append(batch, accounts[i])
		}
	}
	return batch
}
