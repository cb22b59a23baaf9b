package driving

import (
	"context"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

// AccountService manages account records.
type AccountService interface {
	// Add creates a new account. The ID and name are required.
	Add(ctx context.Context, account domain.Account) error

	// Get retrieves an account by ID.
	Get(ctx context.Context, id string) (*domain.Account, error)

	// List returns all accounts.
	List(ctx context.Context) ([]domain.Account, error)

	// Link sets the provider link identifier of an account.
	Link(ctx context.Context, id, linkedID string) error

	// Unlink clears the provider link identifier of an account.
	Unlink(ctx context.Context, id string) error

	// Remove deletes an account.
	Remove(ctx context.Context, id string) error
}
