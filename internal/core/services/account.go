package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driven"
	"github.com/custodia-labs/finsync/internal/core/ports/driving"
)

// Ensure AccountService implements the interface.
var _ driving.AccountService = (*AccountService)(nil)

// AccountService manages account records.
type AccountService struct {
	accountStore driven.AccountStore
}

// NewAccountService creates a new account service.
func NewAccountService(accountStore driven.AccountStore) *AccountService {
	return &AccountService{accountStore: accountStore}
}

// Add creates a new account.
func (s *AccountService) Add(ctx context.Context, account domain.Account) error {
	if account.ID == "" || strings.TrimSpace(account.Name) == "" {
		return domain.ErrInvalidInput
	}
	existing, err := s.accountStore.Get(ctx, account.ID)
	if err == nil && existing != nil {
		return domain.ErrAlreadyExists
	}
	return s.accountStore.Save(ctx, account)
}

// Get retrieves an account by ID.
func (s *AccountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.accountStore.Get(ctx, id)
}

// List returns all accounts.
func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.accountStore.List(ctx)
}

// Link sets the provider link identifier of an account.
func (s *AccountService) Link(ctx context.Context, id, linkedID string) error {
	linkedID = strings.TrimSpace(linkedID)
	if linkedID == "" {
		return domain.ErrInvalidInput
	}
	return s.setLinkedID(ctx, id, linkedID)
}

// Unlink clears the provider link identifier of an account.
func (s *AccountService) Unlink(ctx context.Context, id string) error {
	return s.setLinkedID(ctx, id, "")
}

// Remove deletes an account.
func (s *AccountService) Remove(ctx context.Context, id string) error {
	if _, err := s.accountStore.Get(ctx, id); err != nil {
		return err
	}
	return s.accountStore.Delete(ctx, id)
}

func (s *AccountService) setLinkedID(ctx context.Context, id, linkedID string) error {
	account, err := s.accountStore.Get(ctx, id)
	if err != nil {
		return err
	}
	account.LinkedID = linkedID
	return s.accountStore.Save(ctx, *account)
}
