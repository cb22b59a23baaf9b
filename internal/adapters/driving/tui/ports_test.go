package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

// MockSyncOrchestrator implements driving.SyncOrchestrator for testing.
type MockSyncOrchestrator struct {
	SyncAllFunc func(ctx context.Context, onProgress domain.ProgressFunc) (*domain.SyncSummary, error)
}

func (m *MockSyncOrchestrator) RunBatch(
	_ context.Context, _ []domain.Account, _ domain.ProgressFunc,
) (*domain.SyncSummary, error) {
	return nil, nil
}

func (m *MockSyncOrchestrator) SyncAll(ctx context.Context, onProgress domain.ProgressFunc) (*domain.SyncSummary, error) {
	if m.SyncAllFunc != nil {
		return m.SyncAllFunc(ctx, onProgress)
	}
	return &domain.SyncSummary{}, nil
}

func (m *MockSyncOrchestrator) SyncAccount(_ context.Context, _ string) (*domain.SyncSummary, error) {
	return &domain.SyncSummary{TotalAttempted: 1}, nil
}

func (m *MockSyncOrchestrator) Status(_ context.Context) domain.SyncRunState {
	return domain.SyncRunState{}
}

// MockAccountService implements driving.AccountService for testing.
type MockAccountService struct {
	Accounts []domain.Account
}

func (m *MockAccountService) Add(_ context.Context, _ domain.Account) error { return nil }

func (m *MockAccountService) Get(_ context.Context, _ string) (*domain.Account, error) {
	return nil, domain.ErrNotFound
}

func (m *MockAccountService) List(_ context.Context) ([]domain.Account, error) {
	return m.Accounts, nil
}

func (m *MockAccountService) Link(_ context.Context, _, _ string) error { return nil }
func (m *MockAccountService) Unlink(_ context.Context, _ string) error  { return nil }
func (m *MockAccountService) Remove(_ context.Context, _ string) error  { return nil }

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{name: "nil ports", ports: nil, wantErr: ErrInvalidPorts},
		{name: "missing sync", ports: &Ports{Accounts: &MockAccountService{}}, wantErr: ErrMissingSyncOrchestrator},
		{name: "missing accounts", ports: &Ports{Sync: &MockSyncOrchestrator{}}, wantErr: ErrMissingAccountService},
		{name: "valid without notices", ports: &Ports{Sync: &MockSyncOrchestrator{}, Accounts: &MockAccountService{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
