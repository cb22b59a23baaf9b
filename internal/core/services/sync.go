package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driven"
	"github.com/custodia-labs/finsync/internal/core/ports/driving"
	"github.com/custodia-labs/finsync/internal/logger"
)

// Ensure SyncOrchestrator implements the interface.
var _ driving.SyncOrchestrator = (*SyncOrchestrator)(nil)

// SyncOrchestrator coordinates bulk account synchronisation.
//
// A run processes linked accounts strictly one at a time in input order.
// A failed account is counted and recorded but never stops the run, and the
// transaction cache is invalidated once after the last account settles.
type SyncOrchestrator struct {
	accountStore driven.AccountStore
	provider     driven.SyncProvider
	cache        driven.TransactionCache
	notifier     driven.Notifier
	callTimeout  time.Duration

	// Run state, written only by the goroutine executing the run.
	mu    sync.RWMutex
	state domain.SyncRunState
}

// NewSyncOrchestrator creates a new sync orchestrator.
// The cache and notifier are optional; if nil, invalidation and notices are skipped.
func NewSyncOrchestrator(
	accountStore driven.AccountStore,
	provider driven.SyncProvider,
	cache driven.TransactionCache,
	notifier driven.Notifier,
) *SyncOrchestrator {
	return &SyncOrchestrator{
		accountStore: accountStore,
		provider:     provider,
		cache:        cache,
		notifier:     notifier,
	}
}

// SetCallTimeout bounds each remote sync call. Zero disables the bound.
func (o *SyncOrchestrator) SetCallTimeout(d time.Duration) {
	o.callTimeout = d
}

// RunBatch syncs the linked subset of accounts sequentially.
func (o *SyncOrchestrator) RunBatch(
	ctx context.Context,
	accounts []domain.Account,
	onProgress domain.ProgressFunc,
) (*domain.SyncSummary, error) {
	batch := domain.SyncableAccounts(accounts)
	if len(batch) == 0 {
		logger.Info("No linked accounts among %d accounts, nothing to sync", len(accounts))
		return nil, domain.ErrNoLinkedAccounts
	}

	if !o.begin(len(batch)) {
		return nil, domain.ErrSyncInProgress
	}

	logger.Section("Account Sync")
	logger.Info("Starting sync for %d linked accounts (%d unlinked skipped)",
		len(batch), len(accounts)-len(batch))

	summary := &domain.SyncSummary{TotalAttempted: len(batch)}
	for i := range batch {
		outcome := o.syncOne(ctx, &batch[i])
		if !outcome.Succeeded() {
			summary.FailedCount++
			summary.Failures = append(summary.Failures, outcome)
			logger.Warn("Sync failed for account %s: %v", outcome.AccountID, outcome.Err)
		} else {
			logger.Debug("Synced account %s", outcome.AccountID)
		}

		progress := o.settle(outcome)
		if onProgress != nil {
			onProgress(progress)
		}
	}

	o.finish()

	if o.cache != nil {
		o.cache.Invalidate(ctx)
	}

	logger.Info("Sync complete: %d accounts, %d failed", summary.TotalAttempted, summary.FailedCount)
	return summary, nil
}

// SyncAll runs a batch over every stored account and notifies the user.
func (o *SyncOrchestrator) SyncAll(ctx context.Context, onProgress domain.ProgressFunc) (*domain.SyncSummary, error) {
	if o.accountStore == nil {
		return nil, errors.New("account store not configured")
	}

	accounts, err := o.accountStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return o.runAndNotify(ctx, accounts, onProgress)
}

// SyncAccount runs a batch over a single stored account and notifies the user.
func (o *SyncOrchestrator) SyncAccount(ctx context.Context, accountID string) (*domain.SyncSummary, error) {
	if o.accountStore == nil {
		return nil, errors.New("account store not configured")
	}

	account, err := o.accountStore.Get(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return o.runAndNotify(ctx, []domain.Account{*account}, nil)
}

// Status returns a snapshot of the current run state.
func (o *SyncOrchestrator) Status(_ context.Context) domain.SyncRunState {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

// runAndNotify runs a batch and emits exactly one notice for it.
func (o *SyncOrchestrator) runAndNotify(
	ctx context.Context,
	accounts []domain.Account,
	onProgress domain.ProgressFunc,
) (*domain.SyncSummary, error) {
	summary, err := o.RunBatch(ctx, accounts, onProgress)
	switch {
	case errors.Is(err, domain.ErrNoLinkedAccounts):
		o.notify(ctx, domain.NoLinkedAccountsNotice())
		return nil, nil
	case err != nil:
		return nil, err
	}

	o.notify(ctx, domain.NoticeForSummary(*summary))
	return summary, nil
}

// syncOne performs the remote call for one account. Errors and panics from
// the provider both become a failed outcome.
func (o *SyncOrchestrator) syncOne(ctx context.Context, account *domain.Account) (outcome domain.SyncOutcome) {
	outcome = domain.SyncOutcome{AccountID: account.ID, AccountName: account.Name}

	defer func() {
		if r := recover(); r != nil {
			outcome.Err = fmt.Errorf("provider panic: %v", r)
		}
	}()

	if o.provider == nil {
		outcome.Err = domain.ErrProviderUnavailable
		return outcome
	}
	// A cancelled run still settles every account, without calling out.
	if err := ctx.Err(); err != nil {
		outcome.Err = err
		return outcome
	}

	callCtx := ctx
	if o.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.callTimeout)
		defer cancel()
	}

	logger.Debug("Triggering sync for account %s (%s)", account.ID, account.Name)
	outcome.Err = o.provider.TriggerSync(callCtx, *account)
	return outcome
}

// begin marks a run as started. Returns false if a run is already active.
func (o *SyncOrchestrator) begin(total int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Running {
		return false
	}
	o.state = domain.SyncRunState{Running: true, Total: total}
	return true
}

// settle records one outcome and returns the resulting progress.
func (o *SyncOrchestrator) settle(outcome domain.SyncOutcome) domain.SyncProgress {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Completed++
	if !outcome.Succeeded() {
		o.state.Failed++
	}
	o.state.Percent = domain.ProgressPercent(o.state.Completed, o.state.Total)
	return domain.SyncProgress{SyncRunState: o.state, Outcome: outcome}
}

// finish marks the run as no longer active.
func (o *SyncOrchestrator) finish() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Running = false
}

func (o *SyncOrchestrator) notify(ctx context.Context, notice domain.Notice) {
	if o.notifier != nil {
		o.notifier.Notify(ctx, notice)
	}
}
