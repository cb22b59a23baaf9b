package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

// mockSyncOrchestrator implements driving.SyncOrchestrator for testing.
type mockSyncOrchestrator struct {
	progress   []domain.SyncProgress
	summary    *domain.SyncSummary
	err        error
	syncedID   string
	feed       *stubFeed
	raiseAfter domain.Notice
}

func (m *mockSyncOrchestrator) RunBatch(
	_ context.Context, _ []domain.Account, _ domain.ProgressFunc,
) (*domain.SyncSummary, error) {
	return m.summary, m.err
}

func (m *mockSyncOrchestrator) SyncAll(_ context.Context, onProgress domain.ProgressFunc) (*domain.SyncSummary, error) {
	for _, p := range m.progress {
		onProgress(p)
	}
	m.raise()
	return m.summary, m.err
}

func (m *mockSyncOrchestrator) SyncAccount(_ context.Context, id string) (*domain.SyncSummary, error) {
	m.syncedID = id
	m.raise()
	return m.summary, m.err
}

func (m *mockSyncOrchestrator) Status(_ context.Context) domain.SyncRunState {
	return domain.SyncRunState{}
}

func (m *mockSyncOrchestrator) raise() {
	if m.feed != nil && m.raiseAfter.Title != "" {
		m.feed.notices = append(m.feed.notices, m.raiseAfter)
	}
}

func progressAt(completed, failed, total int, id string, err error) domain.SyncProgress {
	return domain.SyncProgress{
		SyncRunState: domain.SyncRunState{
			Running:   completed < total,
			Percent:   domain.ProgressPercent(completed, total),
			Completed: completed,
			Failed:    failed,
			Total:     total,
		},
		Outcome: domain.SyncOutcome{AccountID: id, Err: err},
	}
}

func TestSyncCmd_Metadata(t *testing.T) {
	assert.Equal(t, "sync [account-id]", syncCmd.Use)
	assert.Equal(t, "Synchronise linked accounts with the provider", syncCmd.Short)
	assert.NotNil(t, syncCmd.Flags().Lookup("tui"))
}

func TestSyncCmd_AllAccounts(t *testing.T) {
	failure := errors.New("bank offline")
	feed := &stubFeed{}
	presenter := &recordingPresenter{}
	summary := &domain.SyncSummary{
		TotalAttempted: 3,
		FailedCount:    1,
		Failures:       []domain.SyncOutcome{{AccountID: "b", Err: failure}},
	}
	orch := &mockSyncOrchestrator{
		progress: []domain.SyncProgress{
			progressAt(1, 0, 3, "a", nil),
			progressAt(2, 1, 3, "b", failure),
			progressAt(3, 1, 3, "c", nil),
		},
		summary:    summary,
		feed:       feed,
		raiseAfter: domain.NoticeForSummary(*summary),
	}
	withServices(t, Services{Sync: orch, Notices: feed, Presenter: presenter.factory()})

	out, err := execute(t, "sync")

	require.NoError(t, err)
	assert.Contains(t, out, "Synchronising linked accounts...")
	assert.Contains(t, out, "[ 34%] 1/3 a ok")
	assert.Contains(t, out, "[ 67%] 2/3 b failed")
	assert.Contains(t, out, "[100%] 3/3 c ok")
	assert.Contains(t, out, "b: bank offline")
	require.Len(t, presenter.notices, 1)
	assert.Equal(t, "Sync finished with errors", presenter.notices[0].Title)
}

func TestSyncCmd_NothingLinked(t *testing.T) {
	feed := &stubFeed{}
	presenter := &recordingPresenter{}
	orch := &mockSyncOrchestrator{feed: feed, raiseAfter: domain.NoLinkedAccountsNotice()}
	withServices(t, Services{Sync: orch, Notices: feed, Presenter: presenter.factory()})

	_, err := execute(t, "sync")

	require.NoError(t, err)
	require.Len(t, presenter.notices, 1)
	assert.Equal(t, domain.NoticeError, presenter.notices[0].Kind)
}

func TestSyncCmd_FailureHints(t *testing.T) {
	summary := &domain.SyncSummary{
		TotalAttempted: 3,
		FailedCount:    3,
		Failures: []domain.SyncOutcome{
			{AccountID: "a", Err: fmt.Errorf("sync: %w", domain.ErrAuthRequired)},
			{AccountID: "b", Err: domain.ErrAuthRequired},
			{AccountID: "c", Err: fmt.Errorf("sync: %w", domain.ErrNotFound)},
		},
	}
	withServices(t, Services{Sync: &mockSyncOrchestrator{summary: summary}})

	out, err := execute(t, "sync")

	require.NoError(t, err)
	assert.Contains(t, out, "a: sync: authentication required")
	assert.Equal(t, 1, strings.Count(out, "finsync config set-token"))
	assert.Contains(t, out, "finsync account list")
	assert.NotContains(t, out, "provider.base_url")
}

func TestSyncCmd_AllSucceededPrintsNoFailures(t *testing.T) {
	withServices(t, Services{Sync: &mockSyncOrchestrator{summary: &domain.SyncSummary{TotalAttempted: 2}}})

	out, err := execute(t, "sync")

	require.NoError(t, err)
	assert.NotContains(t, out, "config set-token")
	assert.NotContains(t, out, ": ")
}

func TestSyncCmd_SingleAccount(t *testing.T) {
	orch := &mockSyncOrchestrator{summary: &domain.SyncSummary{TotalAttempted: 1}}
	withServices(t, Services{Sync: orch})

	out, err := execute(t, "sync", "acc-42")

	require.NoError(t, err)
	assert.Equal(t, "acc-42", orch.syncedID)
	assert.Contains(t, out, "Synchronising account: acc-42")
}

func TestSyncCmd_Error(t *testing.T) {
	withServices(t, Services{Sync: &mockSyncOrchestrator{err: domain.ErrSyncInProgress}})

	_, err := execute(t, "sync")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSyncInProgress)
	assert.Contains(t, err.Error(), "sync failed")
}

func TestSyncCmd_ServiceNotConfigured(t *testing.T) {
	withServices(t, Services{})

	_, err := execute(t, "sync")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync service not configured")
}

func TestSyncCmd_TooManyArgs(t *testing.T) {
	withServices(t, Services{Sync: &mockSyncOrchestrator{}})

	_, err := execute(t, "sync", "a", "b")

	assert.Error(t, err)
}

func TestSyncCmd_TUIRejectsAccountID(t *testing.T) {
	withServices(t, Services{Sync: &mockSyncOrchestrator{}, Accounts: &mockAccountService{}})

	_, err := execute(t, "sync", "--tui", "acc-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes no account ID")
}

func TestSyncCmd_TUIRequiresAccounts(t *testing.T) {
	withServices(t, Services{Sync: &mockSyncOrchestrator{}})

	_, err := execute(t, "sync", "--tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "account service not configured")
}

func TestProgressPrinter_NotATerminal(t *testing.T) {
	buf := new(bytes.Buffer)
	p := newProgressPrinter(buf)

	p.print(progressAt(1, 1, 2, "x", errors.New("nope")))
	p.done()

	assert.False(t, p.inPlace)
	assert.Equal(t, "[ 50%] 1/2 x failed\n", buf.String())
}

func TestProgressPrinter_InPlace(t *testing.T) {
	buf := new(bytes.Buffer)
	p := &progressPrinter{out: buf, inPlace: true}

	p.print(progressAt(1, 0, 2, "x", nil))
	p.print(progressAt(2, 0, 2, "y", nil))
	p.done()

	assert.Equal(t, "\r\033[K[ 50%] 1/2 x ok\r\033[K[100%] 2/2 y ok\n", buf.String())
}
