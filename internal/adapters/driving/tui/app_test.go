package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/finsync/internal/core/domain"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(&Ports{
		Sync: &MockSyncOrchestrator{},
		Accounts: &MockAccountService{Accounts: []domain.Account{
			{ID: "a1", Name: "Checking", LinkedID: "ext-1", Currency: "EUR"},
		}},
	})
	require.NoError(t, err)
	return app
}

func TestNewApp_Success(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, messages.ViewAccounts, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Accounts: &MockAccountService{}})

	assert.ErrorIs(t, err, ErrMissingSyncOrchestrator)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t)
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	result := app.WithContext(ctx)

	assert.Same(t, app, result)
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init_LoadsAccounts(t *testing.T) {
	app := newTestApp(t)

	require.NotNil(t, app.Init())
}

func TestApp_AccountsLoadedRendersList(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.AccountsLoaded{Accounts: []domain.Account{{ID: "a1", Name: "Checking", LinkedID: "x"}}})

	assert.Contains(t, app.View(), "Checking")
}

func TestApp_SyncRequestedSwitchesView(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.SyncRequested{})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewSync, app.CurrentView())
	assert.True(t, app.SyncView().Running())
	assert.Contains(t, app.View(), "Syncing all accounts")

	app.Update(messages.SyncFinished{Summary: &domain.SyncSummary{TotalAttempted: 1}})
	assert.False(t, app.SyncView().Running())
	assert.Equal(t, messages.ViewSync, app.CurrentView())
}

func TestApp_BackFromSyncOnlyWhenIdle(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.SyncRequested{})

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewSync, app.CurrentView())

	app.Update(messages.SyncFinished{Summary: &domain.SyncSummary{TotalAttempted: 1}})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewAccounts, app.CurrentView())
	assert.NotNil(t, cmd)
}

func TestApp_QuitCancelsSync(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.SyncRequested{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_SyncOnStartQuitsWhenFinished(t *testing.T) {
	app := newTestApp(t).WithSyncOnStart()
	assert.Equal(t, messages.ViewSync, app.CurrentView())

	require.NotNil(t, app.Init())
	_, cmd := app.Update(messages.SyncFinished{Summary: &domain.SyncSummary{TotalAttempted: 1}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_WindowSize(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Nil(t, cmd)
	assert.Equal(t, 100, app.width)
}

func TestApp_ViewChanged(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ViewChanged{View: messages.ViewSync})
	assert.Equal(t, messages.ViewSync, app.CurrentView())

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewAccounts})
	assert.Equal(t, messages.ViewAccounts, app.CurrentView())
	assert.NotNil(t, cmd)
}
