package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/views/accounts"
	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/views/syncrun"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the parent context of every sync started from the UI.
	ctx context.Context

	styles *styles.Styles
	keys   *keymap.KeyMap

	accountsView *accounts.View
	syncView     *syncrun.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// syncOnStart starts a full sync at launch and quits when it finishes.
	syncOnStart bool

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	keys := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keys:         keys,
		accountsView: accounts.NewView(s, keys, ports.Accounts),
		syncView:     syncrun.NewView(s, ports.Sync, ports.Notices),
		currentView:  messages.ViewAccounts,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithSyncOnStart makes the app sync every linked account immediately
// and exit once the run has finished.
func (a *App) WithSyncOnStart() *App {
	a.syncOnStart = true
	a.currentView = messages.ViewSync
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.syncOnStart {
		return a.syncView.Start(a.ctx, "")
	}
	return tea.Batch(
		tea.SetWindowTitle("finsync"),
		a.accountsView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.accountsView.SetDimensions(msg.Width, msg.Height)
		a.syncView.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.syncView.Cancel()
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewAccounts:
			a.accountsView, cmd = a.accountsView.Update(msg)
			return a, cmd
		case messages.ViewSync:
			if key.Matches(msg, a.keys.Back) && !a.syncView.Running() {
				a.currentView = messages.ViewAccounts
				return a, a.accountsView.Load()
			}
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewAccounts {
			return a, a.accountsView.Load()
		}
		return a, nil

	case messages.AccountsLoaded:
		a.accountsView, cmd = a.accountsView.Update(msg)
		return a, cmd

	case messages.SyncRequested:
		a.currentView = messages.ViewSync
		return a, a.syncView.Start(a.ctx, msg.AccountID)

	case messages.SyncProgressed:
		a.syncView, cmd = a.syncView.Update(msg)
		return a, cmd

	case messages.SyncFinished:
		a.syncView, cmd = a.syncView.Update(msg)
		if a.syncOnStart {
			return a, tea.Quit
		}
		return a, cmd
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	switch a.currentView {
	case messages.ViewSync:
		return a.syncView.View() + "\n"
	default:
		return a.accountsView.View() + "\n"
	}
}

// Run starts the TUI application. The account browser takes over the
// screen; a sync started at launch renders inline so its result stays visible.
func (a *App) Run() error {
	var opts []tea.ProgramOption
	if !a.syncOnStart {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithContext(a.ctx))

	p := tea.NewProgram(a, opts...)
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SyncView returns the sync view.
func (a *App) SyncView() *syncrun.View {
	return a.syncView
}

// AccountsView returns the accounts view.
func (a *App) AccountsView() *accounts.View {
	return a.accountsView
}
