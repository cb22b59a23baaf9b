// Package accounts provides the account list view for the TUI.
package accounts

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driving"
)

// View lists accounts with their link state and balance.
type View struct {
	styles         *styles.Styles
	keys           *keymap.KeyMap
	accountService driving.AccountService
	statusBar      *status.Bar

	accounts []domain.Account
	selected int
	width    int
	height   int
	loading  bool
	err      error
}

// NewView creates a new accounts view.
func NewView(s *styles.Styles, keys *keymap.KeyMap, accountService driving.AccountService) *View {
	return &View{
		styles:         s,
		keys:           keys,
		accountService: accountService,
		statusBar:      status.NewBar(s, keys),
	}
}

// Init loads the account list.
func (v *View) Init() tea.Cmd {
	return v.Load()
}

// Load returns a command that fetches accounts.
func (v *View) Load() tea.Cmd {
	v.loading = true
	v.statusBar.SetState(status.StateLoading)
	svc := v.accountService
	return func() tea.Msg {
		if svc == nil {
			return messages.AccountsLoaded{Err: fmt.Errorf("account service not available")}
		}
		accounts, err := svc.List(context.Background())
		return messages.AccountsLoaded{Accounts: accounts, Err: err}
	}
}

// Update handles messages for the accounts view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.AccountsLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.accounts = msg.Accounts
		}
		if v.selected >= len(v.accounts) {
			v.selected = max(0, len(v.accounts)-1)
		}
		v.updateStatus()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(msg, v.keys.Down):
		if v.selected < len(v.accounts)-1 {
			v.selected++
		}
	case key.Matches(msg, v.keys.Reload):
		return v, v.Load()
	case key.Matches(msg, v.keys.SyncAll):
		return v, func() tea.Msg { return messages.SyncRequested{} }
	case key.Matches(msg, v.keys.SyncOne):
		account, ok := v.Selected()
		if !ok {
			return v, nil
		}
		if !account.Syncable() {
			v.err = fmt.Errorf("%s is not linked to a provider", account.Name)
			v.updateStatus()
			return v, nil
		}
		id := account.ID
		return v, func() tea.Msg { return messages.SyncRequested{AccountID: id} }
	}
	return v, nil
}

// View renders the account list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Accounts"))
	b.WriteString("\n\n")

	switch {
	case v.loading && len(v.accounts) == 0:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case len(v.accounts) == 0:
		b.WriteString(v.styles.Muted.Render("No accounts yet. Add one with 'finsync account add'."))
		b.WriteString("\n")
	default:
		for i, a := range v.accounts {
			b.WriteString(v.renderRow(i, a))
			b.WriteString("\n")
		}
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.statusBar.View())
	return b.String()
}

func (v *View) updateStatus() {
	linked := len(domain.SyncableAccounts(v.accounts))
	v.statusBar.SetCounts(len(v.accounts), linked)
	if v.err != nil {
		v.statusBar.SetState(status.StateError)
		v.statusBar.SetMessage(v.err.Error())
		return
	}
	v.statusBar.SetState(status.StateReady)
	v.statusBar.SetMessage("")
}

func (v *View) renderRow(i int, a domain.Account) string {
	link := v.styles.Muted.Render("unlinked")
	if a.Syncable() {
		link = v.styles.Success.Render("linked")
	}
	line := fmt.Sprintf("%-24s %14s  ", truncate(a.Name, 24), a.DisplayBalance())
	if i == v.selected {
		return v.styles.Selected.Render("> "+line) + link
	}
	return v.styles.Normal.Render("  "+line) + link
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusBar.SetWidth(width)
}

// Accounts returns the loaded accounts.
func (v *View) Accounts() []domain.Account {
	return v.accounts
}

// Selected returns the highlighted account.
func (v *View) Selected() (domain.Account, bool) {
	if v.selected < 0 || v.selected >= len(v.accounts) {
		return domain.Account{}, false
	}
	return v.accounts[v.selected], true
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusBar
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
