// Package syncrun provides the live sync progress view for the TUI.
package syncrun

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/finsync/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driving"
)

const defaultBarWidth = 40

// NoticeFeed hands over notices raised while a sync ran.
type NoticeFeed interface {
	Drain() []domain.Notice
}

// View shows a progress bar fed by orchestrator progress callbacks,
// then the notice for the finished run.
type View struct {
	styles       *styles.Styles
	orchestrator driving.SyncOrchestrator
	notices      NoticeFeed

	bar      progress.Model
	updates  chan tea.Msg
	cancel   context.CancelFunc
	running  bool
	target   string
	state    domain.SyncRunState
	last     *domain.SyncOutcome
	failures []domain.SyncOutcome
	notice   *domain.Notice
	err      error
}

// NewView creates a new sync view. The notice feed may be nil.
func NewView(s *styles.Styles, orchestrator driving.SyncOrchestrator, notices NoticeFeed) *View {
	start, end := s.ProgressGradient()
	return &View{
		styles:       s,
		orchestrator: orchestrator,
		notices:      notices,
		bar:          progress.New(progress.WithGradient(start, end), progress.WithWidth(defaultBarWidth)),
	}
}

// Start begins a sync and returns the commands that drive it.
// An empty accountID syncs every linked account.
func (v *View) Start(ctx context.Context, accountID string) tea.Cmd {
	if v.running {
		return nil
	}
	if v.orchestrator == nil {
		v.err = errors.New("sync not available")
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.running = true
	v.target = accountID
	v.state = domain.SyncRunState{Running: true}
	v.last = nil
	v.failures = nil
	v.notice = nil
	v.err = nil

	v.updates = make(chan tea.Msg)
	return tea.Batch(v.run(runCtx, accountID, v.updates), waitForProgress(v.updates))
}

// run executes the sync on the command goroutine. Progress is handed to the
// model through updates, which is closed once the run returns.
func (v *View) run(ctx context.Context, accountID string, updates chan<- tea.Msg) tea.Cmd {
	orch := v.orchestrator
	feed := v.notices
	return func() tea.Msg {
		defer close(updates)

		onProgress := func(p domain.SyncProgress) {
			select {
			case updates <- messages.SyncProgressed{Progress: p}:
			case <-ctx.Done():
			}
		}

		var summary *domain.SyncSummary
		var err error
		if accountID == "" {
			summary, err = orch.SyncAll(ctx, onProgress)
		} else {
			summary, err = orch.SyncAccount(ctx, accountID)
		}

		var notices []domain.Notice
		if feed != nil {
			notices = feed.Drain()
		}
		return messages.SyncFinished{Summary: summary, Notices: notices, Err: err}
	}
}

// waitForProgress relays the next progress message, or nothing once the run has ended.
func waitForProgress(updates <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return nil
		}
		return msg
	}
}

// Update handles messages for the sync view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.SyncProgressed:
		if !v.running || v.updates == nil {
			return v, nil
		}
		v.state = msg.Progress.SyncRunState
		outcome := msg.Progress.Outcome
		v.last = &outcome
		if !outcome.Succeeded() {
			v.failures = append(v.failures, outcome)
		}
		return v, waitForProgress(v.updates)

	case messages.SyncFinished:
		v.finish(msg)
		return v, nil
	}

	return v, nil
}

func (v *View) finish(msg messages.SyncFinished) {
	v.running = false
	v.updates = nil
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.err = msg.Err

	if msg.Summary != nil {
		v.state = domain.SyncRunState{
			Percent:   100,
			Completed: msg.Summary.TotalAttempted,
			Failed:    msg.Summary.FailedCount,
			Total:     msg.Summary.TotalAttempted,
		}
		v.failures = msg.Summary.Failures
	} else {
		v.state.Running = false
	}

	switch {
	case len(msg.Notices) > 0:
		n := msg.Notices[len(msg.Notices)-1]
		v.notice = &n
	case msg.Err == nil && msg.Summary != nil:
		n := domain.NoticeForSummary(*msg.Summary)
		v.notice = &n
	case msg.Err == nil:
		n := domain.NoLinkedAccountsNotice()
		v.notice = &n
	}
}

// Cancel stops a running sync. Accounts not yet reached are counted as failed.
func (v *View) Cancel() {
	if v.cancel != nil {
		v.cancel()
	}
}

// View renders the sync view.
func (v *View) View() string {
	var b strings.Builder

	title := "Syncing all accounts"
	if v.target != "" {
		title = "Syncing account " + v.target
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(v.bar.ViewAs(float64(v.state.Percent) / 100))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d/%d settled  %d failed", v.state.Completed, v.state.Total, v.state.Failed)))
	b.WriteString("\n\n")

	if v.running && v.last != nil {
		if v.last.Succeeded() {
			b.WriteString(v.styles.Success.Render("✓ " + v.last.AccountID))
		} else {
			b.WriteString(v.styles.Error.Render(fmt.Sprintf("✗ %s: %v", v.last.AccountID, v.last.Err)))
		}
		b.WriteString("\n\n")
	}

	if !v.running {
		b.WriteString(v.renderResult())
	}

	b.WriteString(v.styles.Help.Render(v.helpText()))
	return b.String()
}

func (v *View) renderResult() string {
	var b strings.Builder

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.notice != nil {
		body := v.styles.ForNotice(*v.notice).Render(v.notice.Title) + "\n" +
			v.styles.Normal.Render(v.notice.Message)
		b.WriteString(v.styles.Panel.Render(body))
		b.WriteString("\n")
	}

	if len(v.failures) > 0 {
		b.WriteString(v.styles.Subtitle.Render("Failed accounts"))
		b.WriteString("\n")
	}
	for _, f := range v.failures {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("  ✗ %s: %v", f.AccountID, f.Err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (v *View) helpText() string {
	if v.running {
		return "[q] cancel and quit"
	}
	return "[esc] back  [q] quit"
}

// SetWidth resizes the progress bar to fit the terminal.
func (v *View) SetWidth(width int) {
	w := width - 4
	if w > defaultBarWidth {
		w = defaultBarWidth
	}
	if w > 0 {
		v.bar.Width = w
	}
}

// Running reports whether a sync is in flight.
func (v *View) Running() bool {
	return v.running
}

// State returns the last observed run state.
func (v *View) State() domain.SyncRunState {
	return v.state
}

// Notice returns the notice of the finished run, if any.
func (v *View) Notice() *domain.Notice {
	return v.notice
}

// Failures returns the accounts that failed in the current or last run.
func (v *View) Failures() []domain.SyncOutcome {
	return v.failures
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
