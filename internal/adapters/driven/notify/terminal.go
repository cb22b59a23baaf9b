package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driven"
)

// Ensure Terminal implements the interface.
var _ driven.Notifier = (*Terminal)(nil)

// Terminal writes notices to a terminal or any other writer.
// Colour is used only when the writer supports it.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	body    lipgloss.Style
}

// NewTerminal creates a notifier writing to out.
func NewTerminal(out io.Writer) *Terminal {
	r := lipgloss.NewRenderer(out)
	return &Terminal{
		out:     out,
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		body:    r.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
	}
}

// Notify renders the notice as a title line followed by its message.
func (t *Terminal) Notify(_ context.Context, notice domain.Notice) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var title string
	switch {
	case notice.Kind == domain.NoticeError:
		title = t.failure.Render("✗ " + notice.Title)
	case notice.Degraded:
		title = t.warning.Render("! " + notice.Title)
	default:
		title = t.success.Render("✓ " + notice.Title)
	}

	_, _ = fmt.Fprintln(t.out, title)
	if notice.Message != "" {
		_, _ = fmt.Fprintln(t.out, "  "+t.body.Render(notice.Message))
	}
}
