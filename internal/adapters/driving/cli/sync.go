package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/finsync/internal/adapters/driving/tui"
	"github.com/custodia-labs/finsync/internal/core/domain"
)

var syncTUI bool

var syncCmd = &cobra.Command{
	Use:   "sync [account-id]",
	Short: "Synchronise linked accounts with the provider",
	Long: `Triggers a provider sync for every linked account, one at a time.
If an account ID is provided, only that account is synchronised.

A failing account never stops the run. Progress is printed as each account
settles and a single summary is shown at the end.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncTUI, "tui", false, "show a live progress bar")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	if syncOrchestrator == nil {
		return errors.New("sync service not configured")
	}

	if syncTUI {
		if len(args) > 0 {
			return errors.New("--tui syncs all accounts and takes no account ID")
		}
		return runSyncTUI(cmd)
	}

	ctx := cmd.Context()

	var summary *domain.SyncSummary
	var err error
	if len(args) > 0 {
		cmd.Printf("Synchronising account: %s...\n", args[0])
		summary, err = syncOrchestrator.SyncAccount(ctx, args[0])
	} else {
		cmd.Println("Synchronising linked accounts...")
		printer := newProgressPrinter(cmd.OutOrStdout())
		summary, err = syncOrchestrator.SyncAll(ctx, printer.print)
		printer.done()
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	presentNotices(cmd)

	if summary == nil || summary.AllSucceeded() {
		return nil
	}
	for _, f := range summary.Failures {
		cmd.Printf("  %s: %v\n", f.AccountID, f.Err)
	}
	for _, hint := range failureHints(summary.Failures) {
		cmd.Println(hint)
	}
	return nil
}

// failureHints suggests a fix for each distinct known failure cause.
func failureHints(failures []domain.SyncOutcome) []string {
	causes := []struct {
		err  error
		hint string
	}{
		{domain.ErrProviderUnavailable, "No provider configured. Set one with 'finsync config set provider.base_url <url>'."},
		{domain.ErrAuthRequired, "The provider rejected the token. Update it with 'finsync config set-token'."},
		{domain.ErrNotFound, "The provider does not know some linked IDs. Check them with 'finsync account list'."},
	}

	var hints []string
	for _, c := range causes {
		for _, f := range failures {
			if errors.Is(f.Err, c.err) {
				hints = append(hints, c.hint)
				break
			}
		}
	}
	return hints
}

func runSyncTUI(cmd *cobra.Command) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	app, err := tui.NewApp(&tui.Ports{
		Sync:     syncOrchestrator,
		Accounts: accountService,
		Notices:  noticeFeed,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).WithSyncOnStart().Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// progressPrinter prints one line per settled account. On a terminal the
// line is rewritten in place.
type progressPrinter struct {
	out     io.Writer
	inPlace bool
	printed bool
}

func newProgressPrinter(out io.Writer) *progressPrinter {
	inPlace := false
	if f, ok := out.(*os.File); ok {
		inPlace = term.IsTerminal(int(f.Fd()))
	}
	return &progressPrinter{out: out, inPlace: inPlace}
}

func (p *progressPrinter) print(progress domain.SyncProgress) {
	status := "ok"
	if !progress.Outcome.Succeeded() {
		status = "failed"
	}
	line := fmt.Sprintf("[%3d%%] %d/%d %s %s",
		progress.Percent, progress.Completed, progress.Total, progress.Outcome.AccountID, status)

	if p.inPlace {
		fmt.Fprintf(p.out, "\r\033[K%s", line)
	} else {
		fmt.Fprintln(p.out, line)
	}
	p.printed = true
}

func (p *progressPrinter) done() {
	if p.inPlace && p.printed {
		fmt.Fprintln(p.out)
	}
}
