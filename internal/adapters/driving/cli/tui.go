package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/finsync/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for finsync.

The TUI lists your accounts and runs syncs with a live progress bar.

Controls:
  ↑/k, ↓/j - Navigate accounts
  Enter    - Sync the selected account
  s        - Sync all linked accounts
  r        - Reload accounts
  Esc      - Back to accounts after a sync
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if syncOrchestrator == nil || accountService == nil {
		return errors.New("services not configured")
	}

	app, err := tui.NewApp(&tui.Ports{
		Sync:     syncOrchestrator,
		Accounts: accountService,
		Notices:  noticeFeed,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
