// Package cli provides the finsync command-line interface built on cobra.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/finsync/internal/adapters/driving/tui"
	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driving"
	"github.com/custodia-labs/finsync/internal/logger"
)

// skipBootstrap marks commands that run without services.
const skipBootstrap = "skip-bootstrap"

// NoticePresenter renders a notice for the user.
type NoticePresenter interface {
	Notify(ctx context.Context, notice domain.Notice)
}

// PresenterFactory builds a presenter that writes to a command's output.
type PresenterFactory func(out io.Writer) NoticePresenter

// Services holds the driving ports the commands operate on.
type Services struct {
	Accounts     driving.AccountService
	Transactions driving.TransactionService
	Sync         driving.SyncOrchestrator
	Settings     driving.SettingsService

	// Notices collects notices raised by the orchestrator during a run.
	Notices tui.NoticeFeed

	// Presenter renders drained notices after a non-interactive run.
	Presenter PresenterFactory
}

// Options carries the parsed global flags to the bootstrap function.
type Options struct {
	Verbose   bool
	ConfigDir string
	DataDir   string
}

// Bootstrap builds services once global flags are parsed.
// The returned cleanup runs after the command finishes.
type Bootstrap func(opts Options) (*Services, func(), error)

var (
	version = "dev"

	verbose   bool
	configDir string
	dataDir   string

	accountService     driving.AccountService
	transactionService driving.TransactionService
	syncOrchestrator   driving.SyncOrchestrator
	settingsService    driving.SettingsService
	noticeFeed         tui.NoticeFeed
	noticePresenter    PresenterFactory

	bootstrap Bootstrap
	cleanup   func()
)

var rootCmd = &cobra.Command{
	Use:   "finsync",
	Short: "Keep your bank accounts in sync",
	Long: `finsync manages bank accounts linked to an aggregation provider
and refreshes them on demand.

Link an account to the provider, then run 'finsync sync' to refresh every
linked account in one pass. Progress is shown as each account settles and
a single summary is printed at the end.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.finsync)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.finsync/data)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that wires services after flag parsing.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly, bypassing bootstrap.
func SetServices(s Services) {
	accountService = s.Accounts
	transactionService = s.Transactions
	syncOrchestrator = s.Sync
	settingsService = s.Settings
	noticeFeed = s.Notices
	noticePresenter = s.Presenter
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer runCleanup()
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || cmd.Annotations[skipBootstrap] == "true" {
		return nil
	}

	services, done, err := bootstrap(Options{
		Verbose:   verbose,
		ConfigDir: configDir,
		DataDir:   dataDir,
	})
	if err != nil {
		return err
	}
	if services == nil {
		return errors.New("bootstrap returned no services")
	}

	SetServices(*services)
	cleanup = done
	return nil
}

func runCleanup() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
}

// presentNotices renders notices raised during a run.
func presentNotices(cmd *cobra.Command) {
	if noticeFeed == nil {
		return
	}
	var presenter NoticePresenter
	if noticePresenter != nil {
		presenter = noticePresenter(cmd.OutOrStdout())
	}
	for _, n := range noticeFeed.Drain() {
		if presenter != nil {
			presenter.Notify(cmd.Context(), n)
			continue
		}
		cmd.Printf("%s\n  %s\n", n.Title, n.Message)
	}
}
