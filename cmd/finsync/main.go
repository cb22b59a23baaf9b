// Command finsync keeps bank accounts in sync with an aggregation provider.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/finsync/internal/adapters/driven/cache"
	"github.com/custodia-labs/finsync/internal/adapters/driven/config/file"
	"github.com/custodia-labs/finsync/internal/adapters/driven/notify"
	"github.com/custodia-labs/finsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/finsync/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/finsync/internal/adapters/driving/cli"
	"github.com/custodia-labs/finsync/internal/connectors/aggregator"
	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driven"
	"github.com/custodia-labs/finsync/internal/core/services"
	"github.com/custodia-labs/finsync/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// bootstrap wires adapters and services from the stored settings.
func bootstrap(opts cli.Options) (*cli.Services, func(), error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	accountStore, closeStore, err := openAccountStore(settings.Storage.Backend, opts.DataDir)
	if err != nil {
		return nil, nil, err
	}

	txnCache, err := cache.NewTransactionCache(settings.Cache.MaxAccounts, settings.Cache.TTL)
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	var syncProvider driven.SyncProvider
	var txnProvider driven.TransactionProvider
	if settings.Provider.IsConfigured() {
		client, err := aggregator.NewClient(aggregator.Config{
			BaseURL:   settings.Provider.BaseURL,
			Token:     settings.Provider.Token,
			Timeout:   settings.Provider.Timeout,
			UserAgent: "finsync/" + version,
		})
		if err != nil {
			closeStore()
			return nil, nil, fmt.Errorf("creating provider client: %w", err)
		}
		syncProvider = client
		txnProvider = client
	} else {
		logger.Warn("Provider not configured; set provider.base_url to enable syncing")
	}

	notices := notify.NewRecorder()
	orchestrator := services.NewSyncOrchestrator(accountStore, syncProvider, txnCache, notices)
	orchestrator.SetCallTimeout(settings.Sync.CallTimeout)

	return &cli.Services{
		Accounts:     services.NewAccountService(accountStore),
		Transactions: services.NewTransactionService(accountStore, txnCache, txnProvider),
		Sync:         orchestrator,
		Settings:     settingsService,
		Notices:      notices,
		Presenter:    newPresenter,
	}, closeStore, nil
}

// newPresenter renders notices on the command's output.
func newPresenter(out io.Writer) cli.NoticePresenter {
	return notify.NewTerminal(out)
}

// openAccountStore opens the configured account backend.
func openAccountStore(backend domain.StorageBackend, dataDir string) (driven.AccountStore, func(), error) {
	if backend == domain.StorageMemory {
		logger.Debug("Using in-memory account store")
		return memory.NewAccountStore(), func() {}, nil
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening account database: %w", err)
	}
	logger.Debug("Using account database %s", store.Path())

	return store.AccountStore(), func() {
		if err := store.Close(); err != nil {
			logger.Error("closing account database: %v", err)
		}
	}, nil
}
