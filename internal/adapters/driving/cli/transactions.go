package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var txnLimit int

var transactionsCmd = &cobra.Command{
	Use:     "transactions <account-id>",
	Aliases: []string{"txns"},
	Short:   "List transactions for an account",
	Long: `Lists booked transactions for an account, newest first.

Transactions are cached locally after the first fetch; the cache is
cleared whenever a sync completes.`,
	Args: cobra.ExactArgs(1),
	RunE: runTransactions,
}

func init() {
	transactionsCmd.Flags().IntVarP(&txnLimit, "limit", "n", 0, "show at most this many transactions (0 = all)")
	rootCmd.AddCommand(transactionsCmd)
}

func runTransactions(cmd *cobra.Command, args []string) error {
	if transactionService == nil {
		return errors.New("transaction service not configured")
	}
	if txnLimit < 0 {
		return errors.New("--limit must not be negative")
	}

	txns, err := transactionService.List(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	if len(txns) == 0 {
		cmd.Println("No transactions.")
		return nil
	}

	if txnLimit > 0 && len(txns) > txnLimit {
		txns = txns[:txnLimit]
	}

	for _, t := range txns {
		cmd.Printf("%s  %12s  %s\n", t.Date.Format("2006-01-02"), t.Amount.StringFixed(2), t.Description)
	}
	return nil
}
