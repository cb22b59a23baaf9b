package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

const defaultCurrency = "EUR"

var (
	addName     string
	addLinkedID string
	addBalance  = "0"
	addCurrency = defaultCurrency
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage bank accounts",
	Long: `Add, list, link and remove bank accounts.

An account is synced only when it is linked to the aggregation provider.`,
}

var accountAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an account",
	Args:  cobra.NoArgs,
	RunE:  runAccountAdd,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Args:  cobra.NoArgs,
	RunE:  runAccountList,
}

var accountLinkCmd = &cobra.Command{
	Use:   "link <account-id> <linked-id>",
	Short: "Link an account to the provider",
	Args:  cobra.ExactArgs(2),
	RunE:  runAccountLink,
}

var accountUnlinkCmd = &cobra.Command{
	Use:   "unlink <account-id>",
	Short: "Remove the provider link from an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountUnlink,
}

var accountRemoveCmd = &cobra.Command{
	Use:   "remove <account-id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountRemove,
}

func init() {
	accountAddCmd.Flags().StringVar(&addName, "name", "", "display name (required)")
	accountAddCmd.Flags().StringVar(&addLinkedID, "linked-id", "", "provider link identifier")
	accountAddCmd.Flags().StringVar(&addBalance, "balance", "0", "opening balance")
	accountAddCmd.Flags().StringVar(&addCurrency, "currency", defaultCurrency, "ISO 4217 currency code")

	accountCmd.AddCommand(accountAddCmd, accountListCmd, accountLinkCmd, accountUnlinkCmd, accountRemoveCmd)
	rootCmd.AddCommand(accountCmd)
}

func runAccountAdd(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	if strings.TrimSpace(addName) == "" {
		return errors.New("--name is required")
	}

	balance, err := decimal.NewFromString(addBalance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", addBalance, err)
	}

	currency := strings.ToUpper(strings.TrimSpace(addCurrency))
	if len(currency) != 3 {
		return fmt.Errorf("invalid currency %q: expected a 3-letter code", addCurrency)
	}

	account := domain.Account{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(addName),
		LinkedID: strings.TrimSpace(addLinkedID),
		Balance:  balance,
		Currency: currency,
	}

	if err := accountService.Add(cmd.Context(), account); err != nil {
		return fmt.Errorf("failed to add account: %w", err)
	}

	cmd.Printf("Added account %s (%s)\n", account.Name, account.ID)
	if !account.Syncable() {
		cmd.Println("Link it with 'finsync account link' to include it in syncs.")
	}
	return nil
}

func runAccountList(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	accounts, err := accountService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	if len(accounts) == 0 {
		cmd.Println("No accounts. Add one with 'finsync account add --name <name>'.")
		return nil
	}

	cmd.Printf("%-36s  %-24s  %16s  %s\n", "ID", "NAME", "BALANCE", "LINK")
	for _, a := range accounts {
		link := "-"
		if a.Syncable() {
			link = a.LinkedID
		}
		cmd.Printf("%-36s  %-24s  %16s  %s\n", a.ID, a.Name, a.DisplayBalance(), link)
	}
	return nil
}

func runAccountLink(cmd *cobra.Command, args []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	if err := accountService.Link(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to link account: %w", err)
	}

	cmd.Printf("Linked account %s to %s\n", args[0], strings.TrimSpace(args[1]))
	return nil
}

func runAccountUnlink(cmd *cobra.Command, args []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	if err := accountService.Unlink(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to unlink account: %w", err)
	}

	cmd.Printf("Unlinked account %s\n", args[0])
	return nil
}

func runAccountRemove(cmd *cobra.Command, args []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	if err := accountService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove account: %w", err)
	}

	cmd.Printf("Removed account %s\n", args[0])
	return nil
}
