package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// tokenKey is the setting holding the provider bearer token.
const tokenKey = "provider.token"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change finsync settings stored in ~/.finsync/config.toml.

Durations are given in whole seconds.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  provider.base_url   provider API root URL
  provider.timeout    HTTP timeout in seconds
  sync.call_timeout   per-account sync timeout in seconds (0 = none)
  cache.ttl           transaction cache lifetime in seconds (0 = no expiry)
  cache.max_accounts  accounts kept in the transaction cache
  storage.backend     sqlite or memory

Use 'finsync config set-token' for the provider token.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token",
	Short: "Store the provider token",
	Long:  `Prompt for the provider bearer token without echoing it.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigSetToken,
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configSetTokenCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	baseURL := settings.Provider.BaseURL
	if baseURL == "" {
		baseURL = "(not set)"
	}
	token := "(not set)"
	if settings.Provider.Token != "" {
		token = maskToken(settings.Provider.Token)
	}

	cmd.Println("Provider")
	cmd.Printf("  base_url:      %s\n", baseURL)
	cmd.Printf("  token:         %s\n", token)
	cmd.Printf("  timeout:       %s\n", settings.Provider.Timeout)
	cmd.Println("Sync")
	cmd.Printf("  call_timeout:  %s\n", durationOrNone(settings.Sync.CallTimeout.String(), settings.Sync.CallTimeout == 0))
	cmd.Println("Cache")
	cmd.Printf("  ttl:           %s\n", durationOrNone(settings.Cache.TTL.String(), settings.Cache.TTL == 0))
	cmd.Printf("  max_accounts:  %d\n", settings.Cache.MaxAccounts)
	cmd.Println("Storage")
	cmd.Printf("  backend:       %s\n", settings.Storage.Backend)

	if !settings.Provider.IsConfigured() {
		cmd.Println("\nSet the provider with 'finsync config set provider.base_url <url>'.")
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if key == tokenKey {
		return errors.New("use 'finsync config set-token' to store the token")
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigSetToken(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Provider token: ")
	token := readSecret(cmd.InOrStdin())
	cmd.Println()

	if token == "" {
		return errors.New("token must not be empty")
	}

	if err := settingsService.Set(tokenKey, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	cmd.Printf("Stored token %s\n", maskToken(token))
	return nil
}

// readSecret reads a line without echo when in is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(line)
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func durationOrNone(s string, none bool) string {
	if none {
		return "none"
	}
	return s
}
