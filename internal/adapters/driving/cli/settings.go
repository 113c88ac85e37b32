package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the Confluence connection, credentials and page tree policy.

Use subcommands to change single settings or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting by its configuration key.

If the value is omitted it is prompted for; credentials are read without echo.

Keys:
  ` + strings.Join(services.SettingKeys(), "\n  "),
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the connection step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("Config file: %s\n", settingsService.Path())
	cmd.Println()

	cmd.Println("[Confluence]")
	cmd.Printf("  Base URL: %s\n", valueOrUnset(settings.BaseURL))
	cmd.Printf("  Auth: %s\n", settings.Auth.Type.Description())
	switch settings.Auth.Type {
	case domain.AuthTypeBasic:
		cmd.Printf("  Email: %s\n", valueOrUnset(settings.Auth.Email))
		cmd.Printf("  Token: %s\n", secretOrUnset(settings.Auth.Token))
	case domain.AuthTypeUserPass:
		cmd.Printf("  Username: %s\n", valueOrUnset(settings.Auth.Username))
		cmd.Printf("  Password: %s\n", secretOrUnset(settings.Auth.Password))
	default:
		cmd.Printf("  Token: %s\n", secretOrUnset(settings.Auth.Token))
	}
	if settings.RequestsPerSecond > 0 {
		cmd.Printf("  Requests per second: %g\n", settings.RequestsPerSecond)
	} else {
		cmd.Println("  Requests per second: unlimited")
	}
	cmd.Println()

	cmd.Println("[Page Tree]")
	if settings.Tree.Parallel {
		cmd.Println("  Parallel: yes")
	} else {
		cmd.Println("  Parallel: no")
	}
	cmd.Printf("  Max depth: %s\n", limitOrUnbounded(settings.Tree.MaxDepth))
	cmd.Printf("  Max concurrency: %s\n", limitOrUnbounded(settings.Tree.MaxConcurrency))
	cmd.Println()

	cmd.Println("[Convert]")
	cmd.Printf("  Post-processors: %s\n", strings.Join(settings.Pipeline, ", "))
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'docprep settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		cmd.Printf("%s: ", key)
		if services.IsSecretKey(key) {
			value = readPassword(cmd.InOrStdin())
			cmd.Println()
		} else {
			value = readLine(bufio.NewReader(cmd.InOrStdin()))
		}
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if services.IsSecretKey(key) {
		cmd.Printf("Set %s to %s\n", key, maskAPIKey(value))
	} else {
		cmd.Printf("Set %s to %s\n", key, value)
	}
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	in := cmd.InOrStdin()
	reader := bufio.NewReader(in)

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("docprep Settings Wizard")
	cmd.Println("=======================")
	cmd.Println()

	// Step 1: Base URL
	cmd.Println("Step 1: Confluence Base URL")
	cmd.Println("---------------------------")
	cmd.Printf("Base URL [%s]: ", current.BaseURL)
	if input := readLine(reader); input != "" {
		if err := settingsService.Set(services.KeyBaseURL, input); err != nil {
			return fmt.Errorf("failed to set base URL: %w", err)
		}
	}
	cmd.Println()

	// Step 2: Authentication
	cmd.Println("Step 2: Authentication")
	cmd.Println("----------------------")
	authTypes := domain.AllAuthTypes()
	defaultChoice := 1
	for i, t := range authTypes {
		if t == current.Auth.Type {
			defaultChoice = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, t.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultChoice)
	authType := authTypes[parseChoice(readLine(reader), len(authTypes), defaultChoice)-1]
	if err := settingsService.Set(services.KeyAuthType, authType.String()); err != nil {
		return fmt.Errorf("failed to set auth type: %w", err)
	}

	var prompts []string
	switch authType {
	case domain.AuthTypeBasic:
		prompts = []string{services.KeyAuthEmail, services.KeyAuthToken}
	case domain.AuthTypeUserPass:
		prompts = []string{services.KeyAuthUsername, services.KeyAuthPassword}
	default:
		prompts = []string{services.KeyAuthToken}
	}
	for _, key := range prompts {
		cmd.Printf("%s (leave empty to keep): ", key)
		var value string
		if services.IsSecretKey(key) {
			value = readSecret(in, reader)
			cmd.Println()
		} else {
			value = readLine(reader)
		}
		if value == "" {
			continue
		}
		if err := settingsService.Set(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	cmd.Println()

	// Step 3: Page tree policy
	cmd.Println("Step 3: Page Tree")
	cmd.Println("-----------------")
	cmd.Print("Fetch pages in parallel? [Y/n]: ")
	parallel := !strings.EqualFold(readLine(reader), "n")
	if err := settingsService.Set(services.KeyTreeParallel, strconv.FormatBool(parallel)); err != nil {
		return fmt.Errorf("failed to set parallel: %w", err)
	}
	cmd.Printf("Max depth (0 = unlimited) [%d]: ", current.Tree.MaxDepth)
	if input := readLine(reader); input != "" {
		if err := settingsService.Set(services.KeyTreeMaxDepth, input); err != nil {
			return fmt.Errorf("failed to set max depth: %w", err)
		}
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		return nil
	}
	cmd.Println("Configuration is valid.")
	return nil
}

// Helper functions.

func valueOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

func secretOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return maskAPIKey(v)
}

func limitOrUnbounded(n int) string {
	if n <= 0 {
		return "unlimited"
	}
	return strconv.Itoa(n)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads a secret without echo when in is a terminal.
func readPassword(in io.Reader) string {
	return readSecret(in, bufio.NewReader(in))
}

//nolint:errcheck // CLI helper, error ignored for UX
func readSecret(in io.Reader, fallback *bufio.Reader) string {
	// Try to read password without echo
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	return readLine(fallback)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
