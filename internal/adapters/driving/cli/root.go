// Package cli provides the docprep command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docprep/internal/core/ports/driving"
	"github.com/custodia-labs/docprep/internal/logger"
)

var (
	version = "dev"
	verbose bool
)

// Services wired in by main.
var (
	settingsService driving.SettingsService
	docsService     driving.DocsService

	// docsServiceErr explains why docsService could not be built.
	docsServiceErr error
)

var rootCmd = &cobra.Command{
	Use:   "docprep",
	Short: "Prepare Confluence page trees as markdown documentation",
	Long: `docprep fetches a Confluence page and its descendants, converts every page
to markdown, downloads attachments and writes an mkdocs.yml navigation manifest
mirroring the page hierarchy.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Options configures the CLI.
type Options struct {
	Version  string
	Settings driving.SettingsService
	Docs     driving.DocsService

	// DocsErr is reported by commands needing Docs when Docs is nil.
	DocsErr error
}

// Configure installs the services used by commands.
func Configure(opts Options) {
	if opts.Version != "" {
		version = opts.Version
	}
	settingsService = opts.Settings
	docsService = opts.Docs
	docsServiceErr = opts.DocsErr
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
