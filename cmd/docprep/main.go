// Command docprep prepares Confluence page trees as markdown documentation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/docprep/internal/adapters/driven/auth"
	"github.com/custodia-labs/docprep/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docprep/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docprep/internal/adapters/driven/workspace"
	"github.com/custodia-labs/docprep/internal/adapters/driving/cli"
	"github.com/custodia-labs/docprep/internal/connectors/confluence"
	"github.com/custodia-labs/docprep/internal/core/ports/driving"
	"github.com/custodia-labs/docprep/internal/core/services"
	"github.com/custodia-labs/docprep/internal/normalisers/html"
	"github.com/custodia-labs/docprep/internal/postprocessors"
	"github.com/custodia-labs/docprep/internal/postprocessors/attachments"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// envHome overrides the configuration and data directory.
const envHome = "DOCPREP_HOME"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	dir := os.Getenv(envHome)
	if dir == "" {
		var err error
		if dir, err = file.DefaultDir(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}
	}

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	settingsService := services.NewSettingsService(configStore)

	opts := cli.Options{
		Version:  version,
		Settings: settingsService,
	}

	store, err := sqlite.NewStore(filepath.Join(dir, "data"))
	if err != nil {
		opts.DocsErr = err
	} else {
		defer store.Close()
		opts.Docs, opts.DocsErr = newDocsService(settingsService, store)
	}

	cli.Configure(opts)
	return cli.Execute(ctx)
}

// newDocsService wires the preparation pipeline from the current settings.
func newDocsService(settingsService driving.SettingsService, store *sqlite.Store) (driving.DocsService, error) {
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	credentials, err := auth.NewProvider(settings.Auth)
	if err != nil {
		return nil, err
	}
	client := confluence.NewClient(confluence.ConfigFromSettings(settings), credentials)

	pipeline, err := postprocessors.DefaultRegistry().BuildPipeline(settings.Pipeline, nil)
	if err != nil {
		return nil, fmt.Errorf("building post-processors: %w", err)
	}

	preparer := services.NewPreparer(
		client,
		html.New(pipeline),
		attachments.NewResolver(client),
		workspace.NewFactory(""),
		settings.Tree,
	)

	return services.NewDocsService(preparer, store.PreparationStore(), workspace.Publisher{}), nil
}
