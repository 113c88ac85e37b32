package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docprep/internal/core/ports/driving"
)

var (
	prepareEntity string
	prepareOut    string
	prepareForce  bool
	prepareJSON   bool
)

var prepareCmd = &cobra.Command{
	Use:   "prepare [annotation]",
	Short: "Prepare a Confluence page tree as documentation",
	Long: `Fetch the page an annotation points at, together with its descendants, and
write the converted markdown and mkdocs.yml into a directory.

The annotation is either confluence-url:<url> or url:<url>. It can also be
read from an entity descriptor with --entity.

If the page tree was prepared before and its output still exists, nothing is
fetched beyond the root page unless --force is given.

Examples:
  docprep prepare confluence-url:https://acme.atlassian.net/wiki/spaces/ENG/pages/123/Runbook
  docprep prepare --entity catalog-info.yaml --out site`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().StringVarP(&prepareEntity, "entity", "e", "", "read the annotation from an entity descriptor file")
	prepareCmd.Flags().StringVarP(&prepareOut, "out", "o", "", "move the prepared site to this directory (must be empty or a previous docprep output)")
	prepareCmd.Flags().BoolVarP(&prepareForce, "force", "f", false, "rebuild even if the previous output is current")
	prepareCmd.Flags().BoolVar(&prepareJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	ref, err := prepareAnnotation(args)
	if err != nil {
		return err
	}

	if docsService == nil {
		if docsServiceErr != nil {
			return fmt.Errorf("docs service not configured: %w", docsServiceErr)
		}
		return errors.New("docs service not configured")
	}

	result, err := docsService.Build(cmd.Context(), ref, driving.BuildOptions{
		Force:     prepareForce,
		OutputDir: prepareOut,
	})
	if err != nil {
		return fmt.Errorf("prepare failed: %w", err)
	}

	if prepareJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if result.NotModified {
		cmd.Printf("Up to date: %s\n", result.Record.OutputDir)
		return nil
	}
	cmd.Printf("Prepared %q (cache token %s)\n", result.Record.SiteName, result.Record.CacheToken)
	cmd.Printf("  Output: %s\n", result.Record.OutputDir)
	return nil
}

func prepareAnnotation(args []string) (string, error) {
	switch {
	case len(args) == 1 && prepareEntity != "":
		return "", errors.New("give either an annotation or --entity, not both")
	case len(args) == 1:
		return args[0], nil
	case prepareEntity != "":
		return readEntityAnnotation(prepareEntity)
	default:
		return "", errors.New("an annotation or --entity is required")
	}
}
