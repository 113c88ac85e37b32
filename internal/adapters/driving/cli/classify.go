package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docprep/internal/connectors/confluence"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [url]",
	Short: "Check whether a URL points at a Confluence page",
	Long: `Report whether a URL is recognised as a Confluence page and, if so, how the
page would be located: by space and title or by page id.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	raw := args[0]

	if !confluence.IsConfluenceURL(raw) {
		cmd.Println("Confluence: no")
		return nil
	}
	cmd.Println("Confluence: yes")
	cmd.Printf("Annotation: %s%s\n", confluence.PrefixConfluenceURL, raw)

	locator, err := confluence.ResolveLocator(raw)
	if err != nil {
		return err
	}
	if locator.SpaceKey != "" {
		cmd.Printf("Space: %s\n", locator.SpaceKey)
	}
	if locator.PageTitle != "" {
		cmd.Printf("Title: %s\n", locator.PageTitle)
	}
	if locator.PageID != "" {
		cmd.Printf("Page ID: %s\n", locator.PageID)
	}
	return nil
}
