package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous preparations",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if docsService == nil {
		if docsServiceErr != nil {
			return fmt.Errorf("docs service not configured: %w", docsServiceErr)
		}
		return errors.New("docs service not configured")
	}

	records, err := docsService.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No preparations yet.")
		return nil
	}

	for i := range records {
		r := &records[i]
		cmd.Printf("%s  %s\n", r.PreparedAt.Local().Format("2006-01-02 15:04"), r.SiteName)
		cmd.Printf("  Annotation:  %s\n", r.Ref)
		cmd.Printf("  Cache token: %s\n", r.CacheToken)
		cmd.Printf("  Output:      %s\n", r.OutputDir)
	}
	return nil
}
