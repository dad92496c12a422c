package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past conversations",
	Long:  `List the stored conversation summaries, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	entries, err := histRepo.ListEntries(cmd.Context())
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No conversations yet.")
		return nil
	}

	for i, entry := range entries {
		if historyLimit > 0 && i >= historyLimit {
			fmt.Printf("... and %d more\n", len(entries)-historyLimit)
			break
		}
		fmt.Printf("%s  %s\n", entry.Date.Format("2006-01-02"), entry.Title)
		if entry.Preview != "" && entry.Preview != entry.Title {
			fmt.Printf("            %s\n", entry.Preview)
		}
	}
	return nil
}
