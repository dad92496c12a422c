package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var clearDocsYes bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show document index statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch stats: %w", err)
		}
		fmt.Printf("Collection: %s\n", stats.CollectionName)
		fmt.Printf("Documents:  %d\n", stats.DocumentCount)
		return nil
	},
}

var clearDocsCmd = &cobra.Command{
	Use:   "clear-docs",
	Short: "Clear all indexed documents on the server",
	Long: `Clear all indexed documents from the server-side document index.

This removes every uploaded document and cannot be undone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearDocsYes && !confirm("Clear all indexed documents?") {
			fmt.Println("Aborted.")
			return nil
		}
		resp, err := client.ClearDocuments(cmd.Context())
		if err != nil {
			return fmt.Errorf("clear documents: %w", err)
		}
		if resp.Message != "" {
			fmt.Println(resp.Message)
		} else {
			fmt.Println("Document index cleared.")
		}
		return nil
	},
}

func init() {
	clearDocsCmd.Flags().BoolVarP(&clearDocsYes, "yes", "y", false, "skip confirmation")
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
