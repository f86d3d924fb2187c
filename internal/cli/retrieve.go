package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Search the document collection",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRetrieve,
}

var (
	retrieveLimit     int
	retrieveThreshold float64
)

func init() {
	retrieveCmd.Flags().IntVarP(&retrieveLimit, "limit", "l", 10, "Maximum number of results")
	retrieveCmd.Flags().Float64VarP(&retrieveThreshold, "threshold", "t", 0.5, "Minimum similarity score")
	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	res, err := services.Retrieve.Retrieve(context.Background(), query, retrieveLimit, retrieveThreshold)
	if err != nil {
		return fmt.Errorf("failed to retrieve: %w", err)
	}

	cmd.Printf("%d results for %q in %dms\n", res.TotalResults, res.Query, res.ElapsedTime)
	for i, doc := range res.Documents {
		score := "n/a"
		if doc.Score != nil {
			score = fmt.Sprintf("%.3f", *doc.Score)
		}
		cmd.Printf("\n%d. %s (score %s)\n", i+1, doc.ID, score)
		cmd.Printf("   %s\n", preview(doc.Content, 120))
	}
	return nil
}
