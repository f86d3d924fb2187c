package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "Manage engines on the inference server",
}

var enginesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded engines",
	Args:  cobra.NoArgs,
	RunE:  runEnginesList,
}

var enginesRemoveCmd = &cobra.Command{
	Use:   "remove [engine-id]",
	Short: "Remove an engine",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnginesRemove,
}

func init() {
	enginesCmd.AddCommand(enginesListCmd)
	enginesCmd.AddCommand(enginesRemoveCmd)
	rootCmd.AddCommand(enginesCmd)
}

func runEnginesList(cmd *cobra.Command, _ []string) error {
	st, err := services.Engines.Status(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get engines: %w", err)
	}
	if len(st.Engines) == 0 {
		cmd.Println("No engines loaded")
		return nil
	}
	for _, e := range st.Engines {
		cmd.Printf("  %s\t%s\n", e.EngineID, e.Status)
	}
	return nil
}

func runEnginesRemove(cmd *cobra.Command, args []string) error {
	if err := services.Engines.RemoveModel(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove engine: %w", err)
	}
	cmd.Printf("Removed engine %s\n", args[0])
	return nil
}
