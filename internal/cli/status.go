package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"kolosaldash/internal/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show collaborator health",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var statusOutput string

func init() {
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	st := services.Status.Dashboard(context.Background())

	switch statusOutput {
	case "text":
	case "json", "yaml":
		return printStructured(cmd, statusOutput, st)
	default:
		return fmt.Errorf("unknown output format %q", statusOutput)
	}

	inference := domain.StatusUnavailable
	if st.InferenceStatus != nil {
		inference = st.InferenceStatus.Status
	}
	cmd.Printf("Inference server: %s\n", inference)
	if st.InferenceStatus != nil && st.InferenceStatus.Server != nil {
		cmd.Printf("  Version: %s\n", st.InferenceStatus.Server.Version)
		cmd.Printf("  Uptime:  %s\n", st.InferenceStatus.Server.Uptime)
	}
	if st.InferenceStatus != nil {
		for _, e := range st.InferenceStatus.Engines {
			cmd.Printf("  Engine %s: %s\n", e.EngineID, e.Status)
		}
	}
	cmd.Printf("Markdown conversion: %s\n", serviceState(st.MarkitdownStatus))
	cmd.Printf("OCR conversion: %s\n", serviceState(st.DoclingStatus))

	if st.DocumentsData != nil {
		cmd.Printf("Documents: %d in %s\n", st.DocumentsData.TotalCount, st.DocumentsData.CollectionName)
	} else {
		cmd.Println("Documents: unavailable")
	}
	cmd.Printf("Checked at %s\n", st.LastUpdated)
	return nil
}

func serviceState(s *domain.ServiceStatus) string {
	if s == nil || s.Status == "" {
		return domain.StatusUnavailable
	}
	return s.Status
}

// printStructured writes v using its JSON field names. YAML goes through a
// JSON round trip so both formats share the same keys.
func printStructured(cmd *cobra.Command, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if format == "json" {
		cmd.Println(string(data))
		return nil
	}

	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return err
	}
	cmd.Print(string(out))
	return nil
}
