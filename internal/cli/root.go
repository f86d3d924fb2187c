// Package cli is the kolosalctl command line client.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"kolosaldash/internal/app"
	"kolosaldash/internal/config"
	"kolosaldash/internal/service"
)

// Services are the operations the commands call.
type Services struct {
	Status    service.StatusService
	Documents service.DocumentService
	Retrieve  service.RetrieveService
	Engines   service.EngineService
	Ingest    service.IngestService
}

var services *Services

// Global flags
var (
	kolosalURL     string
	markitdownURL  string
	doclingURL     string
	embeddingModel string
	timeout        time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "kolosalctl",
	Short:         "Manage a Kolosal document collection",
	Long:          `Check collaborator health, browse and search stored documents, and ingest files through parse, chunk and commit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if services != nil {
			return nil
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)
		a := app.New(cfg)
		services = &Services{
			Status:    a.Status,
			Documents: a.Documents,
			Retrieve:  a.Retrieve,
			Engines:   a.Engines,
			Ingest:    a.Ingest,
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&kolosalURL, "kolosal-url", "", "Inference server base URL")
	flags.StringVar(&markitdownURL, "markitdown-url", "", "Markdown conversion service base URL")
	flags.StringVar(&doclingURL, "docling-url", "", "OCR conversion service base URL")
	flags.StringVar(&embeddingModel, "embedding-model", "", "Embedding model used for chunking")
	flags.DurationVar(&timeout, "timeout", 0, "Per-request timeout for collaborator calls")
}

// applyFlags overrides configuration with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("kolosal-url") {
		cfg.Services.KolosalURL = kolosalURL
	}
	if flags.Changed("markitdown-url") {
		cfg.Services.MarkitdownURL = markitdownURL
	}
	if flags.Changed("docling-url") {
		cfg.Services.DoclingURL = doclingURL
	}
	if flags.Changed("embedding-model") {
		cfg.Models.Embedding = embeddingModel
	}
	if flags.Changed("timeout") {
		cfg.Services.TimeoutSecs = int(timeout / time.Second)
	}
}

// SetServices injects the services used by every command.
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
