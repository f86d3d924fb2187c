package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kolosaldash/internal/export"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Browse and delete stored documents",
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of stored documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsList,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id...]",
	Short: "Delete stored documents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDocumentsDelete,
}

var documentsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every stored document to CSV or XLSX",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsExport,
}

var (
	documentsPage int
	exportFormat  string
	exportOut     string
)

func init() {
	documentsListCmd.Flags().IntVarP(&documentsPage, "page", "p", 1, "Page number")
	documentsExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Export format (csv, xlsx)")
	documentsExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: <collection>_<date>.<format>)")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	documentsCmd.AddCommand(documentsExportCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	page, err := services.Documents.Page(context.Background(), documentsPage)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if page.TotalCount == 0 {
		cmd.Println("No documents found")
		return nil
	}

	cmd.Printf("Collection %s, page %d of %d (%d documents)\n\n", page.CollectionName, page.Page, page.TotalPages, page.TotalCount)
	for _, doc := range page.Documents {
		cmd.Printf("  %s\n", doc.ID)
		cmd.Printf("    %s\n", preview(doc.Text, 80))
	}
	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	if _, err := services.Documents.Delete(context.Background(), args); err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	cmd.Printf("Deleted %d documents\n", len(args))
	return nil
}

func runDocumentsExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	result, err := services.Documents.Export(context.Background())
	if err != nil {
		return fmt.Errorf("failed to export documents: %w", err)
	}

	path := exportOut
	if path == "" {
		path = export.BuildFilename(result.CollectionName, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.Write(f, format, result.Documents); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	cmd.Printf("Exported %d documents to %s\n", len(result.Documents), path)
	if len(result.NotFoundIDs) > 0 {
		cmd.Printf("%d documents disappeared during export\n", len(result.NotFoundIDs))
	}
	return nil
}

// preview shortens text to max runes on a single line.
func preview(text string, max int) string {
	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' || r == '\r' {
			runes[i] = ' '
		}
	}
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}
