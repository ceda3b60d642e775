package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ca-srg/brandrank/internal/checker"
	appconfig "github.com/ca-srg/brandrank/internal/config"
	"github.com/ca-srg/brandrank/internal/export"
	"github.com/ca-srg/brandrank/internal/observability"
)

var (
	exportBrand   string
	exportKeyword string
	exportAPIKey  string
	exportOutput  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run a ranking check and write the results as CSV",
	Long: `Run a single ranking check and save the ranked list as a CSV file with
rank, result text, and a brand_match column marking the matching row.

Examples:
  brandrank export -b "Acme Corp" -q "best project management software for startups"
  brandrank export -b Notion -q "alternatives to evernote" -o notion.csv
`,
	RunE: runExportCmd,
}

func init() {
	exportCmd.Flags().StringVarP(&exportBrand, "brand", "b", "", "Brand name to look for (required)")
	exportCmd.Flags().StringVarP(&exportKeyword, "keyword", "q", "", "Search keyword to check (required)")
	exportCmd.Flags().StringVar(&exportAPIKey, "api-key", "", "OpenAI API key (defaults to OPENAI_API_KEY)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output CSV path (defaults to a timestamped name)")

	_ = exportCmd.MarkFlagRequired("brand")
	_ = exportCmd.MarkFlagRequired("keyword")
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	shutdown, err := observability.Init(cfg)
	if err != nil {
		log.Printf("Warning: observability init failed: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	apiKey := exportAPIKey
	if apiKey == "" {
		apiKey = cfg.OpenAIAPIKey
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	run, err := checker.New(cfg).Run(ctx, apiKey, exportBrand, exportKeyword, "cli")
	if err != nil {
		return err
	}

	written, err := export.New().ExportFile(exportOutput, run)
	if err != nil {
		return fmt.Errorf("failed to export results: %w", err)
	}

	fmt.Printf("Results written to %s\n", written)
	if run.Match.Found {
		fmt.Printf("%s found at rank #%d of %d.\n", run.Brand, run.Match.Rank, run.Match.TotalResults)
	} else {
		fmt.Printf("%s not found in %d results.\n", run.Brand, run.Match.TotalResults)
	}
	return nil
}
