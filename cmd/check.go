package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ca-srg/brandrank/internal/checker"
	appconfig "github.com/ca-srg/brandrank/internal/config"
	"github.com/ca-srg/brandrank/internal/observability"
	commontypes "github.com/ca-srg/brandrank/internal/types"
)

var (
	checkBrand   string
	checkKeyword string
	checkAPIKey  string
	outputJSON   bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single AI search ranking check for a brand and keyword",
	Long: `
Ask the configured chat model for the businesses most relevant to a keyword
and report whether (and at which rank) your brand is mentioned.

The keyword must be specific enough to produce a meaningful ranking:
at least four words, a comparison ("vs", "compared to"), a qualifier
("best", "top", "free", ...) with three or more words, or a question.

Examples:
  brandrank check -b "Acme Corp" -q "best project management software for startups"
  brandrank check -b HubSpot -q "hubspot vs salesforce" --json
  brandrank check -b Notion -q "alternatives to evernote" --api-key sk-...
`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkBrand, "brand", "b", "", "Brand name to look for (required)")
	checkCmd.Flags().StringVarP(&checkKeyword, "keyword", "q", "", "Search keyword to check (required)")
	checkCmd.Flags().StringVar(&checkAPIKey, "api-key", "", "OpenAI API key (defaults to OPENAI_API_KEY)")
	checkCmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "Output results in JSON format")

	_ = checkCmd.MarkFlagRequired("brand")
	_ = checkCmd.MarkFlagRequired("keyword")
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	run, err := checker.New(cfg).Run(ctx, resolveAPIKey(cfg), checkBrand, checkKeyword, "cli")
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(run)
	}

	printRun(run)
	return nil
}

// resolveAPIKey prefers the flag over the environment
func resolveAPIKey(cfg *commontypes.Config) string {
	if checkAPIKey != "" {
		return checkAPIKey
	}
	return cfg.OpenAIAPIKey
}

func printJSON(run *commontypes.CheckRun) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}

func printRun(run *commontypes.CheckRun) {
	fmt.Printf("Ranking for %q (%d results):\n\n", run.Keyword, len(run.Results))
	for _, result := range run.Results {
		marker := "  "
		if run.Match.Found && run.Match.Rank == result.Rank {
			marker = "->"
		}
		fmt.Printf("%s %2d. %s\n", marker, result.Rank, result.Text)
	}

	fmt.Println()
	if run.Match.Found {
		fmt.Printf("%s found at rank #%d of %d: %s\n",
			run.Brand, run.Match.Rank, run.Match.TotalResults, run.Match.Context)
	} else {
		fmt.Printf("%s not found in %d results.\n", run.Brand, run.Match.TotalResults)
	}
}
