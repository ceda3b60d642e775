package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ca-srg/brandrank/internal/checker"
	appconfig "github.com/ca-srg/brandrank/internal/config"
	"github.com/ca-srg/brandrank/internal/export"
	"github.com/ca-srg/brandrank/internal/observability"
	commontypes "github.com/ca-srg/brandrank/internal/types"
)

var interactiveAPIKey string

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Interactive session for running repeated ranking checks",
	Long: `
Start an interactive session: set the brand once, then type keywords to
check them one after another. The last check can be exported as CSV from
within the session.

Examples:
  brandrank interactive
  brandrank interactive --api-key sk-...
`,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().StringVar(&interactiveAPIKey, "api-key", "", "OpenAI API key (defaults to OPENAI_API_KEY)")
}

func runInteractive(cmd *cobra.Command, args []string) error {
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

	apiKey := interactiveAPIKey
	if apiKey == "" {
		apiKey = cfg.OpenAIAPIKey
	}

	log.Printf("Session ready. Using model: %s", cfg.ChatModel)
	fmt.Println("=== brandrank Session ===")
	fmt.Println("Type a keyword to check it, or a command:")
	fmt.Println("  brand <name>  - set the brand to look for")
	fmt.Println("  export [path] - write the last results as CSV")
	fmt.Println("  help          - show available commands")
	fmt.Println("  exit, quit    - end the session")
	fmt.Println("=========================")
	fmt.Println()

	return startCheckLoop(cfg, apiKey)
}

func startCheckLoop(cfg *commontypes.Config, apiKey string) error {
	scanner := bufio.NewScanner(os.Stdin)
	check := checker.New(cfg)
	exporter := export.New()

	var brand string
	var lastRun *commontypes.CheckRun

	for {
		fmt.Print("keyword> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "":
			continue
		case input == "exit" || input == "quit":
			fmt.Println("Goodbye!")
			return nil
		case input == "help":
			printSessionHelp()
			continue
		case strings.HasPrefix(input, "brand "):
			brand = strings.TrimSpace(strings.TrimPrefix(input, "brand "))
			fmt.Printf("Brand set to %q.\n\n", brand)
			continue
		case input == "brand":
			fmt.Printf("Brand is %q.\n\n", brand)
			continue
		case input == "export" || strings.HasPrefix(input, "export "):
			exportLastRun(exporter, lastRun, strings.TrimSpace(strings.TrimPrefix(input, "export")))
			continue
		}

		if brand == "" {
			fmt.Println("Set a brand first: brand <name>")
			fmt.Println()
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		run, err := check.Run(ctx, apiKey, brand, input, "interactive")
		cancel()
		if err != nil {
			fmt.Printf("Error: %v\n\n", err)
			continue
		}

		lastRun = run
		printRun(run)
		fmt.Println()
	}

	return scanner.Err()
}

func exportLastRun(exporter *export.Exporter, run *commontypes.CheckRun, path string) {
	if run == nil {
		fmt.Println("Nothing to export yet: run a check first.")
		fmt.Println()
		return
	}

	written, err := exporter.ExportFile(path, run)
	if err != nil {
		fmt.Printf("Export failed: %v\n\n", err)
		return
	}
	fmt.Printf("Results written to %s\n\n", written)
}

func printSessionHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  brand <name>  - set the brand to look for")
	fmt.Println("  brand         - show the current brand")
	fmt.Println("  export [path] - write the last results as CSV")
	fmt.Println("  exit, quit    - end the session")
	fmt.Println("Anything else is treated as a keyword to check.")
	fmt.Println()
}
