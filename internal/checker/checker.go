// Package checker wires the keyword validator, chat client, and ranking
// analyzer into the single check pipeline shared by the CLI and web UI.
package checker

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/ca-srg/brandrank/internal/keyword"
	"github.com/ca-srg/brandrank/internal/llm/openai"
	"github.com/ca-srg/brandrank/internal/observability"
	"github.com/ca-srg/brandrank/internal/ranking"
	"github.com/ca-srg/brandrank/internal/types"
)

// clientFactory builds a chat client from a credential. Swappable in tests.
type clientFactory func(apiKey string, opts openai.Options) (ranking.ChatClient, error)

// Checker runs brand ranking checks.
type Checker struct {
	cfg       *types.Config
	analyzer  *ranking.Analyzer
	newClient clientFactory
}

// New creates a Checker from the application configuration.
func New(cfg *types.Config) *Checker {
	return &Checker{
		cfg:      cfg,
		analyzer: ranking.NewAnalyzer(cfg.ResultCount),
		newClient: func(apiKey string, opts openai.Options) (ranking.ChatClient, error) {
			return openai.NewClient(apiKey, opts)
		},
	}
}

// Run performs one check: validates the keyword, constructs the chat client
// from the credential, searches, and scans for the brand. surface labels
// the metrics (cli, interactive, webui). Every failure is a typed
// CheckError suitable for direct display; the process never terminates on
// a failed check.
func (c *Checker) Run(ctx context.Context, apiKey, brand, kw, surface string) (*types.CheckRun, error) {
	kw = strings.TrimSpace(kw)

	if !keyword.Validate(kw) {
		return nil, types.NewValidationError(
			"keyword is too generic: add qualifiers (e.g. \"best\", \"vs\", a question, or 4+ words)")
	}

	if strings.TrimSpace(apiKey) == "" {
		return nil, types.NewMissingCredentialError("OpenAI API key is required")
	}

	client, err := c.newClient(apiKey, openai.Options{
		Model:       c.cfg.ChatModel,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		if checkErr, ok := err.(*types.CheckError); ok {
			return nil, checkErr
		}
		return nil, types.NewServiceInitError("failed to create chat client", err)
	}

	log.Printf("Running ranking check for keyword %q (brand %q)", kw, brand)
	results, err := c.analyzer.Search(ctx, client, kw)
	if err != nil {
		observability.RecordServiceError(ctx, surface)
		return nil, err
	}

	match := ranking.Analyze(results, brand)

	observability.RecordCheck(ctx, surface)
	if match.Found {
		observability.RecordBrandMatch(ctx, surface)
	}

	return &types.CheckRun{
		Keyword:   kw,
		Brand:     strings.TrimSpace(brand),
		Results:   results,
		Match:     match,
		CheckedAt: time.Now(),
	}, nil
}
