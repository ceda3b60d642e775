// Package ranking asks the text-generation service for the businesses most
// relevant to a keyword and scans the returned list for a brand name.
package ranking

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/ca-srg/brandrank/internal/types"
)

const systemPrompt = "You are a search ranking assistant. You list real businesses relevant to a search keyword, most relevant first. Respond with the list only, no introduction or commentary."

// ChatClient is the text-generation service handle. It is constructed by
// the caller from a credential and passed in; Search never reads ambient
// state.
type ChatClient interface {
	GenerateRanking(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Analyzer runs ranking searches and brand scans.
type Analyzer struct {
	resultCount int
}

// NewAnalyzer creates an Analyzer requesting resultCount entries per search.
func NewAnalyzer(resultCount int) *Analyzer {
	if resultCount < 1 {
		resultCount = 10
	}
	return &Analyzer{resultCount: resultCount}
}

// BuildPrompt returns the user prompt sent to the service for keyword.
func (a *Analyzer) BuildPrompt(keyword string) string {
	return fmt.Sprintf(
		"List the %d businesses most relevant to the search keyword %q. "+
			"Write one per line in the format \"<Name> - <Description>\", numbered 1 to %d.",
		a.resultCount, keyword, a.resultCount)
}

// Search invokes the service exactly once and parses the reply into ranked
// results. On any service failure it returns an empty slice and a typed
// service error for the caller to surface; there are no retries. A nil
// client is reported as an uninitialized service.
func (a *Analyzer) Search(ctx context.Context, client ChatClient, keyword string) ([]types.SearchResult, error) {
	if client == nil {
		return nil, types.NewServiceInitError("text-generation client is not initialized", nil)
	}

	reply, err := client.GenerateRanking(ctx, systemPrompt, a.BuildPrompt(keyword))
	if err != nil {
		return nil, types.NewServiceError("ranking search failed", err)
	}

	results := ParseResults(reply)
	log.Printf("Parsed %d ranked results for keyword %q", len(results), keyword)
	return results, nil
}

var (
	numberPrefix = regexp.MustCompile(`^\d+[.)]\s+`)
	bulletPrefix = regexp.MustCompile(`^[-*]\s+`)
)

// ParseResults splits a raw reply into ranked results. Each non-empty line
// becomes one result after stripping a leading "<n>. " / "<n>) " numbering
// or markdown bullet prefix; ranks are 1-based in original order. Lines
// that are empty after cleanup are dropped, so ranks stay contiguous. The
// reply is best-effort free text: no count is enforced.
func ParseResults(reply string) []types.SearchResult {
	var results []types.SearchResult

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = numberPrefix.ReplaceAllString(line, "")
		line = bulletPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		results = append(results, types.SearchResult{
			Rank: len(results) + 1,
			Text: line,
		})
	}

	return results
}

// Analyze scans results in rank order for the first case-insensitive
// substring occurrence of brandName. Earliest rank wins; the scan stops at
// the first hit. Empty brand or empty results report not found with
// TotalResults still set. Pure function.
func Analyze(results []types.SearchResult, brandName string) types.BrandMatch {
	match := types.BrandMatch{TotalResults: len(results)}

	brand := strings.ToLower(strings.TrimSpace(brandName))
	if brand == "" || len(results) == 0 {
		return match
	}

	for _, result := range results {
		if strings.Contains(strings.ToLower(result.Text), brand) {
			match.Found = true
			match.Rank = result.Rank
			match.Context = result.Text
			return match
		}
	}

	return match
}
