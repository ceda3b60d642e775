package webui

import (
	"time"

	"github.com/ca-srg/brandrank/internal/types"
)

// HistoryEntry summarizes one completed check for the history view.
type HistoryEntry struct {
	Keyword      string    `json:"keyword"`
	Brand        string    `json:"brand"`
	Found        bool      `json:"found"`
	Rank         int       `json:"rank,omitempty"`
	TotalResults int       `json:"total_results"`
	CheckedAt    time.Time `json:"checked_at"`
}

// DashboardData represents data for the dashboard page
type DashboardData struct {
	ActivePage     string
	CredentialSet  bool
	MaskedKey      string
	Brand          string
	Keyword        string
	LastRun        *types.CheckRun
	History        []HistoryEntry
	ErrorMessage   string
	WarningMessage string
}

// HistoryPageData represents data for the history page
type HistoryPageData struct {
	ActivePage string
	History    []HistoryEntry
}

// CheckRequest is the JSON API request body for a check
type CheckRequest struct {
	APIKey  string `json:"api_key,omitempty"`
	Brand   string `json:"brand"`
	Keyword string `json:"keyword"`
}

// CheckResponse is the JSON API response for a check
type CheckResponse struct {
	Keyword string               `json:"keyword"`
	Brand   string               `json:"brand"`
	Results []types.SearchResult `json:"results"`
	Match   types.BrandMatch     `json:"match"`
}

// ErrorResponse is the JSON API error body
type ErrorResponse struct {
	Error string          `json:"error"`
	Type  types.ErrorType `json:"type,omitempty"`
}
