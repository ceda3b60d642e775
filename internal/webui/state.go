package webui

import (
	"strings"
	"sync"

	"github.com/ca-srg/brandrank/internal/types"
)

const maxHistorySize = 50

// CheckState holds the session state of the web UI: the credential entered
// through the form, the most recent check, and a bounded history. The
// credential lives in memory only and is never persisted or logged.
type CheckState struct {
	mu         sync.RWMutex
	credential string
	brand      string
	lastRun    *types.CheckRun
	history    []HistoryEntry
}

// NewCheckState creates an empty CheckState
func NewCheckState() *CheckState {
	return &CheckState{
		history: make([]HistoryEntry, 0, maxHistorySize),
	}
}

// SetCredential stores the session credential. Empty input keeps the
// previous value so a returning user does not have to re-enter the key on
// every submit.
func (s *CheckState) SetCredential(credential string) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = credential
}

// Credential returns the stored session credential
func (s *CheckState) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// HasCredential reports whether a credential has been entered this session
func (s *CheckState) HasCredential() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential != ""
}

// MaskedCredential returns a display form of the credential that leaks at
// most the first three characters.
func (s *CheckState) MaskedCredential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.credential == "" {
		return ""
	}
	if len(s.credential) <= 3 {
		return "***"
	}
	return s.credential[:3] + strings.Repeat("*", 8)
}

// SetBrand remembers the last brand entered so the form can be refilled
func (s *CheckState) SetBrand(brand string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brand = strings.TrimSpace(brand)
}

// Brand returns the last brand entered
func (s *CheckState) Brand() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brand
}

// RecordRun stores a completed check as the last run and prepends it to the
// bounded history.
func (s *CheckState) RecordRun(run *types.CheckRun) {
	if run == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRun = run

	entry := HistoryEntry{
		Keyword:      run.Keyword,
		Brand:        run.Brand,
		Found:        run.Match.Found,
		Rank:         run.Match.Rank,
		TotalResults: run.Match.TotalResults,
		CheckedAt:    run.CheckedAt,
	}

	s.history = append([]HistoryEntry{entry}, s.history...)
	if len(s.history) > maxHistorySize {
		s.history = s.history[:maxHistorySize]
	}
}

// LastRun returns the most recent completed check, or nil
func (s *CheckState) LastRun() *types.CheckRun {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// History returns a copy of the check history, newest first
func (s *CheckState) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]HistoryEntry, len(s.history))
	copy(history, s.history)
	return history
}
