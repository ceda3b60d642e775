package webui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ca-srg/brandrank/internal/types"
)

func testRun(keyword string) *types.CheckRun {
	return &types.CheckRun{
		Keyword: keyword,
		Brand:   "Acme",
		Results: []types.SearchResult{
			{Rank: 1, Text: "Acme Corp - widgets"},
		},
		Match:     types.BrandMatch{Found: true, Rank: 1, Context: "Acme Corp - widgets", TotalResults: 1},
		CheckedAt: time.Now(),
	}
}

func TestCheckState(t *testing.T) {
	t.Run("credential is write-once per entry and readable", func(t *testing.T) {
		state := NewCheckState()
		require.False(t, state.HasCredential())

		state.SetCredential("sk-secret-value")
		require.True(t, state.HasCredential())
		require.Equal(t, "sk-secret-value", state.Credential())

		// Empty submit keeps the previous credential
		state.SetCredential("   ")
		require.Equal(t, "sk-secret-value", state.Credential())
	})

	t.Run("masked credential never exposes the key", func(t *testing.T) {
		state := NewCheckState()
		require.Empty(t, state.MaskedCredential())

		state.SetCredential("sk-secret-value")
		masked := state.MaskedCredential()
		require.NotContains(t, masked, "secret")
		require.Contains(t, masked, "*")

		state = NewCheckState()
		state.SetCredential("ab")
		require.Equal(t, "***", state.MaskedCredential())
	})

	t.Run("records runs newest first with bounded history", func(t *testing.T) {
		state := NewCheckState()
		require.Nil(t, state.LastRun())

		for i := 0; i < maxHistorySize+10; i++ {
			state.RecordRun(testRun(fmt.Sprintf("keyword number %d here", i)))
		}

		history := state.History()
		require.Len(t, history, maxHistorySize)
		require.Equal(t, fmt.Sprintf("keyword number %d here", maxHistorySize+9), history[0].Keyword)
		require.Equal(t, history[0].Keyword, state.LastRun().Keyword)
	})

	t.Run("nil run is ignored", func(t *testing.T) {
		state := NewCheckState()
		state.RecordRun(nil)
		require.Nil(t, state.LastRun())
		require.Empty(t, state.History())
	})
}
