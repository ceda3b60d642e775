package checker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ca-srg/brandrank/internal/llm/openai"
	"github.com/ca-srg/brandrank/internal/ranking"
	"github.com/ca-srg/brandrank/internal/types"
)

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) GenerateRanking(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.reply, s.err
}

func testChecker(client ranking.ChatClient, clientErr error) *Checker {
	cfg := &types.Config{ChatModel: "gpt-4o-mini", Temperature: 0.3, MaxTokens: 1000, ResultCount: 10}
	c := New(cfg)
	c.newClient = func(apiKey string, opts openai.Options) (ranking.ChatClient, error) {
		if clientErr != nil {
			return nil, clientErr
		}
		return client, nil
	}
	return c
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("full pipeline reports match", func(t *testing.T) {
		c := testChecker(&stubClient{reply: "1. Acme Corp - widgets\n2. Foo Inc - gadgets\n3. Bar LLC - gizmos"}, nil)

		run, err := c.Run(ctx, "sk-test", "foo", "best widget companies overall", "cli")
		require.NoError(t, err)
		require.Len(t, run.Results, 3)
		require.True(t, run.Match.Found)
		require.Equal(t, 2, run.Match.Rank)
		require.Equal(t, "Foo Inc - gadgets", run.Match.Context)
		require.False(t, run.CheckedAt.IsZero())
	})

	t.Run("rejects unspecific keyword before any call", func(t *testing.T) {
		c := testChecker(nil, errors.New("factory must not be called"))

		_, err := c.Run(ctx, "sk-test", "foo", "crm", "cli")
		var checkErr *types.CheckError
		require.True(t, errors.As(err, &checkErr))
		require.Equal(t, types.ErrorTypeValidation, checkErr.Type)
	})

	t.Run("rejects missing credential before client construction", func(t *testing.T) {
		c := testChecker(&stubClient{reply: "1. Acme"}, nil)

		_, err := c.Run(ctx, "  ", "foo", "best widget companies overall", "cli")
		var checkErr *types.CheckError
		require.True(t, errors.As(err, &checkErr))
		require.Equal(t, types.ErrorTypeMissingCredential, checkErr.Type)
	})

	t.Run("service failure surfaces as typed error with empty results", func(t *testing.T) {
		c := testChecker(&stubClient{err: errors.New("network unreachable")}, nil)

		run, err := c.Run(ctx, "sk-test", "foo", "best widget companies overall", "cli")
		require.Nil(t, run)

		var checkErr *types.CheckError
		require.True(t, errors.As(err, &checkErr))
		require.Equal(t, types.ErrorTypeService, checkErr.Type)
		require.Contains(t, checkErr.Error(), "network unreachable")
	})

	t.Run("no-match run still returns results", func(t *testing.T) {
		c := testChecker(&stubClient{reply: "1. Acme Corp\n2. Bar LLC"}, nil)

		run, err := c.Run(ctx, "sk-test", "Zenith", "best widget companies overall", "webui")
		require.NoError(t, err)
		require.False(t, run.Match.Found)
		require.Equal(t, 2, run.Match.TotalResults)
	})
}
