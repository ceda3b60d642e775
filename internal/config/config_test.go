package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults when env not provided", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		require.Equal(t, "gpt-4o-mini", cfg.ChatModel)
		require.Equal(t, 0.3, cfg.Temperature)
		require.Equal(t, 1000, cfg.MaxTokens)
		require.Equal(t, 10, cfg.ResultCount)
		require.Equal(t, 60*time.Second, cfg.RequestTimeout)
		require.Equal(t, "localhost", cfg.WebUIHost)
		require.Equal(t, 8081, cfg.WebUIPort)
		require.False(t, cfg.OTelEnabled)
	})

	t.Run("parses overrides from environment", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("BRANDRANK_CHAT_MODEL", "gpt-4o")
		t.Setenv("BRANDRANK_TEMPERATURE", "0.7")
		t.Setenv("BRANDRANK_RESULT_COUNT", "20")
		t.Setenv("BRANDRANK_WEBUI_PORT", "9090")

		cfg, err := Load()
		require.NoError(t, err)

		require.Equal(t, "sk-test", cfg.OpenAIAPIKey)
		require.Equal(t, "gpt-4o", cfg.ChatModel)
		require.Equal(t, 0.7, cfg.Temperature)
		require.Equal(t, 20, cfg.ResultCount)
		require.Equal(t, 9090, cfg.WebUIPort)
	})

	t.Run("clamps out-of-range values", func(t *testing.T) {
		t.Setenv("BRANDRANK_TEMPERATURE", "5.0")
		t.Setenv("BRANDRANK_MAX_TOKENS", "10")
		t.Setenv("BRANDRANK_RESULT_COUNT", "-3")

		cfg, err := Load()
		require.NoError(t, err)

		require.Equal(t, 2.0, cfg.Temperature)
		require.Equal(t, 50, cfg.MaxTokens)
		require.Equal(t, 1, cfg.ResultCount)
	})

	t.Run("rejects invalid web UI port", func(t *testing.T) {
		t.Setenv("BRANDRANK_WEBUI_PORT", "70000")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "BRANDRANK_WEBUI_PORT")
	})

	t.Run("rejects zero request timeout", func(t *testing.T) {
		t.Setenv("BRANDRANK_REQUEST_TIMEOUT", "0s")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "BRANDRANK_REQUEST_TIMEOUT")
	})
}
