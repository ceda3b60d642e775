package config

import (
	"fmt"

	env "github.com/netflix/go-env"

	"github.com/ca-srg/brandrank/internal/types"
)

// Type alias for Config
type Config = types.Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var config Config

	_, err := env.UnmarshalFromEnviron(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values and adjusts them to safe ranges
func validateConfig(config *Config) error {
	// Sampling temperature: clamp into the API's accepted range
	if config.Temperature < 0 {
		config.Temperature = 0
	}
	if config.Temperature > 2 {
		config.Temperature = 2
	}

	// Completion budget
	if config.MaxTokens < 50 {
		config.MaxTokens = 50
	}
	if config.MaxTokens > 4000 {
		config.MaxTokens = 4000
	}

	// Requested list length in the prompt
	if config.ResultCount < 1 {
		config.ResultCount = 1
	}
	if config.ResultCount > 50 {
		config.ResultCount = 50
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("BRANDRANK_REQUEST_TIMEOUT must be greater than 0")
	}

	if config.ChatModel == "" {
		return fmt.Errorf("BRANDRANK_CHAT_MODEL cannot be empty")
	}

	if err := validateWebUIConfig(config); err != nil {
		return fmt.Errorf("web UI configuration validation failed: %w", err)
	}

	return nil
}

// validateWebUIConfig validates web UI server-specific configuration
func validateWebUIConfig(config *Config) error {
	if config.WebUIPort < 1 || config.WebUIPort > 65535 {
		return fmt.Errorf("BRANDRANK_WEBUI_PORT must be between 1 and 65535")
	}

	if config.WebUIHost == "" {
		return fmt.Errorf("BRANDRANK_WEBUI_HOST cannot be empty")
	}

	if config.WebUIReadTimeout <= 0 {
		return fmt.Errorf("BRANDRANK_WEBUI_READ_TIMEOUT must be greater than 0")
	}
	if config.WebUIWriteTimeout <= 0 {
		return fmt.Errorf("BRANDRANK_WEBUI_WRITE_TIMEOUT must be greater than 0")
	}
	if config.WebUIIdleTimeout <= 0 {
		return fmt.Errorf("BRANDRANK_WEBUI_IDLE_TIMEOUT must be greater than 0")
	}
	if config.WebUIShutdownTimeout <= 0 {
		return fmt.Errorf("BRANDRANK_WEBUI_SHUTDOWN_TIMEOUT must be greater than 0")
	}

	return nil
}
