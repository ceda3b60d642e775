// Package openai wraps the OpenAI chat completion API behind the small
// client surface the rest of brandrank depends on.
package openai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ca-srg/brandrank/internal/types"
)

// Client calls the OpenAI chat completion endpoint with fixed sampling
// settings. It is constructed once from a credential and passed explicitly
// to callers; there is no ambient shared handle.
type Client struct {
	client      *openai.Client
	model       string
	temperature float64
	maxTokens   int
}

// Options carries the sampling settings applied to every request.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// NewClient creates an OpenAI chat client from an API key.
// Returns a typed missing-credential error when the key is empty so the
// failure surfaces before any network call.
func NewClient(apiKey string, opts Options) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, types.NewMissingCredentialError("OpenAI API key is required")
	}

	if opts.Model == "" {
		opts.Model = "gpt-4o-mini"
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1000
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &Client{
		client:      &client,
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
	}, nil
}

// GenerateRanking sends one non-streaming chat completion request and
// returns the assistant reply text. No retries; any failure is wrapped and
// returned to the caller.
func (c *Client) GenerateRanking(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", fmt.Errorf("user prompt cannot be empty")
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(userPrompt),
	}

	log.Printf("Invoking chat model: %s", c.model)
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               c.model,
		Temperature:         openai.Float(c.temperature),
		MaxCompletionTokens: openai.Int(int64(c.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke chat model: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty content in response")
	}

	return content, nil
}

// ValidateConnection checks that the credential and model are usable by
// issuing a minimal chat request.
func (c *Client) ValidateConnection(ctx context.Context) error {
	_, err := c.GenerateRanking(ctx, "You are a connectivity probe.", "Reply with OK.")
	if err != nil {
		return fmt.Errorf("connection validation failed: %w", err)
	}
	return nil
}

// Model returns the model identifier being used
func (c *Client) Model() string {
	return c.model
}
