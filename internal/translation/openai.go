package translation

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAI translates with an OpenAI chat model.
type OpenAI struct {
	apiKey string
	model  string
	source string
	target string
	client *openai.Client
}

// NewOpenAI creates an OpenAI backend. cfg.Endpoint, when set, replaces the
// API base URL so OpenAI-compatible servers can be used.
func NewOpenAI(cfg *Config) *OpenAI {
	config := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.Endpoint != "" {
		config.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		config.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &OpenAI{
		apiKey: cfg.OpenAIKey,
		model:  cfg.OpenAIModel,
		source: cfg.SourceLang,
		target: cfg.TargetLang,
		client: openai.NewClientWithConfig(config),
	}
}

// Name returns the backend name
func (o *OpenAI) Name() string {
	return "openai"
}

// Translate asks the chat model for a translation of text.
func (o *OpenAI) Translate(ctx context.Context, text string) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("OpenAI: %w", ErrMissingAPIKey)
	}

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(text, o.source, o.target),
			},
		},
		MaxTokens:   500,
		Temperature: 0.3,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyTranslation
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", ErrEmptyTranslation
	}
	return translation, nil
}
