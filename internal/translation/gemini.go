package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Gemini translates with a Google Gemini model.
type Gemini struct {
	model  string
	source string
	target string
	client *genai.Client
}

// NewGemini creates a Gemini backend. It fails without an API key.
func NewGemini(ctx context.Context, cfg *Config) (*Gemini, error) {
	if cfg.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini: %w", ErrMissingAPIKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		model:  cfg.GeminiModel,
		source: cfg.SourceLang,
		target: cfg.TargetLang,
		client: client,
	}, nil
}

// Name returns the backend name
func (g *Gemini) Name() string {
	return "gemini"
}

// Translate asks the model for a translation of text.
func (g *Gemini) Translate(ctx context.Context, text string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt(text, g.source, g.target)),
		&genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.3)},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", ErrEmptyTranslation
	}
	return translation, nil
}
