package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	// ErrMissingAPIKey is returned by backends that need a key but have none.
	ErrMissingAPIKey = errors.New("API key not configured")

	// ErrMalformedResponse is returned when a backend response lacks the
	// translated text.
	ErrMalformedResponse = errors.New("malformed translation response")

	// ErrEmptyTranslation is returned when a backend answers with no text.
	ErrEmptyTranslation = errors.New("no translation returned")

	// ErrRemoteStatus is returned for non-success HTTP or API statuses.
	ErrRemoteStatus = errors.New("translation endpoint returned an error status")
)

// Backend performs a single remote translation.
type Backend interface {
	// Translate translates text from the configured source language to the
	// configured target language.
	Translate(ctx context.Context, text string) (string, error)

	// Name returns the backend name
	Name() string
}

// Config holds the settings shared by all backends.
type Config struct {
	Provider   string // "mymemory", "openai" or "gemini"
	Endpoint   string // MyMemory endpoint or OpenAI-compatible base URL; empty for the default
	SourceLang string
	TargetLang string

	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string

	// Timeout bounds one HTTP round trip; 0 keeps the transport default.
	Timeout time.Duration
	// Rate limits MyMemory requests per second; 0 disables the limit.
	Rate float64

	// BreakerFailures is the number of consecutive failures that opens the
	// circuit; 0 disables the breaker.
	BreakerFailures uint32
	// BreakerCooldown is how long the circuit stays open.
	BreakerCooldown time.Duration
}

// DefaultConfig returns the default backend configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:        "mymemory",
		SourceLang:      "ja",
		TargetLang:      "en",
		OpenAIModel:     "gpt-4o-mini",
		GeminiModel:     "gemini-2.0-flash",
		Rate:            5,
		BreakerFailures: 5,
		BreakerCooldown: 30 * time.Second,
	}
}

// Validate checks the language pair and provider name.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.SourceLang); err != nil {
		return fmt.Errorf("invalid source language %q: %w", c.SourceLang, err)
	}
	if _, err := language.Parse(c.TargetLang); err != nil {
		return fmt.Errorf("invalid target language %q: %w", c.TargetLang, err)
	}

	switch c.Provider {
	case "mymemory", "openai", "gemini":
		return nil
	default:
		return fmt.Errorf("unknown translation provider: %s", c.Provider)
	}
}

// NewBackend creates the backend named by cfg.Provider, wrapped in a
// circuit breaker unless cfg.BreakerFailures is 0.
func NewBackend(ctx context.Context, cfg *Config) (Backend, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		backend Backend
		err     error
	)

	switch cfg.Provider {
	case "mymemory":
		backend = NewMyMemory(cfg)
	case "openai":
		backend = NewOpenAI(cfg)
	case "gemini":
		backend, err = NewGemini(ctx, cfg)
	}
	if err != nil {
		return nil, err
	}

	if cfg.BreakerFailures == 0 {
		return backend, nil
	}
	return WithCircuitBreaker(backend, cfg.BreakerFailures, cfg.BreakerCooldown), nil
}

// languageName returns the English name of a BCP 47 code, or the code
// itself if it cannot be named.
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}

// prompt builds the instruction sent to the LLM backends.
func prompt(text, source, target string) string {
	return fmt.Sprintf(
		"Translate the following %s text from a restaurant listing to %s. "+
			"Respond with only the %s translation, nothing else.\n\n%s",
		languageName(source), languageName(target), languageName(target), text,
	)
}
