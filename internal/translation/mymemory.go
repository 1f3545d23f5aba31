package translation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// DefaultMyMemoryEndpoint is the public MyMemory translation API.
const DefaultMyMemoryEndpoint = "https://api.mymemory.translated.net/get"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// MyMemory translates through the MyMemory HTTP API.
type MyMemory struct {
	endpoint string
	langPair string
	client   *http.Client
	limiter  *rate.Limiter
}

// NewMyMemory creates a MyMemory backend.
func NewMyMemory(cfg *Config) *MyMemory {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultMyMemoryEndpoint
	}

	m := &MyMemory{
		endpoint: endpoint,
		langPair: cfg.SourceLang + "|" + cfg.TargetLang,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.Rate > 0 {
		m.limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}
	return m
}

// Name returns the backend name
func (m *MyMemory) Name() string {
	return "mymemory"
}

// Translate requests one translation.
func (m *MyMemory) Translate(ctx context.Context, text string) (string, error) {
	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	u, err := url.Parse(m.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", m.endpoint, err)
	}
	q := u.Query()
	q.Set("q", text)
	q.Set("langpair", m.langPair)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: HTTP %d", ErrRemoteStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return parseMyMemory(body)
}

func parseMyMemory(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", ErrMalformedResponse
	}

	if status := gjson.GetBytes(body, "responseStatus"); status.Exists() && status.Int() != http.StatusOK {
		details := gjson.GetBytes(body, "responseDetails").String()
		return "", fmt.Errorf("%w: %d %s", ErrRemoteStatus, status.Int(), details)
	}

	translated := gjson.GetBytes(body, "responseData.translatedText")
	if !translated.Exists() || translated.Type != gjson.String {
		return "", ErrMalformedResponse
	}

	text := strings.TrimSpace(translated.String())
	if text == "" {
		return "", ErrEmptyTranslation
	}
	return text, nil
}
