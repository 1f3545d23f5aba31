package translation

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Translator translates Japanese text through a Backend, memoizing results
// in a Cache. Its methods never fail: when the backend does, the source
// text is returned instead.
type Translator struct {
	backend Backend
	cache   *Cache

	// concurrency caps in-flight backend calls per batch; 0 means no cap.
	concurrency int

	inflight singleflight.Group
}

// Option configures a Translator.
type Option func(*Translator)

// WithConcurrency limits the number of backend calls one batch runs at once.
func WithConcurrency(n int) Option {
	return func(t *Translator) {
		t.concurrency = n
	}
}

// NewTranslator creates a translator. A nil cache gets an in-memory one.
func NewTranslator(backend Backend, cache *Cache, opts ...Option) *Translator {
	if cache == nil {
		cache = NewCache(nil)
	}

	t := &Translator{
		backend: backend,
		cache:   cache,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Cache returns the cache the translator memoizes into.
func (t *Translator) Cache() *Cache {
	return t.cache
}

// TranslateOne returns the English translation of text. Empty and Latin-only
// text is returned unchanged without contacting the backend.
func (t *Translator) TranslateOne(ctx context.Context, text string) string {
	if !needsTranslation(text) {
		return text
	}

	if cached, ok := t.cache.Get(ctx, text); ok {
		return cached
	}

	// Concurrent misses for the same text share one backend call. It runs
	// detached from the first caller's cancellation, since other callers
	// wait on its result.
	v, err, _ := t.inflight.Do(text, func() (any, error) {
		shared := context.WithoutCancel(ctx)

		if cached, ok := t.cache.Get(shared, text); ok {
			return cached, nil
		}

		translated, err := t.backend.Translate(shared, text)
		if err != nil {
			return nil, err
		}

		if err := t.cache.Put(shared, text, translated); err != nil {
			log.Warn().Err(err).Msg("Translation cached in memory only")
		}
		return translated, nil
	})
	if err != nil {
		log.Debug().
			Err(err).
			Str("backend", t.backend.Name()).
			Str("text", text).
			Msg("Translation failed, keeping source text")
		return text
	}

	return v.(string)
}

// TranslateBatch translates every unique text in texts concurrently and
// returns a mapping from each unique input to its translation. Inputs that
// need no translation map to themselves.
func (t *Translator) TranslateBatch(ctx context.Context, texts []string) map[string]string {
	result := make(map[string]string, len(texts))
	var pending []string

	for _, text := range texts {
		if _, seen := result[text]; seen {
			continue
		}

		if !needsTranslation(text) {
			result[text] = text
			continue
		}

		if cached, ok := t.cache.Get(ctx, text); ok {
			result[text] = cached
			continue
		}

		// Placeholder so duplicates are skipped; overwritten below.
		result[text] = text
		pending = append(pending, text)
	}

	if len(pending) == 0 {
		return result
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	if t.concurrency > 0 {
		g.SetLimit(t.concurrency)
	}

	for _, text := range pending {
		g.Go(func() error {
			translated := t.TranslateOne(ctx, text)

			mu.Lock()
			result[text] = translated
			mu.Unlock()
			return nil
		})
	}

	// Calls fall back individually, so Wait never reports an error.
	_ = g.Wait()

	log.Debug().
		Int("unique", len(result)).
		Int("remote", len(pending)).
		Msg("Translated batch")

	return result
}
