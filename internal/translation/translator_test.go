package translation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/gurume/internal/testutil"
)

func TestIsLatinOnly(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Sushi Bar", true},
		{"", true},
		{"Café 123 !?", true},
		{"寿司", false},
		{"すし", false},
		{"スシ", false},
		{"Sushi 寿司", false},
		{"full　width space", false},
		{"・", false},
		{"豈", false}, // U+F900 compatibility ideograph
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLatinOnly(tt.text))
		})
	}
}

func TestTranslateOne_PassThrough(t *testing.T) {
	backend := &testutil.MockBackend{}
	tr := NewTranslator(backend, nil)
	ctx := context.Background()

	for _, text := range []string{"", "   ", "　", "Sushi Bar", "Open 11:00-22:00"} {
		assert.Equal(t, text, tr.TranslateOne(ctx, text))
	}
	assert.Zero(t, backend.CallCount(), "pass-through text must not reach the backend")
}

func TestTranslateOne_Translates(t *testing.T) {
	backend := &testutil.MockBackend{Translations: map[string]string{"寿司": "Sushi"}}
	store := &testutil.MemoryStore{}
	tr := NewTranslator(backend, NewCache(store))

	got := tr.TranslateOne(context.Background(), "寿司")

	assert.Equal(t, "Sushi", got)
	assert.Equal(t, []string{"寿司"}, backend.Calls())
	assert.Equal(t, `[["寿司","Sushi"]]`, store.Values[CacheKey])
}

func TestTranslateOne_FailureReturnsSource(t *testing.T) {
	backend := &testutil.MockBackend{Fail: true}
	store := &testutil.MemoryStore{}
	tr := NewTranslator(backend, NewCache(store))

	assert.Equal(t, "寿司", tr.TranslateOne(context.Background(), "寿司"))
	assert.Zero(t, tr.Cache().Len(), "failures must not be cached")
	assert.Zero(t, store.SetCount())
}

func TestTranslateOne_CacheReuse(t *testing.T) {
	backend := &testutil.MockBackend{Translations: map[string]string{"寿司": "Sushi"}}
	tr := NewTranslator(backend, nil)
	ctx := context.Background()

	first := tr.TranslateOne(ctx, "寿司")
	second := tr.TranslateOne(ctx, "寿司")

	assert.Equal(t, "Sushi", first)
	assert.Equal(t, "Sushi", second)
	assert.Equal(t, 1, backend.CallCount())
}

func TestTranslateOne_ConcurrentMissesShareOneCall(t *testing.T) {
	backend := &testutil.MockBackend{
		Translations: map[string]string{"寿司": "Sushi"},
		Delay:        50 * time.Millisecond,
	}
	tr := NewTranslator(backend, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = tr.TranslateOne(ctx, "寿司")
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "Sushi", r)
	}
	assert.Equal(t, 1, backend.CallCount())
}

func TestTranslateOne_CancelledCallerDoesNotAbortSharedCall(t *testing.T) {
	backend := &testutil.MockBackend{
		Translations: map[string]string{"寿司": "Sushi"},
		Delay:        50 * time.Millisecond,
	}
	tr := NewTranslator(backend, nil)

	ctx, cancel := context.WithCancel(context.Background())
	var (
		wg     sync.WaitGroup
		first  string
		second string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		first = tr.TranslateOne(ctx, "寿司")
	}()
	go func() {
		defer wg.Done()
		second = tr.TranslateOne(context.Background(), "寿司")
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	wg.Wait()

	assert.Equal(t, "Sushi", first)
	assert.Equal(t, "Sushi", second)
	assert.Equal(t, 1, backend.CallCount())
}

func TestTranslateOne_PersistFailureStillCaches(t *testing.T) {
	backend := &testutil.MockBackend{Translations: map[string]string{"寿司": "Sushi"}}
	store := &testutil.MemoryStore{SetErr: errors.New("disk full")}
	tr := NewTranslator(backend, NewCache(store))
	ctx := context.Background()

	assert.Equal(t, "Sushi", tr.TranslateOne(ctx, "寿司"))
	assert.Equal(t, "Sushi", tr.TranslateOne(ctx, "寿司"))
	assert.Equal(t, 1, backend.CallCount())
}

func TestTranslateBatch_Empty(t *testing.T) {
	backend := &testutil.MockBackend{}
	tr := NewTranslator(backend, nil)

	got := tr.TranslateBatch(context.Background(), nil)

	assert.Empty(t, got)
	assert.Zero(t, backend.CallCount())
}

func TestTranslateBatch_DedupsAndPartitions(t *testing.T) {
	backend := &testutil.MockBackend{Translations: map[string]string{"寿司": "Sushi"}}
	tr := NewTranslator(backend, nil)

	got := tr.TranslateBatch(context.Background(), []string{"Sushi", "寿司", "寿司"})

	assert.Equal(t, map[string]string{"Sushi": "Sushi", "寿司": "Sushi"}, got)
	assert.Equal(t, 1, backend.CallCount())
}

func TestTranslateBatch_CoversEveryInput(t *testing.T) {
	backend := &testutil.MockBackend{
		Translations: map[string]string{"寿司": "Sushi", "天ぷら": "Tempura"},
		Errors:       map[string]error{"駐車場": errors.New("timeout")},
	}
	tr := NewTranslator(backend, nil, WithConcurrency(2))

	inputs := []string{"", "寿司", "天ぷら", "駐車場", "Wi-Fi", "天ぷら"}
	got := tr.TranslateBatch(context.Background(), inputs)

	assert.Equal(t, map[string]string{
		"":    "",
		"寿司":  "Sushi",
		"天ぷら": "Tempura",
		"駐車場": "駐車場",
		"Wi-Fi": "Wi-Fi",
	}, got)
	assert.Equal(t, 3, backend.CallCount())
}

func TestTranslateBatch_UsesCache(t *testing.T) {
	backend := &testutil.MockBackend{Translations: map[string]string{"寿司": "Sushi"}}
	store := &testutil.MemoryStore{Values: map[string]string{
		CacheKey: `[["天ぷら","Tempura"]]`,
	}}
	tr := NewTranslator(backend, NewCache(store))

	got := tr.TranslateBatch(context.Background(), []string{"天ぷら", "寿司"})

	assert.Equal(t, "Tempura", got["天ぷら"])
	assert.Equal(t, "Sushi", got["寿司"])
	assert.Equal(t, []string{"寿司"}, backend.Calls())
}

func TestTranslateBatch_AllFailing(t *testing.T) {
	backend := &testutil.MockBackend{Fail: true}
	tr := NewTranslator(backend, nil)

	got := tr.TranslateBatch(context.Background(), []string{"寿司", "ラーメン"})

	assert.Equal(t, map[string]string{"寿司": "寿司", "ラーメン": "ラーメン"}, got)
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	backend := &testutil.MockBackend{Fail: true}
	wrapped := WithCircuitBreaker(backend, 2, time.Minute)
	ctx := context.Background()

	for range 2 {
		_, err := wrapped.Translate(ctx, "寿司")
		require.ErrorIs(t, err, testutil.ErrMockFailure)
	}

	_, err := wrapped.Translate(ctx, "寿司")
	require.Error(t, err)
	assert.NotErrorIs(t, err, testutil.ErrMockFailure)
	assert.Equal(t, 2, backend.CallCount(), "open circuit must not call the backend")
	assert.Equal(t, "mock", wrapped.Name())
}

func TestCircuitBreaker_PassesThroughSuccess(t *testing.T) {
	backend := &testutil.MockBackend{Translations: map[string]string{"寿司": "Sushi"}}
	wrapped := WithCircuitBreaker(backend, 1, time.Minute)

	got, err := wrapped.Translate(context.Background(), "寿司")

	require.NoError(t, err)
	assert.Equal(t, "Sushi", got)
}
