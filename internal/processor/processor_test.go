package processor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"codeberg.org/snonux/gurume/internal/cli"
	"codeberg.org/snonux/gurume/internal/store"
	"codeberg.org/snonux/gurume/internal/testutil"
	"codeberg.org/snonux/gurume/internal/translation"
)

func newTestProcessor(t *testing.T, flags *cli.Flags, backend *testutil.MockBackend) (*Processor, *bytes.Buffer) {
	t.Helper()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	p := NewProcessor(flags,
		WithOutput(&out),
		WithBackend(backend),
		WithStore(store.NewMemory()),
	)
	t.Cleanup(func() { p.Close() })
	return p, &out
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	p := NewProcessor(flags)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}

	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}

	if p.out != os.Stdout {
		t.Error("Processor should print to stdout by default")
	}

	if p.translator != nil {
		t.Error("Translator should be created on first use")
	}
}

func TestRomanize(t *testing.T) {
	p, out := newTestProcessor(t, cli.NewFlags(), &testutil.MockBackend{})

	if err := p.Romanize([]string{"すし", "ラーメン"}); err != nil {
		t.Fatalf("Romanize failed: %v", err)
	}

	want := "すし\tSushi\nラーメン\tRa-men\n"
	if out.String() != want {
		t.Errorf("Romanize output = %q, want %q", out.String(), want)
	}
}

func TestRomanize_NoInput(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags(), &testutil.MockBackend{})

	if err := p.Romanize(nil); err == nil {
		t.Error("Expected error without arguments or batch file")
	}
}

func TestTranslate(t *testing.T) {
	backend := &testutil.MockBackend{Translations: map[string]string{"寿司": "Sushi"}}
	p, out := newTestProcessor(t, cli.NewFlags(), backend)

	if err := p.Translate(context.Background(), []string{"寿司", "Sushi Bar", "寿司"}); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	want := "寿司 = Sushi\nSushi Bar = Sushi Bar\n寿司 = Sushi\n"
	if out.String() != want {
		t.Errorf("Translate output = %q, want %q", out.String(), want)
	}
	if backend.CallCount() != 1 {
		t.Errorf("Expected 1 backend call, got %d", backend.CallCount())
	}
}

func TestTranslate_BatchSeedsCache(t *testing.T) {
	batchFile := filepath.Join(t.TempDir(), "fields.txt")
	testutil.CreateTestFile(t, batchFile, []byte("# menu\n寿司 = sushi\n天ぷら\n"))

	flags := cli.NewFlags()
	flags.BatchFile = batchFile
	backend := &testutil.MockBackend{Translations: map[string]string{"天ぷら": "Tempura"}}
	p, out := newTestProcessor(t, flags, backend)

	if err := p.Translate(context.Background(), nil); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	want := "寿司 = sushi\n天ぷら = Tempura\n"
	if out.String() != want {
		t.Errorf("Translate output = %q, want %q", out.String(), want)
	}

	calls := backend.Calls()
	if len(calls) != 1 || calls[0] != "天ぷら" {
		t.Errorf("Expected only 天ぷら to reach the backend, got %v", calls)
	}
}

func TestTranslate_PersistsToStore(t *testing.T) {
	t.Cleanup(viper.Reset)

	s := store.NewMemory()
	backend := &testutil.MockBackend{Translations: map[string]string{"寿司": "Sushi"}}
	p := NewProcessor(cli.NewFlags(), WithOutput(&bytes.Buffer{}), WithBackend(backend), WithStore(s))

	if err := p.Translate(context.Background(), []string{"寿司"}); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	raw, ok, err := s.Get(context.Background(), translation.CacheKey)
	if err != nil || !ok {
		t.Fatalf("Expected persisted cache, got ok=%v err=%v", ok, err)
	}
	if raw != `[["寿司","Sushi"]]` {
		t.Errorf("Persisted cache = %s", raw)
	}

	// A second processor on the same store reuses the session cache.
	second := &testutil.MockBackend{Fail: true}
	var out bytes.Buffer
	p2 := NewProcessor(cli.NewFlags(), WithOutput(&out), WithBackend(second), WithStore(s))
	if err := p2.Translate(context.Background(), []string{"寿司"}); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out.String() != "寿司 = Sushi\n" {
		t.Errorf("Expected cached translation, got %q", out.String())
	}
	if second.CallCount() != 0 {
		t.Error("Cached translation must not reach the backend")
	}
}

func TestLocalizeShops_Stdin(t *testing.T) {
	t.Cleanup(viper.Reset)

	backend := &testutil.MockBackend{Translations: map[string]string{
		"銀座駅から徒歩3分":     "3 minutes walk from Ginza Station",
		"東京都中央区銀座1-2-3": "1-2-3 Ginza, Chuo-ku, Tokyo",
		"和食":            "Japanese",
	}}
	var out bytes.Buffer
	p := NewProcessor(cli.NewFlags(),
		WithOutput(&out),
		WithInput(strings.NewReader(testutil.ShopJSON)),
		WithBackend(backend),
		WithStore(store.NewMemory()),
	)

	if err := p.LocalizeShops(context.Background(), "-"); err != nil {
		t.Fatalf("LocalizeShops failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Sushishou Ginza (すし匠 銀座)",
		"3 minutes walk from Ginza Station",
		"1-2-3 Ginza, Chuo-ku, Tokyo",
		"Capacity:",
		"Japanese",
		"¥7,001 – ¥10,000 (average ¥9,000)",
		"WiFi:",
		"Available",
		"Children welcome",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Party:") {
		t.Error("Blank party capacity should not be printed")
	}
}

func TestLocalizeShops_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shops.json")
	testutil.CreateTestFile(t, path, []byte(`[{"id":"a","name":"Cafe Blue"}]`))

	backend := &testutil.MockBackend{}
	p, out := newTestProcessor(t, cli.NewFlags(), backend)

	if err := p.LocalizeShops(context.Background(), path); err != nil {
		t.Fatalf("LocalizeShops failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Cafe Blue\n") {
		t.Errorf("Unexpected output %q", out.String())
	}
	if backend.CallCount() != 0 {
		t.Error("Latin-only shop must not reach the backend")
	}
}

func TestLocalizeShops_Errors(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags(), &testutil.MockBackend{})

	if err := p.LocalizeShops(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "empty.json")
	testutil.CreateTestFile(t, path, []byte(`{"results":{"shop":[]}}`))
	if err := p.LocalizeShops(context.Background(), path); err == nil {
		t.Error("Expected error for empty results")
	}
}

func TestResetSession(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	storePath := filepath.Join(dir, "session.json")
	viper.Set("cache.store", "file")
	viper.Set("cache.path", storePath)

	backend := &testutil.MockBackend{Translations: map[string]string{"寿司": "Sushi"}}
	var out bytes.Buffer
	p := NewProcessor(cli.NewFlags(), WithOutput(&out), WithBackend(backend))

	if err := p.Translate(context.Background(), []string{"寿司"}); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	testutil.AssertFileExists(t, storePath)

	out.Reset()
	if err := p.ResetSession(); err != nil {
		t.Fatalf("ResetSession failed: %v", err)
	}

	testutil.AssertFileNotExists(t, storePath)
	if !strings.HasPrefix(out.String(), "Session archived to ") {
		t.Errorf("Unexpected output %q", out.String())
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "archive", "session-*.json"))
	if len(matches) != 1 {
		t.Errorf("Expected one archived session, got %v", matches)
	}

	// Nothing left to archive.
	out.Reset()
	if err := p.ResetSession(); err != nil {
		t.Fatalf("ResetSession failed: %v", err)
	}
	if out.String() != "No session to reset\n" {
		t.Errorf("Unexpected output %q", out.String())
	}
}

func TestResetSession_Memory(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("cache.store", "memory")

	var out bytes.Buffer
	p := NewProcessor(cli.NewFlags(), WithOutput(&out))

	if err := p.ResetSession(); err != nil {
		t.Fatalf("ResetSession failed: %v", err)
	}
	if !strings.Contains(out.String(), "nothing to reset") {
		t.Errorf("Unexpected output %q", out.String())
	}
}
