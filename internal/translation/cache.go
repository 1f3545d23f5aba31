package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// CacheKey is the session store key the cache is persisted under.
const CacheKey = "translationCache"

// ErrNotHydrated is returned by Persist before the persisted entries have
// been read. Writing then would overwrite them.
var ErrNotHydrated = errors.New("translation cache not loaded from store")

// Store is a string key/value store scoped to one session.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Cache memoizes translations keyed on the exact source string. It is
// hydrated from its Store on first use and written back after every Put.
// Entries are never evicted.
type Cache struct {
	store Store

	// hydrated is set once the store has been read, or found empty or
	// corrupt. A failed read leaves it unset so the next access retries.
	hydrateMu sync.Mutex
	hydrated  atomic.Bool

	mu      sync.RWMutex
	entries map[string]string
	order   []string

	// persistMu serializes writes so the last write always holds every entry.
	persistMu sync.Mutex
}

// NewCache creates a cache backed by store. A nil store keeps the cache in
// memory only.
func NewCache(store Store) *Cache {
	return &Cache{
		store:   store,
		entries: make(map[string]string),
	}
}

// Hydrate loads persisted entries. Missing or corrupt data leaves the cache
// empty and counts as loaded. A store read error is returned and the load
// is retried on the next call. Entries put before a successful load take
// precedence over persisted ones.
func (c *Cache) Hydrate(ctx context.Context) error {
	if c.hydrated.Load() {
		return nil
	}

	c.hydrateMu.Lock()
	defer c.hydrateMu.Unlock()
	if c.hydrated.Load() {
		return nil
	}

	if c.store == nil {
		c.hydrated.Store(true)
		return nil
	}

	raw, ok, err := c.store.Get(ctx, CacheKey)
	if err != nil {
		return fmt.Errorf("failed to read translation cache: %w", err)
	}
	defer c.hydrated.Store(true)

	if !ok || raw == "" {
		return nil
	}

	var pairs [][2]string
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		log.Warn().Err(err).Msg("Ignoring corrupt translation cache")
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Persisted entries keep their order ahead of ones added meanwhile.
	local := make(map[string]bool, len(c.order))
	for _, k := range c.order {
		local[k] = true
	}
	order := make([]string, 0, len(pairs)+len(c.order))
	for _, p := range pairs {
		if local[p[0]] {
			continue
		}
		if _, seen := c.entries[p[0]]; !seen {
			order = append(order, p[0])
		}
		c.entries[p[0]] = p[1]
	}
	c.order = append(order, c.order...)

	log.Debug().Int("entries", len(c.entries)).Msg("Hydrated translation cache")
	return nil
}

// Get returns the cached translation for source.
func (c *Cache) Get(ctx context.Context, source string) (string, bool) {
	if err := c.Hydrate(ctx); err != nil {
		log.Warn().Err(err).Msg("Using in-memory translation cache only")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[source]
	return v, ok
}

// Put stores a translation and persists the whole cache. The entry stays in
// memory even when persisting fails.
func (c *Cache) Put(ctx context.Context, source, translated string) error {
	hydrateErr := c.Hydrate(ctx)

	c.mu.Lock()
	c.set(source, translated)
	c.mu.Unlock()

	if hydrateErr != nil {
		return hydrateErr
	}
	return c.Persist(ctx)
}

// Persist writes the current entries to the store. It refuses to write
// before the persisted entries have been loaded.
func (c *Cache) Persist(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	if !c.hydrated.Load() {
		return ErrNotHydrated
	}

	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.RLock()
	pairs := make([][2]string, 0, len(c.order))
	for _, k := range c.order {
		pairs = append(pairs, [2]string{k, c.entries[k]})
	}
	c.mu.RUnlock()

	data, err := json.Marshal(pairs)
	if err != nil {
		return fmt.Errorf("failed to encode translation cache: %w", err)
	}

	if err := c.store.Set(ctx, CacheKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist translation cache: %w", err)
	}

	return nil
}

// Len returns the number of cached translations.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Snapshot returns a copy of all cached translations.
func (c *Cache) Snapshot() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]string, len(c.entries))
	for k, v := range c.entries {
		result[k] = v
	}
	return result
}

// set must be called with mu held for writing.
func (c *Cache) set(source, translated string) {
	if _, exists := c.entries[source]; !exists {
		c.order = append(c.order, source)
	}
	c.entries[source] = translated
}
