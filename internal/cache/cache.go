// Package cache implements a time-bounded memoizing cache keyed by request
// identity. Concurrent lookups for the same key are coalesced into a single
// fetch, so a timer tick racing a user-triggered refresh costs one remote
// call, not two.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Key identifies a single remote resource fetch: an endpoint name plus its
// ordered parameter bindings. Two Keys are equal iff endpoint and all
// parameters are equal.
type Key struct {
	Endpoint string
	Params   string
}

// NewKey builds a Key from an endpoint name and its ordered parameters.
func NewKey(endpoint string, params ...string) Key {
	return Key{Endpoint: endpoint, Params: strings.Join(params, "/")}
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Endpoint
	}
	return k.Endpoint + "/" + k.Params
}

// Fetcher produces a payload for a key on cache miss.
type Fetcher func(ctx context.Context) (any, error)

type entry struct {
	payload   any
	fetchedAt time.Time
	ttl       time.Duration
}

func (e entry) fresh(now time.Time) bool {
	return now.Sub(e.fetchedAt) < e.ttl
}

// flight tracks a single in-progress fetch. Followers wait on done and read
// the result; only the leader runs the fetcher.
type flight struct {
	done    chan struct{}
	payload any
	err     error
}

// Cache memoizes fetch results per Key with a TTL chosen per call. Entries
// are replaced lazily on the first access after expiry; a failed fetch is
// never stored and never evicts an existing entry.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]entry
	flights map[Key]*flight
	now     func() time.Time
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[Key]entry),
		flights: make(map[Key]*flight),
		now:     time.Now,
	}
}

// GetOrFetch returns the cached payload for key when a fresh entry exists.
// Otherwise it invokes fetch exactly once, even under concurrent callers:
// the first caller becomes the leader and everyone else waits for its
// result. Errors propagate to all waiters and leave any previous entry
// untouched.
func (c *Cache) GetOrFetch(ctx context.Context, key Key, ttl time.Duration, fetch Fetcher) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && e.fresh(c.now()) {
		c.mu.Unlock()
		return e.payload, nil
	}
	if f, ok := c.flights[key]; ok {
		c.mu.Unlock()
		select {
		case <-f.done:
			return f.payload, f.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f := &flight{done: make(chan struct{})}
	c.flights[key] = f
	c.mu.Unlock()

	payload, err := fetch(ctx)

	c.mu.Lock()
	delete(c.flights, key)
	if err == nil {
		c.entries[key] = entry{payload: payload, fetchedAt: c.now(), ttl: ttl}
	}
	c.mu.Unlock()

	f.payload = payload
	f.err = err
	close(f.done)
	return payload, err
}

// Peek returns the cached payload for key if a fresh entry exists, without
// fetching.
func (c *Cache) Peek(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !e.fresh(c.now()) {
		return nil, false
	}
	return e.payload, true
}

// Invalidate drops the entries for the given keys so the next access
// refetches. Used by explicit user refresh; in-flight fetches are not
// affected.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

// Len reports the number of stored entries, fresh or expired.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
