package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetOrFetchMissThenHit(t *testing.T) {
	c := New()
	key := NewKey("schedule", "2024-01-15")
	calls := 0

	for i := 0; i < 3; i++ {
		got, err := c.GetOrFetch(context.Background(), key, time.Minute, func(context.Context) (any, error) {
			calls++
			return "payload", nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "payload" {
			t.Fatalf("unexpected payload: %v", got)
		}
	}

	if calls != 1 {
		t.Fatalf("expected exactly one fetch, got %d", calls)
	}
}

func TestKeyEquality(t *testing.T) {
	a := NewKey("boxscore", "2023020123")
	b := NewKey("boxscore", "2023020123")
	if a != b {
		t.Fatal("expected keys with equal endpoint and params to be equal")
	}
	if a == NewKey("boxscore", "2023020124") {
		t.Fatal("expected keys with different params to differ")
	}
	if a == NewKey("play-by-play", "2023020123") {
		t.Fatal("expected keys with different endpoints to differ")
	}
}

func TestTTLExpiryTriggersSingleRefetch(t *testing.T) {
	c := New()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	key := NewKey("standings")
	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	// First access fetches.
	if got, _ := c.GetOrFetch(context.Background(), key, 30*time.Second, fetch); got != 1 {
		t.Fatalf("expected first fetch result, got %v", got)
	}

	// Served unchanged strictly inside the TTL window.
	now = now.Add(30*time.Second - time.Nanosecond)
	if got, _ := c.GetOrFetch(context.Background(), key, 30*time.Second, fetch); got != 1 {
		t.Fatalf("expected cached result inside ttl window, got %v", got)
	}

	// The first access at the boundary refetches once.
	now = now.Add(time.Nanosecond)
	if got, _ := c.GetOrFetch(context.Background(), key, 30*time.Second, fetch); got != 2 {
		t.Fatalf("expected refetched result, got %v", got)
	}
	if calls != 2 {
		t.Fatalf("expected exactly two fetches, got %d", calls)
	}
}

func TestConcurrentCallersCoalesce(t *testing.T) {
	c := New()
	key := NewKey("play-by-play", "2023020500")

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "coalesced", nil
	}

	const n = 16
	results := make([]any, n)
	errs := make([]error, n)
	var started, finished sync.WaitGroup
	started.Add(n)
	finished.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			started.Done()
			results[i], errs[i] = c.GetOrFetch(context.Background(), key, time.Minute, fetch)
			finished.Done()
		}(i)
	}

	started.Wait()
	time.Sleep(10 * time.Millisecond) // let followers reach the wait
	close(release)
	finished.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one fetch for %d concurrent callers, got %d", n, got)
	}
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d got error: %v", i, errs[i])
		}
		if results[i] != "coalesced" {
			t.Fatalf("caller %d got %v", i, results[i])
		}
	}
}

func TestFailedFetchIsNotCached(t *testing.T) {
	c := New()
	key := NewKey("roster", "BOS")
	boom := errors.New("boom")
	calls := 0

	_, err := c.GetOrFetch(context.Background(), key, time.Minute, func(context.Context) (any, error) {
		calls++
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fetch error to propagate, got %v", err)
	}

	// The failure must not be memoized; the next access fetches again.
	got, err := c.GetOrFetch(context.Background(), key, time.Minute, func(context.Context) (any, error) {
		calls++
		return "ok", nil
	})
	if err != nil || got != "ok" {
		t.Fatalf("expected successful refetch, got %v, %v", got, err)
	}
	if calls != 2 {
		t.Fatalf("expected two fetch attempts, got %d", calls)
	}
}

func TestFailedRefreshKeepsValidEntry(t *testing.T) {
	c := New()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	key := NewKey("schedule", "2024-01-15")

	if _, err := c.GetOrFetch(context.Background(), key, time.Minute, func(context.Context) (any, error) {
		return "original", nil
	}); err != nil {
		t.Fatalf("seed fetch failed: %v", err)
	}

	// A failed out-of-band attempt (e.g. after Invalidate on another key)
	// must not evict the still-valid entry.
	now = now.Add(10 * time.Second)
	got, err := c.GetOrFetch(context.Background(), key, time.Minute, func(context.Context) (any, error) {
		return nil, errors.New("should not run")
	})
	if err != nil || got != "original" {
		t.Fatalf("expected original cached payload, got %v, %v", got, err)
	}
}

func TestErrorPropagatesToAllWaiters(t *testing.T) {
	c := New()
	key := NewKey("standings")
	boom := errors.New("upstream down")
	release := make(chan struct{})

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.GetOrFetch(context.Background(), key, time.Minute, func(context.Context) (any, error) {
				<-release
				return nil, boom
			})
		}(i)
	}
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, err := range errs {
		if !errors.Is(err, boom) {
			t.Fatalf("waiter %d expected fetch error, got %v", i, err)
		}
	}
	if c.Len() != 0 {
		t.Fatalf("expected no entries after failed fetch, got %d", c.Len())
	}
}

func TestWaiterHonorsContextCancellation(t *testing.T) {
	c := New()
	key := NewKey("boxscore", "2023020777")
	release := make(chan struct{})
	defer close(release)

	go func() {
		_, _ = c.GetOrFetch(context.Background(), key, time.Minute, func(context.Context) (any, error) {
			<-release
			return "late", nil
		})
	}()
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetOrFetch(ctx, key, time.Minute, func(context.Context) (any, error) {
		t.Fatal("follower must not fetch")
		return nil, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	c := New()
	key := NewKey("skater-leaders")
	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	_, _ = c.GetOrFetch(context.Background(), key, time.Hour, fetch)
	c.Invalidate(key)
	got, _ := c.GetOrFetch(context.Background(), key, time.Hour, fetch)

	if got != 2 || calls != 2 {
		t.Fatalf("expected refetch after invalidate, got %v with %d calls", got, calls)
	}
}

func TestPeek(t *testing.T) {
	c := New()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	key := NewKey("standings")

	if _, ok := c.Peek(key); ok {
		t.Fatal("expected miss on empty cache")
	}
	_, _ = c.GetOrFetch(context.Background(), key, time.Minute, func(context.Context) (any, error) {
		return "peeked", nil
	})
	if got, ok := c.Peek(key); !ok || got != "peeked" {
		t.Fatalf("expected fresh entry, got %v, %v", got, ok)
	}
	now = now.Add(2 * time.Minute)
	if _, ok := c.Peek(key); ok {
		t.Fatal("expected expired entry to miss")
	}
}
