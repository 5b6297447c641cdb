package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderCountsCallsAndErrors(t *testing.T) {
	r := NewRecorder()

	r.RecordEndpointCall("schedule", 20*time.Millisecond, nil)
	r.RecordEndpointCall("schedule", 30*time.Millisecond, errors.New("boom"))
	r.RecordEndpointCall("standings", 5*time.Millisecond, nil)

	if got := r.EndpointCalls("schedule"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := r.EndpointErrors("schedule"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := r.Snapshot("schedule").LastCallLatency; got != 30*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %s", got)
	}
	if got := r.EndpointCalls("standings"); got != 1 {
		t.Fatalf("expected 1 standings call, got %d", got)
	}
}

func TestRecorderCacheCounters(t *testing.T) {
	r := NewRecorder()

	r.RecordCacheMiss("boxscore")
	r.RecordCacheHit("boxscore")
	r.RecordCacheHit("boxscore")

	if got := r.CacheHits("boxscore"); got != 2 {
		t.Fatalf("expected 2 hits, got %d", got)
	}
	if got := r.CacheMisses("boxscore"); got != 1 {
		t.Fatalf("expected 1 miss, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordEndpointCall("schedule", time.Millisecond, nil)
	r.RecordCacheHit("schedule")
	r.RecordCacheMiss("schedule")
	r.RecordRefreshCycle("schedule", time.Millisecond, nil)
	if got := r.Snapshot("schedule"); got != (Snapshot{}) {
		t.Fatalf("expected zero snapshot from nil recorder, got %+v", got)
	}
}

func TestSetupDisabledReturnsRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected noop shutdown, got %v", err)
	}
}

func TestSetupEnabledBuildsPromHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if rec == nil || handler == nil {
		t.Fatal("expected recorder and prometheus handler")
	}
	// Exercise the otel path to make sure instruments accept records.
	rec.RecordEndpointCall("schedule", 10*time.Millisecond, nil)
	rec.RecordCacheHit("schedule")
	rec.RecordRefreshCycle("schedule", 12*time.Millisecond, errors.New("tick failed"))
}
