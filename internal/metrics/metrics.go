package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	cacheHits       int
	cacheMisses     int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about gateway calls and
// refresh cycles. It is intentionally simple so it can be swapped for a real
// backend later; when OpenTelemetry is enabled the same events are exported.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*endpointStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordEndpointCall increments counters for a remote call and stores the
// last observed latency.
func (r *Recorder) RecordEndpointCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordEndpointCall(endpoint, duration, err)
	}
}

// RecordCacheHit tracks a fetch served from the cache without a remote call.
func (r *Recorder) RecordCacheHit(endpoint string) {
	if r == nil {
		return
	}
	r.ensureStats(endpoint).cacheHits++
	if r.otel != nil {
		r.otel.recordCacheLookup(endpoint, true)
	}
}

// RecordCacheMiss tracks a fetch that had to go to the remote API.
func (r *Recorder) RecordCacheMiss(endpoint string) {
	if r == nil {
		return
	}
	r.ensureStats(endpoint).cacheMisses++
	if r.otel != nil {
		r.otel.recordCacheLookup(endpoint, false)
	}
}

// RecordRefreshCycle tracks one scheduler tick for a screen.
func (r *Recorder) RecordRefreshCycle(screen string, duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefreshCycle(screen, duration, err)
}

// Snapshot is a copy of the current stats for an endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	CacheHits       int
	CacheMisses     int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(endpoint)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		CacheHits:       stats.cacheHits,
		CacheMisses:     stats.cacheMisses,
		LastCallLatency: stats.lastCallLatency,
	}
}

// EndpointCalls returns the total remote calls recorded for an endpoint.
func (r *Recorder) EndpointCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// EndpointErrors returns the total failed calls recorded for an endpoint.
func (r *Recorder) EndpointErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// CacheHits returns the cache hits recorded for an endpoint.
func (r *Recorder) CacheHits(endpoint string) int {
	return r.Snapshot(endpoint).CacheHits
}

// CacheMisses returns the cache misses recorded for an endpoint.
func (r *Recorder) CacheMisses(endpoint string) int {
	return r.Snapshot(endpoint).CacheMisses
}

func (r *Recorder) ensureStats(endpoint string) *endpointStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}

func (r *Recorder) snapshot(endpoint string) endpointStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[endpoint]; ok && stats != nil {
		return *stats
	}
	return endpointStats{}
}
