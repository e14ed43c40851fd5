package metrics

import (
	"sync"
	"time"
)

type callStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset providers, queries and
// score publishes, and forwards them to OpenTelemetry instruments when configured.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*callStats
	queries   map[string]*callStats
	publishes callStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*callStats),
		queries:   make(map[string]*callStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a dataset provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	record(ensure(r.providers, provider), duration, err)
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordQuery tracks a service query by operation name.
func (r *Recorder) RecordQuery(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	record(ensure(r.queries, operation), duration, err)
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordQuery(operation, duration, err)
	}
}

// RecordScorePublish tracks a score update event publish.
func (r *Recorder) RecordScorePublish(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	record(&r.publishes, duration, err)
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordScorePublish(duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the stats recorded for one provider, operation or publisher.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

// Snapshot returns a copy of the current stats for the provider.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return toSnapshot(r.providers[provider])
}

// QuerySnapshot returns a copy of the current stats for a query operation.
func (r *Recorder) QuerySnapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return toSnapshot(r.queries[operation])
}

// PublishSnapshot returns a copy of the score publish stats.
func (r *Recorder) PublishSnapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return toSnapshot(&r.publishes)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

func ensure(m map[string]*callStats, key string) *callStats {
	stats, ok := m[key]
	if !ok {
		stats = &callStats{}
		m[key] = stats
	}
	return stats
}

func record(stats *callStats, duration time.Duration, err error) {
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
}

func toSnapshot(stats *callStats) Snapshot {
	if stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}
