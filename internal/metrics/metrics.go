package metrics

import (
	"sync"
	"time"
)

type matchStats struct {
	total       int
	lastLatency time.Duration
}

type refreshStats struct {
	cycles      int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about match outcomes and
// roster refreshes, mirroring them to OpenTelemetry when configured. All
// methods are nil-safe so call sites never need guards.
type Recorder struct {
	mu      sync.Mutex
	matches map[string]*matchStats
	refresh refreshStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		matches: make(map[string]*matchStats),
		otel:    otel,
	}
}

// RecordMatch counts one match invocation by terminal outcome.
func (r *Recorder) RecordMatch(outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.matches[outcome]
	if !ok {
		stats = &matchStats{}
		r.matches[outcome] = stats
	}
	stats.total++
	stats.lastLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMatch(outcome, duration)
	}
}

// MatchCount returns the number of matches recorded for an outcome.
func (r *Recorder) MatchCount(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.matches[outcome]; ok {
		return stats.total
	}
	return 0
}

// RecordRefreshCycle counts one roster refresh attempt.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refresh.cycles++
	r.refresh.lastLatency = duration
	if err != nil {
		r.refresh.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(duration, err)
	}
}

// RefreshCycles returns the total roster refresh attempts recorded.
func (r *Recorder) RefreshCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refresh.cycles
}

// RefreshErrors returns the total failed roster refreshes recorded.
func (r *Recorder) RefreshErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refresh.errors
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
