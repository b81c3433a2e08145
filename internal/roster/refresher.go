package roster

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"football-player-service/internal/domain/players"
	"football-player-service/internal/logging"
	"football-player-service/internal/metrics"
)

const defaultInterval = 15 * time.Minute

// SnapshotStore receives full roster snapshots.
type SnapshotStore interface {
	SetPlayers(records []players.Record)
}

// Refresher loads the roster from its source on an interval and swaps the
// snapshot into the store.
type Refresher struct {
	source   Source
	store    SnapshotStore
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the refresher has loaded at least once and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher with sane defaults.
func New(source Source, store SnapshotStore, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Refresher{
		source:   source,
		store:    store,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		r.logInfo("roster refresher started",
			logging.FieldSource, r.source.Name(),
			logging.FieldDurationMS, r.interval.Milliseconds(),
		)
		// Initial load to warm the store on boot.
		r.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				r.logInfo("roster refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				r.logInfo("roster refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	start := time.Now()
	r.recordAttempt(start)
	records, err := r.source.FetchAll(ctx)
	if r.metrics != nil {
		r.metrics.RecordRefreshCycle(time.Since(start), err)
	}
	if err != nil {
		r.logError("roster refresh failed", err,
			logging.FieldSource, r.source.Name(),
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
		r.recordFailure(err, start)
		return
	}

	if r.store != nil {
		r.store.SetPlayers(records)
	}
	r.recordSuccess(start)
	r.logInfo("roster refreshed",
		logging.FieldSource, r.source.Name(),
		logging.FieldCount, len(records),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Refresher) logError(msg string, err error, attrs ...any) {
	if r.logger != nil {
		r.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the refresher's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
