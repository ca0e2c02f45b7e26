// Package runner drives recurring league simulations in the background and
// publishes each finished season to the store and snapshot writer.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gridiron-sim/internal/logging"
	"gridiron-sim/internal/metrics"
	"gridiron-sim/internal/sim/season"
	"gridiron-sim/internal/timeutil"
)

const defaultInterval = 30 * time.Second

// SimulateFunc produces one season summary. The sequence number identifies
// the run so implementations can derive per-run stream offsets.
type SimulateFunc func(ctx context.Context, seq int64) (*season.Summary, error)

// SnapshotWriter persists season snapshots to disk.
type SnapshotWriter interface {
	WriteSeasonSnapshot(label string, summary *season.Summary) error
}

// Store receives each finished season.
type Store interface {
	SetSeason(summary *season.Summary)
}

// Runner simulates a season on an interval and publishes the result.
type Runner struct {
	simulate SimulateFunc
	store    Store
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
	seq      int64
}

// Status describes the recent health of the runner loop.
type Status struct {
	Runs                int
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the runner has produced a season recently and is
// not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Runner with sane defaults.
func New(simulate SimulateFunc, store Store, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Runner{
		simulate: simulate,
		store:    store,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins simulating until the context is cancelled or Stop is called.
func (r *Runner) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		r.logInfo("runner started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Initial run to warm data on boot.
		r.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				r.logInfo("runner stopped")
				return
			case <-r.done:
				r.stopTicker()
				r.logInfo("runner stopped")
				return
			case <-r.ticker.C:
				r.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the simulation loop.
func (r *Runner) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

// RunNow triggers an immediate simulation cycle outside the ticker schedule.
func (r *Runner) RunNow(ctx context.Context) (*season.Summary, error) {
	return r.runOnce(ctx)
}

func (r *Runner) runOnce(ctx context.Context) (*season.Summary, error) {
	start := time.Now()
	seq := r.nextSeq(start)

	summary, err := r.simulate(ctx, seq)
	if r.metrics != nil {
		r.metrics.RecordRunnerCycle(time.Since(start), err)
	}
	if err != nil {
		r.logError("season simulation failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		r.recordFailure(err, start)
		return nil, err
	}

	if r.metrics != nil {
		games := len(summary.Games) + len(summary.PlayoffGames)
		r.metrics.RecordSeasonRun(time.Since(start), games, len(summary.Events), nil)
	}
	if r.store != nil {
		r.store.SetSeason(summary)
	}
	if r.writer != nil {
		label := r.runLabel(seq)
		if writeErr := r.writer.WriteSeasonSnapshot(label, summary); writeErr != nil {
			r.logError("season snapshot write failed", writeErr)
		}
	}
	r.recordSuccess(start)
	r.logInfo("season simulated",
		logging.FieldSeed, summary.Seed,
		logging.FieldCount, len(summary.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return summary, nil
}

// runLabel builds a lexically sortable snapshot label for one run.
func (r *Runner) runLabel(seq int64) string {
	return fmt.Sprintf("%s-run-%06d", timeutil.FormatDate(r.now().UTC()), seq)
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Runner) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Runner) logError(msg string, err error, attrs ...any) {
	if r.logger != nil {
		r.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (r *Runner) nextSeq(at time.Time) int64 {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.Runs++
	r.status.LastAttempt = at
	r.seq++
	return r.seq
}

func (r *Runner) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Runner) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the runner's recent health.
func (r *Runner) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
