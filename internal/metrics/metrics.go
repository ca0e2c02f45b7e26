package metrics

import (
	"sync"
	"time"
)

type simStats struct {
	seasonRuns      int
	seasonErrors    int
	gamesSimulated  int
	playsResolved   int
	lastRunLatency  time.Duration
	httpRequests    int
	careersAdvanced map[string]int
}

// Recorder captures lightweight, in-memory metrics about simulation runs.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats simStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: simStats{careersAdvanced: make(map[string]int)},
		otel:  otel,
	}
}

// RecordSeasonRun increments season counters and stores the run latency.
func (r *Recorder) RecordSeasonRun(duration time.Duration, games, plays int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.seasonRuns++
	r.stats.gamesSimulated += games
	r.stats.playsResolved += plays
	r.stats.lastRunLatency = duration
	if err != nil {
		r.stats.seasonErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSeasonRun(duration, games, plays, err)
	}
}

// RecordCareerAdvance tracks one advanced career year in the given stage.
func (r *Recorder) RecordCareerAdvance(stage string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.careersAdvanced[stage]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCareerAdvance(stage)
	}
}

// SeasonRuns returns the total season simulations recorded.
func (r *Recorder) SeasonRuns() int {
	return r.Snapshot().SeasonRuns
}

// SeasonErrors returns the total failed season simulations recorded.
func (r *Recorder) SeasonErrors() int {
	return r.Snapshot().SeasonErrors
}

// GamesSimulated returns the total games recorded across all runs.
func (r *Recorder) GamesSimulated() int {
	return r.Snapshot().GamesSimulated
}

// PlaysResolved returns the total plays recorded across all runs.
func (r *Recorder) PlaysResolved() int {
	return r.Snapshot().PlaysResolved
}

// CareersAdvanced returns the advanced career years recorded for a stage.
func (r *Recorder) CareersAdvanced(stage string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.careersAdvanced[stage]
}

// LastRunLatency returns the last recorded season-run latency.
func (r *Recorder) LastRunLatency() time.Duration {
	return r.Snapshot().LastRunLatency
}

// Snapshot is a copy of the current counters.
type Snapshot struct {
	SeasonRuns     int
	SeasonErrors   int
	GamesSimulated int
	PlaysResolved  int
	HTTPRequests   int
	LastRunLatency time.Duration
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		SeasonRuns:     r.stats.seasonRuns,
		SeasonErrors:   r.stats.seasonErrors,
		GamesSimulated: r.stats.gamesSimulated,
		PlaysResolved:  r.stats.playsResolved,
		HTTPRequests:   r.stats.httpRequests,
		LastRunLatency: r.stats.lastRunLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.httpRequests++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// RecordRunnerCycle tracks background runner cycles and errors.
func (r *Recorder) RecordRunnerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRunner(duration, err)
}
