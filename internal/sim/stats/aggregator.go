// Package stats reduces a raw event trace into per-player counting lines.
package stats

import (
	"math"

	"gridiron-sim/internal/domain/events"
)

// The games-played figure is a documented heuristic, not a snap count:
// each event adds a fixed presence increment which is normalized by the
// approximate events per simulated game. Preserved exactly for
// compatibility with existing output.
const (
	presencePerEvent   = 0.01
	presenceNormalizer = 6.0
)

// Line accumulates counting statistics for one player.
type Line struct {
	GamesPlayed     float64 `json:"gamesPlayed"`
	PassAttempts    int     `json:"passAttempts"`
	PassCompletions int     `json:"passCompletions"`
	PassYards       int     `json:"passYards"`
	PassTDs         int     `json:"passTds"`
	YAC             int     `json:"yac"`
	Targets         int     `json:"targets"`
	RushAttempts    int     `json:"rushAttempts"`
	RushYards       int     `json:"rushYards"`
	RushTDs         int     `json:"rushTds"`
	BrokenTackles   int     `json:"brokenTackles"`
}

// Aggregate folds events into per-player lines, keyed by primary player id.
// Events without a primary player are skipped; a player with no events has
// no entry in the result.
func Aggregate(evs []events.Event) map[string]Line {
	presence := make(map[string]float64)
	agg := make(map[string]Line)

	for _, ev := range evs {
		pid := ev.PrimaryPlayerID
		if pid == "" {
			continue
		}
		line := agg[pid]

		switch ev.PlayType {
		case events.PlayPass:
			line.PassAttempts++
			line.Targets++
			if ev.Result.Complete {
				line.PassCompletions++
				line.PassYards += ev.Result.Yards
				if ev.Result.Touchdown {
					line.PassTDs++
				}
				line.YAC += ev.Result.YAC
			}
		case events.PlayRun:
			line.RushAttempts++
			line.RushYards += ev.Result.Yards
			if ev.Result.Touchdown {
				line.RushTDs++
			}
			line.BrokenTackles += ev.Result.BrokenTackles
		}

		presence[pid] += presencePerEvent
		agg[pid] = line
	}

	for pid, line := range agg {
		line.GamesPlayed = round2(presence[pid] / presenceNormalizer)
		agg[pid] = line
	}
	return agg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
