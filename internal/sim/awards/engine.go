// Package awards ranks players by weighted statistical impact with a
// narrative adjustment and produces justified award citations.
package awards

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/sim/stats"
)

// Impact score weights (the fixed linear combination used for ranking).
const (
	weightRushYards = 0.7
	weightPassYards = 1.1
	weightRushTDs   = 20.0
	weightPassTDs   = 25.0
	weightYAC       = 0.3

	moraleBoostScale = 10.0
	injuryPenalty    = 5.0
)

// Justification thresholds.
const (
	notableYards = 200
	notableTDs   = 2
)

const defaultJustification = "consistently high impact plays"

// Citation is one ranked award entry with its synthesized justification.
type Citation struct {
	PlayerID      string  `json:"playerId"`
	PlayerName    string  `json:"playerName"`
	Score         float64 `json:"score"`
	Impact        float64 `json:"impact"`
	Justification string  `json:"justification"`
}

// Engine ranks aggregated stat lines against the player registry.
type Engine struct {
	lookup map[string]*players.Player
	lines  map[string]stats.Line
}

// NewEngine constructs an Engine. Stat lines without a matching registry
// entry are ignored during ranking.
func NewEngine(lookup map[string]*players.Player, lines map[string]stats.Line) *Engine {
	return &Engine{lookup: lookup, lines: lines}
}

// ComputeMVP returns at most topN citations sorted by non-increasing final
// score. Final score layers the narrative boost (morale and injury history)
// on top of the impact score. Ties break on player id so rankings stay
// deterministic.
func (e *Engine) ComputeMVP(topN int) []Citation {
	type candidate struct {
		player *players.Player
		line   stats.Line
		impact float64
		score  float64
	}

	candidates := make([]candidate, 0, len(e.lines))
	for pid, line := range e.lines {
		p, ok := e.lookup[pid]
		if !ok || p == nil {
			continue
		}
		impact := float64(line.RushYards)*weightRushYards +
			float64(line.PassYards)*weightPassYards +
			float64(line.RushTDs)*weightRushTDs +
			float64(line.PassTDs)*weightPassTDs +
			float64(line.YAC)*weightYAC
		narrative := (p.Morale-0.5)*moraleBoostScale - float64(len(p.Injuries))*injuryPenalty
		candidates = append(candidates, candidate{
			player: p,
			line:   line,
			impact: impact,
			score:  impact + narrative,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].player.ID < candidates[j].player.ID
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(candidates) {
		topN = len(candidates)
	}

	results := make([]Citation, 0, topN)
	for _, c := range candidates[:topN] {
		results = append(results, Citation{
			PlayerID:      c.player.ID,
			PlayerName:    c.player.Name,
			Score:         round2(c.score),
			Impact:        round2(c.impact),
			Justification: justify(c.player, c.line),
		})
	}
	return results
}

// justify synthesizes the citation text from whichever notable thresholds
// the player cleared.
func justify(p *players.Player, line stats.Line) string {
	var reasons []string
	if line.PassYards > notableYards {
		reasons = append(reasons, fmt.Sprintf("%d passing yards", line.PassYards))
	}
	if line.RushYards > notableYards {
		reasons = append(reasons, fmt.Sprintf("%d rushing yards", line.RushYards))
	}
	if total := line.PassTDs + line.RushTDs; total > notableTDs {
		reasons = append(reasons, fmt.Sprintf("%d total TDs", total))
	}
	if len(p.Injuries) > 0 {
		reasons = append(reasons, fmt.Sprintf("played through %d injury events", len(p.Injuries)))
	}
	if len(reasons) == 0 {
		return defaultJustification
	}
	return strings.Join(reasons, "; ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
