package awards

import (
	"strings"
	"testing"
	"time"

	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/sim/stats"
)

func registry(ids ...string) map[string]*players.Player {
	out := make(map[string]*players.Player, len(ids))
	for _, id := range ids {
		out[id] = players.New(id, "Player "+id, players.PositionWR, 24, nil)
	}
	return out
}

func TestComputeMVPSortedNonIncreasing(t *testing.T) {
	lookup := registry("a", "b", "c")
	lines := map[string]stats.Line{
		"a": {PassYards: 100},
		"b": {PassYards: 300},
		"c": {PassYards: 200},
	}

	got := NewEngine(lookup, lines).ComputeMVP(3)
	if len(got) != 3 {
		t.Fatalf("expected 3 citations, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not non-increasing: %v then %v", got[i-1].Score, got[i].Score)
		}
	}
	if got[0].PlayerID != "b" {
		t.Fatalf("expected b first, got %s", got[0].PlayerID)
	}
}

func TestComputeMVPRespectsTopN(t *testing.T) {
	lookup := registry("a", "b", "c", "d")
	lines := map[string]stats.Line{
		"a": {RushYards: 10}, "b": {RushYards: 20},
		"c": {RushYards: 30}, "d": {RushYards: 40},
	}

	if got := NewEngine(lookup, lines).ComputeMVP(2); len(got) != 2 {
		t.Fatalf("expected 2 citations, got %d", len(got))
	}
	if got := NewEngine(lookup, lines).ComputeMVP(10); len(got) != 4 {
		t.Fatalf("expected all 4 citations, got %d", len(got))
	}
}

func TestComputeMVPImpactFormula(t *testing.T) {
	lookup := registry("a")
	lines := map[string]stats.Line{
		"a": {RushYards: 100, PassYards: 100, RushTDs: 1, PassTDs: 1, YAC: 10},
	}

	got := NewEngine(lookup, lines).ComputeMVP(1)
	// 100*0.7 + 100*1.1 + 1*20 + 1*25 + 10*0.3 = 228
	if got[0].Impact != 228 {
		t.Fatalf("expected impact 228, got %v", got[0].Impact)
	}
	// Neutral morale (0.5), no injuries: score equals impact.
	if got[0].Score != 228 {
		t.Fatalf("expected score 228, got %v", got[0].Score)
	}
}

func TestComputeMVPNarrativeAdjustment(t *testing.T) {
	lookup := registry("a")
	lookup["a"].Morale = 0.9
	lookup["a"].RecordInjury("sprain", "g1", time.Now())
	lines := map[string]stats.Line{"a": {RushYards: 100}}

	got := NewEngine(lookup, lines).ComputeMVP(1)
	// impact 70, narrative = (0.9-0.5)*10 - 1*5 = -1
	if got[0].Score != 69 {
		t.Fatalf("expected score 69, got %v", got[0].Score)
	}
}

func TestComputeMVPJustifications(t *testing.T) {
	lookup := registry("a")
	lookup["a"].RecordInjury("hamstring", "g1", time.Now())
	lines := map[string]stats.Line{
		"a": {PassYards: 250, RushYards: 300, PassTDs: 2, RushTDs: 2},
	}

	got := NewEngine(lookup, lines).ComputeMVP(1)
	j := got[0].Justification
	for _, want := range []string{
		"250 passing yards",
		"300 rushing yards",
		"4 total TDs",
		"played through 1 injury events",
	} {
		if !strings.Contains(j, want) {
			t.Fatalf("justification %q missing %q", j, want)
		}
	}
	if !strings.Contains(j, "; ") {
		t.Fatalf("expected semicolon-joined justification, got %q", j)
	}
}

func TestComputeMVPDefaultJustification(t *testing.T) {
	lookup := registry("a")
	lines := map[string]stats.Line{"a": {PassYards: 10}}

	got := NewEngine(lookup, lines).ComputeMVP(1)
	if got[0].Justification != defaultJustification {
		t.Fatalf("expected default justification, got %q", got[0].Justification)
	}
}

func TestComputeMVPExcludesUnknownPlayers(t *testing.T) {
	lookup := registry("a")
	lines := map[string]stats.Line{
		"a":     {PassYards: 10},
		"ghost": {PassYards: 999},
	}

	got := NewEngine(lookup, lines).ComputeMVP(5)
	if len(got) != 1 || got[0].PlayerID != "a" {
		t.Fatalf("expected only registered players, got %+v", got)
	}
}

func TestComputeMVPZeroEventsExcluded(t *testing.T) {
	// A player present in the registry but absent from the stat lines
	// must not appear in the ranking.
	lookup := registry("a", "benchwarmer")
	lines := map[string]stats.Line{"a": {RushYards: 50}}

	got := NewEngine(lookup, lines).ComputeMVP(5)
	for _, c := range got {
		if c.PlayerID == "benchwarmer" {
			t.Fatal("player with zero events ranked")
		}
	}
}
