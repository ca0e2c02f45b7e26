package stats

import (
	"testing"

	"gridiron-sim/internal/domain/events"
)

func passEvent(pid string, complete bool, yards, yac int, td bool) events.Event {
	return events.Event{
		PlayType:        events.PlayPass,
		PrimaryPlayerID: pid,
		Result:          events.Result{Complete: complete, Yards: yards, YAC: yac, Touchdown: td},
	}
}

func runEvent(pid string, yards, broken int, td bool) events.Event {
	return events.Event{
		PlayType:        events.PlayRun,
		PrimaryPlayerID: pid,
		Result:          events.Result{Yards: yards, BrokenTackles: broken, Touchdown: td},
	}
}

func TestAggregatePassCounting(t *testing.T) {
	evs := []events.Event{
		passEvent("wr1", true, 15, 4, false),
		passEvent("wr1", false, 0, 0, false),
		passEvent("wr1", true, 42, 6, true),
	}

	agg := Aggregate(evs)
	line, ok := agg["wr1"]
	if !ok {
		t.Fatal("expected wr1 entry")
	}
	if line.PassAttempts != 3 || line.Targets != 3 {
		t.Fatalf("attempts/targets: %+v", line)
	}
	if line.PassCompletions != 2 || line.PassYards != 57 || line.YAC != 10 || line.PassTDs != 1 {
		t.Fatalf("completion stats: %+v", line)
	}
}

func TestAggregateRushCounting(t *testing.T) {
	evs := []events.Event{
		runEvent("rb1", 8, 1, false),
		runEvent("rb1", 65, 2, true),
	}

	line := Aggregate(evs)["rb1"]
	if line.RushAttempts != 2 || line.RushYards != 73 || line.RushTDs != 1 || line.BrokenTackles != 3 {
		t.Fatalf("rush stats: %+v", line)
	}
}

func TestAggregateSkipsEventsWithoutPrimary(t *testing.T) {
	evs := []events.Event{
		{PlayType: events.PlayRun, Result: events.Result{Yards: 10}},
	}
	if agg := Aggregate(evs); len(agg) != 0 {
		t.Fatalf("expected empty aggregation, got %v", agg)
	}
}

func TestAggregateNoEntryWithoutEvents(t *testing.T) {
	agg := Aggregate(nil)
	if _, ok := agg["ghost"]; ok {
		t.Fatal("player with no events must have no entry")
	}
}

func TestAggregatePassYardConsistency(t *testing.T) {
	evs := []events.Event{
		passEvent("a", true, 12, 0, false),
		passEvent("a", false, 0, 0, false),
		passEvent("b", true, 30, 5, false),
		passEvent("b", true, 8, 2, false),
		runEvent("a", 22, 0, false),
	}

	wantPassYards := 0
	for _, ev := range evs {
		if ev.PlayType == events.PlayPass && ev.Result.Complete {
			wantPassYards += ev.Result.Yards
		}
	}

	agg := Aggregate(evs)
	got := 0
	for _, line := range agg {
		got += line.PassYards
	}
	if got != wantPassYards {
		t.Fatalf("aggregated pass yards %d != source %d", got, wantPassYards)
	}
}

func TestAggregateGamesPlayedHeuristic(t *testing.T) {
	var evs []events.Event
	for i := 0; i < 600; i++ {
		evs = append(evs, runEvent("rb1", 1, 0, false))
	}

	line := Aggregate(evs)["rb1"]
	// 600 events * 0.01 presence / 6.0 = 1.0
	if line.GamesPlayed != 1.0 {
		t.Fatalf("expected 1.0 games played, got %v", line.GamesPlayed)
	}
}

func TestAggregateIncompletePassAddsNoYards(t *testing.T) {
	line := Aggregate([]events.Event{passEvent("wr", false, 0, 0, false)})["wr"]
	if line.PassYards != 0 || line.PassCompletions != 0 || line.PassAttempts != 1 {
		t.Fatalf("unexpected line: %+v", line)
	}
}
