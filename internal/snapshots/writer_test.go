package snapshots

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/sim/career"
	"gridiron-sim/internal/sim/season"
)

func summaryFor(seed int64) *season.Summary {
	return &season.Summary{
		Seed:  seed,
		Weeks: 17,
		Standings: []season.Standing{
			{TeamID: "t1", Name: "Falcons", City: "Springfield", Wins: 10, Losses: 7},
		},
	}
}

func TestWriteSeasonSnapshotPersistsAndUpdatesManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 5)

	if err := w.WriteSeasonSnapshot("2026-01-01", summaryFor(42)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(SeasonSnapshotPath(dir, "2026-01-01"))
	if err != nil {
		t.Fatalf("expected snapshot file: %v", err)
	}
	var got season.Summary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("snapshot not valid JSON: %v", err)
	}
	if got.Seed != 42 || len(got.Standings) != 1 {
		t.Fatalf("unexpected payload %+v", got)
	}

	m, err := readManifest(filepath.Join(dir, "manifest.json"), 5)
	if err != nil {
		t.Fatalf("expected manifest: %v", err)
	}
	if len(m.Seasons.Labels) != 1 || m.Seasons.Labels[0] != "2026-01-01" {
		t.Fatalf("unexpected manifest labels %+v", m.Seasons.Labels)
	}
	if m.Seasons.LastRefreshed.IsZero() {
		t.Fatal("expected last refreshed timestamp")
	}
}

func TestWriteSeasonSnapshotIdempotent(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 5)

	if err := w.WriteSeasonSnapshot("a", summaryFor(1)); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := w.WriteSeasonSnapshot("a", summaryFor(1)); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	m, _ := readManifest(filepath.Join(dir, "manifest.json"), 5)
	if len(m.Seasons.Labels) != 1 {
		t.Fatalf("expected 1 label after rewrite, got %+v", m.Seasons.Labels)
	}
}

func TestWriteSeasonSnapshotPrunesOldest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 2)

	for i := 1; i <= 4; i++ {
		label := fmt.Sprintf("2026-01-0%d", i)
		if err := w.WriteSeasonSnapshot(label, summaryFor(int64(i))); err != nil {
			t.Fatalf("write %s failed: %v", label, err)
		}
	}

	m, _ := readManifest(filepath.Join(dir, "manifest.json"), 2)
	if len(m.Seasons.Labels) != 2 {
		t.Fatalf("expected 2 retained labels, got %+v", m.Seasons.Labels)
	}
	if m.Seasons.Labels[0] != "2026-01-03" || m.Seasons.Labels[1] != "2026-01-04" {
		t.Fatalf("expected newest labels retained, got %+v", m.Seasons.Labels)
	}
	if _, err := os.Stat(SeasonSnapshotPath(dir, "2026-01-01")); !os.IsNotExist(err) {
		t.Fatal("expected oldest snapshot removed")
	}
	if _, err := os.Stat(SeasonSnapshotPath(dir, "2026-01-04")); err != nil {
		t.Fatalf("expected newest snapshot kept: %v", err)
	}
}

func TestWriteSeasonSnapshotRejectsEmptyLabel(t *testing.T) {
	w := NewWriter(t.TempDir(), 5)
	if err := w.WriteSeasonSnapshot("", summaryFor(1)); err == nil {
		t.Fatal("expected error for empty label")
	}
	if err := w.WriteSeasonSnapshot("x", nil); err == nil {
		t.Fatal("expected error for nil summary")
	}
}

func TestWriteCareersSnapshotSortsByPlayerID(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 5)
	states := []*career.State{
		{Player: players.New("b", "B", players.PositionQB, 20, nil)},
		{Player: players.New("a", "A", players.PositionRB, 20, nil)},
	}

	if err := w.WriteCareersSnapshot("lbl", states); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(CareersSnapshotPath(dir, "lbl"))
	if err != nil {
		t.Fatalf("expected snapshot file: %v", err)
	}
	var got []*career.State
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("snapshot not valid JSON: %v", err)
	}
	if len(got) != 2 || got[0].Player.ID != "a" || got[1].Player.ID != "b" {
		t.Fatalf("expected sorted careers, got %+v", got)
	}
}

func TestNilWriterFails(t *testing.T) {
	var w *Writer
	if err := w.WriteSeasonSnapshot("x", summaryFor(1)); err == nil {
		t.Fatal("expected error from nil writer")
	}
}
