package archive

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/sim/career"
	"gridiron-sim/internal/sim/season"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "league.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoadSeason(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	summary := &season.Summary{
		Seed:     42,
		Weeks:    17,
		Champion: "Falcons",
		Standings: []season.Standing{
			{TeamID: "t1", Name: "Falcons", Wins: 12, Losses: 5},
		},
	}
	id, err := store.SaveSeason(ctx, summary)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero row id")
	}

	got, err := store.LatestSeason(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Seed != 42 || got.Champion != "Falcons" || len(got.Standings) != 1 {
		t.Fatalf("unexpected summary %+v", got)
	}

	n, err := store.SeasonCount(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 season, got %d err=%v", n, err)
	}
}

func TestLatestSeasonOrdersByInsert(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, seed := range []int64{1, 2, 3} {
		if _, err := store.SaveSeason(ctx, &season.Summary{Seed: seed}); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	got, err := store.LatestSeason(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Seed != 3 {
		t.Fatalf("expected newest season, got seed %d", got.Seed)
	}
}

func TestLatestSeasonEmpty(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.LatestSeason(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveCareerUpsert(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	state := &career.State{
		Player: players.New("p1", "Jalen Moore", players.PositionQB, 22, nil),
		Stage:  career.StageCollege,
	}
	if err := store.SaveCareer(ctx, state); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	state.Stage = career.StageNFL
	state.Retired = true
	state.RetiredYear = 14
	if err := store.SaveCareer(ctx, state); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := store.Career(ctx, "p1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Stage != career.StageNFL || !got.Retired || got.RetiredYear != 14 {
		t.Fatalf("unexpected career %+v", got)
	}

	retired, err := store.RetiredCareers(ctx)
	if err != nil || len(retired) != 1 {
		t.Fatalf("expected 1 retired career, got %d err=%v", len(retired), err)
	}
}

func TestCareerMissing(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Career(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var store *Store
	ctx := context.Background()

	if err := store.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
	if _, err := store.SaveSeason(ctx, &season.Summary{}); err != nil {
		t.Fatalf("nil save season: %v", err)
	}
	if err := store.SaveCareer(ctx, nil); err != nil {
		t.Fatalf("nil save career: %v", err)
	}
	if _, err := store.LatestSeason(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from nil store, got %v", err)
	}
}
