package store

import (
	"testing"

	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/sim/career"
	"gridiron-sim/internal/sim/season"
)

func careerFor(id string) *career.State {
	return &career.State{
		Player: players.New(id, "Player "+id, players.PositionQB, 20, nil),
		Stage:  career.StageHighSchool,
	}
}

func TestLatestSeasonEmpty(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.LatestSeason(); ok {
		t.Fatal("expected no season in a fresh store")
	}
}

func TestSetAndGetSeason(t *testing.T) {
	s := NewMemoryStore()
	s.SetSeason(&season.Summary{Seed: 42, Weeks: 17})

	got, ok := s.LatestSeason()
	if !ok {
		t.Fatal("expected stored season")
	}
	if got.Seed != 42 || got.Weeks != 17 {
		t.Fatalf("unexpected summary %+v", got)
	}
}

func TestPutAndGetCareer(t *testing.T) {
	s := NewMemoryStore()
	s.PutCareer(careerFor("p1"))

	got, ok := s.GetCareer("p1")
	if !ok {
		t.Fatal("expected stored career")
	}
	if got.Player.ID != "p1" {
		t.Fatalf("unexpected career %+v", got)
	}
	if _, ok := s.GetCareer("missing"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestPutCareerIgnoresNil(t *testing.T) {
	s := NewMemoryStore()
	s.PutCareer(nil)
	s.PutCareer(&career.State{})
	if got := len(s.ListCareers()); got != 0 {
		t.Fatalf("expected empty store, got %d entries", got)
	}
}

func TestSetCareersReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.PutCareer(careerFor("old"))

	s.SetCareers([]*career.State{careerFor("a"), careerFor("b"), nil})

	if _, ok := s.GetCareer("old"); ok {
		t.Fatal("expected old entry to be replaced")
	}
	if got := len(s.ListCareers()); got != 2 {
		t.Fatalf("expected 2 careers, got %d", got)
	}
}
