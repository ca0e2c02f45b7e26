package seasons

import (
	"gridiron-sim/internal/sim/awards"
	"gridiron-sim/internal/sim/season"
)

// Store defines the contract for persisting and retrieving season results.
type Store interface {
	LatestSeason() (*season.Summary, bool)
	SetSeason(summary *season.Summary)
}

// Service coordinates season-result operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Latest returns the most recent season summary.
func (s *Service) Latest() (*season.Summary, bool) {
	return s.store.LatestSeason()
}

// Replace swaps the stored season summary with a new run.
func (s *Service) Replace(summary *season.Summary) {
	s.store.SetSeason(summary)
}

// Standings returns the latest standings table.
func (s *Service) Standings() ([]season.Standing, bool) {
	summary, ok := s.store.LatestSeason()
	if !ok {
		return nil, false
	}
	return summary.Standings, true
}

// MVPs returns the latest award citations.
func (s *Service) MVPs() ([]awards.Citation, bool) {
	summary, ok := s.store.LatestSeason()
	if !ok {
		return nil, false
	}
	return summary.MVPs, true
}
