package careers

import (
	"sort"

	"gridiron-sim/internal/sim/career"
)

// Store defines the contract for persisting and retrieving career states.
type Store interface {
	ListCareers() []*career.State
	GetCareer(playerID string) (*career.State, bool)
	PutCareer(state *career.State)
	SetCareers(states []*career.State)
}

// Service coordinates career operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Careers returns the tracked careers ordered by player id.
func (s *Service) Careers() []*career.State {
	states := s.store.ListCareers()
	sort.Slice(states, func(i, j int) bool {
		return states[i].Player.ID < states[j].Player.ID
	})
	return states
}

// CareerByID returns a single career if present.
func (s *Service) CareerByID(playerID string) (*career.State, bool) {
	return s.store.GetCareer(playerID)
}

// Track stores or updates one career.
func (s *Service) Track(state *career.State) {
	s.store.PutCareer(state)
}

// Replace swaps the tracked careers with a new snapshot.
func (s *Service) Replace(states []*career.State) {
	s.store.SetCareers(states)
}
