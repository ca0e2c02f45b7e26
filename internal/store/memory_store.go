package store

import (
	"sync"

	"gridiron-sim/internal/sim/career"
	"gridiron-sim/internal/sim/season"
)

// MemoryStore keeps thread-safe snapshots of the latest simulated season and
// tracked careers in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	summary *season.Summary
	careers map[string]*career.State
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		careers: make(map[string]*career.State),
	}
}

// LatestSeason returns the most recent season summary, if any.
func (s *MemoryStore) LatestSeason() (*season.Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.summary == nil {
		return nil, false
	}
	return s.summary, true
}

// SetSeason replaces the stored season summary.
func (s *MemoryStore) SetSeason(summary *season.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = summary
}

// ListCareers returns the tracked career states.
func (s *MemoryStore) ListCareers() []*career.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*career.State, 0, len(s.careers))
	for _, c := range s.careers {
		result = append(result, c)
	}
	return result
}

// GetCareer retrieves a career state by player id.
func (s *MemoryStore) GetCareer(playerID string) (*career.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.careers[playerID]
	return c, ok
}

// PutCareer stores or replaces one career state keyed by its player id.
func (s *MemoryStore) PutCareer(state *career.State) {
	if state == nil || state.Player == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.careers[state.Player.ID] = state
}

// SetCareers replaces the tracked careers with a new snapshot.
func (s *MemoryStore) SetCareers(states []*career.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.careers = make(map[string]*career.State, len(states))
	for _, c := range states {
		if c == nil || c.Player == nil {
			continue
		}
		s.careers[c.Player.ID] = c
	}
}
