package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gridiron-sim/internal/sim/career"
	"gridiron-sim/internal/sim/season"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadSeason(label string) (*season.Summary, error)
	LoadCareers(label string) ([]*career.State, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSeason reads a season snapshot by label from disk. Files are expected
// at {basePath}/seasons/{label}.json with a season.Summary payload.
func (s *FSStore) LoadSeason(label string) (*season.Summary, error) {
	var payload season.Summary
	if err := s.load(kindSeasons, label, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// LoadCareers reads a careers snapshot by label from disk.
func (s *FSStore) LoadCareers(label string) ([]*career.State, error) {
	var payload []*career.State
	if err := s.load(kindCareers, label, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// LatestSeasonLabel returns the newest season label from the manifest.
func (s *FSStore) LatestSeasonLabel() (string, bool) {
	if s == nil {
		return "", false
	}
	m, err := readManifest(filepath.Join(s.basePath, "manifest.json"), 0)
	if err != nil || len(m.Seasons.Labels) == 0 {
		return "", false
	}
	return m.Seasons.Labels[len(m.Seasons.Labels)-1], true
}

func (s *FSStore) load(kind snapshotKind, label string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if label == "" {
		return errors.New("snapshot label required")
	}
	path := filepath.Join(s.basePath, string(kind), fmt.Sprintf("%s.json", label))
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(payload)
}
