package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Retention   Retention `json:"retention"`
	Seasons     KindMeta  `json:"seasons"`
	Careers     KindMeta  `json:"careers"`
}

type Retention struct {
	Keep int `json:"keep"`
}

type KindMeta struct {
	Labels        []string  `json:"labels"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest(keep int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention:   Retention{Keep: keep},
		Seasons:     KindMeta{Labels: []string{}},
		Careers:     KindMeta{Labels: []string{}},
	}
}

func readManifest(path string, keep int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(keep), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(keep), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
