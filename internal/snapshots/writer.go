package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gridiron-sim/internal/sim/career"
	"gridiron-sim/internal/sim/season"
)

type snapshotKind string

const (
	kindSeasons snapshotKind = "seasons"
	kindCareers snapshotKind = "careers"
)

// Writer persists snapshots and manifest with count-based pruning. Labels
// sort lexically, so timestamp-derived labels prune oldest-first.
type Writer struct {
	basePath string
	keep     int
}

// NewWriter constructs a writer rooted at basePath retaining the newest keep
// snapshots per kind.
func NewWriter(basePath string, keep int) *Writer {
	if keep <= 0 {
		keep = 10
	}
	return &Writer{
		basePath: basePath,
		keep:     keep,
	}
}

func (w *Writer) snapshotPath(kind snapshotKind, label string) string {
	switch kind {
	case kindSeasons:
		return SeasonSnapshotPath(w.basePath, label)
	case kindCareers:
		return CareersSnapshotPath(w.basePath, label)
	default:
		return filepath.Join(w.basePath, string(kind), fmt.Sprintf("%s.json", label))
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSeasonSnapshot writes the season summary under the given label and
// prunes snapshots beyond the retention count.
func (w *Writer) WriteSeasonSnapshot(label string, summary *season.Summary) error {
	if summary == nil {
		return fmt.Errorf("season summary required")
	}
	return w.writeSnapshot(kindSeasons, label, summary)
}

// WriteCareersSnapshot writes the tracked career states under the given label.
func (w *Writer) WriteCareersSnapshot(label string, states []*career.State) error {
	sorted := append([]*career.State(nil), states...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Player.ID < sorted[j].Player.ID
	})
	return w.writeSnapshot(kindCareers, label, sorted)
}

func (w *Writer) writeSnapshot(kind snapshotKind, label string, payload any) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if label == "" {
		return fmt.Errorf("label required")
	}

	target := w.snapshotPath(kind, label)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp := target + ".tmp"
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(kind, label)
	}

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(kind, label)
}

func (w *Writer) updateManifest(kind snapshotKind, label string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.keep)
	now := time.Now().UTC()

	labels, err := w.listLabels(kind)
	if err != nil {
		return err
	}
	if !containsLabel(labels, label) {
		labels = append(labels, label)
	}
	pruned, err := w.pruneOldSnapshots(kind, labels)
	if err != nil {
		return err
	}

	switch kind {
	case kindSeasons:
		m.Seasons.Labels = pruned
		m.Seasons.LastRefreshed = now
	case kindCareers:
		m.Careers.Labels = pruned
		m.Careers.LastRefreshed = now
	}
	m.Retention.Keep = w.keep

	return writeManifest(w.basePath, m)
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func (w *Writer) listLabels(kind snapshotKind) ([]string, error) {
	dir := filepath.Join(w.basePath, string(kind))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var (
		labels []string
		seen   = make(map[string]struct{})
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		base := name[:len(name)-len(".json")]
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}
		labels = append(labels, base)
	}
	sort.Strings(labels)
	return labels, nil
}

func (w *Writer) pruneOldSnapshots(kind snapshotKind, labels []string) ([]string, error) {
	sort.Strings(labels)
	if len(labels) <= w.keep {
		return labels, nil
	}
	drop := labels[:len(labels)-w.keep]
	for _, label := range drop {
		_ = os.Remove(w.snapshotPath(kind, label))
	}
	return labels[len(labels)-w.keep:], nil
}
