package snapshots

import (
	"fmt"
	"path/filepath"
)

// SeasonSnapshotPath builds the path to a season snapshot for a given label.
func SeasonSnapshotPath(basePath, label string) string {
	return filepath.Join(basePath, "seasons", fmt.Sprintf("%s.json", label))
}

// CareersSnapshotPath builds the path to a careers snapshot for a given label.
func CareersSnapshotPath(basePath, label string) string {
	return filepath.Join(basePath, "careers", fmt.Sprintf("%s.json", label))
}
