package config

// SnapshotConfig controls persisted season-summary output.
type SnapshotConfig struct {
	Enabled    bool
	Dir        string // base path for snapshot files
	Keep       int    // how many season snapshots to retain
	AdminToken string // auth for the manual refresh endpoint
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled:    boolEnvOrDefault(envSnapshotOn, defaultSnapshotOn),
		Dir:        envOrDefault(envSnapshotDir, defaultSnapshotDir),
		Keep:       intEnvOrDefault(envSnapshotKeep, defaultSnapshotKeep),
		AdminToken: envOrDefault(envAdminToken, ""),
	}
}
