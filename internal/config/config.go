package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	LogFormat   string
	LogLevel    string
	RunInterval Duration
	Sim         SimConfig
	Snapshots   SnapshotConfig
	Archive     ArchiveConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		LogFormat:   envOrDefault(envLogFormat, "text"),
		LogLevel:    envOrDefault(envLogLevel, "info"),
		RunInterval: durationEnvOrDefault(envRunInterval, defaultRunInterval),
		Sim:         loadSim(),
		Snapshots:   loadSnapshots(),
		Archive:     loadArchive(),
		Metrics:     loadMetrics(),
	}
}
