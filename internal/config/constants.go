package config

import "time"

const (
	envPort         = "PORT"
	envLogFormat    = "LOG_FORMAT"
	envLogLevel     = "LOG_LEVEL"
	envSimSeed      = "SIM_SEED"
	envSeasonWeeks  = "SEASON_WEEKS"
	envLeagueSize   = "LEAGUE_SIZE"
	envCareerCohort = "CAREER_COHORT"
	envRunInterval  = "RUN_INTERVAL"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken   = "ADMIN_TOKEN"
	envSnapshotOn   = "SNAPSHOT_ENABLED"
	envSnapshotDir  = "SNAPSHOT_DIR"
	envSnapshotKeep = "SNAPSHOT_KEEP"
	envArchivePath  = "ARCHIVE_PATH"

	defaultPort = "4000"
	// Seed 0 means "no override"; the stream falls back to wall-clock time.
	defaultSimSeed     = int64(0)
	defaultSeasonWeeks = 17
	defaultLeagueSize  = 8
	// Draft-class prospects whose careers are played out each cycle.
	defaultCareerCohort = 6
	// Cadence for the background league runner; each tick simulates one season.
	defaultRunInterval  = 30 * Duration(time.Second)
	defaultMetricsPort  = "9090"
	defaultSnapshotOn   = true
	defaultSnapshotDir  = "data/snapshots"
	defaultSnapshotKeep = 10
)
