package config

// SimConfig holds the simulation parameters for one league run.
type SimConfig struct {
	Seed         int64 // 0 lets the stream pick a time-derived seed
	Weeks        int
	LeagueSize   int
	CareerCohort int
}

func loadSim() SimConfig {
	return SimConfig{
		Seed:         int64EnvOrDefault(envSimSeed, defaultSimSeed),
		Weeks:        intEnvOrDefault(envSeasonWeeks, defaultSeasonWeeks),
		LeagueSize:   intEnvOrDefault(envLeagueSize, defaultLeagueSize),
		CareerCohort: intEnvOrDefault(envCareerCohort, defaultCareerCohort),
	}
}

// ArchiveConfig controls the optional on-disk results archive. An empty path
// disables archiving.
type ArchiveConfig struct {
	Path string
}

func loadArchive() ArchiveConfig {
	return ArchiveConfig{Path: envOrDefault(envArchivePath, "")}
}
