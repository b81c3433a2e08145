package config

// RosterConfig controls where the player roster is loaded from and how often
// the in-memory snapshot is rebuilt.
type RosterConfig struct {
	Source          string
	File            string
	RefreshInterval Duration
}

func loadRoster() RosterConfig {
	return RosterConfig{
		Source:          envOrDefault(envRosterSource, defaultRosterSource),
		File:            envOrDefault(envRosterFile, defaultRosterFile),
		RefreshInterval: durationEnvOrDefault(envRosterRefresh, defaultRosterRefresh),
	}
}
