package config

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	URL      string
	MaxConns int
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		URL:      envOrDefault(envDatabaseURL, ""),
		MaxConns: intEnvOrDefault(envDatabaseMaxConns, defaultDatabaseMaxConns),
	}
}
