package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("expected default log level %s, got %s", defaultLogLevel, cfg.LogLevel)
	}
	if cfg.Roster.Source != defaultRosterSource {
		t.Fatalf("expected default roster source %s, got %s", defaultRosterSource, cfg.Roster.Source)
	}
	if cfg.Roster.RefreshInterval != defaultRosterRefresh {
		t.Fatalf("expected default refresh interval %s, got %s", defaultRosterRefresh, cfg.Roster.RefreshInterval)
	}
	if cfg.Database.URL != "" {
		t.Fatalf("expected empty database url by default, got %s", cfg.Database.URL)
	}
	if cfg.Database.MaxConns != defaultDatabaseMaxConns {
		t.Fatalf("expected default max conns %d, got %d", defaultDatabaseMaxConns, cfg.Database.MaxConns)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envRosterSource, "postgres")
	t.Setenv(envRosterFile, "/tmp/players.json")
	t.Setenv(envRosterRefresh, "45s")
	t.Setenv(envDatabaseURL, "postgres://localhost/players")
	t.Setenv(envDatabaseMaxConns, "5")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Roster.Source != "postgres" {
		t.Fatalf("expected roster source postgres, got %s", cfg.Roster.Source)
	}
	if cfg.Roster.File != "/tmp/players.json" {
		t.Fatalf("expected roster file override, got %s", cfg.Roster.File)
	}
	if cfg.Roster.RefreshInterval != 45*time.Second {
		t.Fatalf("expected refresh interval 45s, got %s", cfg.Roster.RefreshInterval)
	}
	if cfg.Database.URL != "postgres://localhost/players" {
		t.Fatalf("expected database url override, got %s", cfg.Database.URL)
	}
	if cfg.Database.MaxConns != 5 {
		t.Fatalf("expected max conns 5, got %d", cfg.Database.MaxConns)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envRosterRefresh, "not-a-duration")

	cfg := Load()

	if cfg.Roster.RefreshInterval != defaultRosterRefresh {
		t.Fatalf("expected default refresh interval on invalid value, got %s", cfg.Roster.RefreshInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envRosterRefresh, "0s")

	cfg := Load()

	if cfg.Roster.RefreshInterval != defaultRosterRefresh {
		t.Fatalf("expected default refresh interval on non-positive value, got %s", cfg.Roster.RefreshInterval)
	}
}

func TestLoadMetricsOverrides(t *testing.T) {
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envMetricsPort, "9191")
	t.Setenv(envOtelService, "players-staging")

	cfg := Load()

	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
	if cfg.Metrics.Port != "9191" {
		t.Fatalf("expected metrics port 9191, got %s", cfg.Metrics.Port)
	}
	if cfg.Metrics.ServiceName != "players-staging" {
		t.Fatalf("expected service name override, got %s", cfg.Metrics.ServiceName)
	}
}
