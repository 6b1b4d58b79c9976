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
	if cfg.Data.Source != defaultDataSource {
		t.Fatalf("expected default data source %s, got %s", defaultDataSource, cfg.Data.Source)
	}
	if cfg.Data.Timeout != defaultFetchTimeout {
		t.Fatalf("expected default fetch timeout %s, got %s", defaultFetchTimeout, cfg.Data.Timeout)
	}
	if cfg.Data.ProbeInterval != defaultProbeEvery {
		t.Fatalf("expected default probe interval %s, got %s", defaultProbeEvery, cfg.Data.ProbeInterval)
	}
	if cfg.OutputDir != defaultOutputDir {
		t.Fatalf("expected default output dir %s, got %s", defaultOutputDir, cfg.OutputDir)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat || cfg.Log.File != "" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envDataSource, "https://example.com/data.json")
	t.Setenv(envFetchTimeout, "3s")
	t.Setenv(envProbeEvery, "15s")
	t.Setenv(envOutputDir, "dist")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envLogFile, "/tmp/league.log")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Data.Source != "https://example.com/data.json" {
		t.Fatalf("expected data source override, got %s", cfg.Data.Source)
	}
	if cfg.Data.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.Data.Timeout)
	}
	if cfg.Data.ProbeInterval != 15*time.Second {
		t.Fatalf("expected 15s probe interval, got %s", cfg.Data.ProbeInterval)
	}
	if cfg.OutputDir != "dist" {
		t.Fatalf("expected output dir override, got %s", cfg.OutputDir)
	}
	if cfg.Log.Format != "json" || cfg.Log.File != "/tmp/league.log" {
		t.Fatalf("expected log overrides, got %+v", cfg.Log)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envFetchTimeout, "not-a-duration")
	cfg := Load()
	if cfg.Data.Timeout != defaultFetchTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.Data.Timeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envFetchTimeout, "0s")
	cfg := Load()
	if cfg.Data.Timeout != defaultFetchTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.Data.Timeout)
	}
}
