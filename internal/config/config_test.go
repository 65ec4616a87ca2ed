package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.DataDir == "" {
		t.Error("DataDir is empty, want home-relative default")
	}
	if cfg.Capacities != DefaultCapacities() {
		t.Errorf("Capacities = %+v, want defaults", cfg.Capacities)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clerk.yaml")
	yaml := "data_dir: /tmp/clerk-data\nlog_level: debug\ncapacities:\n  rooms: 12\n  loans: 3\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "/tmp/clerk-data" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/tmp/clerk-data")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Capacities.Rooms != 12 {
		t.Errorf("Capacities.Rooms = %d, want 12", cfg.Capacities.Rooms)
	}
	if cfg.Capacities.Loans != 3 {
		t.Errorf("Capacities.Loans = %d, want 3", cfg.Capacities.Loans)
	}
	// Unset keys keep their defaults.
	if cfg.Capacities.Students != DefaultCapacities().Students {
		t.Errorf("Capacities.Students = %d, want default %d", cfg.Capacities.Students, DefaultCapacities().Students)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with missing explicit file succeeded, want error")
	}
}
