package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// These tests mutate the environment, so none of them run in parallel.

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"BALSA_BASE_URL", "BALSA_TIMEOUT", "BALSA_SESSION_FILE", "BALSA_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// Point the file lookup at an empty location so a developer's real
	// config file cannot leak into the test.
	t.Setenv("BALSA_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BALSA_CONFIG", "")
	os.Unsetenv("BALSA_CONFIG")
	// Redirect the user config dir so the default-path probe stays
	// inside the test sandbox.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("BaseURL=%q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("Timeout=%s", cfg.Timeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel=%q", cfg.LogLevel)
	}
	if cfg.SessionFile == "" {
		t.Fatalf("SessionFile empty")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "base_url: https://api.travessias.example\ntimeout: 30s\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BALSA_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://api.travessias.example" {
		t.Fatalf("BaseURL=%q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("Timeout=%s", cfg.Timeout)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel=%q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: https://from-file.example\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BALSA_CONFIG", path)
	t.Setenv("BALSA_BASE_URL", "https://from-env.example")
	t.Setenv("BALSA_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://from-env.example" {
		t.Fatalf("BaseURL=%q, want the env value to win", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("Timeout=%s", cfg.Timeout)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)
	// clearEnv already points BALSA_CONFIG at a file that does not
	// exist; an explicit path must not be silently skipped.
	if _, err := Load(); err == nil {
		t.Fatalf("Load succeeded with a missing explicit config file")
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BALSA_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatalf("Load succeeded on malformed YAML")
	}
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BALSA_CONFIG", path)
	t.Setenv("BALSA_TIMEOUT", "-1s")

	if _, err := Load(); err == nil {
		t.Fatalf("Load accepted a negative timeout")
	}
}
