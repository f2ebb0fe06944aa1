// Package config loads client configuration with the usual layering:
// built-in defaults, then an optional YAML file, then environment
// variables. Later layers win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the fully resolved client configuration.
type Config struct {
	// BaseURL is the ticketing API root.
	BaseURL string `yaml:"base_url" env:"BALSA_BASE_URL"`

	// Timeout bounds each API request end to end.
	Timeout time.Duration `yaml:"timeout" env:"BALSA_TIMEOUT"`

	// SessionFile is where the signed-in session is persisted.
	SessionFile string `yaml:"session_file" env:"BALSA_SESSION_FILE"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"BALSA_LOG_LEVEL"`
}

func defaults() Config {
	return Config{
		BaseURL:     "http://localhost:8080",
		Timeout:     10 * time.Second,
		SessionFile: defaultSessionFile(),
		LogLevel:    "info",
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "balsa", "session.json")
}

// Load resolves the configuration. A .env file in the working
// directory is honored before the environment is read. The YAML file is
// taken from BALSA_CONFIG when set, falling back to
// <user config dir>/balsa/config.yaml; a missing file at either
// location is not an error, an unreadable or malformed one is.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	path := os.Getenv("BALSA_CONFIG")
	explicit := path != ""
	if !explicit {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "balsa", "config.yaml")
		}
	}
	if path != "" {
		if err := loadFile(path, &cfg, explicit); err != nil {
			return Config{}, err
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("base URL must not be empty")
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config, explicit bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}
