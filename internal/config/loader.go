package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when neither CONFIG_PATH nor an explicit path is given.
const DefaultPath = "./config.yaml"

// Load reads the configuration named by CONFIG_PATH (fallback DefaultPath).
// Environment variables override YAML, which overrides env-default tags.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// defaults returns the values of fields cleanenv cannot default itself:
// env-default would also replace an explicit YAML false, so bools that
// default to true are preset here and then overlaid by YAML and ENV.
func defaults() Config {
	var cfg Config
	cfg.CORS.AllowCredentials = true
	cfg.RateLimit.Enabled = true
	cfg.Mood.StrictFilters = true
	return cfg
}

// LoadFile reads configuration from path. An empty path means DefaultPath,
// which may be absent: the service then runs on ENV and defaults alone.
// A path given explicitly must exist.
func LoadFile(path string) (*Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
