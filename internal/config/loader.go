package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads the YAML file named by CONFIG_PATH (or ./config.yaml) and the
// environment, then validates the result. Priority: env > YAML > defaults.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom is Load with an explicit file path. An empty path means
// ./config.yaml if present, otherwise environment and defaults only.
// A non-empty path must exist.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if err := read(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, cfg *Config) error {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("file %s: %w", path, err)
		}
		return readFile(path, cfg)
	}

	_, err := os.Stat(defaultPath)
	switch {
	case err == nil:
		return readFile(defaultPath, cfg)
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("read env: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("file %s: %w", defaultPath, err)
	}
}

func readFile(path string, cfg *Config) error {
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
