package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Override adjusts a loaded Config before validation, e.g. from CLI flags.
type Override func(*Config)

// Load reads configuration from a YAML file and environment variables.
// Priority: overrides > ENV > YAML > defaults (via env-default tags).
// The YAML file path is path, or CONFIG_PATH when path is empty. With
// neither set, configuration comes from ENV + defaults only. A named file
// that does not exist is an error.
func Load(path string, overrides ...Override) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	for _, o := range overrides {
		o(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
