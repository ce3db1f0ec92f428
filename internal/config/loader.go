package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. The YAML file path comes from
// TRAINDESK_CONFIG (fallback "./traindesk.yaml"). If the file does not exist
// and TRAINDESK_CONFIG was not set explicitly, configuration is loaded from
// ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("TRAINDESK_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = "./traindesk.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
