package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from the YAML file at path and the environment.
// Priority: ENV > YAML > defaults (via env-default tags).
// An empty path loads from ENV and defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	return &cfg, nil
}
