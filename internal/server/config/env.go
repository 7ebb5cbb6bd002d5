package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays variables named in the Config env tags. Unset
// variables keep the current value. A nil environ reads the process
// environment.
func parseEnv(config *Config, environ map[string]string) error {
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
