package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables according to the
// env / envPrefix struct tags.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingEnvVariables, err)
	}
	return nil
}
