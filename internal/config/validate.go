package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Study.DefaultListLimit <= 0 {
		return fmt.Errorf("study.default_list_limit must be > 0 (got %d)", c.Study.DefaultListLimit)
	}
	if c.Study.MaxListLimit < c.Study.DefaultListLimit {
		return fmt.Errorf("study.max_list_limit must be >= default_list_limit (got %d < %d)",
			c.Study.MaxListLimit, c.Study.DefaultListLimit)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	return nil
}
