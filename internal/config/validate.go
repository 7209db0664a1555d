package config

import "fmt"

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Words.Length <= 0 {
		return fmt.Errorf("words.length must be > 0 (got %d)", c.Words.Length)
	}
	if c.Game.MaxAttempts <= 0 {
		return fmt.Errorf("game.max_attempts must be > 0 (got %d)", c.Game.MaxAttempts)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret must be set")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %s)", c.Auth.TokenTTL)
	}
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path must be set for the sqlite driver")
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q (got %q)", DriverMemory, DriverSQLite, c.Store.Driver)
	}
	return nil
}
