package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Pokemon.DefaultLimit < 1 {
		return fmt.Errorf("pokemon.default_limit must be >= 1 (got %d)", c.Pokemon.DefaultLimit)
	}
	if c.Pokemon.MaxLimit < c.Pokemon.DefaultLimit {
		return fmt.Errorf("pokemon.max_limit must be >= default_limit (got %d < %d)",
			c.Pokemon.MaxLimit, c.Pokemon.DefaultLimit)
	}

	if err := c.Seed.validate(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))
	switch d.Driver {
	case DriverPostgres, DriverSQLite:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown driver %q (want postgres, sqlite or memory)", d.Driver)
	}
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be <= max_conns (got %d > %d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (s *SeedConfig) validate() error {
	u, err := url.Parse(s.SourceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("source_url must be an absolute URL (got %q)", s.SourceURL)
	}
	if s.PageSize < 1 {
		return fmt.Errorf("page_size must be >= 1 (got %d)", s.PageSize)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", s.Timeout)
	}
	return nil
}
