package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if t := c.Auth.InternalToken; t != "" && len(t) < 16 {
		return fmt.Errorf("auth.internal_token must be at least 16 characters (got %d)", len(t))
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.Debate.validate(); err != nil {
		return fmt.Errorf("debate: %w", err)
	}

	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit: rps and burst must be >= 0")
	}
	if c.RateLimit.Enabled() && c.RateLimit.Burst == 0 {
		return fmt.Errorf("rate_limit: burst must be > 0 when rps is set")
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

// IsolationLevels lists the accepted database.tx_isolation values.
var IsolationLevels = []string{"read_committed", "repeatable_read", "serializable"}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be between 0 and max_conns (got %d)", d.MinConns)
	}

	level := strings.ToLower(strings.TrimSpace(d.TxIsolation))
	if level == "" {
		d.TxIsolation = "read_committed"
		return nil
	}
	for _, l := range IsolationLevels {
		if level == l {
			d.TxIsolation = level
			return nil
		}
	}
	return fmt.Errorf("tx_isolation must be one of %s (got %q)", strings.Join(IsolationLevels, ", "), d.TxIsolation)
}

func (d *DebateConfig) validate() error {
	if d.ConflictRetries < 0 {
		return fmt.Errorf("conflict_retries must be >= 0 (got %d)", d.ConflictRetries)
	}
	if d.MinContentLength < 1 {
		return fmt.Errorf("min_content_length must be >= 1 (got %d)", d.MinContentLength)
	}
	if d.MaxArgumentsPerSubmission < 1 {
		return fmt.Errorf("max_arguments_per_submission must be >= 1 (got %d)", d.MaxArgumentsPerSubmission)
	}
	if d.MaxReferencesPerItem < 0 {
		return fmt.Errorf("max_references_per_item must be >= 0 (got %d)", d.MaxReferencesPerItem)
	}
	return nil
}
