package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if c.Rental.PeriodDays < 1 {
		return errors.New("rental.period_days must be at least 1")
	}
	if c.Session.LockTimeoutSeconds < 0 {
		return errors.New("session.lock_timeout_seconds must be >= 0")
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.ContentFile == c.Paths.AccountsFile {
		return fmt.Errorf("paths.content_file and paths.accounts_file must differ (both %q)", c.Paths.ContentFile)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
