package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	if c.Rental.PeriodDays == 0 {
		c.Rental.PeriodDays = defaultRentalPeriodDays
	}
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("REELHOUSE_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}

	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.ContentFile, err = c.dataFile(c.Paths.ContentFile, defaultContentFile); err != nil {
		return fmt.Errorf("paths.content_file: %w", err)
	}
	if c.Paths.AccountsFile, err = c.dataFile(c.Paths.AccountsFile, defaultAccountsFile); err != nil {
		return fmt.Errorf("paths.accounts_file: %w", err)
	}
	if c.Paths.SnapshotFile, err = c.dataFile(c.Paths.SnapshotFile, defaultSnapshotFile); err != nil {
		return fmt.Errorf("paths.snapshot_file: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

// dataFile resolves a file name relative to the data directory unless it is
// already absolute or home-relative.
func (c *Config) dataFile(value, fallback string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	if !filepath.IsAbs(value) && !strings.HasPrefix(value, "~") {
		value = filepath.Join(c.Paths.DataDir, value)
	}
	return expandPath(value)
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("REELHOUSE_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
