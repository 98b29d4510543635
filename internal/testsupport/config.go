package testsupport

import (
	"path/filepath"
	"testing"

	"reelhouse/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Paths are already absolute, as Load would leave them.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	dataDir := filepath.Join(base, "data")
	cfgVal.Paths.DataDir = dataDir
	cfgVal.Paths.ContentFile = filepath.Join(dataDir, "content.txt")
	cfgVal.Paths.AccountsFile = filepath.Join(dataDir, "users.txt")
	cfgVal.Paths.SnapshotFile = filepath.Join(dataDir, "reelhouse.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithRentalPeriod overrides the rental period on the test config.
func WithRentalPeriod(days int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Rental.PeriodDays = days
	}
}

// WithLockTimeout sets how long session.Open waits for the data lock.
func WithLockTimeout(seconds int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Session.LockTimeoutSeconds = seconds
	}
}

// WithLogDir enables file logging under the temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}

// WithDataFiles seeds the content and accounts files before the test runs.
func WithDataFiles(content, accounts string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Paths.ContentFile, content)
		WriteFile(b.t, b.cfg.Paths.AccountsFile, accounts)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
