package config

const (
	defaultDataDir          = "~/.local/share/reelhouse"
	defaultContentFile      = "content.txt"
	defaultAccountsFile     = "users.txt"
	defaultSnapshotFile     = "reelhouse.db"
	defaultRentalPeriodDays = 7
	defaultLogFormat        = "console"
	defaultLogLevel         = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:      defaultDataDir,
			ContentFile:  defaultContentFile,
			AccountsFile: defaultAccountsFile,
			SnapshotFile: defaultSnapshotFile,
		},
		Rental: Rental{
			PeriodDays: defaultRentalPeriodDays,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
