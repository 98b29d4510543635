package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"reelhouse/internal/catalog"
	"reelhouse/internal/config"
	"reelhouse/internal/flatfile"
	"reelhouse/internal/ledger"
	"reelhouse/internal/library"
	"reelhouse/internal/logging"
)

var (
	// ErrLocked is returned when another process holds the data directory.
	ErrLocked = errors.New("data directory is locked by another reelhouse process")
	// ErrSaveFailed wraps the write error when Close cannot persist the library.
	ErrSaveFailed = errors.New("save failed")
)

const lockRetryDelay = 100 * time.Millisecond

// Session owns the loaded library and the data directory lock.
type Session struct {
	cfg         *config.Config
	logger      *slog.Logger
	lock        *flock.Flock
	id          string
	lib         *library.Library
	libOpts     []library.Option
	diagnostics []error
	closed      bool
}

// Option customizes Open.
type Option func(*openOptions)

type openOptions struct {
	libraryOpts []library.Option
}

// WithLibraryOptions passes options through to library.New.
func WithLibraryOptions(opts ...library.Option) Option {
	return func(o *openOptions) {
		o.libraryOpts = append(o.libraryOpts, opts...)
	}
}

// Open locks the data directory and loads the library.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	var options openOptions
	for _, opt := range opts {
		opt(&options)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lockPath := cfg.LockPath()
	lock := flock.New(lockPath)
	if err := acquire(ctx, lock, cfg.Session.LockTimeoutSeconds); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger = logging.NewComponentLogger(logger, "session").With(logging.String(logging.FieldCorrelationID, id))

	cat, accounts, diags, err := flatfile.Load(cfg.Paths.ContentFile, cfg.Paths.AccountsFile)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("load library: %w", err)
	}
	for _, diag := range diags {
		logging.WarnWithContext(logger, "skipped record while loading", "load_record_skipped",
			logging.Error(diag),
			logging.String(logging.FieldErrorHint, "fix or remove the line; it will be dropped on next save"),
			logging.String(logging.FieldImpact, "record not loaded"),
		)
	}

	libOpts := append([]library.Option{library.WithRentalPeriod(cfg.Rental.PeriodDays)}, options.libraryOpts...)
	s := &Session{
		cfg:         cfg,
		logger:      logger,
		lock:        lock,
		id:          id,
		lib:         library.New(cat, accounts, libOpts...),
		libOpts:     libOpts,
		diagnostics: diags,
	}
	logger.Debug("session opened",
		logging.String("lock", lockPath),
		logging.Int("content", cat.Len()),
		logging.Int("accounts", accounts.Len()),
		logging.Int("diagnostics", len(diags)),
	)
	return s, nil
}

func acquire(ctx context.Context, lock *flock.Flock, timeoutSeconds int) error {
	if timeoutSeconds <= 0 {
		ok, err := lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquire lock: %w", err)
		}
		if !ok {
			return ErrLocked
		}
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
	defer cancel()
	ok, err := lock.TryLockContext(waitCtx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrLocked
		}
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrLocked
	}
	return nil
}

// ID returns the session's correlation identifier.
func (s *Session) ID() string { return s.id }

// Library returns the loaded library.
func (s *Session) Library() *library.Library { return s.lib }

// Logger returns the session-scoped logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Replace swaps in a new catalog and account set, keeping the library
// options. The replacement is written on Close.
func (s *Session) Replace(cat *catalog.Catalog, accounts *ledger.Accounts) {
	s.lib = library.New(cat, accounts, s.libOpts...)
	s.logger.Info("library replaced",
		logging.Int("content", s.lib.Catalog().Len()),
		logging.Int("accounts", s.lib.Accounts().Len()),
	)
}

// Diagnostics returns the record errors reported while loading.
func (s *Session) Diagnostics() []error { return s.diagnostics }

// Close saves the library and releases the lock. The lock is released even
// when saving fails.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	saveErr := flatfile.Save(s.cfg.Paths.ContentFile, s.cfg.Paths.AccountsFile, s.lib.Catalog(), s.lib.Accounts())
	if saveErr != nil {
		saveErr = fmt.Errorf("%w: %w", ErrSaveFailed, saveErr)
		logging.ErrorWithContext(s.logger, "save failed", "save_failed",
			logging.Error(saveErr),
			logging.String(logging.FieldErrorHint, "check permissions on the data directory"),
		)
	}
	unlockErr := s.unlock()
	return errors.Join(saveErr, unlockErr)
}

// Discard releases the lock without saving.
func (s *Session) Discard() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.unlock()
}

func (s *Session) unlock() error {
	if err := s.lock.Unlock(); err != nil {
		logging.WarnWithContext(s.logger, "failed to release data lock", "lock_release_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove the lock file if no reelhouse process is running"),
		)
		return fmt.Errorf("release lock: %w", err)
	}
	s.logger.Debug("session closed")
	return nil
}
