package main

import (
	"errors"
	"io/fs"
	"os"

	"reelhouse/internal/catalog"
	"reelhouse/internal/flatfile"
	"reelhouse/internal/ledger"
	"reelhouse/internal/library"
	"reelhouse/internal/session"
)

// failureKind maps a command error to a stable classification used for the
// exit code and JSON error output.
func failureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, session.ErrForbidden):
		return "forbidden"
	case errors.Is(err, session.ErrLocked):
		return "locked"
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, ledger.ErrNotFound):
		return "not_found"
	case errors.Is(err, catalog.ErrDuplicateTitle),
		errors.Is(err, ledger.ErrDuplicateUser),
		errors.Is(err, ledger.ErrInvalidLedgerState):
		return "conflict"
	case errors.Is(err, catalog.ErrInvalidEntry),
		errors.Is(err, ledger.ErrInvalidUsername),
		errors.Is(err, ledger.ErrReservedUsername),
		errors.Is(err, ledger.ErrIndexOutOfRange),
		errors.Is(err, library.ErrInvalidSeason),
		errors.Is(err, flatfile.ErrMalformedRecord):
		return "validation"
	case errors.Is(err, session.ErrSaveFailed), isFileError(err):
		return "io"
	default:
		return "error"
	}
}

func isFileError(err error) bool {
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	return errors.As(err, &pathErr) || errors.As(err, &linkErr)
}

func exitCode(err error) int {
	switch failureKind(err) {
	case "":
		return 0
	case "validation":
		return 2
	case "not_found":
		return 3
	case "conflict":
		return 4
	case "forbidden":
		return 5
	case "locked":
		return 6
	case "io":
		return 7
	default:
		return 1
	}
}
