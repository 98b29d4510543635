package flatfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord marks a line that could not be parsed.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrDanglingReference marks a ledger line whose title is not in the catalog.
	ErrDanglingReference = errors.New("dangling content reference")
)

// RecordError describes a skipped record.
type RecordError struct {
	File string
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d: %v", file, e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}

func danglingReference(title string) error {
	return fmt.Errorf("%w: %q", ErrDanglingReference, title)
}
