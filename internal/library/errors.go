package library

import "errors"

// ErrInvalidSeason is returned when a season selector does not fit the content.
var ErrInvalidSeason = errors.New("invalid season")
