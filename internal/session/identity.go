package session

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned when an identity may not perform an operation.
var ErrForbidden = errors.New("forbidden")

// Identity is who an operation acts for.
type Identity struct {
	Username string
	Admin    bool
}

// AdminIdentity returns the administrative identity.
func AdminIdentity() Identity {
	return Identity{Admin: true}
}

// UserIdentity returns the identity of a regular account.
func UserIdentity(username string) Identity {
	return Identity{Username: username}
}

// IsZero reports whether no identity was supplied.
func (i Identity) IsZero() bool {
	return !i.Admin && i.Username == ""
}

// String renders the identity for logs.
func (i Identity) String() string {
	switch {
	case i.Admin:
		return "admin"
	case i.Username != "":
		return i.Username
	default:
		return "anonymous"
	}
}

// RequireAdmin fails unless the identity is the administrator.
func (i Identity) RequireAdmin() error {
	if !i.Admin {
		return fmt.Errorf("%w: admin identity required", ErrForbidden)
	}
	return nil
}

// RequireUser fails unless the identity names a regular account.
func (i Identity) RequireUser() error {
	if i.Admin || i.Username == "" {
		return fmt.Errorf("%w: user identity required", ErrForbidden)
	}
	return nil
}
