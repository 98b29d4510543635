package ledger

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"reelhouse/internal/textutil"
)

// ReservedUsername is the administrative identity; no account may use it.
const ReservedUsername = "admin"

// Markers used by the accounts file. Usernames may not collide with them.
const (
	MarkerRented    = "Rented:"
	MarkerPurchased = "Purchased:"
	MarkerEndUser   = "END_USER"
)

// ValidateUsername checks that username can identify an account and be
// written on its own line in the accounts file.
func ValidateUsername(username string) error {
	if username == ReservedUsername {
		return fmt.Errorf("%w: %q", ErrReservedUsername, username)
	}
	if username == "" {
		return fmt.Errorf("%w: empty", ErrInvalidUsername)
	}
	if strings.ContainsFunc(username, unicode.IsSpace) || !textutil.IsRecordSafe(username) {
		return fmt.Errorf("%w: %q contains whitespace or a separator", ErrInvalidUsername, username)
	}
	switch username {
	case MarkerRented, MarkerPurchased, MarkerEndUser:
		return fmt.Errorf("%w: %q is a file marker", ErrInvalidUsername, username)
	}
	return nil
}

// Accounts is the username-keyed set of accounts in creation order.
type Accounts struct {
	order  []string
	byName map[string]*Account
}

// NewAccounts returns an empty registry.
func NewAccounts() *Accounts {
	return &Accounts{byName: make(map[string]*Account)}
}

// Create registers a new empty account.
func (s *Accounts) Create(username string) (*Account, error) {
	account := NewAccount(username)
	if err := s.Add(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Add registers an already-populated account.
func (s *Accounts) Add(account *Account) error {
	if err := ValidateUsername(account.username); err != nil {
		return err
	}
	if _, exists := s.byName[account.username]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateUser, account.username)
	}
	s.byName[account.username] = account
	s.order = append(s.order, account.username)
	return nil
}

// Get returns the account for username.
func (s *Accounts) Get(username string) (*Account, error) {
	account, ok := s.byName[username]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, username)
	}
	return account, nil
}

// Remove deletes the account for username.
func (s *Accounts) Remove(username string) error {
	if _, ok := s.byName[username]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, username)
	}
	delete(s.byName, username)
	s.order = slices.DeleteFunc(s.order, func(name string) bool { return name == username })
	return nil
}

// All returns accounts in creation order.
func (s *Accounts) All() []*Account {
	out := make([]*Account, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// Len returns the number of accounts.
func (s *Accounts) Len() int { return len(s.order) }
