package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLedgerState groups rent/purchase conflicts.
	ErrInvalidLedgerState = errors.New("invalid ledger state")
	// ErrAlreadyRented is returned when the pair already has an active rental.
	ErrAlreadyRented = fmt.Errorf("already rented: %w", ErrInvalidLedgerState)
	// ErrAlreadyPurchased is returned when the pair was already purchased.
	ErrAlreadyPurchased = fmt.Errorf("already purchased: %w", ErrInvalidLedgerState)
	// ErrIndexOutOfRange is returned by Return for a bad rental position.
	ErrIndexOutOfRange = errors.New("rental index out of range")

	ErrNotFound         = errors.New("user not found")
	ErrDuplicateUser    = errors.New("username already taken")
	ErrReservedUsername = errors.New("username is reserved")
	ErrInvalidUsername  = errors.New("invalid username")
)
