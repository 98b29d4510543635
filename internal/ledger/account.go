package ledger

import (
	"fmt"
	"slices"

	"reelhouse/internal/catalog"
)

// Resolver looks up catalog entries by title. *catalog.Catalog satisfies it.
type Resolver interface {
	Lookup(title string) (catalog.Entry, bool)
}

// Account holds one user's rentals and purchases in insertion order.
type Account struct {
	username  string
	rentals   []Rental
	purchases []Purchase
}

// NewAccount returns an empty account. Use Accounts.Create to get username
// validation and uniqueness.
func NewAccount(username string) *Account {
	return &Account{username: username}
}

// Username returns the account identity.
func (a *Account) Username() string { return a.username }

// Rentals returns a copy of the active rentals.
func (a *Account) Rentals() []Rental { return slices.Clone(a.rentals) }

// Purchases returns a copy of the purchases.
func (a *Account) Purchases() []Purchase { return slices.Clone(a.purchases) }

// IsRented reports whether (title, season) has an active rental.
func (a *Account) IsRented(title string, season int) bool {
	return slices.ContainsFunc(a.rentals, func(r Rental) bool { return r.matches(title, season) })
}

// IsPurchased reports whether (title, season) was purchased.
func (a *Account) IsPurchased(title string, season int) bool {
	return slices.ContainsFunc(a.purchases, func(p Purchase) bool { return p.matches(title, season) })
}

// HasRentalOf reports whether any season of title is rented.
func (a *Account) HasRentalOf(title string) bool {
	return slices.ContainsFunc(a.rentals, func(r Rental) bool { return r.Title == title })
}

// Rent appends a rental when the pair is neither rented nor purchased.
func (a *Account) Rent(title string, season int, rentDate, dueDate string) error {
	if a.IsRented(title, season) {
		return fmt.Errorf("%q season %d: %w", title, season, ErrAlreadyRented)
	}
	if a.IsPurchased(title, season) {
		return fmt.Errorf("%q season %d: %w", title, season, ErrAlreadyPurchased)
	}
	a.rentals = append(a.rentals, Rental{Title: title, Season: season, RentDate: rentDate, DueDate: dueDate})
	return nil
}

// Return removes and returns the rental at index (0-based).
func (a *Account) Return(index int) (Rental, error) {
	if index < 0 || index >= len(a.rentals) {
		return Rental{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(a.rentals))
	}
	returned := a.rentals[index]
	a.rentals = slices.Delete(a.rentals, index, index+1)
	return returned, nil
}

// Purchase appends a purchase unless the pair was already purchased. An
// active rental of the same pair is kept.
func (a *Account) Purchase(title string, season int) error {
	if a.IsPurchased(title, season) {
		return fmt.Errorf("%q season %d: %w", title, season, ErrAlreadyPurchased)
	}
	a.purchases = append(a.purchases, Purchase{Title: title, Season: season})
	return nil
}

// TotalCharges sums the rent cost of every active rental. Each rental record
// is charged once at the entry's RentCost; titles that do not resolve
// contribute nothing.
func (a *Account) TotalCharges(resolver Resolver) catalog.Money {
	var total catalog.Money
	for _, rental := range a.rentals {
		if entry, ok := resolver.Lookup(rental.Title); ok {
			total += entry.RentCost()
		}
	}
	return total
}

// DropTitle removes every rental and purchase that references title and
// returns how many records were removed.
func (a *Account) DropTitle(title string) int {
	before := len(a.rentals) + len(a.purchases)
	a.rentals = slices.DeleteFunc(a.rentals, func(r Rental) bool { return r.Title == title })
	a.purchases = slices.DeleteFunc(a.purchases, func(p Purchase) bool { return p.Title == title })
	return before - len(a.rentals) - len(a.purchases)
}
