package library

import (
	"fmt"
	"time"

	"reelhouse/internal/catalog"
	"reelhouse/internal/ledger"
)

// DateLayout is the rent/due date format written to the accounts file.
const DateLayout = "2006-01-02"

// DefaultRentalPeriod applies when no period option is given.
const DefaultRentalPeriod = 7 * 24 * time.Hour

// Option configures a Library.
type Option func(*Library)

// WithClock overrides the time source used for rental dates.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		if now != nil {
			l.now = now
		}
	}
}

// WithRentalPeriod sets the due date offset in days.
func WithRentalPeriod(days int) Option {
	return func(l *Library) {
		if days > 0 {
			l.period = time.Duration(days) * 24 * time.Hour
		}
	}
}

// Library owns the catalog and accounts of one session.
type Library struct {
	catalog  *catalog.Catalog
	accounts *ledger.Accounts
	now      func() time.Time
	period   time.Duration
}

// New wraps an existing catalog and account set. Nil arguments are replaced
// with empty ones.
func New(cat *catalog.Catalog, accounts *ledger.Accounts, opts ...Option) *Library {
	if cat == nil {
		cat = catalog.New()
	}
	if accounts == nil {
		accounts = ledger.NewAccounts()
	}
	lib := &Library{
		catalog:  cat,
		accounts: accounts,
		now:      time.Now,
		period:   DefaultRentalPeriod,
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Catalog returns the owned catalog.
func (l *Library) Catalog() *catalog.Catalog { return l.catalog }

// Accounts returns the owned account registry.
func (l *Library) Accounts() *ledger.Accounts { return l.accounts }

// AddContent inserts a catalog entry.
func (l *Library) AddContent(entry catalog.Entry) error {
	return l.catalog.Insert(entry)
}

// RemoveContent removes the entry and every rental or purchase that
// referenced it. It returns the removed entry and the number of dropped
// ledger records.
func (l *Library) RemoveContent(title string) (catalog.Entry, int, error) {
	entry, err := l.catalog.Remove(title)
	if err != nil {
		return catalog.Entry{}, 0, err
	}
	dropped := 0
	for _, account := range l.accounts.All() {
		dropped += account.DropTitle(title)
	}
	return entry, dropped, nil
}

// IsRented reports whether any account holds a rental of title.
func (l *Library) IsRented(title string) bool {
	for _, account := range l.accounts.All() {
		if account.HasRentalOf(title) {
			return true
		}
	}
	return false
}

// Signup creates an account.
func (l *Library) Signup(username string) (*ledger.Account, error) {
	return l.accounts.Create(username)
}

// Rent records a rental for username, stamping today's date and the due date.
func (l *Library) Rent(username, title string, season int) (ledger.Rental, error) {
	account, entry, err := l.resolve(username, title, season)
	if err != nil {
		return ledger.Rental{}, err
	}
	now := l.now()
	rental := ledger.Rental{
		Title:    entry.Title,
		Season:   season,
		RentDate: now.Format(DateLayout),
		DueDate:  now.Add(l.period).Format(DateLayout),
	}
	if err := account.Rent(rental.Title, rental.Season, rental.RentDate, rental.DueDate); err != nil {
		return ledger.Rental{}, err
	}
	return rental, nil
}

// Return removes the rental at index (0-based) from username's account.
func (l *Library) Return(username string, index int) (ledger.Rental, error) {
	account, err := l.accounts.Get(username)
	if err != nil {
		return ledger.Rental{}, err
	}
	return account.Return(index)
}

// Purchase records a purchase for username.
func (l *Library) Purchase(username, title string, season int) (catalog.Money, error) {
	account, entry, err := l.resolve(username, title, season)
	if err != nil {
		return 0, err
	}
	if err := account.Purchase(entry.Title, season); err != nil {
		return 0, err
	}
	return entry.PurchaseCost(), nil
}

// Charges returns the total rent owed by username.
func (l *Library) Charges(username string) (catalog.Money, error) {
	account, err := l.accounts.Get(username)
	if err != nil {
		return 0, err
	}
	return account.TotalCharges(l.catalog), nil
}

func (l *Library) resolve(username, title string, season int) (*ledger.Account, catalog.Entry, error) {
	account, err := l.accounts.Get(username)
	if err != nil {
		return nil, catalog.Entry{}, err
	}
	entry, ok := l.catalog.Lookup(title)
	if !ok {
		return nil, catalog.Entry{}, fmt.Errorf("%w: %q", catalog.ErrNotFound, title)
	}
	if err := CheckSeason(entry, season); err != nil {
		return nil, catalog.Entry{}, err
	}
	return account, entry, nil
}

// CheckSeason validates a season selector: 0 for movies, 1..Seasons for shows.
func CheckSeason(entry catalog.Entry, season int) error {
	switch entry.Kind {
	case catalog.KindMovie:
		if season != 0 {
			return fmt.Errorf("%w: movie %q takes no season (got %d)", ErrInvalidSeason, entry.Title, season)
		}
	case catalog.KindTVShow:
		if season < 1 || season > entry.Show.Seasons {
			return fmt.Errorf("%w: %q has seasons 1-%d (got %d)", ErrInvalidSeason, entry.Title, entry.Show.Seasons, season)
		}
	}
	return nil
}
