package testsupport

import (
	"testing"

	"reelhouse/internal/catalog"
	"reelhouse/internal/ledger"
)

// SampleContent is a content file matching SampleLibrary's catalog.
const SampleContent = `Movie|The Matrix|Sci-Fi|8.7|136|4|14.99
TVShow|Breaking Bad|Drama|9.5|5|13|6|20
Movie|Heat|Crime|8.3|170|3.5|12
`

// SampleAccounts is an accounts file matching SampleLibrary's accounts.
const SampleAccounts = `alice
Rented:
The Matrix|0|2023-10-01|2023-10-08
Breaking Bad|2|2023-10-01|2023-10-08
Purchased:
Heat|0
END_USER
bob
Rented:
Purchased:
END_USER
`

// SampleLibrary builds a small catalog and account set. alice rents a movie
// and one season of a show (charges 10.00) and owns a second movie; bob has
// an empty ledger.
func SampleLibrary(t testing.TB) (*catalog.Catalog, *ledger.Accounts) {
	t.Helper()

	cat := catalog.New()
	entries := []catalog.Entry{
		catalog.NewMovie("The Matrix", "Sci-Fi", 8.7, catalog.Movie{Duration: 136, RentCost: 4, PurchaseCost: 14.99}),
		catalog.NewTVShow("Breaking Bad", "Drama", 9.5, catalog.TVShow{Seasons: 5, EpisodesPerSeason: 13, RentCostPerSeason: 6, PurchaseCostPerSeason: 20}),
		catalog.NewMovie("Heat", "Crime", 8.3, catalog.Movie{Duration: 170, RentCost: 3.5, PurchaseCost: 12}),
	}
	for _, entry := range entries {
		if err := cat.Insert(entry); err != nil {
			t.Fatalf("insert %q: %v", entry.Title, err)
		}
	}

	accounts := ledger.NewAccounts()
	alice := mustCreate(t, accounts, "alice")
	mustNoError(t, alice.Rent("The Matrix", 0, "2023-10-01", "2023-10-08"))
	mustNoError(t, alice.Rent("Breaking Bad", 2, "2023-10-01", "2023-10-08"))
	mustNoError(t, alice.Purchase("Heat", 0))
	mustCreate(t, accounts, "bob")

	return cat, accounts
}

func mustCreate(t testing.TB, accounts *ledger.Accounts, username string) *ledger.Account {
	t.Helper()
	account, err := accounts.Create(username)
	if err != nil {
		t.Fatalf("create %q: %v", username, err)
	}
	return account
}

func mustNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
