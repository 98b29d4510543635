package ledger_test

import (
	"errors"
	"slices"
	"testing"

	"reelhouse/internal/catalog"
	"reelhouse/internal/ledger"
)

func pricingCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()
	if err := cat.Insert(catalog.NewMovie("Heat", "Crime", 8.3, catalog.Movie{Duration: 170, RentCost: 4.00, PurchaseCost: 12})); err != nil {
		t.Fatalf("insert movie: %v", err)
	}
	if err := cat.Insert(catalog.NewTVShow("Dark", "Sci-Fi", 8.8, catalog.TVShow{Seasons: 3, EpisodesPerSeason: 8, RentCostPerSeason: 6.00, PurchaseCostPerSeason: 18})); err != nil {
		t.Fatalf("insert show: %v", err)
	}
	return cat
}

func TestRentIsMutuallyExclusive(t *testing.T) {
	account := ledger.NewAccount("alice")
	if err := account.Rent("Heat", 0, "2024-01-01", "2024-01-08"); err != nil {
		t.Fatalf("first rent: %v", err)
	}
	err := account.Rent("Heat", 0, "2024-01-02", "2024-01-09")
	if !errors.Is(err, ledger.ErrAlreadyRented) {
		t.Fatalf("expected ErrAlreadyRented, got %v", err)
	}
	if !errors.Is(err, ledger.ErrInvalidLedgerState) {
		t.Fatalf("expected ErrInvalidLedgerState to match, got %v", err)
	}
	if len(account.Rentals()) != 1 {
		t.Fatalf("expected one rental, got %d", len(account.Rentals()))
	}

	// A different season of the same show is a different pair.
	if err := account.Rent("Dark", 1, "d", "d"); err != nil {
		t.Fatalf("rent season 1: %v", err)
	}
	if err := account.Rent("Dark", 2, "d", "d"); err != nil {
		t.Fatalf("rent season 2: %v", err)
	}
}

func TestPurchaseRules(t *testing.T) {
	account := ledger.NewAccount("alice")
	if err := account.Purchase("Heat", 0); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if err := account.Purchase("Heat", 0); !errors.Is(err, ledger.ErrAlreadyPurchased) {
		t.Fatalf("expected ErrAlreadyPurchased, got %v", err)
	}
	if err := account.Rent("Heat", 0, "d", "d"); !errors.Is(err, ledger.ErrAlreadyPurchased) {
		t.Fatalf("expected rent of purchased pair to fail, got %v", err)
	}

	// Purchasing something currently rented keeps both records.
	if err := account.Rent("Dark", 1, "d", "d"); err != nil {
		t.Fatalf("rent: %v", err)
	}
	if err := account.Purchase("Dark", 1); err != nil {
		t.Fatalf("purchase while rented: %v", err)
	}
	if !account.IsRented("Dark", 1) || !account.IsPurchased("Dark", 1) {
		t.Fatal("expected rented and purchased to coexist")
	}
}

func TestReturnRemovesExactlyOne(t *testing.T) {
	account := ledger.NewAccount("alice")
	for _, title := range []string{"A", "B", "C"} {
		if err := account.Rent(title, 0, "d", "d"); err != nil {
			t.Fatalf("rent %s: %v", title, err)
		}
	}

	returned, err := account.Return(1)
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	if returned.Title != "B" {
		t.Fatalf("returned %q, want B", returned.Title)
	}
	var got []string
	for _, rental := range account.Rentals() {
		got = append(got, rental.Title)
	}
	if !slices.Equal(got, []string{"A", "C"}) {
		t.Fatalf("remaining rentals %v", got)
	}

	for _, index := range []int{-1, 2, 10} {
		if _, err := account.Return(index); !errors.Is(err, ledger.ErrIndexOutOfRange) {
			t.Fatalf("Return(%d): expected ErrIndexOutOfRange, got %v", index, err)
		}
	}
	if len(account.Rentals()) != 2 {
		t.Fatalf("failed return changed rentals: %d", len(account.Rentals()))
	}
}

func TestTotalCharges(t *testing.T) {
	cat := pricingCatalog(t)
	account := ledger.NewAccount("alice")
	if err := account.Rent("Heat", 0, "d", "d"); err != nil {
		t.Fatalf("rent movie: %v", err)
	}
	if err := account.Rent("Dark", 3, "d", "d"); err != nil {
		t.Fatalf("rent show: %v", err)
	}
	if got := account.TotalCharges(cat); got != 10.00 {
		t.Fatalf("TotalCharges = %v, want 10.00", got)
	}

	// Purchases are not charged and unknown titles contribute nothing.
	if err := account.Purchase("Heat", 0); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if err := account.Rent("Gone", 0, "d", "d"); err != nil {
		t.Fatalf("rent unknown: %v", err)
	}
	if got := account.TotalCharges(cat); got != 10.00 {
		t.Fatalf("TotalCharges = %v, want 10.00", got)
	}
}

func TestDropTitle(t *testing.T) {
	account := ledger.NewAccount("alice")
	_ = account.Rent("Dark", 1, "d", "d")
	_ = account.Rent("Dark", 2, "d", "d")
	_ = account.Rent("Heat", 0, "d", "d")
	_ = account.Purchase("Dark", 3)

	if dropped := account.DropTitle("Dark"); dropped != 3 {
		t.Fatalf("DropTitle = %d, want 3", dropped)
	}
	if account.HasRentalOf("Dark") || len(account.Purchases()) != 0 {
		t.Fatal("expected no Dark records to remain")
	}
	if !account.IsRented("Heat", 0) {
		t.Fatal("unrelated rental was dropped")
	}
}

func TestRentalsReturnsCopy(t *testing.T) {
	account := ledger.NewAccount("alice")
	_ = account.Rent("Heat", 0, "d", "d")
	rentals := account.Rentals()
	rentals[0].Title = "mutated"
	if account.Rentals()[0].Title != "Heat" {
		t.Fatal("Rentals exposed internal storage")
	}
}
