package flatfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"reelhouse/internal/catalog"
	"reelhouse/internal/flatfile"
	"reelhouse/internal/ledger"
)

func TestLoadMissingFilesYieldsEmptyState(t *testing.T) {
	dir := t.TempDir()
	cat, accounts, diags, err := flatfile.Load(filepath.Join(dir, "content.txt"), filepath.Join(dir, "users.txt"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 0 || accounts.Len() != 0 || len(diags) != 0 {
		t.Fatalf("expected empty state, got %d entries %d accounts %v", cat.Len(), accounts.Len(), diags)
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	contentPath := filepath.Join(dir, "content.txt")
	accountsPath := filepath.Join(dir, "users.txt")

	cat := catalog.New()
	if err := cat.Insert(catalog.NewMovie("Heat", "Crime", 8.3, catalog.Movie{Duration: 170, RentCost: 4, PurchaseCost: 12.5})); err != nil {
		t.Fatalf("insert: %v", err)
	}
	accounts := ledger.NewAccounts()
	alice, err := accounts.Create("alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := alice.Rent("Heat", 0, "2023-10-01", "2023-10-08"); err != nil {
		t.Fatalf("rent: %v", err)
	}

	if err := flatfile.Save(contentPath, accountsPath, cat, accounts); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(contentPath + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind: %v", err)
	}

	loadedCat, loadedAccounts, diags, err := flatfile.Load(contentPath, accountsPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	entry, ok := loadedCat.Lookup("Heat")
	if !ok || entry.Movie.PurchaseCost != 12.5 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	loadedAlice, err := loadedAccounts.Get("alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := loadedAlice.TotalCharges(loadedCat); got != 4 {
		t.Fatalf("charges = %v", got)
	}
}

func TestSaveReportsUnwritableTarget(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	// A regular file where a directory is expected cannot be created under.
	err := flatfile.Save(filepath.Join(blocker, "content.txt"), filepath.Join(dir, "users.txt"), catalog.New(), ledger.NewAccounts())
	if err == nil {
		t.Fatal("expected save error")
	}
}
