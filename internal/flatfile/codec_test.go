package flatfile_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"reelhouse/internal/catalog"
	"reelhouse/internal/flatfile"
	"reelhouse/internal/ledger"
)

const contentFixture = `Movie|The Matrix|Sci-Fi|8.7|136|3.99|14.99
TVShow|Breaking Bad|Drama|9.5|5|13|6|20.5
Movie|Heat|Crime|8.3|170|4|12
Movie|  Spaced Out |Drama|7.25|95|2.5|9.99
`

const accountsFixture = `alice
Rented:
The Matrix|0|2023-10-01|2023-10-08
Breaking Bad|2|2023-10-01|2023-10-08
Purchased:
Heat|0
The Matrix|0
END_USER
bob
Rented:
Purchased:
Breaking Bad|1
END_USER
`

func TestRoundTrip(t *testing.T) {
	cat, diags := flatfile.DecodeCatalog(strings.NewReader(contentFixture))
	if len(diags) != 0 {
		t.Fatalf("unexpected catalog diagnostics: %v", diags)
	}
	accounts, diags := flatfile.DecodeAccounts(strings.NewReader(accountsFixture), cat)
	if len(diags) != 0 {
		t.Fatalf("unexpected account diagnostics: %v", diags)
	}

	var contentOut, accountsOut bytes.Buffer
	if err := flatfile.EncodeCatalog(&contentOut, cat); err != nil {
		t.Fatalf("EncodeCatalog: %v", err)
	}
	if err := flatfile.EncodeAccounts(&accountsOut, accounts); err != nil {
		t.Fatalf("EncodeAccounts: %v", err)
	}
	if contentOut.String() != contentFixture {
		t.Fatalf("content round trip mismatch:\n%s", contentOut.String())
	}
	if accountsOut.String() != accountsFixture {
		t.Fatalf("accounts round trip mismatch:\n%s", accountsOut.String())
	}

	alice, err := accounts.Get("alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !alice.IsRented("The Matrix", 0) || !alice.IsPurchased("The Matrix", 0) {
		t.Fatal("expected The Matrix to be both rented and purchased")
	}
	spaced, ok := cat.Lookup("  Spaced Out ")
	if !ok || spaced.Rating != 7.25 || spaced.Movie.RentCost != 2.5 {
		t.Fatalf("unexpected spaced entry: %+v (found %v)", spaced, ok)
	}

	again, diags := flatfile.DecodeCatalog(&contentOut)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics on reload: %v", diags)
	}
	for _, want := range cat.All() {
		got, ok := again.Lookup(want.Title)
		if !ok || got != want {
			t.Fatalf("entry %q differs after reload: %+v vs %+v", want.Title, got, want)
		}
	}
}

func TestDecodeDanglingReference(t *testing.T) {
	cat, _ := flatfile.DecodeCatalog(strings.NewReader(contentFixture))
	input := `alice
Rented:
Gone Girl|0|2023-10-01|2023-10-08
The Matrix|0|2023-10-01|2023-10-08
Purchased:
Missing Show|1
Heat|0
END_USER
`
	accounts, diags := flatfile.DecodeAccounts(strings.NewReader(input), cat)
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", diags)
	}
	for _, diag := range diags {
		if !errors.Is(diag, flatfile.ErrDanglingReference) {
			t.Fatalf("expected dangling reference, got %v", diag)
		}
	}
	var recordErr *flatfile.RecordError
	if !errors.As(diags[0], &recordErr) || recordErr.Line != 3 {
		t.Fatalf("expected record error on line 3, got %v", diags[0])
	}

	alice, err := accounts.Get("alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rentals := alice.Rentals(); len(rentals) != 1 || rentals[0].Title != "The Matrix" {
		t.Fatalf("unexpected rentals: %+v", rentals)
	}
	if purchases := alice.Purchases(); len(purchases) != 1 || purchases[0].Title != "Heat" {
		t.Fatalf("unexpected purchases: %+v", purchases)
	}
}

func TestDecodeCatalogSkipsMalformedRecords(t *testing.T) {
	input := "Movie|Heat|Crime|8.3|170|4|12\n" +
		"Movie|Broken|Drama|nine|90|1|2\n" +
		"\n" +
		"TVShow|Short|Drama|7|2\n" +
		"Podcast|Talk|News|5|1|1|1\n" +
		"Movie|Heat|Crime|1|1|1|1\r\n" +
		"TVShow|Dark|Sci-Fi|8.8|3|8|6|18\r\n"

	cat, diags := flatfile.DecodeCatalog(strings.NewReader(input))
	if cat.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", cat.Len())
	}
	if _, ok := cat.Lookup("Dark"); !ok {
		t.Fatal("expected Dark to load despite CRLF line ending")
	}
	if len(diags) != 4 {
		t.Fatalf("expected 4 diagnostics, got %d: %v", len(diags), diags)
	}
	wantLines := []int{2, 4, 5, 6}
	for i, diag := range diags {
		var recordErr *flatfile.RecordError
		if !errors.As(diag, &recordErr) {
			t.Fatalf("diagnostic %d is %T", i, diag)
		}
		if recordErr.Line != wantLines[i] {
			t.Fatalf("diagnostic %d on line %d, want %d", i, recordErr.Line, wantLines[i])
		}
	}
	for _, diag := range diags[:3] {
		if !errors.Is(diag, flatfile.ErrMalformedRecord) {
			t.Fatalf("expected malformed record, got %v", diag)
		}
	}
	if !errors.Is(diags[3], catalog.ErrDuplicateTitle) {
		t.Fatalf("expected duplicate title, got %v", diags[3])
	}
}

func TestDecodeAccountsRecoversFromBrokenBlocks(t *testing.T) {
	cat, _ := flatfile.DecodeCatalog(strings.NewReader(contentFixture))
	input := `END_USER
alice
The Matrix|0|2023-10-01|2023-10-08
Purchased:
Heat|zero
END_USER
admin
Rented:
Purchased:
END_USER
alice
Rented:
Purchased:
END_USER
Heat|0
carol
bob
Rented:
Heat|0|2023-10-01|2023-10-08
Heat|0|2023-10-02|2023-10-09
`
	accounts, diags := flatfile.DecodeAccounts(strings.NewReader(input), cat)

	wants := []error{
		flatfile.ErrMalformedRecord, // stray END_USER
		flatfile.ErrMalformedRecord, // alice missing Rented:
		flatfile.ErrMalformedRecord, // non-numeric season
		ledger.ErrReservedUsername,  // admin block
		ledger.ErrDuplicateUser,     // second alice
		ledger.ErrInvalidUsername,   // stray ledger line between blocks
		flatfile.ErrMalformedRecord, // carol missing Rented:
		ledger.ErrAlreadyRented,     // bob duplicate rental
		flatfile.ErrMalformedRecord, // bob block unterminated
	}
	if len(diags) != len(wants) {
		t.Fatalf("expected %d diagnostics, got %d: %v", len(wants), len(diags), diags)
	}
	for i, want := range wants {
		if !errors.Is(diags[i], want) {
			t.Fatalf("diagnostic %d: expected %v, got %v", i, want, diags[i])
		}
	}

	if !errors.Is(diags[3], flatfile.ErrMalformedRecord) || !errors.Is(diags[5], flatfile.ErrMalformedRecord) {
		t.Fatalf("rejected usernames should be malformed records: %v, %v", diags[3], diags[5])
	}

	if accounts.Len() != 3 {
		t.Fatalf("expected alice, carol and bob, got %d accounts", accounts.Len())
	}
	carol, err := accounts.Get("carol")
	if err != nil || len(carol.Rentals()) != 0 {
		t.Fatalf("expected empty carol account, got %v", err)
	}
	alice, _ := accounts.Get("alice")
	if len(alice.Rentals()) != 1 || len(alice.Purchases()) != 0 {
		t.Fatalf("unexpected alice ledger: %+v %+v", alice.Rentals(), alice.Purchases())
	}
	bob, err := accounts.Get("bob")
	if err != nil {
		t.Fatalf("Get bob: %v", err)
	}
	if len(bob.Rentals()) != 1 || bob.Rentals()[0].Title != "Heat" {
		t.Fatalf("unexpected bob rentals: %+v", bob.Rentals())
	}
}

func TestDecodeAcceptsVeryLongLines(t *testing.T) {
	long := strings.Repeat("x", 70000)
	cat := catalog.New()
	for _, entry := range []catalog.Entry{
		catalog.NewMovie(long, "Drama", 6, catalog.Movie{Duration: 90, RentCost: 1, PurchaseCost: 2}),
		catalog.NewMovie("Heat", "Crime", 8.3, catalog.Movie{Duration: 170, RentCost: 4, PurchaseCost: 12}),
	} {
		if err := cat.Insert(entry); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	accounts := ledger.NewAccounts()
	alice, err := accounts.Create("alice")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := alice.Rent(long, 0, "2023-10-01", "2023-10-08"); err != nil {
		t.Fatalf("Rent: %v", err)
	}
	if err := alice.Purchase("Heat", 0); err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	var contentOut, accountsOut bytes.Buffer
	if err := flatfile.EncodeCatalog(&contentOut, cat); err != nil {
		t.Fatalf("EncodeCatalog: %v", err)
	}
	if err := flatfile.EncodeAccounts(&accountsOut, accounts); err != nil {
		t.Fatalf("EncodeAccounts: %v", err)
	}

	loaded, diags := flatfile.DecodeCatalog(&contentOut)
	if len(diags) != 0 {
		t.Fatalf("unexpected catalog diagnostics: %v", diags)
	}
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", loaded.Len())
	}
	if _, ok := loaded.Lookup(long); !ok {
		t.Fatal("long title missing after reload")
	}
	reloaded, diags := flatfile.DecodeAccounts(&accountsOut, loaded)
	if len(diags) != 0 {
		t.Fatalf("unexpected account diagnostics: %v", diags)
	}
	again, err := reloaded.Get("alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !again.IsRented(long, 0) || !again.IsPurchased("Heat", 0) {
		t.Fatal("ledger lost records after reload")
	}
}

type failingReader struct {
	data string
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.read {
		return 0, errors.New("device gone")
	}
	r.read = true
	return copy(p, r.data), nil
}

func TestDecodeReportsReadErrorOnFailingLine(t *testing.T) {
	cat, diags := flatfile.DecodeCatalog(&failingReader{data: "Movie|Heat|Crime|8.3|170|4|12\n"})
	if cat.Len() != 1 {
		t.Fatalf("expected the complete line to load, got %d entries", cat.Len())
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	var recordErr *flatfile.RecordError
	if !errors.As(diags[0], &recordErr) || recordErr.Line != 2 {
		t.Fatalf("expected read error on line 2, got %v", diags[0])
	}
}
