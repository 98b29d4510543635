package flatfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reelhouse/internal/ledger"
)

const (
	rentalFieldCount   = 4
	purchaseFieldCount = 2
)

// EncodeAccounts writes one block per account in registry order.
func EncodeAccounts(w io.Writer, accounts *ledger.Accounts) error {
	bw := bufio.NewWriter(w)
	for _, account := range accounts.All() {
		lines := []string{account.Username(), ledger.MarkerRented}
		for _, rental := range account.Rentals() {
			lines = append(lines, joinFields(rental.Title, strconv.Itoa(rental.Season), rental.RentDate, rental.DueDate))
		}
		lines = append(lines, ledger.MarkerPurchased)
		for _, purchase := range account.Purchases() {
			lines = append(lines, joinFields(purchase.Title, strconv.Itoa(purchase.Season)))
		}
		lines = append(lines, ledger.MarkerEndUser)
		for _, line := range lines {
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// DecodeAccounts parses an accounts file, resolving ledger titles against
// resolver. Bad or dangling records are skipped and reported.
func DecodeAccounts(r io.Reader, resolver ledger.Resolver) (*ledger.Accounts, []error) {
	return decodeAccounts(r, "", resolver)
}

type blockState int

const (
	expectUser blockState = iota
	expectRentedMarker
	inRented
	inPurchased
	skipBlock
)

type accountsDecoder struct {
	name     string
	resolver ledger.Resolver
	accounts *ledger.Accounts
	diags    []error

	state    blockState
	current  *ledger.Account
	userLine int
}

func decodeAccounts(r io.Reader, name string, resolver ledger.Resolver) (*ledger.Accounts, []error) {
	d := &accountsDecoder{name: name, resolver: resolver, accounts: ledger.NewAccounts()}
	lines := newLineReader(r)
	for lines.next() {
		d.consume(lines.number, lines.text)
	}
	if err := lines.err(); err != nil {
		d.report(lines.number+1, err)
	}
	if d.current != nil {
		d.report(lines.number, malformed("account %q not terminated by %s", d.current.Username(), ledger.MarkerEndUser))
		d.finish()
	}
	return d.accounts, d.diags
}

func (d *accountsDecoder) consume(number int, line string) {
	switch d.state {
	case expectUser:
		switch line {
		case ledger.MarkerRented, ledger.MarkerPurchased, ledger.MarkerEndUser:
			d.report(number, malformed("marker %s outside an account block", line))
			return
		}
		if err := ledger.ValidateUsername(line); err != nil {
			d.report(number, fmt.Errorf("%w: %w", ErrMalformedRecord, err))
			d.state = skipBlock
			return
		}
		d.current = ledger.NewAccount(line)
		d.userLine = number
		d.state = expectRentedMarker
	case expectRentedMarker:
		if line == ledger.MarkerRented {
			d.state = inRented
			return
		}
		d.report(number, malformed("account %q missing %s marker", d.current.Username(), ledger.MarkerRented))
		if ledger.ValidateUsername(line) == nil {
			d.finish()
		} else {
			d.state = inRented
		}
		d.consume(number, line)
	case skipBlock:
		// Lines of a rejected block are dropped until its END_USER or the
		// next plausible username.
		if line == ledger.MarkerEndUser {
			d.state = expectUser
			return
		}
		if ledger.ValidateUsername(line) == nil {
			d.state = expectUser
			d.consume(number, line)
		}
	case inRented:
		switch line {
		case ledger.MarkerPurchased:
			d.state = inPurchased
		case ledger.MarkerEndUser:
			d.report(number, malformed("account %q missing %s marker", d.current.Username(), ledger.MarkerPurchased))
			d.finish()
		case ledger.MarkerRented:
			d.report(number, malformed("repeated %s marker", line))
		default:
			d.rental(number, line)
		}
	case inPurchased:
		switch line {
		case ledger.MarkerEndUser:
			d.finish()
		case ledger.MarkerRented, ledger.MarkerPurchased:
			d.report(number, malformed("marker %s after %s", line, ledger.MarkerPurchased))
		default:
			d.purchase(number, line)
		}
	}
}

func (d *accountsDecoder) rental(number int, line string) {
	fields := strings.Split(line, "|")
	if len(fields) != rentalFieldCount {
		d.report(number, malformed("rental record has %d fields, want %d", len(fields), rentalFieldCount))
		return
	}
	title, season, ok := d.reference(number, fields[0], fields[1])
	if !ok {
		return
	}
	if err := d.current.Rent(title, season, fields[2], fields[3]); err != nil {
		d.report(number, err)
	}
}

func (d *accountsDecoder) purchase(number int, line string) {
	fields := strings.Split(line, "|")
	if len(fields) != purchaseFieldCount {
		d.report(number, malformed("purchase record has %d fields, want %d", len(fields), purchaseFieldCount))
		return
	}
	title, season, ok := d.reference(number, fields[0], fields[1])
	if !ok {
		return
	}
	if err := d.current.Purchase(title, season); err != nil {
		d.report(number, err)
	}
}

func (d *accountsDecoder) reference(number int, title, rawSeason string) (string, int, bool) {
	season, err := strconv.Atoi(strings.TrimSpace(rawSeason))
	if err != nil {
		d.report(number, malformed("season %q is not an integer", rawSeason))
		return "", 0, false
	}
	if _, ok := d.resolver.Lookup(title); !ok {
		d.report(number, danglingReference(title))
		return "", 0, false
	}
	return title, season, true
}

func (d *accountsDecoder) finish() {
	if err := d.accounts.Add(d.current); err != nil {
		d.report(d.userLine, err)
	}
	d.current = nil
	d.state = expectUser
}

func (d *accountsDecoder) report(number int, err error) {
	d.diags = append(d.diags, &RecordError{File: d.name, Line: number, Err: err})
}
