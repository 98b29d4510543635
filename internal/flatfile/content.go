package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reelhouse/internal/catalog"
)

const (
	movieFieldCount  = 7
	tvShowFieldCount = 8
)

// EncodeCatalog writes one line per entry in catalog order.
func EncodeCatalog(w io.Writer, cat *catalog.Catalog) error {
	bw := bufio.NewWriter(w)
	for _, entry := range cat.All() {
		if _, err := bw.WriteString(formatEntry(entry) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatEntry(e catalog.Entry) string {
	switch e.Kind {
	case catalog.KindTVShow:
		return joinFields(string(catalog.KindTVShow), e.Title, e.Genre, formatFloat(e.Rating),
			strconv.Itoa(e.Show.Seasons), strconv.Itoa(e.Show.EpisodesPerSeason),
			formatMoney(e.Show.RentCostPerSeason), formatMoney(e.Show.PurchaseCostPerSeason))
	default:
		return joinFields(string(catalog.KindMovie), e.Title, e.Genre, formatFloat(e.Rating),
			strconv.Itoa(e.Movie.Duration), formatMoney(e.Movie.RentCost), formatMoney(e.Movie.PurchaseCost))
	}
}

// DecodeCatalog parses a content file. Bad lines are skipped and reported.
func DecodeCatalog(r io.Reader) (*catalog.Catalog, []error) {
	return decodeCatalog(r, "")
}

func decodeCatalog(r io.Reader, name string) (*catalog.Catalog, []error) {
	cat := catalog.New()
	var diags []error
	lines := newLineReader(r)
	for lines.next() {
		entry, err := parseEntry(lines.text)
		if err == nil {
			err = cat.Insert(entry)
		}
		if err != nil {
			diags = append(diags, &RecordError{File: name, Line: lines.number, Err: err})
		}
	}
	if err := lines.err(); err != nil {
		diags = append(diags, &RecordError{File: name, Line: lines.number + 1, Err: err})
	}
	return cat, diags
}

func parseEntry(line string) (catalog.Entry, error) {
	fields := strings.Split(line, "|")
	p := fieldParser{fields: fields}
	switch catalog.Kind(fields[0]) {
	case catalog.KindMovie:
		if len(fields) != movieFieldCount {
			return catalog.Entry{}, malformed("movie record has %d fields, want %d", len(fields), movieFieldCount)
		}
		entry := catalog.NewMovie(fields[1], fields[2], p.parseFloat(3, "rating"), catalog.Movie{
			Duration:     p.parseInt(4, "duration"),
			RentCost:     p.money(5, "rent_cost"),
			PurchaseCost: p.money(6, "purchase_cost"),
		})
		return entry, p.err
	case catalog.KindTVShow:
		if len(fields) != tvShowFieldCount {
			return catalog.Entry{}, malformed("tv show record has %d fields, want %d", len(fields), tvShowFieldCount)
		}
		entry := catalog.NewTVShow(fields[1], fields[2], p.parseFloat(3, "rating"), catalog.TVShow{
			Seasons:               p.parseInt(4, "seasons"),
			EpisodesPerSeason:     p.parseInt(5, "episodes_per_season"),
			RentCostPerSeason:     p.money(6, "rent_cost_per_season"),
			PurchaseCostPerSeason: p.money(7, "purchase_cost_per_season"),
		})
		return entry, p.err
	default:
		return catalog.Entry{}, malformed("unknown content tag %q", fields[0])
	}
}

// fieldParser converts numeric fields, keeping the first failure.
type fieldParser struct {
	fields []string
	err    error
}

func (p *fieldParser) parseFloat(i int, name string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(p.fields[i]), 64)
	if err != nil && p.err == nil {
		p.err = malformed("%s %q is not a number", name, p.fields[i])
	}
	return value
}

func (p *fieldParser) money(i int, name string) catalog.Money {
	return catalog.Money(p.parseFloat(i, name))
}

func (p *fieldParser) parseInt(i int, name string) int {
	value, err := strconv.Atoi(strings.TrimSpace(p.fields[i]))
	if err != nil && p.err == nil {
		p.err = malformed("%s %q is not an integer", name, p.fields[i])
	}
	return value
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatMoney(m catalog.Money) string {
	return formatFloat(float64(m))
}

func joinFields(fields ...string) string {
	return strings.Join(fields, "|")
}

// lineReader yields non-blank lines with their 1-based numbers. Lines are
// read whole regardless of length.
type lineReader struct {
	reader  *bufio.Reader
	text    string
	number  int
	readErr error
	done    bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

func (l *lineReader) next() bool {
	for !l.done {
		raw, err := l.reader.ReadString('\n')
		if err != nil {
			l.done = true
			if !errors.Is(err, io.EOF) {
				l.readErr = err
				return false
			}
			if raw == "" {
				return false
			}
		}
		l.number++
		line := strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		l.text = line
		return true
	}
	return false
}

func (l *lineReader) err() error {
	if l.readErr != nil {
		return fmt.Errorf("read: %w", l.readErr)
	}
	return nil
}
