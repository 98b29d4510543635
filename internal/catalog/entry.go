package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"reelhouse/internal/textutil"
)

// Kind identifies the content variant. The value doubles as the record tag in
// the content file.
type Kind string

const (
	KindMovie  Kind = "Movie"
	KindTVShow Kind = "TVShow"
)

// ParseKind accepts the record tag or a short CLI alias.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "movie", "movies", "m":
		return KindMovie, nil
	case "tvshow", "tv", "show", "shows", "t":
		return KindTVShow, nil
	default:
		return "", fmt.Errorf("unknown content kind %q", value)
	}
}

// Label returns a human readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindMovie:
		return "Movie"
	case KindTVShow:
		return "TV Show"
	default:
		return string(k)
	}
}

// Money is a price in the catalog's single, unnamed currency.
type Money float64

// String renders the amount with two decimals.
func (m Money) String() string {
	return strconv.FormatFloat(float64(m), 'f', 2, 64)
}

// Movie holds the movie-specific fields of an Entry.
type Movie struct {
	Duration     int // minutes
	RentCost     Money
	PurchaseCost Money
}

// TVShow holds the show-specific fields of an Entry. Costs are per season.
type TVShow struct {
	Seasons               int
	EpisodesPerSeason     int
	RentCostPerSeason     Money
	PurchaseCostPerSeason Money
}

// Entry is a single catalog item. Only the payload matching Kind is meaningful.
type Entry struct {
	Title  string
	Genre  string
	Rating float64
	Kind   Kind
	Movie  Movie
	Show   TVShow
}

// NewMovie builds a movie entry.
func NewMovie(title, genre string, rating float64, movie Movie) Entry {
	return Entry{Title: title, Genre: genre, Rating: rating, Kind: KindMovie, Movie: movie}
}

// NewTVShow builds a TV show entry.
func NewTVShow(title, genre string, rating float64, show TVShow) Entry {
	return Entry{Title: title, Genre: genre, Rating: rating, Kind: KindTVShow, Show: show}
}

// IsMovie reports whether the entry is a movie.
func (e Entry) IsMovie() bool { return e.Kind == KindMovie }

// IsTVShow reports whether the entry is a TV show.
func (e Entry) IsTVShow() bool { return e.Kind == KindTVShow }

// RentCost is the price of one rental record. For shows this is the
// per-season price regardless of which season is rented.
func (e Entry) RentCost() Money {
	switch e.Kind {
	case KindMovie:
		return e.Movie.RentCost
	case KindTVShow:
		return e.Show.RentCostPerSeason
	default:
		return 0
	}
}

// PurchaseCost is the price of one purchase record.
func (e Entry) PurchaseCost() Money {
	switch e.Kind {
	case KindMovie:
		return e.Movie.PurchaseCost
	case KindTVShow:
		return e.Show.PurchaseCostPerSeason
	default:
		return 0
	}
}

// Describe returns the one-line listing used by browse and search.
func (e Entry) Describe() string {
	return fmt.Sprintf("%s (%s, Rating: %s)", e.Title, e.Genre, FormatRating(e.Rating))
}

// Details summarises the variant payload, e.g. "120 min" or "3 seasons x 10 episodes".
func (e Entry) Details() string {
	switch e.Kind {
	case KindMovie:
		return fmt.Sprintf("%d min", e.Movie.Duration)
	case KindTVShow:
		return fmt.Sprintf("%d seasons x %d episodes", e.Show.Seasons, e.Show.EpisodesPerSeason)
	default:
		return ""
	}
}

// FormatRating renders a rating in its shortest decimal form.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

// Validate reports whether the entry can be stored and serialized.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidEntry)
	}
	if !textutil.IsRecordSafe(e.Title) {
		return fmt.Errorf("%w: title %q contains a separator or line break", ErrInvalidEntry, e.Title)
	}
	if !textutil.IsRecordSafe(e.Genre) {
		return fmt.Errorf("%w: genre %q contains a separator or line break", ErrInvalidEntry, e.Genre)
	}
	switch e.Kind {
	case KindMovie:
		if e.Movie.Duration < 0 {
			return fmt.Errorf("%w: duration must be non-negative", ErrInvalidEntry)
		}
	case KindTVShow:
		if e.Show.Seasons < 1 {
			return fmt.Errorf("%w: seasons must be at least 1", ErrInvalidEntry)
		}
		if e.Show.EpisodesPerSeason < 0 {
			return fmt.Errorf("%w: episodes per season must be non-negative", ErrInvalidEntry)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidEntry, e.Kind)
	}
	return nil
}
