package catalog

import (
	"strings"

	"reelhouse/internal/textutil"
)

// Predicate selects catalog entries.
type Predicate func(Entry) bool

// Movies matches movie entries.
func Movies() Predicate { return OfKind(KindMovie) }

// TVShows matches TV show entries.
func TVShows() Predicate { return OfKind(KindTVShow) }

// OfKind matches entries of kind k.
func OfKind(k Kind) Predicate {
	return func(e Entry) bool { return e.Kind == k }
}

// InGenre matches entries whose genre equals genre exactly. An empty genre
// matches everything.
func InGenre(genre string) Predicate {
	return func(e Entry) bool { return genre == "" || e.Genre == genre }
}

// Matching matches entries whose title or genre contains query.
func Matching(query string) Predicate {
	return func(e Entry) bool {
		return strings.Contains(e.Title, query) || strings.Contains(e.Genre, query)
	}
}

// MatchingFold is Matching with Unicode case folding.
func MatchingFold(query string) Predicate {
	return func(e Entry) bool {
		return textutil.ContainsFold(e.Title, query) || textutil.ContainsFold(e.Genre, query)
	}
}

// And matches entries accepted by every non-nil predicate.
func And(preds ...Predicate) Predicate {
	return func(e Entry) bool {
		for _, pred := range preds {
			if pred != nil && !pred(e) {
				return false
			}
		}
		return true
	}
}
