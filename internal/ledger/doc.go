// Package ledger records what each user has rented and purchased.
//
// Records reference catalog content by title plus a season selector (0 for
// movies). An Account enforces that a (title, season) pair is rented at most
// once and purchased at most once; purchasing something that is currently
// rented is allowed and leaves both records in place. Accounts is the
// username-keyed registry that the flat-file codec and the library aggregate
// share.
package ledger
