// Package flatfile reads and writes the two `|`-delimited text files that
// hold the catalog and the accounts between sessions.
//
// The content file has one line per entry, tagged Movie or TVShow. The
// accounts file has one block per user: the username, a Rented: marker with
// rental lines, a Purchased: marker with purchase lines, and END_USER.
//
// Decoding never aborts on bad input. Each problem is reported as a
// *RecordError carrying the file and line, the offending record is skipped,
// and the rest of the file still loads. Ledger lines are resolved against the
// already-decoded catalog; titles that do not resolve are dropped with an
// ErrDanglingReference diagnostic. Missing files load as empty state.
package flatfile
