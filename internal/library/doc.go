// Package library is the aggregate that owns one catalog and every account
// for the lifetime of a session.
//
// Operations that span both halves live here: removing content also drops
// every ledger record that referenced it, "is rented" is derived from the
// accounts instead of being cached on catalog entries, and rentals are
// stamped with dates from the configured clock and rental period.
package library
