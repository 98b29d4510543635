// Package textutil provides text helpers shared by the catalog, the ledger,
// and the flat-file codec.
//
// The primary use cases are:
//   - Case-insensitive substring matching for catalog search
//   - Checking that free-text values can be stored in a `|`-delimited line
//   - Display casing for genre labels
package textutil
