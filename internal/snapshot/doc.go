// Package snapshot copies a whole library into a SQLite database and back.
//
// The flat files stay the working storage; a snapshot is an export for
// backup, inspection with SQL tools, or moving data between machines. Export
// replaces the database contents in a single transaction. Import rebuilds a
// catalog and account set through the same constructors the rest of the
// program uses, so a snapshot that violates a uniqueness or ledger rule is
// rejected rather than silently loaded.
//
// Schema changes are shipped as ordered files under migrations/ and recorded
// in schema_migrations when applied.
package snapshot
