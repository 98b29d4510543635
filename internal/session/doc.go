// Package session runs one unit of work against the data directory.
//
// Open takes an exclusive file lock on the data directory, loads the catalog
// and accounts from the flat files, and hands back a Library. Close saves and
// releases the lock; Discard releases without saving. Load diagnostics are
// logged as warnings and kept on the session for the caller to inspect.
//
// The caller's identity is an explicit Identity value rather than state held
// by the session, so operations state who they act for.
package session
