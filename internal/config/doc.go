// Package config loads, normalizes, and validates reelhouse configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// REELHOUSE_DATA_DIR, optionally sourced from a .env file. The Config type
// centralizes every knob the CLI and the persistence layer need so data file
// locations are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths and clear validation errors.
package config
