// Package config loads, normalizes, and validates snapsort configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. Every knob has a working
// default, so the tool runs with no config file present; the file only
// adjusts ambient behavior such as debounce timing, the extension
// allow-list, date buckets, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and validated values.
package config
