// Package config loads, normalizes, and validates tracker2nuke configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the TRACKER2NUKE_LOG_LEVEL environment override.
// Commands obtain settings through this package so log and history
// locations are always absolute and validated before use.
package config
