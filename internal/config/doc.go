// Package config loads, normalizes, and validates aniorg configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and layers command-line overrides on top.
// Extension lists are normalized to lowercase dotted form so the scanner
// can compare them directly.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical modes, and clear validation errors.
package config
