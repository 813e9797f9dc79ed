// Package config loads, normalizes, and validates antideepfake configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs, from the corpus data root to probe concurrency.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths, a canonical language code, and clear validation
// errors.
package config
