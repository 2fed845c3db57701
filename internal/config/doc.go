// Package config loads, normalizes, and validates Punini configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PUNINI_MUSIC_DIR. The Config type centralizes every knob the player and CLI
// need, so the music directory, library database location, and UI tuning are
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
