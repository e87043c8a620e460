// Package config loads, normalizes, and validates samewords configuration.
//
// It supplies defaults for the word list source, expands user paths (including
// tilde shortcuts and XDG_CACHE_HOME), reads TOML files, and honours
// environment fallbacks such as SAMEWORDS_SOURCE_URL. Downstream code receives
// absolute paths and canonical option values.
package config
