// Package config loads application settings from an optional config.yaml,
// CLORO_-prefixed environment variables and built-in defaults, and validates
// the result with struct tags before any component starts.
package config
