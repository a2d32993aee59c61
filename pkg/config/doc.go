// Package config handles configuration management for pricat.
// It layers embedded defaults, TOML files, environment variables and
// command-line flags into a single Config.
package config
