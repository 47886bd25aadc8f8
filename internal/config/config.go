// Package config holds runtime settings read from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// Environment variables consulted by FromEnv.
const (
	EnvLogLevel  = "IMAGE_FILTERS_LOG_LEVEL"
	EnvResources = "IMAGE_FILTERS_RESOURCES"
	EnvPreview   = "IMAGE_FILTERS_PREVIEW"
)

// DefaultResourceDir is where the overlay images live unless overridden.
const DefaultResourceDir = "resources"

// Config contains the settings shared by every subcommand.
type Config struct {
	// LogLevel is "debug", "info", "warn" or "error". Anything else is "info".
	LogLevel string

	// ResourceDir is the directory holding the Instagram overlay images.
	ResourceDir string

	// PreviewPath is where the console writes a preview PNG after each change.
	// Empty disables previews.
	PreviewPath string
}

// FromEnv builds a Config from the process environment.
func FromEnv() Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Config {
	cfg := Config{
		LogLevel:    "info",
		ResourceDir: DefaultResourceDir,
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvResources); ok && v != "" {
		cfg.ResourceDir = v
	}
	if v, ok := lookup(EnvPreview); ok {
		cfg.PreviewPath = v
	}
	return cfg
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
