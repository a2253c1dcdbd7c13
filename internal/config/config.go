// Package config loads and validates server configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envKeys maps the recognised environment variables to koanf keys. Anything
// else in the environment is ignored.
var envKeys = map[string]string{
	"PORT":           "port",
	"NODE_ENV":       "env",
	"CANONICAL_HOST": "canonical_host",
	"LOG_LEVEL":      "log_level",
	"ASSET_DIR":      "asset_dir",
	"CORS_ORIGINS":   "cors_origins",
	"MAX_BODY_BYTES": "max_body_bytes",
}

// Config holds all configuration values for the website server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "3000".
	Port string

	// Env is the deployment environment, read from NODE_ENV.
	// "production" enables the canonical-host redirect.
	Env string

	// CanonicalHost is the single authoritative domain. Defaults to "zaenextech.com".
	CanonicalHost string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// AssetDir, when set, serves static files from this directory instead of
	// the copy embedded in the binary.
	AssetDir string

	// CORSOrigins lists origins allowed to fetch assets cross-origin.
	// Empty by default; set CORS_ORIGINS to a comma-separated list.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Empty variables count as unset. Returns an error naming the first invalid value.
func Load() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	cfg := Config{
		Port:          stringOr(k, "port", "3000"),
		Env:           k.String("env"),
		CanonicalHost: strings.ToLower(stringOr(k, "canonical_host", "zaenextech.com")),
		LogLevel:      strings.ToLower(stringOr(k, "log_level", "info")),
		AssetDir:      k.String("asset_dir"),
		CORSOrigins:   splitCSV(k.String("cors_origins")),
		MaxBodyBytes:  1 << 20,
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n < 1 || n > 65535 {
		return Config{}, fmt.Errorf("config.Load: PORT %q is not a valid port", cfg.Port)
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return Config{}, fmt.Errorf("config.Load: LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	if raw := k.String("max_body_bytes"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES %q must be a positive integer", raw)
		}
		cfg.MaxBodyBytes = n
	}

	return cfg, nil
}

// Production reports whether NODE_ENV is "production".
func (c Config) Production() bool {
	return c.Env == "production"
}

// Addr is the listen address: all interfaces on Port.
func (c Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// Level returns LogLevel as a slog.Level, falling back to info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// stringOr returns the value at key, or fallback if it is missing or empty.
func stringOr(k *koanf.Koanf, key, fallback string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
