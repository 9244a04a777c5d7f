// Package config loads the service configuration: defaults, then an optional
// YAML file, then RECALL_* environment overrides. Command-line flags are
// applied last by the caller.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/corey/recall/internal/ports"
)

// FileName is the config file looked up in the working directory.
const FileName = "recall.yaml"

// Config is the effective service configuration.
type Config struct {
	Addr         string   `yaml:"addr"`
	AppURL       string   `yaml:"app_url"`       // origin of the app that owns the navigation targets
	CanonicalURL string   `yaml:"canonical_url"` // optional <link rel="canonical">
	DataDir      string   `yaml:"data_dir"`      // holds the snapshot db and address file
	Dev          bool     `yaml:"dev"`
	Stylesheets  []string `yaml:"stylesheets"`
	Log          Log      `yaml:"log"`
	Cache        Cache    `yaml:"cache"`

	// Path is the file this config was loaded from, empty for defaults only.
	Path string `yaml:"-"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	File   string `yaml:"file"`   // empty = stderr
}

// Cache configures render snapshot persistence.
type Cache struct {
	Persist bool `yaml:"persist"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:    "127.0.0.1:8080",
		DataDir: ".recall",
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Cache: Cache{Persist: true},
	}
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks field values. It normalizes AppURL by trimming trailing slashes.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return &ports.OpError{
			Op:   "config.validate",
			Kind: ports.KindInvalidConfig,
			Path: c.Path,
			Err:  fmt.Errorf(format, args...),
		}
	}

	if strings.TrimSpace(c.Addr) == "" {
		return invalid("addr is required")
	}
	if c.DataDir == "" {
		return invalid("data_dir is required")
	}
	if c.AppURL != "" {
		if err := checkAbsURL(c.AppURL); err != nil {
			return invalid("app_url: %v", err)
		}
		c.AppURL = strings.TrimRight(c.AppURL, "/")
	}
	if c.CanonicalURL != "" {
		if err := checkAbsURL(c.CanonicalURL); err != nil {
			return invalid("canonical_url: %v", err)
		}
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return invalid("log.level %q: want debug, info, warn, or error", c.Log.Level)
	}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		return invalid("log.format %q: want text or json", c.Log.Format)
	}
	for _, s := range c.Stylesheets {
		if strings.TrimSpace(s) == "" {
			return invalid("stylesheets: empty entry")
		}
	}
	return nil
}

func checkAbsURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
