package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/corey/recall/internal/ports"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path over the defaults, applies environment
// overrides, and validates. A missing file is only an error when required.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, &ports.OpError{
					Op:   "config.load",
					Kind: ports.KindInvalidConfig,
					Path: path,
					Err:  err,
				}
			}
			cfg.Path = path
		case errors.Is(err, fs.ErrNotExist) && !required:
			// defaults only
		default:
			return Config{}, &ports.OpError{
				Op:   "config.load",
				Kind: ports.KindNotFound,
				Path: path,
				Err:  err,
			}
		}
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overlays RECALL_* variables. lookup is os.LookupEnv in production.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"RECALL_ADDR":          &cfg.Addr,
		"RECALL_APP_URL":       &cfg.AppURL,
		"RECALL_CANONICAL_URL": &cfg.CanonicalURL,
		"RECALL_DATA_DIR":      &cfg.DataDir,
		"RECALL_LOG_LEVEL":     &cfg.Log.Level,
		"RECALL_LOG_FORMAT":    &cfg.Log.Format,
		"RECALL_LOG_FILE":      &cfg.Log.File,
	}
	for name, dst := range str {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	if v, ok := lookup("RECALL_DEV"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ports.OpError{Op: "config.env", Kind: ports.KindInvalidConfig, Err: errors.New("RECALL_DEV: " + err.Error())}
		}
		cfg.Dev = b
	}
	return nil
}
