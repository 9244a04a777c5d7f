// Package app wires together all adapters and the landing page renderer.
// It provides lifecycle management for the recall server: create, start, stop,
// and config reload in dev mode.
package app

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/corey/recall/internal/adapters/bbolt"
	fsw "github.com/corey/recall/internal/adapters/fsnotify"
	"github.com/corey/recall/internal/adapters/logger"
	"github.com/corey/recall/internal/adapters/web"
	"github.com/corey/recall/internal/config"
)

// App is the top-level container wiring all components together.
type App struct {
	Paths     *Paths
	Store     *bbolt.Store // nil when cache.persist is off
	Renderer  *Renderer
	Watcher   *fsw.Watcher // nil unless dev mode with a config file
	WebServer *web.Server

	log       *slog.Logger
	overrides func(*config.Config)

	mu       sync.Mutex
	cfg      config.Config
	reloads  int
	started  time.Time
	stopOnce sync.Once
}

// Options holds initialization parameters for the App.
type Options struct {
	Config config.Config
	Log    *slog.Logger

	// Overrides is applied to every reloaded config so command-line flags
	// keep winning over the file.
	Overrides func(*config.Config)
}

// New creates an App with all dependencies wired. Does not start services.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}

	paths := NewPaths(cfg.DataDir)
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	a := &App{
		Paths:     paths,
		log:       log,
		overrides: opts.Overrides,
		cfg:       cfg,
	}

	if cfg.Cache.Persist {
		store, err := bbolt.NewStore(paths.DB)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		a.Store = store
		a.Renderer = NewRenderer(store, log)
	} else {
		a.Renderer = NewRenderer(nil, log)
	}
	a.Renderer.SetOptions(cfg.Stylesheets, cfg.CanonicalURL)

	a.WebServer = web.NewServer(a.Renderer, web.Options{
		AppURL:   cfg.AppURL,
		PortFile: paths.PortFile,
		Dev:      cfg.Dev,
		Log:      log,
	})

	if cfg.Dev && cfg.Path != "" {
		watcher, err := fsw.NewWatcher()
		if err != nil {
			a.closeStore()
			return nil, fmt.Errorf("create watcher: %w", err)
		}
		watcher.OnError(func(err error) {
			log.Warn("watch.error", "err", err)
		})
		a.Watcher = watcher
	}

	return a, nil
}

// Start binds the HTTP listener and, in dev mode, begins watching the config file.
func (a *App) Start() error {
	a.mu.Lock()
	cfg := a.cfg
	a.started = time.Now()
	a.mu.Unlock()

	if err := a.WebServer.Start(cfg.Addr); err != nil {
		return err
	}

	if a.Watcher != nil {
		if err := a.Watcher.WatchFile(cfg.Path, a.onConfigChanged); err != nil {
			a.WebServer.Stop()
			return fmt.Errorf("watch %s: %w", cfg.Path, err)
		}
		a.log.Info("watch.started", "path", cfg.Path)
	}

	a.log.Info("server.started",
		"url", a.WebServer.URL(),
		"app_url", cfg.AppURL,
		"dev", cfg.Dev,
		"persist", a.Store != nil,
	)
	return nil
}

// Stop shuts everything down. Idempotent.
func (a *App) Stop() error {
	var err error
	a.stopOnce.Do(func() {
		if a.Watcher != nil {
			a.Watcher.Stop()
		}
		a.WebServer.Stop()
		err = a.closeStore()
		a.log.Info("server.stopped")
	})
	return err
}

// Config returns the config currently in force.
func (a *App) Config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// Reloads returns how many config reloads have been applied.
func (a *App) Reloads() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reloads
}

func (a *App) onConfigChanged(path string) {
	if err := a.Reload(path); err != nil {
		a.log.Warn("config.reload_failed", "path", path, "err", err)
	}
}

// Reload re-reads the config file and applies the settings that can change
// without a restart: app_url, canonical_url, and stylesheets. On error the
// previous config stays in force.
func (a *App) Reload(path string) error {
	next, err := config.Load(path, true)
	if err != nil {
		return err
	}
	if a.overrides != nil {
		a.overrides(&next)
		if err := next.Validate(); err != nil {
			return err
		}
	}

	a.mu.Lock()
	prev := a.cfg
	if next.Addr != prev.Addr || next.DataDir != prev.DataDir || next.Cache != prev.Cache {
		a.log.Warn("config.restart_required", "path", path)
	}
	// Fields that need a restart keep their running values.
	next.Addr = prev.Addr
	next.DataDir = prev.DataDir
	next.Dev = prev.Dev
	next.Cache = prev.Cache
	next.Log = prev.Log
	a.cfg = next
	a.reloads++
	a.mu.Unlock()

	a.WebServer.SetAppURL(next.AppURL)
	a.Renderer.SetOptions(next.Stylesheets, next.CanonicalURL)
	a.log.Info("config.reloaded", "path", path, "app_url", next.AppURL, "stylesheets", len(next.Stylesheets))
	return nil
}

func (a *App) closeStore() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}
