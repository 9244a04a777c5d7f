package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corey/recall/internal/adapters/logger"
	"github.com/corey/recall/internal/app"
	"github.com/corey/recall/internal/config"
	"github.com/spf13/cobra"
)

var (
	serveAddr      string
	serveAppURL    string
	serveDev       bool
	serveNoPersist bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page",
	Long: "Serves the landing page, its stylesheet, and /api/health and /api/routes.\n" +
		"App-owned links (/signup, /login, /dashboard/...) redirect to --app-url when set.",
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	f.StringVar(&serveAppURL, "app-url", "", "origin that owns the app routes (overrides config)")
	f.BoolVar(&serveDev, "dev", false, "reload the config file on change and disable page caching")
	f.BoolVar(&serveNoPersist, "no-persist", false, "keep rendered snapshots in memory only")
}

// serveOverrides applies the flags the user actually set.
func serveOverrides(cmd *cobra.Command) func(*config.Config) {
	flags := cmd.Flags()
	return func(c *config.Config) {
		if flags.Changed("addr") {
			c.Addr = serveAddr
		}
		if flags.Changed("app-url") {
			c.AppURL = serveAppURL
		}
		if flags.Changed("dev") {
			c.Dev = serveDev
		}
		if flags.Changed("no-persist") {
			c.Cache.Persist = !serveNoPersist
		}
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	overrides := serveOverrides(cmd)
	overrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := app.New(app.Options{Config: cfg, Log: log, Overrides: overrides})
	if err != nil {
		if isDBLockError(err) {
			return fmt.Errorf("%s", diagnoseDBLock(app.NewPaths(cfg.DataDir), true))
		}
		return fmt.Errorf("init: %w", err)
	}

	if err := a.Start(); err != nil {
		a.Stop()
		return err
	}

	fmt.Printf("%s %s\n", styleBrand.Render("⚡ recall serving"), styleURL.Render(a.WebServer.URL()))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\n⚡ shutting down...")
	return a.Stop()
}
