package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/corey/recall/internal/adapters/web"
	"github.com/corey/recall/internal/app"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the running server",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	paths := app.NewPaths(cfg.DataDir)

	data, err := os.ReadFile(paths.PortFile)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "⚡ recall server is not running")
		return nil
	}
	base := strings.TrimSpace(string(data))

	health, err := fetchHealth(base)
	if err != nil {
		return fmt.Errorf("server at %s not responding: %w\n  → stale address file? remove %s", base, err, paths.PortFile)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatHealth(base, health))
	return nil
}

func fetchHealth(base string) (*web.HealthResult, error) {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(base + "/api/health")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	var h web.HealthResult
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &h, nil
}
