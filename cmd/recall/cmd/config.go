package cmd

import (
	"fmt"

	"github.com/corey/recall/internal/app"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the effective configuration after file and environment overrides. No server required.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatConfig(cfg, app.NewPaths(cfg.DataDir)))
	return nil
}
