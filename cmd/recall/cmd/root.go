package cmd

import (
	"github.com/corey/recall/internal/config"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "recall",
	Short:        "Landing page server for Recall",
	Long:         "Serves the Recall marketing landing page or exports it as static HTML.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.FileName,
		"config file (optional unless set explicitly)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(healthCmd)
}

// loadConfig reads the config file. The default file may be absent; an
// explicitly named one must exist.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	required := cmd.Flags().Changed("config")
	return config.Load(configPath, required)
}
