package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/corey/recall/internal/domain/landing"
	"github.com/spf13/cobra"
)

var routesJSON bool

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the navigation targets the page links to",
	RunE:  runRoutes,
}

func init() {
	routesCmd.Flags().BoolVar(&routesJSON, "json", false, "print JSON")
}

func runRoutes(cmd *cobra.Command, args []string) error {
	targets := landing.Targets()
	if routesJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(targets)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatTargets(targets))
	return nil
}
