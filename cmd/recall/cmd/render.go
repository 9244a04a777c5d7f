package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/corey/recall/internal/app"
	"github.com/spf13/cobra"
)

var (
	renderOut  string
	renderYear int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the landing page as static HTML",
	Long:  "Renders the full HTML document once. Writes to stdout unless -o is given.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "output file (default stdout)")
	renderCmd.Flags().IntVar(&renderYear, "year", 0, "footer year (default current year)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	r := app.NewRenderer(nil, nil)
	r.SetOptions(cfg.Stylesheets, cfg.CanonicalURL)

	year := renderYear
	if year == 0 {
		year = time.Now().Year()
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("--year %d out of range", year)
	}

	snap, err := r.Render(context.Background(), year)
	if err != nil {
		return err
	}

	if renderOut == "" {
		_, err = cmd.OutOrStdout().Write(snap.HTML)
		return err
	}
	if err := os.WriteFile(renderOut, snap.HTML, 0644); err != nil {
		return fmt.Errorf("write %s: %w", renderOut, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "⚡ wrote %s (%d bytes, etag %s)\n", renderOut, len(snap.HTML), snap.ETag)
	return nil
}
