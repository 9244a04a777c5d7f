// recall serves the Recall marketing landing page.
// The same binary exports the page as static HTML.
package main

import (
	"os"

	"github.com/corey/recall/cmd/recall/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
