package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths under the data directory.
type Paths struct {
	Root string // <data>/
	DB   string // <data>/recall.db

	RunDir   string // <data>/run/
	PortFile string // <data>/run/http.addr
}

// NewPaths constructs all resolved paths from a data directory.
func NewPaths(dataDir string) *Paths {
	return &Paths{
		Root: dataDir,
		DB:   filepath.Join(dataDir, "recall.db"),

		RunDir:   filepath.Join(dataDir, "run"),
		PortFile: filepath.Join(dataDir, "run", "http.addr"),
	}
}

// EnsureDirs creates all subdirectories. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.RunDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}
