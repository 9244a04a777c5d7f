package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/corey/recall/internal/adapters/bbolt"
	"github.com/corey/recall/internal/app"
)

// isDBLockError reports whether err is a bbolt lock timeout on the snapshot db.
func isDBLockError(err error) bool {
	return bbolt.IsLockTimeout(err)
}

// diagnoseDBLock returns actionable guidance after a lock timeout on the
// snapshot db. It separates a live server, a stale address file, and an
// unknown holder. serving adds the serve-only --no-persist escape hatch.
func diagnoseDBLock(paths *app.Paths, serving bool) string {
	data, err := os.ReadFile(paths.PortFile)
	if err != nil {
		return "snapshot database is locked by another process\n" +
			"  → find the process:  ps aux | grep 'recall'\n" +
			"  → kill it:           kill <PID>\n" +
			"  → then retry your command"
	}

	base := strings.TrimSpace(string(data))
	if _, err := fetchHealth(base); err == nil {
		msg := fmt.Sprintf("snapshot database is locked by the server at %s\n"+
			"  → stop it first (Ctrl-C or kill its process)", base)
		if serving {
			msg += "\n  → or run with --no-persist"
		}
		return msg
	}

	return fmt.Sprintf("snapshot database is locked and the server at %s is not responding\n"+
		"  → a previous server may have crashed\n"+
		"  → find the process:  ps aux | grep 'recall serve'\n"+
		"  → clean up:          rm %s", base, paths.PortFile)
}
