package cmd

import (
	"fmt"

	"github.com/corey/recall/internal/adapters/bbolt"
	"github.com/corey/recall/internal/app"
	"github.com/spf13/cobra"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Inspect stored page snapshots",
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots, newest first",
	RunE:  runSnapshotsList,
}

var snapshotsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored snapshots",
	RunE:  runSnapshotsClear,
}

func init() {
	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsCmd.AddCommand(snapshotsClearCmd)
}

// openStore opens the snapshot db, translating lock timeouts into guidance.
func openStore(cmd *cobra.Command) (*bbolt.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	paths := app.NewPaths(cfg.DataDir)
	if err := paths.EnsureDirs(); err != nil {
		return nil, err
	}
	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		if isDBLockError(err) {
			return nil, fmt.Errorf("%s", diagnoseDBLock(paths, false))
		}
		return nil, err
	}
	return store, nil
}

func runSnapshotsList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	snaps, err := store.ListSnapshots()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatSnapshots(snaps))
	return nil
}

func runSnapshotsClear(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.ClearSnapshots()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "⚡ cleared %d snapshots\n", n)
	return nil
}
