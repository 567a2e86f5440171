package cmd

import (
	"fmt"

	"github.com/Chagadiye/ctrl-vibe/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard local progress and identity",
	Long:  "Clears the cached progression snapshots. A fresh guest account is created on the next launch; server-side data is untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.SnapshotRepo().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear snapshots: %w", err)
		}
		fmt.Println("Local progress cleared. Next launch starts with a new guest account.")
		return nil
	},
}
