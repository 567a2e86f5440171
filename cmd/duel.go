package cmd

import (
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/duel"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/home"
	"github.com/spf13/cobra"
)

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "Jump straight into the letter duel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(cmd, func(cfg home.Config) screen.Screen {
			return duel.New(cfg.Client, cfg.Prog)
		})
	},
}
