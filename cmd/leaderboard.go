package cmd

import (
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/board"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/home"
	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the global leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(cmd, func(cfg home.Config) screen.Screen {
			return board.New(cfg.Client, cfg.Prog)
		})
	},
}
