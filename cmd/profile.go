package cmd

import (
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/home"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/profile"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your progression and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(cmd, func(cfg home.Config) screen.Screen {
			return profile.New(cfg.Prog)
		})
	},
}
