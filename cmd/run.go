package cmd

import (
	"fmt"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	"github.com/Chagadiye/ctrl-vibe/internal/app"
	"github.com/Chagadiye/ctrl-vibe/internal/audio"
	"github.com/Chagadiye/ctrl-vibe/internal/lessons"
	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/home"
	"github.com/Chagadiye/ctrl-vibe/internal/selfupdate"
	"github.com/Chagadiye/ctrl-vibe/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI on
// the home menu.
func runApp(cmd *cobra.Command) error {
	return launch(cmd, nil)
}

// launch builds the shared dependency wiring and starts the TUI. start,
// when non-nil, receives the built config and returns the screen to open
// on top of the home menu.
func launch(cmd *cobra.Command, start func(home.Config) screen.Screen) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	apiBase, _ := cmd.Flags().GetString("api")
	client := api.New(apiBase, api.WithEventSink(st.EventRepo()))
	prog := progression.NewStore(client, st.SnapshotRepo())

	cfg := home.Config{
		Prog:     prog,
		Client:   client,
		Lessons:  lessons.NewService(client),
		Recorder: &audio.ExecRecorder{},
		Player:   audio.ExecPlayer{},
		Checker:  selfupdate.NewChecker(),
		Version:  version,
	}
	if start == nil {
		return app.Run(cfg)
	}
	return app.RunAt(cfg, start(cfg))
}
