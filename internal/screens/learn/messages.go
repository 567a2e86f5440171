package learn

import "github.com/Chagadiye/ctrl-vibe/internal/api"

// tracksLoadedMsg is sent when the track list fetch completes.
type tracksLoadedMsg struct {
	Tracks []api.Track
	Err    error
}
