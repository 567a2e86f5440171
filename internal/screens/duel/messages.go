package duel

import (
	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

// roundFetchedMsg is sent when a round fetch completes. Gen and Index tie
// the result to the request so superseded fetches are dropped.
type roundFetchedMsg struct {
	Gen   int
	Index int
	Round *api.DuelRound
	Err   error
}

// tickMsg is sent every second while a round is being played. Gen and
// Index tie each tick to the round that scheduled it; a tick from a
// superseded chain is dropped so the fresh round's countdown never runs
// more than one chain.
type tickMsg struct {
	Gen   int
	Index int
}
