package sims

import "github.com/Chagadiye/ctrl-vibe/internal/api"

// startedMsg is sent when the opening turn arrives.
type startedMsg struct {
	Reply *api.SimulationReply
	Err   error
}

// replyMsg is sent when a converse turn completes.
type replyMsg struct {
	Reply *api.SimulationReply
	Err   error
}

// recStartedMsg is sent when microphone capture begins.
type recStartedMsg struct {
	Err error
}

// roomMsg is sent when the media room connect completes.
type roomMsg struct {
	Session *api.RoomSession
	Err     error
}

// audioDoneMsg is sent when reply audio playback finishes.
type audioDoneMsg struct {
	Err error
}
