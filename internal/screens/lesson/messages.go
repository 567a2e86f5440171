package lesson

import "github.com/Chagadiye/ctrl-vibe/internal/api"

// submitResultMsg is sent when the backend accepts or rejects the score.
type submitResultMsg struct {
	Result *api.LessonResult
	Err    error
}

// audioDoneMsg is sent when prompt audio playback finishes.
type audioDoneMsg struct {
	Err error
}
