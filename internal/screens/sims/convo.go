package sims

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	"github.com/Chagadiye/ctrl-vibe/internal/audio"
	"github.com/Chagadiye/ctrl-vibe/internal/mediaroom"
	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/router"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/simulation"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/layout"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/theme"
)

type convoPhase int

const (
	phaseStarting convoPhase = iota
	phaseReady
	phaseRecording
	phaseSending
	phaseEnded
	phaseFailed
)

// ConvoScreen runs one live simulation conversation.
type ConvoScreen struct {
	session  *simulation.Session
	room     *mediaroom.Room
	recorder audio.Recorder
	player   audio.Player
	simType  string
	userID   string

	phase    convoPhase
	errMsg   string
	lastAudio string
}

var _ screen.Screen = (*ConvoScreen)(nil)
var _ screen.KeyHintProvider = (*ConvoScreen)(nil)
var _ screen.Teardowner = (*ConvoScreen)(nil)

func newConversation(client *api.Client, prog *progression.Store, recorder audio.Recorder, player audio.Player, simType string, ageVerified bool) *ConvoScreen {
	s := &ConvoScreen{
		recorder: recorder,
		player:   player,
		simType:  simType,
		room:     mediaroom.New(client, mediaroom.Hooks{}),
	}

	s.userID = prog.State().UserID
	sess, err := simulation.NewSession(client, simType, s.userID, ageVerified)
	if err != nil {
		s.phase = phaseFailed
		s.errMsg = err.Error()
		return s
	}
	s.session = sess
	return s
}

func (s *ConvoScreen) Init() tea.Cmd {
	if s.session == nil {
		return nil
	}
	return tea.Batch(
		func() tea.Msg {
			reply, err := s.session.Start(context.Background())
			return startedMsg{Reply: reply, Err: err}
		},
		func() tea.Msg {
			room, err := s.room.Connect(context.Background(), s.simType, s.userID)
			return roomMsg{Session: room, Err: err}
		},
	)
}

func (s *ConvoScreen) Title() string {
	if info, ok := simulation.Lookup(s.simType); ok {
		return info.Title
	}
	return "Simulation"
}

func (s *ConvoScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseReady:
		return []layout.KeyHint{
			{Key: "Space", Description: "Hold forth (record)"},
			{Key: "p", Description: "Replay tutor"},
			{Key: "Esc", Description: "Leave"},
		}
	case phaseRecording:
		return []layout.KeyHint{{Key: "Space", Description: "Stop and send"}}
	case phaseEnded, phaseFailed:
		return []layout.KeyHint{{Key: "Enter", Description: "Back"}}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Leave"}}
	}
}

// Teardown releases the microphone and media room when the screen pops.
func (s *ConvoScreen) Teardown() tea.Cmd {
	return func() tea.Msg {
		if s.phase == phaseRecording {
			_, _ = s.recorder.Stop()
		}
		_ = s.room.Disconnect(context.Background())
		return nil
	}
}

func (s *ConvoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.Err != nil {
			s.phase = phaseFailed
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.phase = phaseReady
		s.lastAudio = msg.Reply.AudioURL
		return s, s.playCmd(msg.Reply.AudioURL)

	case roomMsg:
		// Credentials are best-effort; the conversation works over
		// plain request audio without a live room.
		return s, nil

	case recStartedMsg:
		if msg.Err != nil {
			s.phase = phaseReady
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.phase = phaseRecording
		s.errMsg = ""
		return s, nil

	case replyMsg:
		if msg.Err != nil {
			s.phase = phaseReady
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.lastAudio = msg.Reply.AudioURL
		if msg.Reply.EndConversation {
			s.phase = phaseEnded
		} else {
			s.phase = phaseReady
		}
		return s, s.playCmd(msg.Reply.AudioURL)

	case audioDoneMsg:
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *ConvoScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseReady:
		switch key {
		case "space", " ":
			return s, func() tea.Msg {
				return recStartedMsg{Err: s.recorder.Start(context.Background())}
			}
		case "p":
			return s, s.playCmd(s.lastAudio)
		}

	case phaseRecording:
		if key == "space" || key == " " {
			s.phase = phaseSending
			return s, func() tea.Msg {
				data, err := s.recorder.Stop()
				if err != nil {
					return replyMsg{Err: err}
				}
				reply, err := s.session.Converse(context.Background(), data)
				return replyMsg{Reply: reply, Err: err}
			}
		}

	case phaseEnded, phaseFailed:
		if key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ConvoScreen) playCmd(url string) tea.Cmd {
	if url == "" || s.player == nil {
		return nil
	}
	return func() tea.Msg {
		return audioDoneMsg{Err: s.player.Play(context.Background(), url)}
	}
}

func (s *ConvoScreen) View(width, height int) string {
	if s.phase == phaseFailed {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg + "\n\nPress Enter to go back")
	}
	if s.phase == phaseStarting {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\nStarting conversation...")
	}

	var b strings.Builder
	b.WriteString("\n")

	for _, m := range s.session.Messages() {
		if m.Speaker == "you" {
			b.WriteString("  " + theme.Selected.Render("You: ") +
				theme.Hint.Render(m.Text) + "\n")
		} else {
			b.WriteString("  " + theme.Correct.Render("Tutor: ") +
				theme.Body.Render(m.Text) + "\n")
		}
	}
	b.WriteString("\n")

	switch s.phase {
	case phaseRecording:
		b.WriteString("  " + lipgloss.NewStyle().
			Foreground(theme.Error).Bold(true).
			Render("● Recording... press Space to send") + "\n")
	case phaseSending:
		b.WriteString("  " + theme.Hint.Render("Sending...") + "\n")
	case phaseEnded:
		b.WriteString("  " + theme.Title.Render("Conversation over!") + "\n")
		if score := s.session.Score(); score > 0 {
			b.WriteString("  " + theme.Correct.Render(fmt.Sprintf("Score: %d", score)) + "\n")
		}
		for aspect, note := range s.session.Feedback() {
			b.WriteString("  " + theme.Hint.Render(aspect+": "+note) + "\n")
		}
	default:
		b.WriteString("  " + theme.Hint.Render("Press Space to speak") + "\n")
	}
	if s.errMsg != "" && s.phase != phaseFailed {
		b.WriteString("\n  " + theme.Incorrect.Render(s.errMsg) + "\n")
	}
	return b.String()
}
