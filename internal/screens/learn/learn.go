// Package learn holds the track list and per-track lesson list screens.
package learn

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	"github.com/Chagadiye/ctrl-vibe/internal/audio"
	"github.com/Chagadiye/ctrl-vibe/internal/lessons"
	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/router"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	lessonplay "github.com/Chagadiye/ctrl-vibe/internal/screens/lesson"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/layout"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/theme"
)

// TracksScreen lists the learning tracks.
type TracksScreen struct {
	svc      *lessons.Service
	prog     *progression.Store
	player   audio.Player
	tracks   []api.Track
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*TracksScreen)(nil)
var _ screen.KeyHintProvider = (*TracksScreen)(nil)

// New creates the track list screen.
func New(svc *lessons.Service, prog *progression.Store, player audio.Player) *TracksScreen {
	return &TracksScreen{svc: svc, prog: prog, player: player}
}

func (s *TracksScreen) Init() tea.Cmd {
	return func() tea.Msg {
		tracks, err := s.svc.Tracks(context.Background())
		return tracksLoadedMsg{Tracks: tracks, Err: err}
	}
}

func (s *TracksScreen) Title() string {
	return "Learn"
}

func (s *TracksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "r", Description: "Retry"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TracksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tracksLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.tracks = msg.Tracks
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.tracks)-1 {
				s.selected++
			}
		case "r":
			if s.errMsg != "" {
				s.loaded = false
				return s, s.Init()
			}
		case "enter":
			if s.selected < len(s.tracks) {
				track := s.tracks[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: newLessonsScreen(track, s.prog, s.player)}
				}
			}
		}
	}
	return s, nil
}

func (s *TracksScreen) View(width, height int) string {
	if s.errMsg != "" {
		return errorView(width, s.errMsg)
	}
	if !s.loaded {
		return loadingView(width, "Loading tracks...")
	}
	if len(s.tracks) == 0 {
		return loadingView(width, "No tracks available yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, track := range s.tracks {
		line := fmt.Sprintf("%s  %s", track.Name, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("(%d lessons)", len(track.Lessons))))
		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).Bold(true).
				Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+line) + "\n")
		}
		if i == s.selected && track.Description != "" {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("      "+track.Description) + "\n")
		}
	}
	return b.String()
}

// LessonsScreen lists one track's lessons.
type LessonsScreen struct {
	track    api.Track
	prog     *progression.Store
	player   audio.Player
	selected int
}

var _ screen.Screen = (*LessonsScreen)(nil)

func newLessonsScreen(track api.Track, prog *progression.Store, player audio.Player) *LessonsScreen {
	return &LessonsScreen{track: track, prog: prog, player: player}
}

func (s *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonsScreen) Title() string {
	return s.track.Name
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.track.Lessons)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(s.track.Lessons) {
			lesson := s.track.Lessons[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: lessonplay.New(lesson, s.track.ID, s.prog, s.player),
				}
			}
		}
	}
	return s, nil
}

func (s *LessonsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, lesson := range s.track.Lessons {
		kind := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("[" + lessonKindLabel(lesson.Type) + "]")
		line := fmt.Sprintf("%s  %s", lesson.Title, kind)
		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).Bold(true).
				Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+line) + "\n")
		}
	}
	return b.String()
}

func lessonKindLabel(t string) string {
	switch lessons.Type(t) {
	case lessons.TypeMCQ:
		return "quiz"
	case lessons.TypeRepeatAfterMe:
		return "speak"
	case lessons.TypeFillInBlank:
		return "fill"
	case lessons.TypeWordMatching:
		return "match"
	case lessons.TypeListening:
		return "listen"
	case lessons.TypeTranslation:
		return "translate"
	case lessons.TypeSentenceBuilding:
		return "build"
	default:
		return t
	}
}

func loadingView(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("\n\n" + text)
}

func errorView(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Error).
		Render("\n\nError: " + text + "\n\nPress r to retry")
}
