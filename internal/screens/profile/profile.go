// Package profile shows the learner's identity, progress, and earned
// achievements, with edit-in-place username changes.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/components"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/layout"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/theme"
)

// usernameSavedMsg is sent when the backend accepts or rejects the new
// username.
type usernameSavedMsg struct {
	Err error
}

// ProfileScreen shows progression state and edits the username.
type ProfileScreen struct {
	prog *progression.Store

	editing bool
	saving  bool
	input   components.TextInput
	errMsg  string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(prog *progression.Store) *ProfileScreen {
	return &ProfileScreen{prog: prog}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Ctrl+X", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "e", Description: "Edit name"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case usernameSavedMsg:
		s.saving = false
		if msg.Err != nil {
			// The store keeps the old name on failure; stay in edit
			// mode with the rejected value still in the input.
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.editing = false
		s.errMsg = ""
		return s, nil

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}
		if s.editing {
			switch msg.String() {
			case "enter":
				name := strings.TrimSpace(s.input.Value())
				if name == "" {
					s.errMsg = "Username cannot be empty"
					return s, nil
				}
				s.saving = true
				s.errMsg = ""
				return s, func() tea.Msg {
					return usernameSavedMsg{Err: s.prog.UpdateUsername(context.Background(), name)}
				}
			case "ctrl+x":
				s.editing = false
				s.errMsg = ""
				return s, nil
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		if msg.String() == "e" {
			s.editing = true
			s.input = components.NewTextInput(s.prog.State().Username, false, 24)
			return s, s.input.Init()
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	state := s.prog.State()
	var b strings.Builder
	b.WriteString("\n")

	if s.editing {
		b.WriteString("  " + theme.Body.Render("Username: ") + s.input.View())
		if s.saving {
			b.WriteString("  " + theme.Hint.Render("saving..."))
		}
		b.WriteString("\n")
	} else {
		name := state.Username
		if name == "" {
			name = progression.DefaultUsername
		}
		b.WriteString("  " + theme.Title.Render(name) + "\n")
	}
	if s.errMsg != "" {
		b.WriteString("  " + theme.Incorrect.Render(s.errMsg) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  %s   %s   %s\n\n",
		theme.Selected.Render(fmt.Sprintf("Level %d", state.Level)),
		theme.Body.Render(fmt.Sprintf("%d XP", state.XP)),
		theme.Body.Render(fmt.Sprintf("🔥 %d day streak", state.Streak)),
	))

	next := progression.NextLevelAt(state.Level)
	if next < 0 {
		b.WriteString("  " + lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).Bold(true).
			Render("Max level reached!") + "\n")
	} else {
		bar := components.NewProgressBar(
			fmt.Sprintf("To level %d", state.Level+1),
			progression.ProgressToNext(state.XP, state.Level),
			true, 50)
		b.WriteString("  " + bar.View() + "\n")
		b.WriteString("  " + theme.Hint.Render(fmt.Sprintf("%d / %d XP", state.XP, next)) + "\n")
	}

	b.WriteString("\n  " + theme.Subtitle.Render("ACHIEVEMENTS") + "\n\n")
	for _, info := range progression.CatalogAchievements() {
		if s.prog.HasAchievement(info.ID) {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				info.Icon,
				theme.Body.Bold(true).Render(info.Name),
				theme.Hint.Render(info.Description)))
		} else {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("🔒 %s  %s", info.Name, info.Description)) + "\n")
		}
	}

	// Achievements the backend granted that this client doesn't know.
	for _, id := range state.Achievements {
		if !knownAchievement(id) {
			info := progression.LookupAchievement(id)
			b.WriteString(fmt.Sprintf("  %s %s\n", info.Icon, theme.Body.Render(info.Name)))
		}
	}

	return b.String()
}

func knownAchievement(id string) bool {
	for _, info := range progression.CatalogAchievements() {
		if info.ID == id {
			return true
		}
	}
	return false
}
