// Package sims holds the simulation catalog screen and the live
// conversation screen.
package sims

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	"github.com/Chagadiye/ctrl-vibe/internal/audio"
	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/router"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/simulation"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/layout"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/theme"
)

// ListScreen is the simulation catalog with the age-verification gate.
type ListScreen struct {
	client   *api.Client
	prog     *progression.Store
	recorder audio.Recorder
	player   audio.Player

	selected int
	// gating holds the restricted scenario waiting for the learner to
	// confirm they are an adult; empty means no modal.
	gating string
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the simulation catalog screen.
func New(client *api.Client, prog *progression.Store, recorder audio.Recorder, player audio.Player) *ListScreen {
	return &ListScreen{client: client, prog: prog, recorder: recorder, player: player}
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Title() string {
	return "Simulations"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	if s.gating != "" {
		return []layout.KeyHint{
			{Key: "y", Description: "I am 18+"},
			{Key: "n", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.gating != "" {
		switch kmsg.String() {
		case "y":
			simType := s.gating
			s.gating = ""
			return s, s.startCmd(simType, true)
		case "n", "esc":
			s.gating = ""
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(simulation.Catalog)-1 {
			s.selected++
		}
	case "enter":
		info := simulation.Catalog[s.selected]
		if info.AgeRestricted {
			s.gating = info.ID
			return s, nil
		}
		return s, s.startCmd(info.ID, false)
	}
	return s, nil
}

func (s *ListScreen) startCmd(simType string, ageVerified bool) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: newConversation(s.client, s.prog, s.recorder, s.player, simType, ageVerified),
		}
	}
}

func (s *ListScreen) View(width, height int) string {
	if s.gating != "" {
		return s.viewAgeModal(width)
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, info := range simulation.Catalog {
		title := info.Title
		if info.AgeRestricted {
			title += "  🔞"
		}
		meta := theme.Hint.Render(fmt.Sprintf("%s · %d XP", info.Difficulty, info.XPReward))
		line := fmt.Sprintf("%s  %s", title, meta)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
			b.WriteString(theme.Hint.Render("      "+info.Description) + "\n")
		} else {
			b.WriteString(theme.Body.Render("    "+line) + "\n")
		}
	}
	return b.String()
}

func (s *ListScreen) viewAgeModal(width int) string {
	info, _ := simulation.Lookup(s.gating)
	card := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(theme.Body.Bold(true).Render("Age Verification Required") + "\n\n" +
			theme.Body.Render(info.Title+" may include strong language.") + "\n\n" +
			theme.Hint.Render("y: I am 18 or older    n: cancel"))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + card)
}
