// Package board is the leaderboard screen.
package board

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	"github.com/Chagadiye/ctrl-vibe/internal/leaderboard"
	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/layout"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/theme"
)

type boardLoadedMsg struct {
	Board *leaderboard.Board
	Err   error
}

// BoardScreen shows the global standings.
type BoardScreen struct {
	client *api.Client
	prog   *progression.Store

	board  *leaderboard.Board
	loaded bool
	errMsg string
	scroll int
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)

// New creates the leaderboard screen.
func New(client *api.Client, prog *progression.Store) *BoardScreen {
	return &BoardScreen{client: client, prog: prog}
}

func (s *BoardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		userID := s.prog.State().UserID
		board, err := leaderboard.Fetch(context.Background(), s.client, userID)
		return boardLoadedMsg{Board: board, Err: err}
	}
}

func (s *BoardScreen) Title() string {
	return "Leaderboard"
}

func (s *BoardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.board = msg.Board
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			if s.board != nil && s.scroll < len(s.board.Rows)-1 {
				s.scroll++
			}
		case "r":
			s.loaded = false
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *BoardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg + "\n\nPress r to retry")
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\nLoading leaderboard...")
	}

	var b strings.Builder
	b.WriteString("\n")

	state := s.prog.State()
	if s.board.YourRank > 0 {
		b.WriteString("  " + theme.Selected.Render(fmt.Sprintf(
			"Your rank: #%d of %d players", s.board.YourRank, s.board.TotalPlayers)) + "\n\n")
	} else {
		b.WriteString("  " + theme.Hint.Render(fmt.Sprintf(
			"%d players", s.board.TotalPlayers)) + "\n\n")
	}

	header := fmt.Sprintf("  %-6s %-20s %8s %6s %7s", "RANK", "PLAYER", "XP", "LVL", "STREAK")
	b.WriteString(theme.Hint.Render(header) + "\n")

	visible := 12
	end := s.scroll + visible
	if end > len(s.board.Rows) {
		end = len(s.board.Rows)
	}
	for _, row := range s.board.Rows[s.scroll:end] {
		line := fmt.Sprintf("  #%-5d %-20s %8d %6d %7d",
			row.Rank, row.Username, row.XP, row.Level, row.Streak)
		switch {
		case row.Username == state.Username && state.Username != "":
			b.WriteString(theme.Selected.Render(line) + "\n")
		case row.Rank <= 3:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.ArcadeYellow).Bold(true).Render(line) + "\n")
		default:
			b.WriteString(theme.Body.Render(line) + "\n")
		}
	}
	return b.String()
}
