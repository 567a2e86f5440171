// Package duel is the letter-arranging minigame screen: five rounds, a
// thirty-second countdown each, arrange shuffled Kannada letters into the
// target word.
package duel

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	duelgame "github.com/Chagadiye/ctrl-vibe/internal/duel"
	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/router"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/layout"
)

// DuelScreen drives one duel game.
type DuelScreen struct {
	client  *api.Client
	prog    *progression.Store
	session *duelgame.Session

	// gen invalidates in-flight fetches and ticks: a message whose gen
	// does not match is from an abandoned game and is dropped.
	gen    int
	cursor int

	// awardedRound is the last round index whose win XP has been
	// applied, so a round can never pay out twice.
	awardedRound int
}

var _ screen.Screen = (*DuelScreen)(nil)
var _ screen.KeyHintProvider = (*DuelScreen)(nil)

// New creates a duel screen with a fresh session.
func New(client *api.Client, prog *progression.Store) *DuelScreen {
	return &DuelScreen{
		client:       client,
		prog:         prog,
		session:      duelgame.NewSession(),
		awardedRound: -1,
	}
}

func (s *DuelScreen) Init() tea.Cmd {
	return s.fetchCmd()
}

func (s *DuelScreen) Title() string {
	return "Letter Duel"
}

func (s *DuelScreen) KeyHints() []layout.KeyHint {
	switch s.session.State() {
	case duelgame.StatePlaying:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose letter"},
			{Key: "Enter", Description: "Pick"},
			{Key: "Backspace", Description: "Undo"},
			{Key: "Space", Description: "Submit"},
		}
	case duelgame.StateRoundFailed:
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Quit duel"},
		}
	case duelgame.StateGameOver:
		return []layout.KeyHint{
			{Key: "n", Description: "Play again"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *DuelScreen) fetchCmd() tea.Cmd {
	gen := s.gen
	index := s.session.RoundIndex()
	return func() tea.Msg {
		round, err := s.client.DuelRound(context.Background(), index)
		return roundFetchedMsg{Gen: gen, Index: index, Round: round, Err: err}
	}
}

func (s *DuelScreen) tickCmd() tea.Cmd {
	gen, index := s.gen, s.session.RoundIndex()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{Gen: gen, Index: index}
	})
}

func (s *DuelScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundFetchedMsg:
		// Stale fetch from a reset or abandoned game.
		if msg.Gen != s.gen || msg.Index != s.session.RoundIndex() {
			return s, nil
		}
		if s.session.State() != duelgame.StateLoading {
			return s, nil
		}
		if msg.Err != nil {
			s.session.FailRound(msg.Err)
			return s, nil
		}
		s.session.BeginRound(msg.Round)
		s.cursor = 0
		return s, s.tickCmd()

	case tickMsg:
		// A tick scheduled for an earlier round or an abandoned game.
		if msg.Gen != s.gen || msg.Index != s.session.RoundIndex() {
			return s, nil
		}
		if s.session.State() != duelgame.StatePlaying {
			return s, nil
		}
		s.session.Tick()
		if s.session.State() == duelgame.StatePlaying {
			return s, s.tickCmd()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *DuelScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	switch s.session.State() {
	case duelgame.StatePlaying:
		return s.handlePlayingKey(key)

	case duelgame.StateCorrect, duelgame.StateWrong:
		if key == "enter" {
			if s.session.Advance() {
				return s, s.fetchCmd()
			}
			return s, nil
		}

	case duelgame.StateRoundFailed:
		if key == "r" && s.session.Retry() {
			return s, s.fetchCmd()
		}

	case duelgame.StateGameOver:
		switch key {
		case "n":
			s.gen++
			s.awardedRound = -1
			s.session.Reset()
			return s, s.fetchCmd()
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *DuelScreen) handlePlayingKey(key string) (screen.Screen, tea.Cmd) {
	letters := s.session.ShuffledLetters()
	switch key {
	case "left", "h":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor < len(letters)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(letters) {
			s.session.SelectLetter(letters[s.cursor])
		}
	case "backspace":
		s.session.RemoveLast()
	case "space", " ":
		s.session.Submit()
		if s.session.State() == duelgame.StateCorrect {
			return s, s.awardCmd()
		}
	}
	return s, nil
}

// awardCmd applies the fixed XP for a won round, at most once per round,
// so the header total moves as soon as the word is solved and quitting
// mid-game keeps what was already earned.
func (s *DuelScreen) awardCmd() tea.Cmd {
	index := s.session.RoundIndex()
	if index <= s.awardedRound {
		return nil
	}
	s.awardedRound = index
	return func() tea.Msg {
		s.prog.AwardDuelXP(context.Background(), duelgame.XPPerWin)
		return nil
	}
}
