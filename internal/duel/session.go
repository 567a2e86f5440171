// Package duel holds the state machine for the five-round
// letter-arrangement minigame. The screen layer drives it: fetch results,
// key presses and timer ticks come in as method calls, rendering reads the
// accessors. Nothing here touches the network.
package duel

import (
	"math/rand/v2"
	"strings"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

// State is the game phase.
type State int

const (
	StateLoading State = iota // fetching the current round
	StatePlaying              // accepting letter selections
	StateCorrect              // last submit matched the target word
	StateWrong                // last submit missed, or the timer ran out
	StateRoundFailed          // round fetch failed mid-game; retryable
	StateGameOver             // terminal until Reset
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateCorrect:
		return "correct"
	case StateWrong:
		return "wrong"
	case StateRoundFailed:
		return "roundFailed"
	case StateGameOver:
		return "gameOver"
	}
	return "unknown"
}

const (
	// TotalRounds is the fixed game length.
	TotalRounds = 5

	// RoundSeconds is the countdown budget per round.
	RoundSeconds = 30

	// XPPerWin is the local-only XP award for a correct round.
	XPPerWin = 10
)

// Session is one duel game. Created on screen mount, discarded on
// navigation away; nothing persists across games.
type Session struct {
	state      State
	round      *api.DuelRound
	roundIndex int
	shuffled   []string
	selected   []string
	score      int
	timeLeft   int
	failMsg    string
}

// NewSession creates a session waiting for round 0 to be fetched.
func NewSession() *Session {
	return &Session{state: StateLoading}
}

func (s *Session) State() State             { return s.state }
func (s *Session) RoundIndex() int          { return s.roundIndex }
func (s *Session) Score() int               { return s.score }
func (s *Session) TimeLeft() int            { return s.timeLeft }
func (s *Session) Round() *api.DuelRound    { return s.round }
func (s *Session) FailMessage() string      { return s.failMsg }
func (s *Session) SelectedLetters() []string { return s.selected }

// ShuffledLetters is the button order for the current round. It is fixed
// at fetch time so the display never reorders mid-round.
func (s *Session) ShuffledLetters() []string { return s.shuffled }

// Guess is the concatenation of the selected letters.
func (s *Session) Guess() string { return strings.Join(s.selected, "") }

// TotalXP is the local XP tally for the game so far.
func (s *Session) TotalXP() int { return s.score * XPPerWin }

// BeginRound installs a fetched round: letters are shuffled exactly once,
// the selection clears, and the countdown resets.
func (s *Session) BeginRound(round *api.DuelRound) {
	s.round = round
	s.shuffled = shuffle(round.Letters)
	s.selected = s.selected[:0]
	s.timeLeft = RoundSeconds
	s.failMsg = ""
	s.state = StatePlaying
}

// FailRound records a fetch failure. Mid-game this is a retryable error
// state, distinct from game over; at or past the final round index the
// game is simply complete.
func (s *Session) FailRound(err error) {
	if s.roundIndex >= TotalRounds {
		s.state = StateGameOver
		return
	}
	if err != nil {
		s.failMsg = err.Error()
	} else {
		s.failMsg = "failed to fetch round"
	}
	s.state = StateRoundFailed
}

// Remaining reports how many more times the letter can be selected: its
// multiplicity in the round's letters minus the times already chosen.
func (s *Session) Remaining(letter string) int {
	if s.round == nil {
		return 0
	}
	avail := 0
	for _, l := range s.round.Letters {
		if l == letter {
			avail++
		}
	}
	for _, l := range s.selected {
		if l == letter {
			avail--
		}
	}
	return avail
}

// CanSelect reports whether the letter is still available.
func (s *Session) CanSelect(letter string) bool {
	return s.state == StatePlaying && s.Remaining(letter) > 0
}

// SelectLetter appends a letter to the guess. Selecting an exhausted
// letter, or selecting outside the playing state, is a no-op.
func (s *Session) SelectLetter(letter string) bool {
	if !s.CanSelect(letter) {
		return false
	}
	s.selected = append(s.selected, letter)
	return true
}

// RemoveLast un-selects the most recent letter.
func (s *Session) RemoveLast() {
	if s.state != StatePlaying || len(s.selected) == 0 {
		return
	}
	s.selected = s.selected[:len(s.selected)-1]
}

// Submit compares the guess against the target word (exact, order
// sensitive, native script). A submit with nothing selected is a no-op.
func (s *Session) Submit() {
	if s.state != StatePlaying || s.round == nil || len(s.selected) == 0 {
		return
	}
	if s.Guess() == s.round.Kannada {
		s.state = StateCorrect
		s.score++
	} else {
		s.state = StateWrong
	}
}

// Tick decrements the countdown by one second. Hitting zero while still
// playing forces a wrong result without a submit.
func (s *Session) Tick() {
	if s.state != StatePlaying {
		return
	}
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	if s.timeLeft == 0 {
		s.state = StateWrong
	}
}

// Advance moves past a correct/wrong result. It returns true when the
// session entered loading and the caller must fetch RoundIndex(); false
// means the game is over.
func (s *Session) Advance() bool {
	if s.state != StateCorrect && s.state != StateWrong {
		return false
	}
	next := s.roundIndex + 1
	if next >= TotalRounds {
		s.state = StateGameOver
		return false
	}
	s.roundIndex = next
	s.round = nil
	s.state = StateLoading
	return true
}

// Retry re-enters loading after a mid-game fetch failure. The caller
// re-fetches the same round index.
func (s *Session) Retry() bool {
	if s.state != StateRoundFailed {
		return false
	}
	s.failMsg = ""
	s.state = StateLoading
	return true
}

// Reset zeroes everything for a fresh game. The caller fetches round 0.
func (s *Session) Reset() {
	*s = Session{state: StateLoading}
}

// shuffle returns an unbiased permutation, leaving the input untouched.
func shuffle(letters []string) []string {
	out := make([]string, len(letters))
	copy(out, letters)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
