package duel

import (
	"errors"
	"testing"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	duelgame "github.com/Chagadiye/ctrl-vibe/internal/duel"
	"github.com/Chagadiye/ctrl-vibe/internal/progression"
)

func testRound() *api.DuelRound {
	return &api.DuelRound{
		Kannada: "ಮನೆ",
		Roman:   "mane",
		Letters: []string{"ಮ", "ನೆ"},
	}
}

func newTestScreen() *DuelScreen {
	return New(nil, progression.NewStore(nil, nil))
}

func TestRoundFetchedStartsPlaying(t *testing.T) {
	s := newTestScreen()

	s.Update(roundFetchedMsg{Gen: 0, Index: 0, Round: testRound()})

	if got := s.session.State(); got != duelgame.StatePlaying {
		t.Fatalf("state = %v, want playing", got)
	}
}

func TestStaleGenerationDropped(t *testing.T) {
	s := newTestScreen()

	// A result from a previous game (gen mismatch) must not start a round.
	s.Update(roundFetchedMsg{Gen: 5, Index: 0, Round: testRound()})

	if got := s.session.State(); got != duelgame.StateLoading {
		t.Fatalf("state = %v, want loading after stale result", got)
	}
}

func TestStaleIndexDropped(t *testing.T) {
	s := newTestScreen()

	s.Update(roundFetchedMsg{Gen: 0, Index: 3, Round: testRound()})

	if got := s.session.State(); got != duelgame.StateLoading {
		t.Fatalf("state = %v, want loading after stale index", got)
	}
}

func TestFetchErrorIsRetryable(t *testing.T) {
	s := newTestScreen()

	s.Update(roundFetchedMsg{Gen: 0, Index: 0, Err: errors.New("boom")})

	if got := s.session.State(); got != duelgame.StateRoundFailed {
		t.Fatalf("state = %v, want roundFailed", got)
	}

	_, cmd := s.handleKey("r")
	if cmd == nil {
		t.Fatal("expected retry to issue a fetch command")
	}
	if got := s.session.State(); got != duelgame.StateLoading {
		t.Fatalf("state = %v, want loading after retry", got)
	}
}

func TestSelectAndSubmitCorrect(t *testing.T) {
	s := newTestScreen()
	s.Update(roundFetchedMsg{Gen: 0, Index: 0, Round: testRound()})

	// Pick letters in target order by seeking each one with the cursor.
	for _, want := range []string{"ಮ", "ನೆ"} {
		letters := s.session.ShuffledLetters()
		for i, l := range letters {
			if l == want {
				s.cursor = i
				break
			}
		}
		s.handleKey("enter")
	}
	s.handleKey("space")

	if got := s.session.State(); got != duelgame.StateCorrect {
		t.Fatalf("state = %v, want correct", got)
	}
	if s.session.Score() != 1 {
		t.Errorf("score = %d, want 1", s.session.Score())
	}
}

func TestAdvanceIssuesNextFetch(t *testing.T) {
	s := newTestScreen()
	s.Update(roundFetchedMsg{Gen: 0, Index: 0, Round: testRound()})

	// Submit with a wrong single letter to reach the wrong state.
	s.cursor = 0
	s.handleKey("enter")
	s.handleKey("space")
	if got := s.session.State(); got != duelgame.StateCorrect && got != duelgame.StateWrong {
		t.Fatalf("state = %v, want correct or wrong", got)
	}

	_, cmd := s.handleKey("enter")
	if cmd == nil {
		t.Fatal("expected advance to issue a fetch command")
	}
	if s.session.RoundIndex() != 1 {
		t.Errorf("round index = %d, want 1", s.session.RoundIndex())
	}
	if got := s.session.State(); got != duelgame.StateLoading {
		t.Fatalf("state = %v, want loading", got)
	}
}

func TestStaleTickDropped(t *testing.T) {
	s := newTestScreen()

	// Round 0 starts its tick chain.
	s.Update(roundFetchedMsg{Gen: 0, Index: 0, Round: testRound()})

	// Wrong submit, advance, round 1 begins with a fresh 30s budget and
	// its own tick chain.
	s.cursor = 0
	s.handleKey("enter")
	s.handleKey("space")
	s.handleKey("enter")
	s.Update(roundFetchedMsg{Gen: 0, Index: 1, Round: testRound()})

	// Round 0's pending tick fires now. It must neither decrement the
	// fresh round nor reschedule a second chain.
	_, cmd := s.Update(tickMsg{Gen: 0, Index: 0})
	if cmd != nil {
		t.Fatal("stale tick must not reschedule")
	}
	if got := s.session.TimeLeft(); got != duelgame.RoundSeconds {
		t.Fatalf("timeLeft = %d, want %d after stale tick", got, duelgame.RoundSeconds)
	}

	// The live chain still counts down at one second per tick.
	_, cmd = s.Update(tickMsg{Gen: 0, Index: 1})
	if cmd == nil {
		t.Fatal("live tick should reschedule")
	}
	if got := s.session.TimeLeft(); got != duelgame.RoundSeconds-1 {
		t.Fatalf("timeLeft = %d, want %d after one live tick", got, duelgame.RoundSeconds-1)
	}
}

func TestTickFromAbandonedGameDropped(t *testing.T) {
	s := newTestScreen()
	s.Update(roundFetchedMsg{Gen: 0, Index: 0, Round: testRound()})
	s.gen++ // play-again bumped the generation
	s.session.Reset()
	s.Update(roundFetchedMsg{Gen: 1, Index: 0, Round: testRound()})

	_, cmd := s.Update(tickMsg{Gen: 0, Index: 0})
	if cmd != nil {
		t.Fatal("old game's tick must not reschedule")
	}
	if got := s.session.TimeLeft(); got != duelgame.RoundSeconds {
		t.Fatalf("timeLeft = %d, want %d", got, duelgame.RoundSeconds)
	}
}

func TestPlayAgainBumpsGeneration(t *testing.T) {
	s := newTestScreen()
	s.awardedRound = 2

	// Walk all five rounds with empty-wrong submissions via timeouts.
	s.Update(roundFetchedMsg{Gen: 0, Index: 0, Round: testRound()})
	for s.session.State() != duelgame.StateGameOver {
		for s.session.State() == duelgame.StatePlaying {
			s.session.Tick()
		}
		s.handleKey("enter")
		if s.session.State() == duelgame.StateLoading {
			s.Update(roundFetchedMsg{Gen: 0, Index: s.session.RoundIndex(), Round: testRound()})
		}
	}

	_, cmd := s.handleKey("n")
	if cmd == nil {
		t.Fatal("expected play again to issue a fetch command")
	}
	if s.gen != 1 {
		t.Errorf("gen = %d, want 1", s.gen)
	}
	if s.awardedRound != -1 {
		t.Error("awarded round should reset for a new game")
	}

	// The old game's in-flight result is now stale.
	s.Update(roundFetchedMsg{Gen: 0, Index: 0, Round: testRound()})
	if got := s.session.State(); got != duelgame.StateLoading {
		t.Fatalf("state = %v, want loading after stale gen-0 result", got)
	}
}

func TestCorrectSubmitAwardsImmediately(t *testing.T) {
	s := newTestScreen()
	s.Update(roundFetchedMsg{Gen: 0, Index: 0, Round: testRound()})

	for _, want := range []string{"ಮ", "ನೆ"} {
		letters := s.session.ShuffledLetters()
		for i, l := range letters {
			if l == want {
				s.cursor = i
				break
			}
		}
		s.handleKey("enter")
	}
	_, cmd := s.handleKey("space")

	if s.session.State() != duelgame.StateCorrect {
		t.Fatalf("state = %v, want correct", s.session.State())
	}
	if cmd == nil {
		t.Fatal("winning a round should apply its XP right away")
	}
	if s.awardCmd() != nil {
		t.Error("the same round must not pay out twice")
	}
}

func TestWrongSubmitDoesNotAward(t *testing.T) {
	s := newTestScreen()
	s.Update(roundFetchedMsg{Gen: 0, Index: 0, Round: testRound()})

	s.cursor = 0
	s.handleKey("enter")
	_, cmd := s.handleKey("space")

	if s.session.State() == duelgame.StateCorrect {
		t.Fatal("single letter should not spell the word")
	}
	if cmd != nil {
		t.Error("a missed round must not award XP")
	}
	if s.awardedRound != -1 {
		t.Errorf("awardedRound = %d, want -1", s.awardedRound)
	}
}
