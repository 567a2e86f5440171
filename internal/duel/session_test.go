package duel

import (
	"errors"
	"sort"
	"testing"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

func kamalaRound() *api.DuelRound {
	return &api.DuelRound{
		Kannada: "ಕಮಲ",
		Roman:   "kamala",
		Letters: []string{"ಕ", "ಮ", "ಲ"},
	}
}

func TestCorrectGuessIncrementsScore(t *testing.T) {
	s := NewSession()
	s.BeginRound(kamalaRound())

	if s.State() != StatePlaying {
		t.Fatalf("expected playing, got %s", s.State())
	}
	for _, l := range []string{"ಕ", "ಮ", "ಲ"} {
		if !s.SelectLetter(l) {
			t.Fatalf("letter %q should be selectable", l)
		}
	}
	s.Submit()

	if s.State() != StateCorrect {
		t.Errorf("expected correct, got %s", s.State())
	}
	if s.Score() != 1 {
		t.Errorf("expected score 1, got %d", s.Score())
	}
	if s.TotalXP() != XPPerWin {
		t.Errorf("expected %d xp, got %d", XPPerWin, s.TotalXP())
	}
}

func TestWrongGuessLeavesScore(t *testing.T) {
	s := NewSession()
	s.BeginRound(kamalaRound())

	s.SelectLetter("ಮ")
	s.SelectLetter("ಕ")
	s.SelectLetter("ಲ")
	s.Submit()

	if s.State() != StateWrong {
		t.Errorf("expected wrong, got %s", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("score must not change on a wrong guess, got %d", s.Score())
	}
}

func TestSubmitRequiresSelection(t *testing.T) {
	s := NewSession()
	s.BeginRound(kamalaRound())
	s.Submit()
	if s.State() != StatePlaying {
		t.Errorf("empty submit must be a no-op, got %s", s.State())
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	round := &api.DuelRound{
		Kannada: "ಬೆಂಗಳೂರು",
		Letters: []string{"ಬೆ", "ಂ", "ಗ", "ಳೂ", "ರು", "ಂ"},
	}

	for i := 0; i < 20; i++ {
		s := NewSession()
		s.BeginRound(round)

		got := append([]string(nil), s.ShuffledLetters()...)
		want := append([]string(nil), round.Letters...)
		sort.Strings(got)
		sort.Strings(want)
		if len(got) != len(want) {
			t.Fatalf("length mismatch: %d vs %d", len(got), len(want))
		}
		for j := range got {
			if got[j] != want[j] {
				t.Fatalf("multiset mismatch: %v vs %v", got, want)
			}
		}
	}
}

func TestShuffleStableWithinRound(t *testing.T) {
	s := NewSession()
	s.BeginRound(kamalaRound())

	first := append([]string(nil), s.ShuffledLetters()...)
	s.SelectLetter("ಕ")
	s.RemoveLast()

	second := s.ShuffledLetters()
	for i := range first {
		if first[i] != second[i] {
			t.Fatal("shuffled order must not change within a round")
		}
	}
}

func TestLetterMultiplicityGuard(t *testing.T) {
	round := &api.DuelRound{
		Kannada: "ಅಮ್ಮಅ",
		Letters: []string{"ಅ", "ಮ್ಮ", "ಅ"}, // "ಅ" twice
	}
	s := NewSession()
	s.BeginRound(round)

	if !s.SelectLetter("ಅ") || !s.SelectLetter("ಅ") {
		t.Fatal("both occurrences should be selectable")
	}
	if s.CanSelect("ಅ") {
		t.Error("letter must be exhausted at multiplicity")
	}
	if s.SelectLetter("ಅ") {
		t.Error("selecting an exhausted letter must be a no-op")
	}
	if got := len(s.SelectedLetters()); got != 2 {
		t.Errorf("expected 2 selected, got %d", got)
	}

	s.RemoveLast()
	if !s.CanSelect("ಅ") {
		t.Error("removing a letter must refresh availability")
	}
}

func TestTimeoutForcesWrong(t *testing.T) {
	s := NewSession()
	s.BeginRound(kamalaRound())

	if s.TimeLeft() != RoundSeconds {
		t.Fatalf("expected %ds budget, got %d", RoundSeconds, s.TimeLeft())
	}
	for i := 0; i < RoundSeconds; i++ {
		s.Tick()
	}
	if s.State() != StateWrong {
		t.Errorf("timeout while playing must force wrong, got %s", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("timeout must not change score, got %d", s.Score())
	}

	// Ticks after leaving playing are ignored.
	s.Tick()
	if s.State() != StateWrong {
		t.Errorf("tick after timeout must be a no-op, got %s", s.State())
	}
}

func TestAdvanceThroughAllRounds(t *testing.T) {
	s := NewSession()

	for i := 0; i < TotalRounds; i++ {
		if s.RoundIndex() != i {
			t.Fatalf("expected round index %d, got %d", i, s.RoundIndex())
		}
		s.BeginRound(kamalaRound())
		s.SelectLetter("ಕ")
		s.SelectLetter("ಮ")
		s.SelectLetter("ಲ")
		s.Submit()

		needsFetch := s.Advance()
		if i < TotalRounds-1 && !needsFetch {
			t.Fatalf("round %d: expected another fetch", i)
		}
		if i == TotalRounds-1 && needsFetch {
			t.Fatal("advancing from the final round must end the game")
		}
	}

	if s.State() != StateGameOver {
		t.Errorf("expected game over, got %s", s.State())
	}
	if s.Score() != TotalRounds {
		t.Errorf("expected perfect score %d, got %d", TotalRounds, s.Score())
	}
	if s.RoundIndex() != TotalRounds-1 {
		t.Errorf("round index must never exceed %d, got %d", TotalRounds-1, s.RoundIndex())
	}
}

func TestMidGameFetchFailureIsRetryable(t *testing.T) {
	s := NewSession()
	s.FailRound(errors.New("connection refused"))

	if s.State() != StateRoundFailed {
		t.Fatalf("expected roundFailed, got %s", s.State())
	}
	if s.State() == StateGameOver {
		t.Fatal("a mid-game failure must not look like normal completion")
	}

	if !s.Retry() {
		t.Fatal("retry from roundFailed should re-enter loading")
	}
	if s.State() != StateLoading {
		t.Errorf("expected loading after retry, got %s", s.State())
	}
	if s.RoundIndex() != 0 {
		t.Errorf("retry must keep the same round index, got %d", s.RoundIndex())
	}
}

func TestReset(t *testing.T) {
	s := NewSession()
	s.BeginRound(kamalaRound())
	s.SelectLetter("ಕ")
	s.SelectLetter("ಮ")
	s.SelectLetter("ಲ")
	s.Submit()
	for s.Advance() {
		s.BeginRound(kamalaRound())
		s.Submit() // no selection: no-op, then time out
		for s.State() == StatePlaying {
			s.Tick()
		}
	}

	s.Reset()
	if s.State() != StateLoading || s.Score() != 0 || s.RoundIndex() != 0 {
		t.Errorf("reset must zero the session, got state=%s score=%d idx=%d",
			s.State(), s.Score(), s.RoundIndex())
	}
}
