package lessons

import "strings"

// Scores are integers in [0,100]. Each exercise screen owns a Scorer for
// its attempt sequence and reports the final value exactly once; the
// backend decides what counts as completion.

// retryDeduction is the score cost of each wrong try before a hit.
const retryDeduction = 25

// minRetryScore keeps a persistent learner above zero.
const minRetryScore = 25

// Scorer tracks one selection → reveal → retry sequence and latches so a
// score can only be reported once.
type Scorer struct {
	misses   int
	reported bool
}

// Miss records a wrong try.
func (s *Scorer) Miss() {
	if !s.reported {
		s.misses++
	}
}

// Finish latches and returns the final score: full marks minus the retry
// deduction per miss when the learner got there, zero on give-up. A second
// call returns -1 so callers can detect double-reporting.
func (s *Scorer) Finish(succeeded bool) int {
	if s.reported {
		return -1
	}
	s.reported = true
	if !succeeded {
		return 0
	}
	score := 100 - retryDeduction*s.misses
	if score < minRetryScore {
		score = minRetryScore
	}
	return score
}

// normalize prepares free-text answers for comparison: case folded,
// trimmed, inner whitespace collapsed.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// GradeExact scores an exact-match answer (mcq, fill-in-blank, listening).
func GradeExact(answer, correct string) int {
	if normalize(answer) == normalize(correct) {
		return 100
	}
	return 0
}

// GradeTranslation accepts any of the content's accepted answers.
func GradeTranslation(answer string, c TranslationContent) int {
	got := normalize(answer)
	for _, accepted := range c.CorrectAnswers {
		if got == normalize(accepted) {
			return 100
		}
	}
	return 0
}

// GradeMatching scores the fraction of correctly matched pairs.
func GradeMatching(correctPairs, totalPairs int) int {
	if totalPairs <= 0 {
		return 0
	}
	if correctPairs > totalPairs {
		correctPairs = totalPairs
	}
	if correctPairs < 0 {
		correctPairs = 0
	}
	return correctPairs * 100 / totalPairs
}

// GradeSentence scores a word-bank ordering: the full sequence must match.
func GradeSentence(order []string, c SentenceBuildingContent) int {
	if len(order) != len(c.CorrectOrder) {
		return 0
	}
	for i := range order {
		if normalize(order[i]) != normalize(c.CorrectOrder[i]) {
			return 0
		}
	}
	return 100
}

// GradeSelfReported scores exercises the backend evaluates elsewhere
// (repeat-after-me pronunciation): practiced counts, skipped does not.
func GradeSelfReported(practiced bool) int {
	if practiced {
		return 100
	}
	return 0
}
