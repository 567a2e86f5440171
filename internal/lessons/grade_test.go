package lessons

import "testing"

func TestGradeExactNormalizes(t *testing.T) {
	cases := []struct {
		name    string
		answer  string
		correct string
		want    int
	}{
		{"exact", "ನಮಸ್ಕಾರ", "ನಮಸ್ಕಾರ", 100},
		{"case and spacing", "  Hello   World ", "hello world", 100},
		{"wrong", "goodbye", "hello", 0},
		{"empty answer", "", "hello", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GradeExact(tc.answer, tc.correct); got != tc.want {
				t.Errorf("GradeExact(%q, %q) = %d, want %d", tc.answer, tc.correct, got, tc.want)
			}
		})
	}
}

func TestGradeTranslationAcceptsAnyAnswer(t *testing.T) {
	c := TranslationContent{CorrectAnswers: []string{"water", "the water"}}
	if got := GradeTranslation("The Water", c); got != 100 {
		t.Errorf("second accepted answer = %d, want 100", got)
	}
	if got := GradeTranslation("fire", c); got != 0 {
		t.Errorf("unaccepted answer = %d, want 0", got)
	}
}

func TestGradeMatchingFraction(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{4, 4, 100},
		{3, 4, 75},
		{0, 4, 0},
		{1, 3, 33},
		{5, 4, 100}, // clamped
		{-1, 4, 0},  // clamped
		{2, 0, 0},   // no pairs
	}
	for _, tc := range cases {
		if got := GradeMatching(tc.correct, tc.total); got != tc.want {
			t.Errorf("GradeMatching(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}

func TestGradeSentenceExactOrder(t *testing.T) {
	c := SentenceBuildingContent{CorrectOrder: []string{"ನನ್ನ", "ಹೆಸರು", "ರವಿ"}}
	if got := GradeSentence([]string{"ನನ್ನ", "ಹೆಸರು", "ರವಿ"}, c); got != 100 {
		t.Errorf("correct order = %d, want 100", got)
	}
	if got := GradeSentence([]string{"ಹೆಸರು", "ನನ್ನ", "ರವಿ"}, c); got != 0 {
		t.Errorf("swapped order = %d, want 0", got)
	}
	if got := GradeSentence([]string{"ನನ್ನ", "ಹೆಸರು"}, c); got != 0 {
		t.Errorf("short answer = %d, want 0", got)
	}
}

func TestScorerRetryDeduction(t *testing.T) {
	cases := []struct {
		name      string
		misses    int
		succeeded bool
		want      int
	}{
		{"first try", 0, true, 100},
		{"one miss", 1, true, 75},
		{"two misses", 2, true, 50},
		{"many misses floors", 5, true, 25},
		{"gave up", 2, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Scorer
			for i := 0; i < tc.misses; i++ {
				s.Miss()
			}
			if got := s.Finish(tc.succeeded); got != tc.want {
				t.Errorf("Finish = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScorerReportsOnce(t *testing.T) {
	var s Scorer
	if got := s.Finish(true); got != 100 {
		t.Fatalf("first Finish = %d, want 100", got)
	}
	if got := s.Finish(true); got != -1 {
		t.Errorf("second Finish = %d, want -1", got)
	}
	s.Miss() // after latching, misses must not change anything
}
