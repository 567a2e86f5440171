// Package lesson is the exercise player: it decodes one lesson's content,
// runs the matching interaction, and submits the final score.
package lesson

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	"github.com/Chagadiye/ctrl-vibe/internal/audio"
	"github.com/Chagadiye/ctrl-vibe/internal/lessons"
	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/router"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/components"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseRevealed
	phaseSubmitting
	phaseDone
	phaseError
	phaseUnsupported
)

// PlayScreen runs one lesson attempt from first keypress to submitted
// score.
type PlayScreen struct {
	lesson  api.Lesson
	trackID string
	prog    *progression.Store
	player  audio.Player

	content   lessons.Content
	decodeErr error

	phase   phase
	started time.Time
	scorer  lessons.Scorer
	score   int
	correct bool

	// mcq, listening, fill-with-options
	choice components.MultiChoice
	// fill-without-options, translation
	input components.TextInput
	// word matching: one pair at a time
	pairIndex    int
	pairsCorrect int
	// sentence building
	picked []int

	result *api.LessonResult
	errMsg string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates the player for one lesson.
func New(l api.Lesson, trackID string, prog *progression.Store, player audio.Player) *PlayScreen {
	s := &PlayScreen{
		lesson:  l,
		trackID: trackID,
		prog:    prog,
		player:  player,
		started: time.Now(),
	}

	content, err := lessons.DecodeContent(l)
	if err != nil {
		s.decodeErr = err
		s.phase = phaseUnsupported
		return s
	}
	s.content = content

	switch c := content.(type) {
	case lessons.MCQContent:
		s.choice = components.NewMultiChoice(c.Question, c.Options, indexOf(c.Options, c.CorrectAnswer))
	case lessons.ListeningContent:
		s.choice = components.NewMultiChoice(c.Question, c.Options, indexOf(c.Options, c.CorrectAnswer))
	case lessons.FillInBlankContent:
		if len(c.Options) > 0 {
			s.choice = components.NewMultiChoice(c.Sentence, c.Options, indexOf(c.Options, c.CorrectAnswer))
		} else {
			s.input = components.NewTextInput("Type the missing word", false, 64)
		}
	case lessons.TranslationContent:
		s.input = components.NewTextInput("Type your translation", false, 128)
	case lessons.WordMatchingContent:
		if len(c.Pairs) > 0 {
			s.choice = matchingChoice(c, 0)
		}
	}
	return s
}

func indexOf(options []string, answer string) int {
	for i, o := range options {
		if o == answer {
			return i
		}
	}
	return 0
}

// matchingChoice builds the multiple-choice widget for one matching pair:
// the kannada word as question, all english sides as options.
func matchingChoice(c lessons.WordMatchingContent, pair int) components.MultiChoice {
	options := make([]string, 0, len(c.Pairs))
	for _, p := range c.Pairs {
		options = append(options, p.English)
	}
	return components.NewMultiChoice("Match: "+c.Pairs[pair].Kannada, options, pair)
}

func (s *PlayScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayScreen) Title() string {
	return s.lesson.Title
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseRevealed:
		if s.correct {
			return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
		}
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Enter", Description: "Give up"},
		}
	case phaseDone, phaseUnsupported:
		return []layout.KeyHint{{Key: "Enter", Description: "Back"}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		if msg.Err != nil {
			s.phase = phaseError
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.result = msg.Result
		s.phase = phaseDone
		return s, nil

	case audioDoneMsg:
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseUnsupported:
		if key == "enter" {
			return s, popCmd()
		}
		return s, nil

	case phaseDone:
		if key == "enter" {
			return s, popCmd()
		}
		return s, nil

	case phaseError:
		if key == "r" {
			s.phase = phaseSubmitting
			return s, s.submitCmd()
		}
		if key == "enter" {
			return s, popCmd()
		}
		return s, nil

	case phaseSubmitting:
		return s, nil

	case phaseRevealed:
		switch key {
		case "r":
			if !s.correct {
				s.retry()
			}
			return s, nil
		case "enter":
			// Matching latches its own fraction earlier; Finish then
			// reports -1 and the recorded score stands.
			if v := s.scorer.Finish(s.correct); v >= 0 {
				s.score = v
			}
			s.phase = phaseSubmitting
			return s, s.submitCmd()
		}
		return s, nil
	}

	// phaseAnswering
	switch c := s.content.(type) {
	case lessons.MCQContent:
		return s.updateChoice(msg, func() bool { return s.choice.IsCorrect() })
	case lessons.ListeningContent:
		if key == "p" {
			return s, s.playCmd(c.AudioURL)
		}
		return s.updateChoice(msg, func() bool { return s.choice.IsCorrect() })
	case lessons.FillInBlankContent:
		if len(c.Options) > 0 {
			return s.updateChoice(msg, func() bool { return s.choice.IsCorrect() })
		}
		if key == "enter" {
			s.reveal(lessons.GradeExact(s.input.Value(), c.CorrectAnswer) == 100)
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	case lessons.TranslationContent:
		if key == "enter" {
			s.reveal(lessons.GradeTranslation(s.input.Value(), c) == 100)
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	case lessons.WordMatchingContent:
		return s.updateMatching(msg, c)
	case lessons.SentenceBuildingContent:
		return s.updateSentence(key, c)
	case lessons.RepeatAfterMeContent:
		switch key {
		case "p":
			return s, s.playCmd(c.AudioURL)
		case "enter":
			s.correct = true
			s.score = s.scorer.Finish(true)
			s.phase = phaseSubmitting
			return s, s.submitCmd()
		case "s":
			s.correct = false
			s.score = s.scorer.Finish(false)
			s.phase = phaseSubmitting
			return s, s.submitCmd()
		}
	}
	return s, nil
}

func (s *PlayScreen) updateChoice(msg tea.KeyMsg, correct func() bool) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		s.reveal(correct())
	}
	return s, cmd
}

// updateMatching steps through pairs one at a time; each pair is a
// first-try-counts multiple choice.
func (s *PlayScreen) updateMatching(msg tea.KeyMsg, c lessons.WordMatchingContent) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if !s.choice.Submitted {
		return s, cmd
	}
	if s.choice.IsCorrect() {
		s.pairsCorrect++
	}
	s.pairIndex++
	if s.pairIndex < len(c.Pairs) {
		s.choice = matchingChoice(c, s.pairIndex)
		return s, cmd
	}
	s.score = lessons.GradeMatching(s.pairsCorrect, len(c.Pairs))
	s.correct = s.score == 100
	s.scorer.Finish(s.correct) // latch; matching keeps its own fraction
	s.phase = phaseRevealed
	return s, cmd
}

func (s *PlayScreen) updateSentence(key string, c lessons.SentenceBuildingContent) (screen.Screen, tea.Cmd) {
	switch key {
	case "backspace":
		if len(s.picked) > 0 {
			s.picked = s.picked[:len(s.picked)-1]
		}
	case "enter":
		if len(s.picked) == 0 {
			return s, nil
		}
		order := make([]string, 0, len(s.picked))
		for _, i := range s.picked {
			order = append(order, c.WordBank[i])
		}
		s.reveal(lessons.GradeSentence(order, c) == 100)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(c.WordBank) && !s.isPicked(idx) {
				s.picked = append(s.picked, idx)
			}
		}
	}
	return s, nil
}

func (s *PlayScreen) isPicked(idx int) bool {
	for _, p := range s.picked {
		if p == idx {
			return true
		}
	}
	return false
}

// reveal moves to the feedback phase, recording a miss on failure so a
// later success costs score.
func (s *PlayScreen) reveal(correct bool) {
	s.correct = correct
	if !correct {
		s.scorer.Miss()
	}
	s.phase = phaseRevealed
}

// retry returns to the answering phase after a wrong reveal.
func (s *PlayScreen) retry() {
	s.phase = phaseAnswering
	switch c := s.content.(type) {
	case lessons.MCQContent:
		s.choice = components.NewMultiChoice(c.Question, c.Options, indexOf(c.Options, c.CorrectAnswer))
	case lessons.ListeningContent:
		s.choice = components.NewMultiChoice(c.Question, c.Options, indexOf(c.Options, c.CorrectAnswer))
	case lessons.FillInBlankContent:
		if len(c.Options) > 0 {
			s.choice = components.NewMultiChoice(c.Sentence, c.Options, indexOf(c.Options, c.CorrectAnswer))
		} else {
			s.input = components.NewTextInput("Type the missing word", false, 64)
		}
	case lessons.TranslationContent:
		s.input = components.NewTextInput("Type your translation", false, 128)
	case lessons.SentenceBuildingContent:
		s.picked = nil
	}
}

func (s *PlayScreen) submitCmd() tea.Cmd {
	score := s.score
	if score < 0 {
		score = 0
	}
	elapsed := int(time.Since(s.started).Seconds())
	return func() tea.Msg {
		result, err := s.prog.SubmitLesson(context.Background(), s.trackID, s.lesson.ID, score, elapsed)
		return submitResultMsg{Result: result, Err: err}
	}
}

// playCmd plays the prompt audio when a URL is present; text prompts
// without audio are a no-op.
func (s *PlayScreen) playCmd(url string) tea.Cmd {
	if url == "" || s.player == nil {
		return nil
	}
	return func() tea.Msg {
		return audioDoneMsg{Err: s.player.Play(context.Background(), url)}
	}
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
