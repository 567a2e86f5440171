package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/lessons"
	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	var body string
	switch s.phase {
	case phaseUnsupported:
		body = centered(width, theme.Incorrect.Render("This lesson type is not supported yet.")+
			"\n\n"+theme.Hint.Render(s.decodeErr.Error())+
			"\n\nPress Enter to go back")
	case phaseError:
		body = centered(width, theme.Incorrect.Render("Could not submit your score.")+
			"\n\n"+theme.Hint.Render(s.errMsg)+
			"\n\nPress r to retry, Enter to go back")
	case phaseSubmitting:
		body = centered(width, theme.Hint.Render("Submitting..."))
	case phaseDone:
		body = s.viewResult(width)
	case phaseRevealed:
		body = s.viewRevealed(width)
	default:
		body = s.viewExercise(width)
	}
	return "\n" + body
}

func (s *PlayScreen) viewExercise(width int) string {
	var b strings.Builder

	switch c := s.content.(type) {
	case lessons.MCQContent:
		b.WriteString(s.choice.View())
	case lessons.ListeningContent:
		b.WriteString(theme.Hint.Render("Press p to hear the audio") + "\n\n")
		b.WriteString(s.choice.View())
	case lessons.FillInBlankContent:
		if len(c.Options) > 0 {
			b.WriteString(s.choice.View())
		} else {
			b.WriteString(theme.Body.Bold(true).Render(c.Sentence) + "\n")
			if c.EnglishHint != "" {
				b.WriteString(theme.Hint.Render(c.EnglishHint) + "\n")
			}
			b.WriteString("\n" + s.input.View())
		}
	case lessons.TranslationContent:
		direction := "Translate to Kannada"
		if c.Direction == "kn_to_en" {
			direction = "Translate to English"
		}
		b.WriteString(theme.Hint.Render(direction) + "\n")
		b.WriteString(theme.Body.Bold(true).Render(c.SourceText) + "\n\n")
		b.WriteString(s.input.View())
		if len(c.Hints) > 0 {
			b.WriteString("\n\n" + theme.Hint.Render("Hint: "+c.Hints[0]))
		}
	case lessons.WordMatchingContent:
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Pair %d of %d", s.pairIndex+1, len(c.Pairs))) + "\n\n")
		b.WriteString(s.choice.View())
	case lessons.SentenceBuildingContent:
		b.WriteString(theme.Body.Bold(true).Render(c.EnglishSentence) + "\n\n")
		b.WriteString(s.viewWordBank(c))
	case lessons.RepeatAfterMeContent:
		b.WriteString(theme.Title.Render(c.KannadaPhrase) + "\n\n")
		b.WriteString(theme.Body.Render(c.EnglishTranslation) + "\n")
		if c.PronunciationGuide != "" {
			b.WriteString(theme.Hint.Render("Say: "+c.PronunciationGuide) + "\n")
		}
		b.WriteString("\n" + theme.Hint.Render("p: hear it   Enter: I said it   s: skip"))
	}

	return lipgloss.NewStyle().Padding(0, 2).Width(width).Render(b.String())
}

func (s *PlayScreen) viewWordBank(c lessons.SentenceBuildingContent) string {
	var b strings.Builder

	var sentence []string
	for _, i := range s.picked {
		sentence = append(sentence, c.WordBank[i])
	}
	b.WriteString(theme.Body.Render("Your sentence: ") +
		theme.Selected.Render(strings.Join(sentence, " ")) + "\n\n")

	for i, word := range c.WordBank {
		style := theme.Unselected
		if s.isPicked(i) {
			style = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
		}
		b.WriteString(fmt.Sprintf("  %d) %s\n", i+1, style.Render(word)))
	}
	b.WriteString("\n" + theme.Hint.Render("1-9: pick word   Backspace: undo   Enter: submit"))
	return b.String()
}

func (s *PlayScreen) viewRevealed(width int) string {
	var b strings.Builder

	if s.correct {
		b.WriteString(theme.Correct.Render("✓ Correct!") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Not quite.") + "\n\n")
		if answer := s.correctAnswer(); answer != "" {
			b.WriteString(theme.Body.Render("Answer: ") + theme.Correct.Render(answer) + "\n\n")
		}
	}

	if c, ok := s.content.(lessons.WordMatchingContent); ok {
		b.WriteString(theme.Body.Render(fmt.Sprintf("You matched %d of %d pairs.", s.pairsCorrect, len(c.Pairs))) + "\n\n")
	}
	if c, ok := s.content.(lessons.MCQContent); ok && c.Explanation != "" {
		b.WriteString(theme.Hint.Render(c.Explanation) + "\n\n")
	}

	if s.correct {
		b.WriteString(theme.Hint.Render("Press Enter to continue"))
	} else {
		b.WriteString(theme.Hint.Render("r: try again   Enter: give up"))
	}

	return lipgloss.NewStyle().Padding(0, 2).Width(width).Render(b.String())
}

func (s *PlayScreen) correctAnswer() string {
	switch c := s.content.(type) {
	case lessons.MCQContent:
		return c.CorrectAnswer
	case lessons.FillInBlankContent:
		return c.CorrectAnswer
	case lessons.ListeningContent:
		return c.CorrectAnswer
	case lessons.TranslationContent:
		if len(c.CorrectAnswers) > 0 {
			return c.CorrectAnswers[0]
		}
	case lessons.SentenceBuildingContent:
		return strings.Join(c.CorrectOrder, " ")
	}
	return ""
}

func (s *PlayScreen) viewResult(width int) string {
	r := s.result
	var b strings.Builder

	b.WriteString(theme.Title.Render("Lesson complete!") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %d", s.score)) + "\n")
	b.WriteString(theme.Correct.Render(fmt.Sprintf("+%d XP", r.XPEarned)) + "\n")

	if r.LevelUp {
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).Bold(true).
			Render(fmt.Sprintf("★ LEVEL UP! You are now level %d", r.Level)) + "\n")
	}

	for _, a := range r.NewAchievements {
		info := progression.LookupAchievement(a.ID)
		b.WriteString("\n" + theme.Selected.Render(info.Icon+" "+info.Name))
		if info.Description != "" {
			b.WriteString("\n" + theme.Hint.Render("   "+info.Description))
		}
	}

	b.WriteString("\n\n" + theme.Hint.Render("Press Enter to go back"))
	return centered(width, b.String())
}

func centered(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}
