package duel

import (
	"encoding/base64"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	duelgame "github.com/Chagadiye/ctrl-vibe/internal/duel"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/components"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/theme"
)

func (s *DuelScreen) View(width, height int) string {
	var body string
	switch s.session.State() {
	case duelgame.StateLoading:
		body = theme.Hint.Render("Loading round...")
	case duelgame.StateRoundFailed:
		body = theme.Incorrect.Render("Could not load the round.") + "\n\n" +
			theme.Hint.Render(s.session.FailMessage()) + "\n\n" +
			theme.Hint.Render("Press r to retry")
	case duelgame.StateGameOver:
		body = s.viewGameOver()
	default:
		body = s.viewRound()
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n" + body)
}

func (s *DuelScreen) viewRound() string {
	round := s.session.Round()
	if round == nil {
		return theme.Hint.Render("Loading round...")
	}

	var b strings.Builder

	b.WriteString(theme.Hint.Render(fmt.Sprintf("Round %d of %d   Score %d",
		s.session.RoundIndex()+1, duelgame.TotalRounds, s.session.Score())) + "\n")

	timeStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	if s.session.TimeLeft() <= 5 {
		timeStyle = timeStyle.Foreground(theme.Error)
	}
	b.WriteString(timeStyle.Render(fmt.Sprintf("⏱ %ds", s.session.TimeLeft())) + "\n\n")

	b.WriteString(s.viewImageCard(round.ImageBase64) + "\n\n")
	b.WriteString(theme.Body.Render("Spell the word for: ") +
		theme.Selected.Render(round.Roman) + "\n\n")

	guess := s.session.Guess()
	guessBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2)
	if guess == "" {
		b.WriteString(guessBox.Render(theme.Hint.Render("···")) + "\n\n")
	} else {
		b.WriteString(guessBox.Render(theme.Body.Bold(true).Render(guess)) + "\n\n")
	}

	b.WriteString(s.viewLetters())

	switch s.session.State() {
	case duelgame.StateCorrect:
		b.WriteString("\n\n" + theme.Correct.Render("✓ Correct! +10 XP") +
			"\n" + theme.Hint.Render("Press Enter to continue"))
	case duelgame.StateWrong:
		b.WriteString("\n\n" + theme.Incorrect.Render("✗ The word was "+round.Kannada) +
			"\n" + theme.Hint.Render("Press Enter to continue"))
	}

	return b.String()
}

func (s *DuelScreen) viewLetters() string {
	letters := s.session.ShuffledLetters()
	playing := s.session.State() == duelgame.StatePlaying

	var tiles []string
	for i, letter := range letters {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Padding(0, 1)

		if s.session.Remaining(letter) == 0 {
			style = style.Foreground(theme.TextDim).BorderForeground(theme.BgCard)
		} else if playing && i == s.cursor {
			style = style.
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				BorderForeground(theme.ArcadeYellow).
				Bold(true)
		}
		tiles = append(tiles, style.Render(letter))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tiles...)
}

// viewImageCard renders a fixed-size placeholder for the round's picture;
// terminals don't get the real image, just its presence and size.
func (s *DuelScreen) viewImageCard(imageBase64 string) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(24).
		Align(lipgloss.Center).
		Padding(1, 0)

	if imageBase64 == "" {
		return card.Render(theme.Hint.Render("no picture"))
	}
	size := base64.StdEncoding.DecodedLen(len(imageBase64))
	return card.Render("🖼\n" + theme.Hint.Render(fmt.Sprintf("picture · %d KB", size/1024)))
}

func (s *DuelScreen) viewGameOver() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("DUEL OVER") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("You spelled %d of %d words.",
		s.session.Score(), duelgame.TotalRounds)) + "\n")
	if xp := s.session.TotalXP(); xp > 0 {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("+%d XP", xp)) + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render("n: play again   Esc: back"))
	return components.ArcadeCard(b.String(), 48)
}
