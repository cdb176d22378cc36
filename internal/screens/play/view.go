package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/nexus/internal/game"
	"github.com/abhisek/nexus/internal/puzzlegen"
	"github.com/abhisek/nexus/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	switch s.eng.Phase() {
	case game.PhaseAwaitingPuzzle:
		return renderLoading(width, "The oracle is weaving a puzzle...")
	case game.PhaseAwaitingValidation:
		return s.renderPuzzle(width, "Consulting the oracle...")
	case game.PhaseCorrectFeedback:
		return s.renderCorrect(width)
	default:
		return s.renderPuzzle(width, "")
	}
}

// renderPuzzle renders the active puzzle card with the answer box.
func (s *PlayScreen) renderPuzzle(width int, statusLine string) string {
	p := s.eng.CurrentPuzzle()
	if p == nil {
		return renderLoading(width, "The oracle is weaving a puzzle...")
	}
	level := s.eng.Level()

	var b strings.Builder

	// Info line: level and category on the left, wins and timer on the right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s  [%s]", level.Title, level.Category))

	secs := int(s.elapsed.Seconds())
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Wins %d/%d  Score %d  %d:%02d",
			s.eng.State().Wins(level.ID), level.RequiredWins,
			s.eng.SessionScore(), secs/60, secs%60))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// The puzzle itself, in a card.
	card := theme.Card.Width(min(width-8, 76)).Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Question))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if s.source == puzzlegen.SourceFallback {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("(oracle unreachable — puzzle drawn from the archive)"))
		b.WriteString("\n\n")
	}

	// Incorrect feedback with explanation.
	if s.eng.Phase() == game.PhaseIncorrectFeedback {
		if res := s.eng.LastResult(); res != nil {
			b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite."))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(res.Explanation))
			b.WriteString("\n\n")
		}
	}

	// Hint, once revealed.
	if s.eng.HintRevealed() && p.Hint != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Hint: "+p.Hint)))
		b.WriteString("\n\n")
	}

	// Answer box.
	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
	b.WriteString(answerLine)

	if statusLine != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(statusLine))
	}

	return b.String()
}

// renderCorrect renders the correct-answer feedback dwell.
func (s *PlayScreen) renderCorrect(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	b.WriteString("\n\n")

	if out := s.lastOutcome; out != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("+%d points", out.EarnedScore)))
		b.WriteString("\n")
		if out.Result.Explanation != "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(out.Result.Explanation))
			b.WriteString("\n")
		}
	}

	level := s.eng.Level()
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Wins: %d/%d   Session score: %d",
			s.eng.State().Wins(level.ID), level.RequiredWins, s.eng.SessionScore())))

	return b.String()
}

// renderLoading renders the generation wait state.
func renderLoading(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + msg)
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
