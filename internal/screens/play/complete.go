package play

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nexus/internal/game"
	"github.com/abhisek/nexus/internal/puzzle"
	"github.com/abhisek/nexus/internal/puzzlegen"
	"github.com/abhisek/nexus/internal/router"
	"github.com/abhisek/nexus/internal/scoring"
	"github.com/abhisek/nexus/internal/screen"
	"github.com/abhisek/nexus/internal/ui/components"
	"github.com/abhisek/nexus/internal/ui/layout"
	"github.com/abhisek/nexus/internal/ui/theme"
	"github.com/abhisek/nexus/internal/validation"
)

// completeScreen celebrates a mastered level and offers the next one.
type completeScreen struct {
	eng *game.Engine
	gen puzzlegen.Generator
	val validation.Validator

	level        puzzle.Level
	medal        scoring.Medal
	sessionScore int
	menu         components.Menu
}

var _ screen.Screen = (*completeScreen)(nil)
var _ screen.KeyHintProvider = (*completeScreen)(nil)

// newCompleteScreen captures the finished run's numbers before the engine
// moves on.
func newCompleteScreen(eng *game.Engine, gen puzzlegen.Generator, val validation.Validator) *completeScreen {
	c := &completeScreen{
		eng:          eng,
		gen:          gen,
		val:          val,
		level:        eng.Level(),
		medal:        eng.SessionMedal(),
		sessionScore: eng.SessionScore(),
	}

	var items []components.MenuItem
	if puzzle.NextLevelExists(c.level.ID) {
		items = append(items, components.MenuItem{
			Label:  "ENTER NEXT LEVEL",
			Action: c.nextLevel,
		})
	}
	items = append(items, components.MenuItem{
		Label:  "RETURN TO MENU",
		Action: c.toMenu,
	})
	c.menu = components.NewMenu(items)
	return c
}

func (c *completeScreen) nextLevel() tea.Cmd {
	tok, ok := c.eng.ProceedToNextLevel()
	if !ok {
		return c.toMenu()
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: resume(c.eng, c.gen, c.val, tok),
		}
	}
}

func (c *completeScreen) toMenu() tea.Cmd {
	c.eng.ReturnToMenu()
	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return ReturnedToMenuMsg{} },
	)
}

func (c *completeScreen) Init() tea.Cmd {
	return nil
}

func (c *completeScreen) Title() string {
	return "Level Mastered"
}

func (c *completeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (c *completeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return c, c.toMenu()
	}

	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *completeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("LEVEL MASTERED"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d — %s", c.level.ID, c.level.Title)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(medalColor(c.medal)).
		Bold(true).
		Render(fmt.Sprintf("◆ %s MEDAL ◆", c.medal)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(fmt.Sprintf("Session score: %d   Total score: %d",
			c.sessionScore, c.eng.State().TotalScore)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, c.menu.View()))

	return b.String()
}

// medalColor returns the theme color for a medal.
func medalColor(m scoring.Medal) color.Color {
	switch m {
	case scoring.MedalGold:
		return theme.Gold
	case scoring.MedalSilver:
		return theme.Silver
	case scoring.MedalBronze:
		return theme.Bronze
	default:
		return theme.Text
	}
}
