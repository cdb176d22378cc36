package menu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nexus/internal/game"
	"github.com/abhisek/nexus/internal/puzzle"
	"github.com/abhisek/nexus/internal/puzzlegen"
	"github.com/abhisek/nexus/internal/router"
	"github.com/abhisek/nexus/internal/scoring"
	"github.com/abhisek/nexus/internal/screen"
	"github.com/abhisek/nexus/internal/screens/play"
	"github.com/abhisek/nexus/internal/ui/components"
	"github.com/abhisek/nexus/internal/ui/layout"
	"github.com/abhisek/nexus/internal/ui/theme"
	"github.com/abhisek/nexus/internal/validation"
)

// MenuScreen is the level-select screen.
type MenuScreen struct {
	eng  *game.Engine
	gen  puzzlegen.Generator
	val  validation.Validator
	menu components.Menu
}

var _ screen.Screen = (*MenuScreen)(nil)
var _ screen.KeyHintProvider = (*MenuScreen)(nil)

// New creates the level-select screen.
func New(eng *game.Engine, gen puzzlegen.Generator, val validation.Validator) *MenuScreen {
	m := &MenuScreen{eng: eng, gen: gen, val: val}
	m.rebuild()
	return m
}

// rebuild regenerates the menu rows from the current progression state.
func (m *MenuScreen) rebuild() {
	state := m.eng.State()
	levels := puzzle.Levels()

	items := make([]components.MenuItem, 0, len(levels)+1)
	for _, lvl := range levels {
		lvl := lvl
		items = append(items, components.MenuItem{
			Label:    m.levelRow(lvl),
			Disabled: !state.Unlocked(lvl.ID),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: play.New(m.eng, m.gen, m.val, lvl.ID),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "EXIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	selected := m.menu.Selected
	m.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		m.menu.Selected = selected
	}
}

// levelRow formats one level line: id, title, category, wins, medal.
func (m *MenuScreen) levelRow(lvl puzzle.Level) string {
	state := m.eng.State()

	if !state.Unlocked(lvl.ID) {
		return fmt.Sprintf("%2d  %-22s  ∎ LOCKED", lvl.ID, lvl.Title)
	}

	wins := state.Wins(lvl.ID)
	if wins > lvl.RequiredWins {
		wins = lvl.RequiredWins
	}
	row := fmt.Sprintf("%2d  %-22s  %-16s  %d/%d",
		lvl.ID, lvl.Title, lvl.Category, wins, lvl.RequiredWins)

	if medal, ok := state.Medals[lvl.ID]; ok {
		row += "  " + medalMark(medal)
	}
	return row
}

func medalMark(m scoring.Medal) string {
	switch m {
	case scoring.MedalGold:
		return "● GOLD"
	case scoring.MedalSilver:
		return "● SILVER"
	case scoring.MedalBronze:
		return "● BRONZE"
	}
	return ""
}

func (m *MenuScreen) Init() tea.Cmd {
	return nil
}

func (m *MenuScreen) Title() string {
	return "Level Select"
}

func (m *MenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Rebuild rows after returning from a run, so newly unlocked levels
	// and fresh medals show up immediately.
	if _, ok := msg.(play.ReturnedToMenuMsg); ok {
		m.rebuild()
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MenuScreen) View(width, height int) string {
	state := m.eng.State()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("CEREBRAL NEXUS"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("An oracle-woven gauntlet of puzzles"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(fmt.Sprintf("Total score: %d", state.TotalScore)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.menu.View()))

	return b.String()
}
