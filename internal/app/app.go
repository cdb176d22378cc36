package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nexus/internal/game"
	"github.com/abhisek/nexus/internal/puzzle"
	"github.com/abhisek/nexus/internal/puzzlegen"
	"github.com/abhisek/nexus/internal/router"
	"github.com/abhisek/nexus/internal/screen"
	"github.com/abhisek/nexus/internal/screens/menu"
	"github.com/abhisek/nexus/internal/ui/layout"
	"github.com/abhisek/nexus/internal/validation"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Engine    *game.Engine
	Generator puzzlegen.Generator
	Validator validation.Validator
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	engine *game.Engine
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel opening on the level-select menu.
func newAppModel(opts Options) AppModel {
	menuScreen := menu.New(opts.Engine, opts.Generator, opts.Validator)
	return AppModel{
		engine: opts.Engine,
		router: router.New(menuScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens: the play screen uses it to abandon
		// a run cleanly before popping.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	state := m.engine.State()
	header := layout.RenderHeader(title, state.TotalScore, state.UnlockedLevel, puzzle.MaxLevelID(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
