package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nexus/internal/game"
	"github.com/abhisek/nexus/internal/puzzlegen"
	"github.com/abhisek/nexus/internal/router"
	"github.com/abhisek/nexus/internal/screen"
	"github.com/abhisek/nexus/internal/ui/components"
	"github.com/abhisek/nexus/internal/ui/layout"
	"github.com/abhisek/nexus/internal/validation"
)

// feedbackDwell is how long the correct-answer feedback stays up before
// the next puzzle is requested.
const feedbackDwell = 2 * time.Second

// PlayScreen runs one level attempt: generation, answering, feedback.
type PlayScreen struct {
	eng *game.Engine
	gen puzzlegen.Generator
	val validation.Validator

	levelID     int           // level to select on Init; 0 when resuming
	resumeToken game.GenToken // pending generation when resuming

	input       components.TextInput
	source      puzzlegen.Source
	lastOutcome *game.Outcome
	presentedAt time.Time
	elapsed     time.Duration
	errMsg      string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a play screen that selects the given level on Init.
func New(eng *game.Engine, gen puzzlegen.Generator, val validation.Validator, levelID int) *PlayScreen {
	return &PlayScreen{
		eng:     eng,
		gen:     gen,
		val:     val,
		levelID: levelID,
		input:   newAnswerInput(),
	}
}

// resume creates a play screen for a level the engine has already
// selected, with a generation request in flight under tok.
func resume(eng *game.Engine, gen puzzlegen.Generator, val validation.Validator, tok game.GenToken) *PlayScreen {
	return &PlayScreen{
		eng:         eng,
		gen:         gen,
		val:         val,
		resumeToken: tok,
		input:       newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("Type your answer...", 120)
}

func (s *PlayScreen) Init() tea.Cmd {
	tok := s.resumeToken
	if s.levelID != 0 {
		var err error
		tok, err = s.eng.SelectLevel(s.levelID)
		if err != nil {
			s.errMsg = err.Error()
			return nil
		}
	}
	return tea.Batch(s.generate(tok), s.input.Init())
}

func (s *PlayScreen) Title() string {
	return s.eng.Level().Title
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch s.eng.Phase() {
	case game.PhasePuzzlePresented, game.PhaseIncorrectFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Hint"},
			{Key: "Ctrl+R", Description: "New puzzle"},
			{Key: "Esc", Description: "Menu"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Menu"},
		}
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case puzzleReadyMsg:
		return s.handlePuzzleReady(msg)

	case verdictMsg:
		return s.handleVerdict(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case timerTickMsg:
		return s.handleTimerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// acceptingInput reports whether keystrokes should reach the answer box.
func (s *PlayScreen) acceptingInput() bool {
	phase := s.eng.Phase()
	return phase == game.PhasePuzzlePresented || phase == game.PhaseIncorrectFeedback
}

func (s *PlayScreen) handlePuzzleReady(msg puzzleReadyMsg) (screen.Screen, tea.Cmd) {
	if !s.eng.PresentPuzzle(msg.Token, msg.Puzzle) {
		// The player reset or left while this generation was in flight.
		return s, nil
	}

	s.source = msg.Source
	s.lastOutcome = nil
	s.presentedAt = time.Now()
	s.elapsed = 0
	s.input = newAnswerInput()
	return s, tea.Batch(s.input.Init(), tickCmd())
}

func (s *PlayScreen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	out := s.eng.ApplyVerdict(msg.Result)
	s.lastOutcome = &out
	s.input.Submit(msg.Result.IsCorrect)

	if msg.Result.IsCorrect {
		return s, tea.Tick(feedbackDwell, func(time.Time) tea.Msg {
			return feedbackDoneMsg{}
		})
	}
	// Incorrect: the hint is now revealed and the player may edit and
	// resubmit the same answer box.
	return s, nil
}

func (s *PlayScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	tok, more := s.eng.FinishFeedback()
	if !more {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: newCompleteScreen(s.eng, s.gen, s.val),
			}
		}
	}
	return s, s.generate(tok)
}

func (s *PlayScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.eng.Phase() != game.PhasePuzzlePresented && s.eng.Phase() != game.PhaseIncorrectFeedback {
		return s, nil
	}
	s.elapsed = time.Since(s.presentedAt)
	return s, tickCmd()
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, s.returnToMenu()
	}

	switch key {
	case "esc":
		return s, s.returnToMenu()

	case "ctrl+r":
		if s.acceptingInput() || s.eng.Phase() == game.PhaseAwaitingPuzzle {
			return s, s.generate(s.eng.ResetPuzzle())
		}
		return s, nil

	case "tab":
		if s.acceptingInput() {
			s.eng.RequestHint()
		}
		return s, nil

	case "enter":
		return s.submitAnswer()
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submitAnswer sends the typed answer off for validation.
func (s *PlayScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if !s.acceptingInput() || s.input.Value() == "" {
		return s, nil
	}

	p, err := s.eng.SubmitAnswer()
	if err != nil {
		return s, nil
	}

	answer := s.input.Value()
	return s, func() tea.Msg {
		return verdictMsg{Result: s.val.Validate(context.Background(), p, answer)}
	}
}

// generate requests a puzzle asynchronously under the given token.
func (s *PlayScreen) generate(tok game.GenToken) tea.Cmd {
	level := s.eng.Level()
	history := s.eng.History()
	return func() tea.Msg {
		p, src := s.gen.Generate(context.Background(), level.Category, level.ID, history)
		return puzzleReadyMsg{Token: tok, Puzzle: p, Source: src}
	}
}

// returnToMenu abandons the attempt and pops back to level select.
func (s *PlayScreen) returnToMenu() tea.Cmd {
	s.eng.ReturnToMenu()
	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return ReturnedToMenuMsg{} },
	)
}

// tickCmd returns a 1-second tick command for the elapsed display.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
