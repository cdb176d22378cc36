package play

import (
	"time"

	"github.com/abhisek/nexus/internal/game"
	"github.com/abhisek/nexus/internal/puzzle"
	"github.com/abhisek/nexus/internal/puzzlegen"
	"github.com/abhisek/nexus/internal/validation"
)

// puzzleReadyMsg is sent when a puzzle has been generated. The token ties
// the result to the request that asked for it; the engine drops stale ones.
type puzzleReadyMsg struct {
	Token  game.GenToken
	Puzzle puzzle.Puzzle
	Source puzzlegen.Source
}

// verdictMsg carries the validation result for a submitted answer.
type verdictMsg struct {
	Result validation.Result
}

// feedbackDoneMsg is sent when the correct-answer feedback dwell ends.
type feedbackDoneMsg struct{}

// timerTickMsg drives the on-screen elapsed-time display.
type timerTickMsg time.Time

// ReturnedToMenuMsg is sent after the play screen pops itself, so the
// level-select menu can rebuild from the updated progression state.
type ReturnedToMenuMsg struct{}
