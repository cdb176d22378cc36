package game

// Phase is the state of a level attempt. Transitions:
//
//	AwaitingPuzzle → PuzzlePresented → AwaitingValidation →
//	  CorrectFeedback → (AwaitingPuzzle | LevelMastered)
//	  IncorrectFeedback → AwaitingValidation (resubmit, same puzzle)
//
// Abandoning the attempt from any phase discards the session.
type Phase int

const (
	// PhaseIdle means no level attempt is active (main menu).
	PhaseIdle Phase = iota

	// PhaseAwaitingPuzzle means a generation request is outstanding.
	PhaseAwaitingPuzzle

	// PhasePuzzlePresented means a puzzle is on screen awaiting an answer.
	PhasePuzzlePresented

	// PhaseAwaitingValidation means an answer was submitted and the
	// verdict is outstanding.
	PhaseAwaitingValidation

	// PhaseCorrectFeedback shows the win before the next puzzle or the
	// mastery screen.
	PhaseCorrectFeedback

	// PhaseIncorrectFeedback shows the miss and the hint; the player may
	// resubmit against the same puzzle.
	PhaseIncorrectFeedback

	// PhaseLevelMastered is terminal for the level.
	PhaseLevelMastered
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingPuzzle:
		return "awaiting-puzzle"
	case PhasePuzzlePresented:
		return "puzzle-presented"
	case PhaseAwaitingValidation:
		return "awaiting-validation"
	case PhaseCorrectFeedback:
		return "correct-feedback"
	case PhaseIncorrectFeedback:
		return "incorrect-feedback"
	case PhaseLevelMastered:
		return "level-mastered"
	}
	return "unknown"
}
