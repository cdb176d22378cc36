package progress

import (
	"github.com/abhisek/nexus/internal/puzzle"
	"github.com/abhisek/nexus/internal/scoring"
)

// Event is a progression state transition. Events are applied through
// Apply, which is the only mutation path for State.
type Event interface {
	isEvent()
}

// PuzzleSeen records that a puzzle question was presented to the player.
type PuzzleSeen struct {
	Question string
}

// AnswerWon records a correct answer on a level with the earned score.
type AnswerWon struct {
	LevelID int
	Score   int
}

// LevelMastered records that a level's win threshold was reached, with
// the medal graded from the run's session score.
type LevelMastered struct {
	LevelID int
	Medal   scoring.Medal
}

func (PuzzleSeen) isEvent()    {}
func (AnswerWon) isEvent()     {}
func (LevelMastered) isEvent() {}

// Apply is the pure reducer: it returns the state after the event without
// touching the input.
func Apply(s State, ev Event) State {
	switch ev := ev.(type) {
	case PuzzleSeen:
		return applyPuzzleSeen(s, ev)
	case AnswerWon:
		return applyAnswerWon(s, ev)
	case LevelMastered:
		return applyLevelMastered(s, ev)
	}
	return s
}

// applyPuzzleSeen appends the question to the recency window, evicting the
// oldest entry past the cap. An already-present question changes nothing —
// neither order nor length.
func applyPuzzleSeen(s State, ev PuzzleSeen) State {
	for _, q := range s.SeenPuzzles {
		if q == ev.Question {
			return s
		}
	}

	next := s.clone()
	next.SeenPuzzles = append(next.SeenPuzzles, ev.Question)
	if len(next.SeenPuzzles) > MaxSeenPuzzles {
		next.SeenPuzzles = next.SeenPuzzles[1:]
	}
	return next
}

// applyAnswerWon bumps the level's win counter and the lifetime score.
// The score counts even when the win does not master the level.
func applyAnswerWon(s State, ev AnswerWon) State {
	next := s.clone()
	next.LevelWins[ev.LevelID]++
	next.TotalScore += ev.Score
	return next
}

// applyLevelMastered stores the run's medal (overwriting any previous one)
// and advances the unlock frontier — but only when the mastered level IS
// the frontier, so replaying an old level can't skip ahead.
func applyLevelMastered(s State, ev LevelMastered) State {
	next := s.clone()
	next.Medals[ev.LevelID] = ev.Medal

	if ev.LevelID == next.UnlockedLevel && puzzle.NextLevelExists(ev.LevelID) {
		next.UnlockedLevel = ev.LevelID + 1
	}
	return next
}
