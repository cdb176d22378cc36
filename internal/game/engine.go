package game

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/nexus/internal/progress"
	"github.com/abhisek/nexus/internal/puzzle"
	"github.com/abhisek/nexus/internal/scoring"
	"github.com/abhisek/nexus/internal/store"
	"github.com/abhisek/nexus/internal/validation"
)

// GenToken identifies one generation request. A reset or re-select issues
// a new token, and PresentPuzzle rejects results carrying a stale one, so
// an in-flight generation can never surface after the player moved on.
type GenToken uint64

// Outcome summarizes what a verdict did to the attempt.
type Outcome struct {
	Result      validation.Result
	EarnedScore int
	Mastered    bool
	Medal       scoring.Medal
}

// Engine drives a single player's progression: it owns the durable
// progression state, the ephemeral level attempt, and the attempt's phase
// machine. All methods are synchronous and must be called from one
// goroutine (the UI loop); blocking oracle work happens outside and feeds
// back in through PresentPuzzle / ApplyVerdict.
type Engine struct {
	progressRepo store.ProgressRepo
	state        progress.State

	phase Phase
	level puzzle.Level

	current      *puzzle.Puzzle
	lastResult   *validation.Result
	hintRevealed bool
	presentedAt  time.Time
	submittedAt  time.Time

	sessionScore int
	sessionMedal scoring.Medal

	genSeq GenToken

	now func() time.Time
}

// NewEngine creates an Engine over the given saved state. repo may be nil
// (no persistence, e.g. in tests).
func NewEngine(state progress.State, repo store.ProgressRepo) *Engine {
	return &Engine{
		progressRepo: repo,
		state:        state,
		phase:        PhaseIdle,
		now:          time.Now,
	}
}

// State returns the current progression snapshot.
func (e *Engine) State() progress.State { return e.state }

// Phase returns the attempt phase.
func (e *Engine) Phase() Phase { return e.phase }

// Level returns the level being attempted. Only meaningful outside PhaseIdle.
func (e *Engine) Level() puzzle.Level { return e.level }

// CurrentPuzzle returns the presented puzzle, or nil.
func (e *Engine) CurrentPuzzle() *puzzle.Puzzle { return e.current }

// LastResult returns the most recent verdict, or nil.
func (e *Engine) LastResult() *validation.Result { return e.lastResult }

// SessionScore returns the points accumulated in this level attempt.
func (e *Engine) SessionScore() int { return e.sessionScore }

// SessionMedal returns the medal earned by the mastering run, if any.
func (e *Engine) SessionMedal() scoring.Medal { return e.sessionMedal }

// HintRevealed reports whether the hint is visible for the current puzzle.
func (e *Engine) HintRevealed() bool { return e.hintRevealed }

// SelectLevel starts a fresh attempt at the given level and returns the
// token for its first generation request. The session score resets.
func (e *Engine) SelectLevel(levelID int) (GenToken, error) {
	lvl, ok := puzzle.GetLevel(levelID)
	if !ok {
		return 0, fmt.Errorf("no such level: %d", levelID)
	}
	if !e.state.Unlocked(levelID) {
		return 0, fmt.Errorf("level %d is locked", levelID)
	}

	e.level = lvl
	e.sessionScore = 0
	e.sessionMedal = ""
	return e.startGeneration(), nil
}

// ResetPuzzle discards the current puzzle (and any in-flight generation)
// and returns the token for a replacement request. No partial win or loss
// is recorded.
func (e *Engine) ResetPuzzle() GenToken {
	return e.startGeneration()
}

func (e *Engine) startGeneration() GenToken {
	e.genSeq++
	e.phase = PhaseAwaitingPuzzle
	e.current = nil
	e.lastResult = nil
	e.hintRevealed = false
	return e.genSeq
}

// History returns the seen-question window to pass to the generator.
func (e *Engine) History() []string {
	return e.state.SeenPuzzles
}

// PresentPuzzle installs a generated puzzle. Returns false — and changes
// nothing — when tok is stale, i.e. the player reset or left while the
// generation was in flight.
func (e *Engine) PresentPuzzle(tok GenToken, p puzzle.Puzzle) bool {
	if tok != e.genSeq || e.phase != PhaseAwaitingPuzzle {
		return false
	}

	e.current = &p
	e.phase = PhasePuzzlePresented
	e.presentedAt = e.now()
	e.hintRevealed = false
	e.lastResult = nil

	e.apply(progress.PuzzleSeen{Question: p.Question})
	return true
}

// SubmitAnswer moves the attempt into validation and returns the puzzle
// the answer must be judged against. Valid from PuzzlePresented and from
// IncorrectFeedback (resubmission against the same puzzle).
func (e *Engine) SubmitAnswer() (puzzle.Puzzle, error) {
	if e.current == nil || (e.phase != PhasePuzzlePresented && e.phase != PhaseIncorrectFeedback) {
		return puzzle.Puzzle{}, fmt.Errorf("no puzzle awaiting an answer (phase %s)", e.phase)
	}
	e.phase = PhaseAwaitingValidation
	e.submittedAt = e.now()
	return *e.current, nil
}

// ApplyVerdict folds a validation result into the attempt: scores a
// correct answer (base + time bonus), bumps win counters, and evaluates
// mastery, medal, and unlock advancement.
func (e *Engine) ApplyVerdict(res validation.Result) Outcome {
	if e.phase != PhaseAwaitingValidation || e.current == nil {
		return Outcome{}
	}

	e.lastResult = &res

	if !res.IsCorrect {
		e.phase = PhaseIncorrectFeedback
		e.hintRevealed = true
		return Outcome{Result: res}
	}

	earned := scoring.EarnedScore(res.ScoreDelta, e.submittedAt.Sub(e.presentedAt))
	e.sessionScore += earned
	e.apply(progress.AnswerWon{LevelID: e.level.ID, Score: earned})

	out := Outcome{Result: res, EarnedScore: earned}

	if e.state.Mastered(e.level) {
		avg := float64(e.sessionScore) / float64(e.level.RequiredWins)
		medal := scoring.GradeMedal(avg)
		e.apply(progress.LevelMastered{LevelID: e.level.ID, Medal: medal})

		e.sessionMedal = medal
		out.Mastered = true
		out.Medal = medal
	}

	e.phase = PhaseCorrectFeedback
	return out
}

// FinishFeedback leaves CorrectFeedback: to LevelMastered when the win
// mastered the level, otherwise back to AwaitingPuzzle with a new token
// for the next puzzle of the same level.
func (e *Engine) FinishFeedback() (GenToken, bool) {
	if e.phase != PhaseCorrectFeedback {
		return 0, false
	}
	if e.sessionMedal != "" {
		e.phase = PhaseLevelMastered
		e.current = nil
		return 0, false
	}
	return e.startGeneration(), true
}

// RequestHint reveals the hint for the current puzzle.
func (e *Engine) RequestHint() string {
	if e.current == nil {
		return ""
	}
	e.hintRevealed = true
	return e.current.Hint
}

// ProceedToNextLevel starts an attempt at the level after the one just
// mastered. Returns false when the mastered level was the last one.
func (e *Engine) ProceedToNextLevel() (GenToken, bool) {
	if e.phase != PhaseLevelMastered || !puzzle.NextLevelExists(e.level.ID) {
		return 0, false
	}
	tok, err := e.SelectLevel(e.level.ID + 1)
	if err != nil {
		return 0, false
	}
	return tok, true
}

// ReturnToMenu abandons the attempt: the session score and any in-flight
// puzzle are discarded, and no partial win is recorded.
func (e *Engine) ReturnToMenu() {
	e.genSeq++ // fence off in-flight generations
	e.phase = PhaseIdle
	e.current = nil
	e.lastResult = nil
	e.hintRevealed = false
	e.sessionScore = 0
	e.sessionMedal = ""
}

// apply runs the reducer and persists the new state fire-and-forget.
func (e *Engine) apply(ev progress.Event) {
	e.state = progress.Apply(e.state, ev)
	e.persist()
}

// persist saves asynchronously; a failed save only logs. There is exactly
// one writer, so last-write-wins is fine.
func (e *Engine) persist() {
	if e.progressRepo == nil {
		return
	}
	rec := e.state.ToRecord()
	go func() {
		if err := e.progressRepo.Save(context.Background(), rec); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save progress: %v\n", err)
		}
	}()
}
