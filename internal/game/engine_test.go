package game

import (
	"testing"
	"time"

	"github.com/abhisek/nexus/internal/progress"
	"github.com/abhisek/nexus/internal/puzzle"
	"github.com/abhisek/nexus/internal/scoring"
	"github.com/abhisek/nexus/internal/validation"
)

// fakeClock lets tests control the presented→submitted gap exactly.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(t *testing.T) (*Engine, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	e := NewEngine(progress.NewState(), nil)
	e.now = clk.now
	return e, clk
}

func present(t *testing.T, e *Engine, tok GenToken, question string) {
	t.Helper()
	ok := e.PresentPuzzle(tok, puzzle.Puzzle{
		Question:   question,
		Answer:     "answer",
		Hint:       "hint",
		Difficulty: 2,
	})
	if !ok {
		t.Fatalf("PresentPuzzle rejected a fresh token in phase %s", e.Phase())
	}
}

// winOnce drives one full correct-answer cycle after the given think time.
func winOnce(t *testing.T, e *Engine, clk *fakeClock, think time.Duration) Outcome {
	t.Helper()
	clk.advance(think)
	if _, err := e.SubmitAnswer(); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	return e.ApplyVerdict(validation.Result{
		IsCorrect:  true,
		ScoreDelta: 200,
	})
}

func TestEngine_SelectLockedLevel(t *testing.T) {
	e, _ := newTestEngine(t)

	if _, err := e.SelectLevel(2); err == nil {
		t.Fatal("selecting a locked level must fail")
	}
	if _, err := e.SelectLevel(99); err == nil {
		t.Fatal("selecting an unknown level must fail")
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want Idle after rejected selection", e.Phase())
	}
}

func TestEngine_CorrectAnswerScoresWithTimeBonus(t *testing.T) {
	e, clk := newTestEngine(t)

	tok, err := e.SelectLevel(1)
	if err != nil {
		t.Fatalf("SelectLevel: %v", err)
	}
	present(t, e, tok, "p1")

	out := winOnce(t, e, clk, 10*time.Second)
	// 200 base + (500 - 10*5) bonus.
	if out.EarnedScore != 650 {
		t.Errorf("EarnedScore = %d, want 650", out.EarnedScore)
	}
	if out.Mastered {
		t.Error("one win must not master a 3-win level")
	}
	if e.Phase() != PhaseCorrectFeedback {
		t.Errorf("phase = %s, want CorrectFeedback", e.Phase())
	}
	if e.State().TotalScore != 650 {
		t.Errorf("TotalScore = %d, want 650", e.State().TotalScore)
	}
}

func TestEngine_MasteryOnExactThirdWin(t *testing.T) {
	e, clk := newTestEngine(t)

	tok, _ := e.SelectLevel(1) // The Awakening: 3 wins required
	for i := range 3 {
		present(t, e, tok, "p"+string(rune('a'+i)))
		out := winOnce(t, e, clk, 0) // instant: 200 + 500 each

		if i < 2 {
			if out.Mastered {
				t.Fatalf("mastered after win %d, want only after 3", i+1)
			}
			var ok bool
			tok, ok = e.FinishFeedback()
			if !ok {
				t.Fatalf("FinishFeedback should continue the run after win %d", i+1)
			}
			continue
		}

		if !out.Mastered {
			t.Fatal("third win must master the level")
		}
		// avg = 3*700/3 = 700 → GOLD.
		if out.Medal != scoring.MedalGold {
			t.Errorf("medal = %s, want GOLD", out.Medal)
		}
	}

	if _, ok := e.FinishFeedback(); ok {
		t.Error("FinishFeedback after mastery must not issue a new puzzle")
	}
	if e.Phase() != PhaseLevelMastered {
		t.Errorf("phase = %s, want LevelMastered", e.Phase())
	}
	if e.State().UnlockedLevel != 2 {
		t.Errorf("UnlockedLevel = %d, want 2", e.State().UnlockedLevel)
	}
}

func TestEngine_StaleTokenRejectedAfterReset(t *testing.T) {
	e, _ := newTestEngine(t)

	stale, _ := e.SelectLevel(1)
	fresh := e.ResetPuzzle()

	if e.PresentPuzzle(stale, puzzle.Puzzle{Question: "late arrival"}) {
		t.Fatal("a stale token must be rejected")
	}
	if e.CurrentPuzzle() != nil {
		t.Fatal("stale presentation must not install a puzzle")
	}
	if len(e.State().SeenPuzzles) != 0 {
		t.Fatal("stale presentation must not record a seen puzzle")
	}

	present(t, e, fresh, "on time")
	if e.CurrentPuzzle().Question != "on time" {
		t.Errorf("current = %q", e.CurrentPuzzle().Question)
	}
}

func TestEngine_StaleTokenRejectedAfterReturnToMenu(t *testing.T) {
	e, _ := newTestEngine(t)

	tok, _ := e.SelectLevel(1)
	e.ReturnToMenu()

	if e.PresentPuzzle(tok, puzzle.Puzzle{Question: "ghost"}) {
		t.Fatal("generation must not surface after leaving the level")
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want Idle", e.Phase())
	}
}

func TestEngine_IncorrectRevealsHintAndAllowsResubmit(t *testing.T) {
	e, clk := newTestEngine(t)

	tok, _ := e.SelectLevel(1)
	present(t, e, tok, "p1")

	if e.HintRevealed() {
		t.Fatal("hint must start hidden")
	}

	if _, err := e.SubmitAnswer(); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	out := e.ApplyVerdict(validation.Result{IsCorrect: false, Explanation: "no"})
	if out.EarnedScore != 0 {
		t.Errorf("incorrect answer earned %d", out.EarnedScore)
	}
	if e.Phase() != PhaseIncorrectFeedback {
		t.Fatalf("phase = %s, want IncorrectFeedback", e.Phase())
	}
	if !e.HintRevealed() {
		t.Error("hint must be revealed after a miss")
	}
	if e.State().Wins(1) != 0 {
		t.Error("a miss must not count as a win")
	}

	// Resubmission against the same puzzle.
	clk.advance(5 * time.Second)
	p, err := e.SubmitAnswer()
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if p.Question != "p1" {
		t.Errorf("resubmitting against %q, want p1", p.Question)
	}
	out = e.ApplyVerdict(validation.Result{IsCorrect: true, ScoreDelta: 200})
	if out.EarnedScore <= 0 {
		t.Error("a corrected answer still earns")
	}
}

func TestEngine_TimeBonusMeasuredFromPresentation(t *testing.T) {
	e, clk := newTestEngine(t)

	tok, _ := e.SelectLevel(1)
	present(t, e, tok, "p1")

	out := winOnce(t, e, clk, 100*time.Second)
	if out.EarnedScore != 200 {
		t.Errorf("EarnedScore = %d, want bare base 200 after the bonus window", out.EarnedScore)
	}
}

func TestEngine_ReplayingLowerLevelKeepsFrontier(t *testing.T) {
	e, clk := newTestEngine(t)
	st := progress.NewState()
	st.UnlockedLevel = 3
	e.state = st

	tok, err := e.SelectLevel(1)
	if err != nil {
		t.Fatalf("SelectLevel: %v", err)
	}
	for i := 0; i < 3; i++ {
		present(t, e, tok, "replay"+string(rune('a'+i)))
		out := winOnce(t, e, clk, 0)
		if out.Mastered {
			break
		}
		tok, _ = e.FinishFeedback()
	}

	if e.State().UnlockedLevel != 3 {
		t.Errorf("UnlockedLevel = %d, replay must not move the frontier", e.State().UnlockedLevel)
	}
	if e.State().Medals[1] == "" {
		t.Error("replay must still grade a medal")
	}
}

func TestEngine_ReturnToMenuDiscardsSession(t *testing.T) {
	e, clk := newTestEngine(t)

	tok, _ := e.SelectLevel(1)
	present(t, e, tok, "p1")
	winOnce(t, e, clk, 0)

	total := e.State().TotalScore
	e.ReturnToMenu()

	if e.SessionScore() != 0 {
		t.Errorf("SessionScore = %d after leaving", e.SessionScore())
	}
	if e.State().TotalScore != total {
		t.Errorf("durable TotalScore changed: %d", e.State().TotalScore)
	}
	if e.State().Wins(1) != 1 {
		t.Errorf("recorded win lost: %d", e.State().Wins(1))
	}
}

func TestEngine_ProceedToNextLevel(t *testing.T) {
	e, clk := newTestEngine(t)

	tok, _ := e.SelectLevel(1)
	for i := 0; ; i++ {
		present(t, e, tok, "q"+string(rune('a'+i)))
		out := winOnce(t, e, clk, 0)
		if out.Mastered {
			break
		}
		tok, _ = e.FinishFeedback()
	}
	e.FinishFeedback()

	next, ok := e.ProceedToNextLevel()
	if !ok || next == 0 {
		t.Fatal("ProceedToNextLevel should start level 2")
	}
	if e.Level().ID != 2 {
		t.Errorf("Level = %d, want 2", e.Level().ID)
	}
	if e.SessionScore() != 0 {
		t.Errorf("session score must reset, got %d", e.SessionScore())
	}
	if e.Phase() != PhaseAwaitingPuzzle {
		t.Errorf("phase = %s, want AwaitingPuzzle", e.Phase())
	}
}

func TestEngine_SubmitWithoutPuzzle(t *testing.T) {
	e, _ := newTestEngine(t)

	if _, err := e.SubmitAnswer(); err == nil {
		t.Fatal("submitting with no puzzle must fail")
	}

	e.SelectLevel(1) // awaiting generation, still no puzzle
	if _, err := e.SubmitAnswer(); err == nil {
		t.Fatal("submitting while awaiting a puzzle must fail")
	}
}

func TestEngine_VerdictIgnoredOutsideValidation(t *testing.T) {
	e, _ := newTestEngine(t)

	tok, _ := e.SelectLevel(1)
	present(t, e, tok, "p1")

	out := e.ApplyVerdict(validation.Result{IsCorrect: true, ScoreDelta: 500})
	if out.EarnedScore != 0 || e.State().TotalScore != 0 {
		t.Error("a verdict outside AwaitingValidation must be a no-op")
	}
	if e.Phase() != PhasePuzzlePresented {
		t.Errorf("phase = %s, want PuzzlePresented", e.Phase())
	}
}
