package progress

import (
	"fmt"
	"testing"

	"github.com/abhisek/nexus/internal/puzzle"
	"github.com/abhisek/nexus/internal/scoring"
	"github.com/abhisek/nexus/internal/store"
)

func TestApply_PuzzleSeen(t *testing.T) {
	s := NewState()

	s = Apply(s, PuzzleSeen{Question: "q1"})
	s = Apply(s, PuzzleSeen{Question: "q2"})
	if len(s.SeenPuzzles) != 2 || s.SeenPuzzles[0] != "q1" || s.SeenPuzzles[1] != "q2" {
		t.Fatalf("unexpected window: %v", s.SeenPuzzles)
	}

	// A duplicate is a no-op: no reorder, no growth.
	dup := Apply(s, PuzzleSeen{Question: "q1"})
	if len(dup.SeenPuzzles) != 2 || dup.SeenPuzzles[0] != "q1" {
		t.Fatalf("duplicate changed the window: %v", dup.SeenPuzzles)
	}
}

func TestApply_PuzzleSeenEvictsOldest(t *testing.T) {
	s := NewState()
	for i := range MaxSeenPuzzles {
		s = Apply(s, PuzzleSeen{Question: fmt.Sprintf("q%d", i)})
	}
	if len(s.SeenPuzzles) != MaxSeenPuzzles {
		t.Fatalf("window size = %d, want %d", len(s.SeenPuzzles), MaxSeenPuzzles)
	}

	s = Apply(s, PuzzleSeen{Question: "overflow"})
	if len(s.SeenPuzzles) != MaxSeenPuzzles {
		t.Fatalf("window grew past the cap: %d", len(s.SeenPuzzles))
	}
	if s.SeenPuzzles[0] != "q1" {
		t.Errorf("oldest entry not evicted, head = %q", s.SeenPuzzles[0])
	}
	if s.SeenPuzzles[MaxSeenPuzzles-1] != "overflow" {
		t.Errorf("newest entry missing, tail = %q", s.SeenPuzzles[MaxSeenPuzzles-1])
	}
}

func TestApply_AnswerWon(t *testing.T) {
	s := NewState()

	s = Apply(s, AnswerWon{LevelID: 1, Score: 750})
	s = Apply(s, AnswerWon{LevelID: 1, Score: 600})
	s = Apply(s, AnswerWon{LevelID: 2, Score: 500})

	if s.Wins(1) != 2 || s.Wins(2) != 1 {
		t.Errorf("wins = %v", s.LevelWins)
	}
	if s.TotalScore != 1850 {
		t.Errorf("TotalScore = %d, want 1850", s.TotalScore)
	}
}

func TestApply_LevelMasteredAdvancesFrontier(t *testing.T) {
	s := NewState()

	s = Apply(s, LevelMastered{LevelID: 1, Medal: scoring.MedalSilver})
	if s.UnlockedLevel != 2 {
		t.Fatalf("UnlockedLevel = %d, want 2", s.UnlockedLevel)
	}
	if s.Medals[1] != scoring.MedalSilver {
		t.Errorf("medal = %s", s.Medals[1])
	}
}

func TestApply_ReplayBelowFrontierDoesNotAdvance(t *testing.T) {
	s := NewState()
	s.UnlockedLevel = 5

	s = Apply(s, LevelMastered{LevelID: 2, Medal: scoring.MedalGold})
	if s.UnlockedLevel != 5 {
		t.Errorf("replaying level 2 moved the frontier to %d", s.UnlockedLevel)
	}
	if s.Medals[2] != scoring.MedalGold {
		t.Errorf("replay medal not recorded: %s", s.Medals[2])
	}
}

func TestApply_MedalOverwriteIsLastWriteWins(t *testing.T) {
	s := NewState()
	s = Apply(s, LevelMastered{LevelID: 1, Medal: scoring.MedalGold})
	s = Apply(s, LevelMastered{LevelID: 1, Medal: scoring.MedalBronze})

	if s.Medals[1] != scoring.MedalBronze {
		t.Errorf("medal = %s, want the later BRONZE", s.Medals[1])
	}
}

func TestApply_FinalLevelDoesNotUnlockBeyondLast(t *testing.T) {
	last := puzzle.MaxLevelID()
	s := NewState()
	s.UnlockedLevel = last

	s = Apply(s, LevelMastered{LevelID: last, Medal: scoring.MedalGold})
	if s.UnlockedLevel != last {
		t.Errorf("UnlockedLevel = %d, want to stay at %d", s.UnlockedLevel, last)
	}
}

func TestApply_IsPure(t *testing.T) {
	before := NewState()
	before.SeenPuzzles = []string{"q1"}
	before.LevelWins[1] = 2

	Apply(before, PuzzleSeen{Question: "q2"})
	Apply(before, AnswerWon{LevelID: 1, Score: 100})
	Apply(before, LevelMastered{LevelID: 1, Medal: scoring.MedalGold})

	if len(before.SeenPuzzles) != 1 || before.LevelWins[1] != 2 ||
		before.TotalScore != 0 || len(before.Medals) != 0 || before.UnlockedLevel != 1 {
		t.Errorf("Apply mutated its input: %+v", before)
	}
}

func TestFromRecord_NilYieldsInitialState(t *testing.T) {
	s := FromRecord(nil)
	if s.UnlockedLevel != 1 {
		t.Errorf("UnlockedLevel = %d, want 1", s.UnlockedLevel)
	}
	if s.LevelWins == nil || s.Medals == nil || s.SeenPuzzles == nil {
		t.Error("collections must be non-nil")
	}
}

func TestFromRecord_ToleratesMissingFields(t *testing.T) {
	// A record written by an older build: only the frontier and score.
	s := FromRecord(&store.ProgressData{UnlockedLevel: 3, TotalScore: 1200})
	if s.UnlockedLevel != 3 || s.TotalScore != 1200 {
		t.Fatalf("unexpected state: %+v", s)
	}
	if s.LevelWins == nil || s.Medals == nil || s.SeenPuzzles == nil {
		t.Error("missing fields must default to empty, not nil")
	}
}

func TestFromRecord_DropsUnknownMedals(t *testing.T) {
	s := FromRecord(&store.ProgressData{
		UnlockedLevel: 2,
		Medals:        map[int]string{1: "GOLD", 2: "DIAMOND"},
	})
	if s.Medals[1] != scoring.MedalGold {
		t.Errorf("medal 1 = %s", s.Medals[1])
	}
	if _, ok := s.Medals[2]; ok {
		t.Error("unknown medal value should be dropped")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := NewState()
	s = Apply(s, PuzzleSeen{Question: "q1"})
	s = Apply(s, AnswerWon{LevelID: 1, Score: 700})
	s = Apply(s, LevelMastered{LevelID: 1, Medal: scoring.MedalGold})

	got := FromRecord(s.ToRecord())
	if got.UnlockedLevel != s.UnlockedLevel || got.TotalScore != s.TotalScore {
		t.Errorf("round trip lost scalars: %+v vs %+v", got, s)
	}
	if got.Wins(1) != 1 || got.Medals[1] != scoring.MedalGold {
		t.Errorf("round trip lost maps: %+v", got)
	}
	if len(got.SeenPuzzles) != 1 || got.SeenPuzzles[0] != "q1" {
		t.Errorf("round trip lost window: %v", got.SeenPuzzles)
	}
}
