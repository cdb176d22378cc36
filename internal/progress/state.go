// Package progress holds the durable progression aggregate and the pure
// reducer that is the only way to mutate it.
package progress

import (
	"github.com/abhisek/nexus/internal/puzzle"
	"github.com/abhisek/nexus/internal/scoring"
	"github.com/abhisek/nexus/internal/store"
)

// MaxSeenPuzzles bounds the seen-question recency window. Oldest entries
// are evicted first.
const MaxSeenPuzzles = 30

// State is the durable progression record. Values are only ever derived
// from Apply; treat instances as immutable.
type State struct {
	// UnlockedLevel is the highest level the player may play.
	// Monotonically non-decreasing; starts at 1.
	UnlockedLevel int

	// LevelWins counts wins per level. Never decreases.
	LevelWins map[int]int

	// TotalScore is the lifetime score. Never decreases.
	TotalScore int

	// Medals holds the best-known medal per mastered level. The last
	// mastering run overwrites unconditionally (last-write-wins).
	Medals map[int]scoring.Medal

	// SeenPuzzles is the recency window of puzzle questions, oldest
	// first. Advisory only: losing it degrades repeat avoidance, nothing
	// else.
	SeenPuzzles []string
}

// NewState returns the initial progression record.
func NewState() State {
	return State{
		UnlockedLevel: 1,
		LevelWins:     map[int]int{},
		Medals:        map[int]scoring.Medal{},
		SeenPuzzles:   []string{},
	}
}

// Wins returns the win count for a level.
func (s State) Wins(levelID int) int {
	return s.LevelWins[levelID]
}

// Mastered reports whether the level's win threshold has been reached.
func (s State) Mastered(level puzzle.Level) bool {
	return s.LevelWins[level.ID] >= level.RequiredWins
}

// Unlocked reports whether the level may be played.
func (s State) Unlocked(levelID int) bool {
	return levelID <= s.UnlockedLevel
}

// clone copies the aggregate so reducers can stay pure.
func (s State) clone() State {
	out := s
	out.LevelWins = make(map[int]int, len(s.LevelWins))
	for k, v := range s.LevelWins {
		out.LevelWins[k] = v
	}
	out.Medals = make(map[int]scoring.Medal, len(s.Medals))
	for k, v := range s.Medals {
		out.Medals[k] = v
	}
	out.SeenPuzzles = append([]string(nil), s.SeenPuzzles...)
	return out
}

// FromRecord rebuilds a State from a persisted record. A nil record
// yields the initial state; missing fields default to empty.
func FromRecord(rec *store.ProgressData) State {
	if rec == nil {
		return NewState()
	}

	s := NewState()
	if rec.UnlockedLevel > 0 {
		s.UnlockedLevel = rec.UnlockedLevel
	}
	for id, wins := range rec.LevelWins {
		s.LevelWins[id] = wins
	}
	s.TotalScore = rec.TotalScore
	for id, m := range rec.Medals {
		if medal, ok := scoring.ParseMedal(m); ok {
			s.Medals[id] = medal
		}
	}
	s.SeenPuzzles = append(s.SeenPuzzles, rec.SeenPuzzles...)
	return s
}

// ToRecord converts the State to its persisted shape.
func (s State) ToRecord() *store.ProgressData {
	rec := &store.ProgressData{
		UnlockedLevel: s.UnlockedLevel,
		LevelWins:     map[int]int{},
		TotalScore:    s.TotalScore,
		SeenPuzzles:   append([]string{}, s.SeenPuzzles...),
		Medals:        map[int]string{},
	}
	for id, wins := range s.LevelWins {
		rec.LevelWins[id] = wins
	}
	for id, m := range s.Medals {
		rec.Medals[id] = string(m)
	}
	return rec
}
