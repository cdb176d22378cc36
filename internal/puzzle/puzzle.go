package puzzle

// Category classifies a puzzle by the kind of thinking it demands.
type Category string

const (
	CategoryRiddle          Category = "RIDDLE"
	CategoryLogic           Category = "LOGIC"
	CategoryMath            Category = "MATH"
	CategoryLateral         Category = "LATERAL"
	CategoryEmoji           Category = "EMOJI"
	CategoryWordAssociation Category = "WORD_ASSOCIATION"
	CategorySequence        Category = "SEQUENCE"
	CategoryTriviaTwist     Category = "TRIVIA_TWIST"
)

// AllCategories returns every puzzle category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryRiddle,
		CategoryLogic,
		CategoryMath,
		CategoryLateral,
		CategoryEmoji,
		CategoryWordAssociation,
		CategorySequence,
		CategoryTriviaTwist,
	}
}

// Puzzle is a single brain teaser ready for display.
// Immutable once returned by a generator; lives for one attempt.
type Puzzle struct {
	// Question is the puzzle text shown to the player.
	// For emoji puzzles this is a short emoji string.
	Question string

	// Answer is the canonical solution. Never shown to the player
	// before a verdict is rendered.
	Answer string

	// Hint is a clue that should not give the answer away immediately.
	Hint string

	// Difficulty is the puzzle's difficulty on a 1-10 scale.
	Difficulty int
}

// ClampDifficulty forces d into the valid 1-10 range.
func ClampDifficulty(d int) int {
	if d < 1 {
		return 1
	}
	if d > 10 {
		return 10
	}
	return d
}
