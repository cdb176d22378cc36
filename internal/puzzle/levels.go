package puzzle

// Level is one entry in the linear unlock chain. Static configuration;
// never mutated at runtime. A level's difficulty equals its ID.
type Level struct {
	ID           int
	Title        string
	Description  string
	Category     Category
	RequiredWins int
	ThemeColor   string
}

// levels is the fixed level chain, ordered by ID.
var levels = []Level{
	{
		ID:           1,
		Title:        "The Awakening",
		Description:  "Simple word riddles to warm up your neural pathways.",
		Category:     CategoryRiddle,
		RequiredWins: 3,
		ThemeColor:   "#22D3EE",
	},
	{
		ID:           2,
		Title:        "Logic Gate",
		Description:  "Basic deductive reasoning and logic puzzles.",
		Category:     CategoryLogic,
		RequiredWins: 3,
		ThemeColor:   "#60A5FA",
	},
	{
		ID:           3,
		Title:        "Emoji Crypt",
		Description:  "Decipher the meaning behind the abstract symbols.",
		Category:     CategoryEmoji,
		RequiredWins: 3,
		ThemeColor:   "#A78BFA",
	},
	{
		ID:           4,
		Title:        "Number Void",
		Description:  "Mathematical patterns and sequence completions.",
		Category:     CategoryMath,
		RequiredWins: 3,
		ThemeColor:   "#34D399",
	},
	{
		ID:           5,
		Title:        "Lateral Shift",
		Description:  "Think outside the box. The obvious answer is wrong.",
		Category:     CategoryLateral,
		RequiredWins: 4,
		ThemeColor:   "#FBBF24",
	},
	{
		ID:           6,
		Title:        "Semantic Bridge",
		Description:  "Find the hidden connection between disparate words.",
		Category:     CategoryWordAssociation,
		RequiredWins: 4,
		ThemeColor:   "#FB923C",
	},
	{
		ID:           7,
		Title:        "Deep Sequence",
		Description:  "Complex algorithmic pattern recognition.",
		Category:     CategorySequence,
		RequiredWins: 4,
		ThemeColor:   "#F87171",
	},
	{
		ID:           8,
		Title:        "The Oracle",
		Description:  "Twisted trivia that requires second-order thinking.",
		Category:     CategoryTriviaTwist,
		RequiredWins: 5,
		ThemeColor:   "#E879F9",
	},
	{
		ID:           9,
		Title:        "Master's Trial",
		Description:  "High-difficulty logic and paradoxes.",
		Category:     CategoryLogic,
		RequiredWins: 5,
		ThemeColor:   "#FB7185",
	},
	{
		ID:           10,
		Title:        "Nexus Core",
		Description:  "The ultimate test of cognitive flexibility.",
		Category:     CategoryLateral,
		RequiredWins: 1,
		ThemeColor:   "#A78BFA",
	},
}

// Levels returns the full level chain in unlock order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// GetLevel returns the level with the given ID, or false if none exists.
func GetLevel(id int) (Level, bool) {
	for _, l := range levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

// NextLevelExists reports whether a level with id+1 is configured.
func NextLevelExists(id int) bool {
	_, ok := GetLevel(id + 1)
	return ok
}

// MaxLevelID returns the highest configured level ID.
func MaxLevelID() int {
	return levels[len(levels)-1].ID
}
