package puzzlegen

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/nexus/internal/puzzle"
)

// bankEntry tags a catalogue puzzle with its category. The tag is internal
// to selection and never leaves the bank.
type bankEntry struct {
	Category puzzle.Category
	Puzzle   puzzle.Puzzle
}

// Bank is the offline puzzle catalogue used when the oracle is unusable.
type Bank struct {
	entries []bankEntry
}

// Select picks a puzzle for the requested category, preferring unseen
// puzzles. Tiers, applied in order until one is non-empty:
//  1. matching category, not in history
//  2. any category, not in history
//  3. matching category, history ignored
//  4. the whole catalogue
//
// A uniformly random candidate is returned from the first non-empty tier,
// so selection can never fail.
func (b *Bank) Select(category puzzle.Category, history []string) puzzle.Puzzle {
	seen := func(e bankEntry) bool {
		return slices.Contains(history, e.Puzzle.Question)
	}

	candidates := b.filter(func(e bankEntry) bool {
		return e.Category == category && !seen(e)
	})
	if len(candidates) == 0 {
		candidates = b.filter(func(e bankEntry) bool { return !seen(e) })
	}
	if len(candidates) == 0 {
		candidates = b.filter(func(e bankEntry) bool { return e.Category == category })
	}
	if len(candidates) == 0 {
		candidates = b.entries
	}

	return candidates[rand.IntN(len(candidates))].Puzzle
}

func (b *Bank) filter(keep func(bankEntry) bool) []bankEntry {
	var out []bankEntry
	for _, e := range b.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Size returns the number of puzzles in the catalogue.
func (b *Bank) Size() int {
	return len(b.entries)
}

// DefaultBank returns the built-in catalogue: a diverse fixed set covering
// every category.
func DefaultBank() *Bank {
	return &Bank{entries: []bankEntry{
		{
			Category: puzzle.CategoryRiddle,
			Puzzle: puzzle.Puzzle{
				Question:   "I speak without a mouth and hear without ears. I have no body, but I come alive with wind. What am I?",
				Answer:     "Echo",
				Hint:       "It involves sound reflection.",
				Difficulty: 1,
			},
		},
		{
			Category: puzzle.CategoryRiddle,
			Puzzle: puzzle.Puzzle{
				Question:   "The more of this there is, the less you see. What is it?",
				Answer:     "Darkness",
				Hint:       "It happens at night.",
				Difficulty: 1,
			},
		},
		{
			Category: puzzle.CategoryRiddle,
			Puzzle: puzzle.Puzzle{
				Question:   "What has keys, but can't put locks on anything?",
				Answer:     "Piano",
				Hint:       "It makes music.",
				Difficulty: 2,
			},
		},
		{
			Category: puzzle.CategoryLogic,
			Puzzle: puzzle.Puzzle{
				Question:   "A man pushes his car to a hotel and tells the owner he's bankrupt. Why?",
				Answer:     "He is playing Monopoly",
				Hint:       "It's a board game.",
				Difficulty: 3,
			},
		},
		{
			Category: puzzle.CategoryLogic,
			Puzzle: puzzle.Puzzle{
				Question:   "You have a 3-gallon jug and a 5-gallon jug. How do you measure exactly 4 gallons?",
				Answer:     "Fill 5, pour into 3. Empty 3. Pour remaining 2 from 5 into 3. Fill 5. Pour into 3 until full.",
				Hint:       "It involves multiple steps of pouring.",
				Difficulty: 5,
			},
		},
		{
			Category: puzzle.CategoryMath,
			Puzzle: puzzle.Puzzle{
				Question:   "What number comes next in the sequence: 1, 1, 2, 3, 5, 8, ...?",
				Answer:     "13",
				Hint:       "Add the previous two numbers together.",
				Difficulty: 2,
			},
		},
		{
			Category: puzzle.CategoryMath,
			Puzzle: puzzle.Puzzle{
				Question:   "How can you add eight 8s to get the number 1,000?",
				Answer:     "888 + 88 + 8 + 8 + 8 = 1000",
				Hint:       "Think about place values.",
				Difficulty: 4,
			},
		},
		{
			Category: puzzle.CategoryLateral,
			Puzzle: puzzle.Puzzle{
				Question:   "A man is looking at a picture of someone. His friend asks who it is. The man replies, 'Brothers and sisters I have none, but that man's father is my father's son.' Who is in the picture?",
				Answer:     "His son",
				Hint:       "Break it down: 'My father's son' is the speaker himself.",
				Difficulty: 5,
			},
		},
		{
			Category: puzzle.CategoryLateral,
			Puzzle: puzzle.Puzzle{
				Question:   "A cowboy rides into town on Friday, stays for three days and leaves on Friday. How did he do it?",
				Answer:     "His horse's name is Friday",
				Hint:       "Friday isn't just a day of the week.",
				Difficulty: 3,
			},
		},
		{
			Category: puzzle.CategoryEmoji,
			Puzzle: puzzle.Puzzle{
				Question:   "🦁 👑",
				Answer:     "The Lion King",
				Hint:       "A Disney movie.",
				Difficulty: 1,
			},
		},
		{
			Category: puzzle.CategoryEmoji,
			Puzzle: puzzle.Puzzle{
				Question:   "👻 🚫",
				Answer:     "Ghostbusters",
				Hint:       "Who you gonna call?",
				Difficulty: 1,
			},
		},
		{
			Category: puzzle.CategoryEmoji,
			Puzzle: puzzle.Puzzle{
				Question:   "🌎 🐒 🐒",
				Answer:     "Planet of the Apes",
				Hint:       "Sci-fi movie franchise.",
				Difficulty: 2,
			},
		},
		{
			Category: puzzle.CategoryWordAssociation,
			Puzzle: puzzle.Puzzle{
				Question:   "Find the word connecting: Fish, Mine, Rush",
				Answer:     "Gold",
				Hint:       "Goldfish, Gold mine, Gold rush.",
				Difficulty: 3,
			},
		},
		{
			Category: puzzle.CategoryWordAssociation,
			Puzzle: puzzle.Puzzle{
				Question:   "Find the word connecting: Cottage, Swiss, Cake",
				Answer:     "Cheese",
				Hint:       "It's a dairy product.",
				Difficulty: 2,
			},
		},
		{
			Category: puzzle.CategorySequence,
			Puzzle: puzzle.Puzzle{
				Question:   "O, T, T, F, F, S, S, ... What comes next?",
				Answer:     "E",
				Hint:       "One, Two, Three, Four...",
				Difficulty: 4,
			},
		},
		{
			Category: puzzle.CategorySequence,
			Puzzle: puzzle.Puzzle{
				Question:   "J, F, M, A, M, J, ... What comes next?",
				Answer:     "J",
				Hint:       "Months of the year.",
				Difficulty: 3,
			},
		},
		{
			Category: puzzle.CategoryTriviaTwist,
			Puzzle: puzzle.Puzzle{
				Question:   "What is the only US state name that can be typed on one row of a standard QWERTY keyboard?",
				Answer:     "Alaska",
				Hint:       "It's a cold place.",
				Difficulty: 4,
			},
		},
		{
			Category: puzzle.CategoryTriviaTwist,
			Puzzle: puzzle.Puzzle{
				Question:   "I am the only planet in the solar system not named after a god. What am I?",
				Answer:     "Earth",
				Hint:       "You are standing on it.",
				Difficulty: 2,
			},
		},
	}}
}
