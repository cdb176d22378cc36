package puzzlegen

import (
	"fmt"
	"strings"

	"github.com/abhisek/nexus/internal/puzzle"
)

const systemPrompt = `You are a puzzle master authoring brain teasers for an adult audience.

Rules:
- Generate a single, self-contained puzzle of the requested type and difficulty.
- The answer must be concise and unambiguous.
- The hint must nudge the solver without spoiling the answer immediately.
- Do not reuse any puzzle from the "do not repeat" list, nor anything very similar to it.
- Return strictly valid JSON matching the response schema.`

// categoryInstructions steers the authoring style per category.
// Each category has exactly one fixed instruction string.
var categoryInstructions = map[puzzle.Category]string{
	puzzle.CategoryRiddle:          "Create a clever riddle using metaphor and wordplay. The answer should be a single word or short concept. Do not use common nursery riddles.",
	puzzle.CategoryLogic:           "Create a deductive reasoning puzzle. Example: 'Knights and Knaves', 'River crossing', or 'Grid logic'. Ensure it is solvable with the info given.",
	puzzle.CategoryMath:            "Create a math puzzle that relies on pattern recognition or a trick, rather than heavy calculation. Examples: Sequence completion, geometric paradoxes, or algebraic word problems.",
	puzzle.CategoryLateral:         "Create a lateral thinking puzzle describing a strange scenario with a logical but non-obvious explanation. (e.g., 'The man in the elevator').",
	puzzle.CategoryEmoji:           "Create an emoji rebus. The 'question' MUST be a string of 2-5 emojis representing a famous movie, book, idiom, or song. The answer is the title/phrase.",
	puzzle.CategoryWordAssociation: "Create a 'Remote Associates' puzzle. Provide 3 disparate words that are all linked by a 4th word (e.g. 'Falling, Actor, Dust' -> 'Star'). Format question as: 'Find the word linked to: [Word1], [Word2], [Word3]'.",
	puzzle.CategorySequence:        "Create a sequence puzzle. Provide a series of numbers, letters, or symbols following a hidden rule and ask for the next term.",
	puzzle.CategoryTriviaTwist:     "Ask a trivia question that requires second-order thinking. Not just a fact, but a riddle about a fact. (e.g., 'I am the only US President who...')",
}

// buildUserMessage constructs the generation prompt: category, difficulty
// scalar, the do-not-repeat window, and the category's authoring instruction.
func buildUserMessage(category puzzle.Category, difficulty int, history []string, maxHistory int) string {
	var b strings.Builder

	b.WriteString("Create a unique brain teaser puzzle.\n")
	fmt.Fprintf(&b, "Type: %s\n", category)
	fmt.Fprintf(&b, "Difficulty Level: %d (on a scale of 1-10).\n", difficulty)

	if avoid := recentWindow(history, maxHistory); len(avoid) > 0 {
		b.WriteString("\nIMPORTANT: Do NOT generate the following puzzles or anything very similar to them:\n")
		for _, q := range avoid {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}

	instruction, ok := categoryInstructions[category]
	if !ok {
		instruction = "Create a unique brain teaser."
	}
	fmt.Fprintf(&b, "\nSpecific Instructions for %s (Strictly Follow):\n%s\n", category, instruction)

	return b.String()
}

// recentWindow returns at most the last max entries of history.
func recentWindow(history []string, max int) []string {
	if max > 0 && len(history) > max {
		return history[len(history)-max:]
	}
	return history
}
