package puzzlegen

import (
	"slices"
	"testing"

	"github.com/abhisek/nexus/internal/puzzle"
)

func TestBank_PrefersUnseenInCategory(t *testing.T) {
	bank := DefaultBank()

	for range 50 {
		p := bank.Select(puzzle.CategoryRiddle, nil)
		if !isCategory(bank, p, puzzle.CategoryRiddle) {
			t.Fatalf("got puzzle outside requested category: %q", p.Question)
		}
	}
}

func TestBank_AvoidsHistoryWithinCategory(t *testing.T) {
	bank := DefaultBank()
	history := questionsOf(bank, puzzle.CategoryRiddle)[:2]

	for range 50 {
		p := bank.Select(puzzle.CategoryRiddle, history)
		if slices.Contains(history, p.Question) {
			t.Fatalf("selected a seen puzzle while unseen ones exist: %q", p.Question)
		}
	}
}

func TestBank_BroadensWhenCategoryExhausted(t *testing.T) {
	bank := DefaultBank()
	history := questionsOf(bank, puzzle.CategoryRiddle)

	for range 50 {
		p := bank.Select(puzzle.CategoryRiddle, history)
		if slices.Contains(history, p.Question) {
			t.Fatalf("tier 2 should pick an unseen puzzle from any category, got seen %q", p.Question)
		}
	}
}

func TestBank_FallsBackToCategoryWhenAllSeen(t *testing.T) {
	bank := DefaultBank()
	history := allQuestions(bank)

	for range 50 {
		p := bank.Select(puzzle.CategoryEmoji, history)
		if !isCategory(bank, p, puzzle.CategoryEmoji) {
			t.Fatalf("with everything seen, selection should keep the theme, got %q", p.Question)
		}
	}
}

func TestBank_NeverFails(t *testing.T) {
	bank := DefaultBank()
	// A category with no entries at all forces the last tier.
	p := bank.Select(puzzle.Category("UNKNOWN"), allQuestions(bank))
	if p.Question == "" {
		t.Fatal("selection must always return a puzzle")
	}
}

func isCategory(b *Bank, p puzzle.Puzzle, cat puzzle.Category) bool {
	for _, e := range b.entries {
		if e.Puzzle.Question == p.Question {
			return e.Category == cat
		}
	}
	return false
}

func questionsOf(b *Bank, cat puzzle.Category) []string {
	var out []string
	for _, e := range b.entries {
		if e.Category == cat {
			out = append(out, e.Puzzle.Question)
		}
	}
	return out
}

func allQuestions(b *Bank) []string {
	var out []string
	for _, e := range b.entries {
		out = append(out, e.Puzzle.Question)
	}
	return out
}
