package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/nexus/internal/llm"
	"github.com/abhisek/nexus/internal/puzzle"
)

// Result is the verdict on a submitted answer. Produced once per
// submission; never persisted.
type Result struct {
	IsCorrect   bool
	Explanation string

	// ScoreDelta is the base score for a correct answer before the time
	// bonus: difficulty*100 on the oracle path, 50 on the fallback path,
	// 0 when incorrect.
	ScoreDelta int
}

// Validator judges free-text answers. Implementations must never fail:
// when the oracle is unusable they degrade to local string matching.
type Validator interface {
	Validate(ctx context.Context, p puzzle.Puzzle, userAnswer string) Result
}

// Service implements Validator with an LLM semantic check and a local
// normalized-containment fallback. The oracle is called exactly once —
// no retry — because the player is waiting on the verdict.
type Service struct {
	oracle llm.Provider
	config Config
}

// Config controls the validation service.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 256}
}

// New creates a validation Service.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{oracle: provider, config: cfg}
}

// verdictSchema is the oracle reply shape for answer checking.
var verdictSchema = &llm.Schema{
	Name:        "nexus-verdict",
	Description: "Judgement of whether a player's answer is semantically correct",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{
				"type": "boolean",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A short, encouraging sentence explaining why it is right or wrong",
			},
		},
		"required":             []any{"isCorrect", "explanation"},
		"additionalProperties": false,
	},
}

type verdictOutput struct {
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
}

// Validate judges userAnswer against the puzzle's canonical answer.
func (s *Service) Validate(ctx context.Context, p puzzle.Puzzle, userAnswer string) Result {
	if result, err := s.validateWithOracle(ctx, p, userAnswer); err == nil {
		return result
	}
	return FallbackMatch(p, userAnswer)
}

func (s *Service) validateWithOracle(ctx context.Context, p puzzle.Puzzle, userAnswer string) (Result, error) {
	ctx = llm.WithPurpose(ctx, "answer-check")

	prompt := fmt.Sprintf(`The user was asked this puzzle: %q
The canonical answer is: %q
The user provided this answer: %q

Determine if the user's answer is correct.
It doesn't need to be an exact string match, but it must be semantically correct.
For riddles and logic, synonyms are okay.
For math, the number must be equivalent.`,
		p.Question, p.Answer, userAnswer)

	resp, err := s.oracle.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      verdictSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return Result{}, fmt.Errorf("oracle validation failed: %w", err)
	}

	var verdict verdictOutput
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return Result{}, fmt.Errorf("parse oracle verdict: %w", err)
	}

	scoreDelta := 0
	if verdict.IsCorrect {
		scoreDelta = p.Difficulty * 100
	}

	return Result{
		IsCorrect:   verdict.IsCorrect,
		Explanation: verdict.Explanation,
		ScoreDelta:  scoreDelta,
	}, nil
}

// FallbackMatch is the deterministic local matcher: both strings are
// lowercased and trimmed; the answer counts as correct on exact equality,
// when the user answer (longer than 2 characters) contains the canonical
// answer, or when the canonical answer (longer than 2 characters) contains
// the user answer as a whole word. The whole-word requirement keeps bare
// prefixes like "ech" for "Echo" from passing.
func FallbackMatch(p puzzle.Puzzle, userAnswer string) Result {
	user := strings.ToLower(strings.TrimSpace(userAnswer))
	canonical := strings.ToLower(strings.TrimSpace(p.Answer))

	isMatch := user == canonical ||
		(len(user) > 2 && strings.Contains(user, canonical)) ||
		(len(canonical) > 2 && containsWord(canonical, user))

	result := Result{IsCorrect: isMatch}
	if isMatch {
		result.Explanation = "Correct!"
		result.ScoreDelta = 50
	} else {
		result.Explanation = fmt.Sprintf("Incorrect. The answer was %s", p.Answer)
	}
	return result
}

// containsWord reports whether needle appears in haystack bounded by
// non-alphanumeric characters (or the string ends).
func containsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(haystack[start:], needle)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(needle)
		beforeOK := i == 0 || !isWordChar(haystack[i-1])
		afterOK := end == len(haystack) || !isWordChar(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}
