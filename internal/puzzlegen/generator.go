package puzzlegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/nexus/internal/llm"
	"github.com/abhisek/nexus/internal/puzzle"
)

// Source records which path produced a puzzle.
type Source string

const (
	SourceOracle   Source = "oracle"
	SourceFallback Source = "fallback"
)

// Generator produces puzzles for a category and difficulty while avoiding
// recently seen questions. Implementations must never fail: when the oracle
// is unusable they degrade to canned content.
type Generator interface {
	Generate(ctx context.Context, category puzzle.Category, difficulty int, history []string) (puzzle.Puzzle, Source)
}

// Service implements Generator against an LLM provider with the fallback
// bank as the terminal degradation step.
type Service struct {
	oracle llm.Provider // retry-wrapped
	bank   *Bank
	config Config
}

// New creates a generation Service. The provider is wrapped with the
// rate-limit retry policy from cfg; all other oracle errors go straight
// to the fallback bank.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{
		oracle: llm.WithRetry(provider, cfg.Retry),
		bank:   DefaultBank(),
		config: cfg,
	}
}

// puzzleOutput is the raw oracle reply before defaulting.
type puzzleOutput struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Hint       string `json:"hint"`
	Difficulty int    `json:"difficulty"`
}

// Generate returns a puzzle for the category and difficulty. The caller is
// responsible for recording the returned question into the seen history.
func (s *Service) Generate(ctx context.Context, category puzzle.Category, difficulty int, history []string) (puzzle.Puzzle, Source) {
	p, err := s.generateFromOracle(ctx, category, difficulty, history)
	if err == nil {
		return p, SourceOracle
	}

	return s.bank.Select(category, history), SourceFallback
}

func (s *Service) generateFromOracle(ctx context.Context, category puzzle.Category, difficulty int, history []string) (puzzle.Puzzle, error) {
	ctx = llm.WithPurpose(ctx, "puzzle-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(category, difficulty, history, s.config.MaxHistory)},
		},
		Schema:      PuzzleSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.oracle.Generate(ctx, req)
	if err != nil {
		return puzzle.Puzzle{}, fmt.Errorf("oracle generation failed: %w", err)
	}

	var raw puzzleOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return puzzle.Puzzle{}, fmt.Errorf("parse oracle reply: %w", err)
	}
	if raw.Question == "" || raw.Answer == "" {
		return puzzle.Puzzle{}, fmt.Errorf("oracle reply missing question or answer")
	}

	if raw.Difficulty == 0 {
		raw.Difficulty = difficulty
	}

	return puzzle.Puzzle{
		Question:   raw.Question,
		Answer:     raw.Answer,
		Hint:       raw.Hint,
		Difficulty: puzzle.ClampDifficulty(raw.Difficulty),
	}, nil
}
