package puzzlegen

import "github.com/abhisek/nexus/internal/llm"

// PuzzleSchema defines the JSON schema for oracle puzzle replies.
// Difficulty is optional; a missing value defaults to the level's own.
var PuzzleSchema = &llm.Schema{
	Name:        "nexus-puzzle",
	Description: "A single brain teaser puzzle with answer and hint",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The puzzle question or content",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer or solution",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A subtle clue",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     10,
				"description": "Estimated difficulty 1-10",
			},
		},
		"required":             []any{"question", "answer", "hint"},
		"additionalProperties": false,
	},
}
