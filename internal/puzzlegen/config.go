package puzzlegen

import "github.com/abhisek/nexus/internal/llm"

// Config controls the behavior of the generation service.
type Config struct {
	// MaxTokens is the token budget for the oracle response.
	MaxTokens int

	// Temperature controls oracle output randomness (0.0-1.0).
	Temperature float64

	// MaxHistory is the maximum number of seen questions included in the
	// do-not-repeat block of the prompt.
	MaxHistory int

	// Retry configures backoff for rate-limited oracle calls.
	Retry llm.RetryConfig
}

// DefaultConfig returns a Config with recommended defaults: a 20-entry
// do-not-repeat window and three attempts with 1s/2s backoff.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.9,
		MaxHistory:  20,
		Retry:       llm.DefaultConfig().Retry,
	}
}
