package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/nexus/internal/store"
)

// LoggingProvider is a decorator that records every oracle call as an
// llm_request_events row. All calls from one process share a session id,
// so usage can be grouped per play session.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
	sessionID string
}

// WithLogging wraps a Provider with event logging. name is the provider
// name recorded on each event ("gemini", "anthropic", "openai").
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &LoggingProvider{
		inner:     p,
		name:      name,
		eventRepo: repo,
		sessionID: uuid.New().String(),
	}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		SessionID: l.sessionID,
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but never fail the request over it.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
