package llm

import (
	"context"
	"errors"
	"math"
	"time"
)

// RetryProvider is a decorator that retries rate-limit errors with
// exponential backoff. Any other error aborts immediately — the caller
// is expected to degrade to its own fallback rather than hammer a
// provider that already gave a definitive answer.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with rate-limit retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Context errors and permanent failures are never retried.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if !IsRetryable(err) {
			return nil, err
		}

		// Last attempt: return the rate-limit error without sleeping.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff computes the wait before the next attempt: InitialWait doubled
// each attempt (1s, 2s, ... with the default config), capped at MaxWait.
// A provider-supplied Retry-After wins when it is longer.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) && float64(rl.RetryAfter) > wait {
		return rl.RetryAfter
	}
	return time.Duration(wait)
}
