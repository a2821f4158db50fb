package chat

import (
	"context"
	"fmt"
	"time"
)

// RetryConfig configures the retry behavior for model calls.
type RetryConfig struct {
	MaxAttempts int           // Total attempts including the first
	BackoffUnit time.Duration // Wait before attempt n+1 is n * BackoffUnit (linear)
}

// DefaultRetryConfig returns the production retry policy: three attempts with
// linear 1s, 2s backoff, bounding added latency at ~3s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BackoffUnit: time.Second,
	}
}

// attemptState is the retry loop's explicit state.
type attemptState int

const (
	stateAttempt attemptState = iota
	stateBackoff
	stateDone
	stateFailed
)

// generateWithRetry drives the attempt/backoff state machine around the model
// call. Each failure is classified once at the boundary; non-retryable kinds
// fail immediately, retryable kinds back off linearly until MaxAttempts.
// The backoff wait is interruptible by context cancellation.
func (g *Generator) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var (
		answer  string
		lastErr error
		kind    ErrorKind
		attempt = 1
		state   = stateAttempt
	)

	for {
		switch state {
		case stateAttempt:
			answer, lastErr = g.generate(ctx, prompt)
			if lastErr == nil {
				state = stateDone
				break
			}
			kind = ClassifyError(lastErr)
			switch {
			case !kind.Retryable():
				g.logger.Warn("generation failed with non-retryable error",
					"attempt", attempt, "kind", kind, "error", lastErr)
				state = stateFailed
			case attempt >= g.retry.MaxAttempts:
				state = stateFailed
			default:
				state = stateBackoff
			}

		case stateBackoff:
			delay := time.Duration(attempt) * g.retry.BackoffUnit
			g.logger.Warn("generation attempt failed, retrying",
				"attempt", attempt, "kind", kind, "delay", delay, "error", lastErr)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("canceled during retry backoff: %w", ctx.Err())
			case <-time.After(delay):
			}
			attempt++
			state = stateAttempt

		case stateDone:
			return answer, nil

		case stateFailed:
			return "", &GenerationError{Kind: kind, Attempts: attempt, Err: lastErr}
		}
	}
}
