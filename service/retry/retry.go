// Package retry provides bounded retry with exponential backoff and jitter
// for transient provider-call failures.
package retry

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Config defines retry behavior for one category call.
type Config struct {
	// MaxAttempts includes the first attempt. Values below 1 mean 1.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the backoff growth.
	MaxDelay time.Duration

	// Multiplier grows the delay after each attempt.
	Multiplier float64

	// Jitter between 0 and 1 randomizes each delay by up to that fraction.
	Jitter float64

	// ShouldRetry decides whether an error is transient. A nil predicate
	// retries every error.
	ShouldRetry func(error) bool
}

// DefaultConfig matches the engine's per-category budget: three attempts,
// backoff from 200ms capped at 2s.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	Jitter:       0.2,
}

// Do executes op until it succeeds, attempts are exhausted, the error is not
// retryable, or ctx expires. The last error is returned unwrapped so callers
// can classify it.
func Do[T any](ctx context.Context, cfg Config, op func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return zero, lastErr
			}
			return zero, err
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if cfg.ShouldRetry != nil && !cfg.ShouldRetry(err) {
			return zero, err
		}
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, lastErr
		case <-time.After(delayFor(cfg, attempt)):
		}
	}

	return zero, lastErr
}

// delayFor computes the backoff delay for the given zero-based attempt.
func delayFor(cfg Config, attempt int) time.Duration {
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	if cfg.Jitter > 0 {
		delay += (rand.Float64()*2 - 1) * delay * cfg.Jitter
	}
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}
