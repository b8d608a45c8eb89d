package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(shouldRetry func(error) bool) Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2.0,
		ShouldRetry:  shouldRetry,
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	attempts := 0
	result, err := Do(context.Background(), fastConfig(nil), func(ctx context.Context) (string, error) {
		attempts++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, attempts)
}

func TestDoRetriesTransientThenSucceeds(t *testing.T) {
	attempts := 0
	result, err := Do(context.Background(), fastConfig(nil), func(ctx context.Context) (int, error) {
		attempts++
		if attempts < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, attempts)
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	terminal := errors.New("terminal")
	attempts := 0
	_, err := Do(context.Background(), fastConfig(func(err error) bool { return false }), func(ctx context.Context) (int, error) {
		attempts++
		return 0, terminal
	})

	assert.ErrorIs(t, err, terminal)
	assert.Equal(t, 1, attempts)
}

func TestDoExhaustsAttempts(t *testing.T) {
	transient := errors.New("still failing")
	attempts := 0
	_, err := Do(context.Background(), fastConfig(nil), func(ctx context.Context) (int, error) {
		attempts++
		return 0, transient
	})

	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 3, attempts)
}

func TestDoReturnsLastErrorOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	transient := errors.New("transient")

	cfg := fastConfig(nil)
	cfg.InitialDelay = time.Hour

	_, err := Do(ctx, cfg, func(ctx context.Context) (int, error) {
		cancel()
		return 0, transient
	})

	assert.ErrorIs(t, err, transient)
}

func TestDoCancelledBeforeFirstAttempt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	_, err := Do(ctx, fastConfig(nil), func(ctx context.Context) (int, error) {
		attempts++
		return 0, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, attempts)
}

func TestDelayForCapsAtMaxDelay(t *testing.T) {
	cfg := Config{
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   10,
	}

	assert.Equal(t, time.Second, delayFor(cfg, 5))
}
