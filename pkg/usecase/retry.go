package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

// RetryConfig bounds the exponential backoff applied to GitHub calls that
// fail with types.ErrRetryable.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
	}
}

// Delay returns the wait before the given retry (1 for the first retry):
// BaseDelay doubled per attempt with ±10% jitter, capped at MaxDelay.
func (x RetryConfig) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := x.BaseDelay << uint(min(attempt-1, 30))
	if delay <= 0 || (x.MaxDelay > 0 && delay > x.MaxDelay) {
		delay = x.MaxDelay
	}

	jitter := time.Duration(float64(delay) * 0.1 * (rand.Float64()*2 - 1))
	delay += jitter

	if delay < 0 {
		delay = x.BaseDelay
	}
	if x.MaxDelay > 0 && delay > x.MaxDelay {
		delay = x.MaxDelay
	}
	return delay
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// runs out of attempts.
func withRetry(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error) error {
	attempts := max(cfg.MaxAttempts, 1)

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if !errors.Is(err, types.ErrRetryable) || attempt == attempts {
			break
		}

		delay := cfg.Delay(attempt)
		logging.From(ctx).Warn("retrying GitHub API call",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return goerr.Wrap(ctx.Err(), "retry cancelled", goerr.V("last_error", err.Error()))
		case <-timer.C:
		}
	}

	return err
}
