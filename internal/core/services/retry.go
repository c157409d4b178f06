package services

import (
	"context"
	"errors"
	"time"

	"github.com/fundlens/fundlens/internal/core/domain"
	"github.com/fundlens/fundlens/internal/logger"
)

// retry runs fn up to attempts times, sleeping base*2^(attempt-1)
// between tries. Unsupported-kind and configuration errors are never
// retried; context cancellation stops the loop immediately.
func retry(ctx context.Context, attempts int, base time.Duration, fn func() error) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrUnsupportedKind) || errors.Is(err, domain.ErrConfiguration) {
			return err
		}
		if attempt == attempts {
			break
		}

		delay := base << (attempt - 1)
		logger.Debug("retry: attempt %d/%d failed (%v), sleeping %s", attempt, attempts, err, delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
