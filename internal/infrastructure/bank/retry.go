package bank

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	"github.com/DanielPopoola/payment-gateway/internal/config"
	"github.com/DanielPopoola/payment-gateway/internal/domain"
)

// RetryBankClient re-sends an authorization only when the bank explicitly answered
// 502, 503 or 504. Transport errors are never retried since the bank may have acted.
type RetryBankClient struct {
	inner       application.BankClient
	baseDelay   time.Duration
	maxAttempts int
	logger      *slog.Logger
}

// NewRetryBankClient wraps inner. MaxAttempts below 2 disables retries.
func NewRetryBankClient(inner application.BankClient, cfg config.RetryConfig, logger *slog.Logger) *RetryBankClient {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &RetryBankClient{
		inner:       inner,
		baseDelay:   cfg.BaseDelay,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (r *RetryBankClient) Authorize(ctx context.Context, req domain.BankAuthorizationRequest) (*domain.BankAuthorizationResponse, error) {
	return retry(r, ctx, func(ctx context.Context) (*domain.BankAuthorizationResponse, error) {
		return r.inner.Authorize(ctx, req)
	})
}

// Generic retry helper. The last error is returned unchanged so callers still see the bank's message.
func retry[T any](r *RetryBankClient, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) || attempt == r.maxAttempts-1 {
			break
		}

		delay := r.backoff(attempt)
		r.logger.Warn("bank unavailable, retrying",
			"attempt", attempt+1,
			"max_attempts", r.maxAttempts,
			"delay", delay,
			"error", err,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, lastErr
		case <-timer.C:
		}
	}

	return nil, lastErr
}

func isRetryable(err error) bool {
	if bankErr, ok := application.IsBankError(err); ok {
		return bankErr.IsRetryable()
	}
	return false
}

// Backoff calculation with exponential delay and jitter
func (r *RetryBankClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	if r.baseDelay <= 0 {
		return 0
	}
	jitter := time.Duration(rand.Int63n(int64(r.baseDelay)))

	return base + jitter
}
