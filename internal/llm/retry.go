package llm

import (
	"context"
	"errors"
	"time"
)

// RetryClient retries a failed completion at most once. The service
// prefers a fast deterministic fallback over long waits, so there is no
// backoff ladder: one short pause, one more attempt, then give up.
type RetryClient struct {
	inner Client
	wait  time.Duration
}

// WithRetry wraps a Client with a single-retry policy. A zero wait
// disables the pause between attempts.
func WithRetry(c Client, wait time.Duration) Client {
	return &RetryClient{inner: c, wait: wait}
}

func (r *RetryClient) Complete(ctx context.Context, req Request) (string, error) {
	out, err := r.inner.Complete(ctx, req)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "", err
	}

	if r.wait > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.wait):
		}
	}
	return r.inner.Complete(ctx, req)
}
