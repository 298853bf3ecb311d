// Package retry runs an operation again when it fails with an error the
// caller has marked as transient.
package retry

import (
	"context"
	"sync"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

// Policy describes how many times an operation is retried and the linear
// backoff step between attempts. The zero value runs the operation once.
type Policy struct {
	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries int
	// Step is the backoff unit: retry n waits n*Step.
	Step time.Duration
	// Retryable decides whether err is worth another attempt. nil means never.
	Retryable func(err error) bool
	// OnRetry, when set, is called before each wait.
	OnRetry func(retry int, delay time.Duration, err error)
}

// Linear returns a backoff of step, 2*step, 3*step, ... that never stops on
// its own; bound it with goretry.WithMaxRetries.
func Linear(step time.Duration) goretry.Backoff {
	var (
		mu sync.Mutex
		n  int64
	)
	return goretry.BackoffFunc(func() (time.Duration, bool) {
		mu.Lock()
		defer mu.Unlock()
		n++
		return time.Duration(n) * step, false
	})
}

// Do calls fn until it succeeds, returns a non-retryable error, or the
// retries are exhausted. The last error is returned unwrapped; a cancelled
// context returns its error.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	maxRetries := uint64(0)
	if p.MaxRetries > 0 {
		maxRetries = uint64(p.MaxRetries)
	}

	var (
		lastErr error
		retries int
	)
	linear := Linear(p.Step)
	backoff := goretry.BackoffFunc(func() (time.Duration, bool) {
		delay, stop := linear.Next()
		retries++
		if p.OnRetry != nil {
			p.OnRetry(retries, delay, lastErr)
		}
		return delay, stop
	})

	return goretry.Do(ctx, goretry.WithMaxRetries(maxRetries, backoff), func(ctx context.Context) error {
		err := fn(ctx)
		lastErr = err
		if err == nil || p.Retryable == nil || !p.Retryable(err) {
			return err
		}
		return goretry.RetryableError(err)
	})
}
