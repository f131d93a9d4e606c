package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryProvider retries temporary failures with exponential backoff and
// jitter. An invalid response is retried at most once per call since a
// model that gets the schema wrong twice rarely recovers.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	log    *zap.Logger

	// sleep waits for d or until ctx is done. Replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps a Provider with retry logic. Each retry is logged at
// debug level; log may be nil.
func WithRetry(p Provider, cfg RetryConfig, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 1
	}
	return &RetryProvider{inner: p, config: cfg, log: log, sleep: sleepCtx}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	invalidSeen := false

	for attempt := 0; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		retry := retryable(err)
		if IsKind(err, KindInvalidResponse) {
			retry = !invalidSeen
			invalidSeen = true
		}
		if !retry || attempt+1 >= r.config.MaxAttempts {
			return nil, err
		}

		wait := r.backoff(attempt, err)
		r.log.Debug("retrying llm request",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		if err := r.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable reports whether err may clear up on its own. Errors from
// outside this package, such as raw network failures, count as temporary.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Temporary()
	}
	return true
}

// backoff honors a server-provided RetryAfter, otherwise grows the wait
// geometrically up to MaxWait with ±20% jitter.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return e.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxWait > 0 {
		wait = math.Min(wait, float64(r.config.MaxWait))
	}
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
