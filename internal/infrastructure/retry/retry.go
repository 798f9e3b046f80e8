// Package retry runs provider calls again with exponential backoff when they fail transiently.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts, including the first one.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows after each retry.
	Multiplier float64

	// JitterFactor adds up to this share of the delay as random jitter (0.0 to 1.0).
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt.
	// If nil, every error except a Permanent one is retried.
	RetryIf func(error) bool

	// OnRetry, when set, is called before sleeping with the attempt that just failed.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// ProviderConfig suits calls to the flight search provider.
var ProviderConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// Do executes fn until it succeeds, returns a non-retryable error, attempts
// run out or ctx is done.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult is Do for functions that return a value.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	retryable := cfg.RetryIf
	if retryable == nil {
		retryable = SkipPermanent
	}

	var (
		result T
		err    error
		delay  = cfg.InitialDelay
	)

	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		result, err = fn()
		if err == nil || !retryable(err) || attempt >= cfg.MaxAttempts {
			return result, err
		}

		wait := backoff(delay, cfg.MaxDelay, cfg.JitterFactor)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}
}

// backoff adds jitter to delay and caps the result at maxDelay.
func backoff(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	wait := delay + time.Duration(rand.Float64()*float64(delay)*jitterFactor)
	if maxDelay > 0 && wait > maxDelay {
		wait = maxDelay
	}
	return wait
}

// Permanent wraps an error to indicate it should not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent marks err as non-retryable. A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent checks if an error is permanent (non-retryable).
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that skips permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}

// WithMaxAttempts returns a copy of the config with the given max attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a copy of the config with the given initial delay.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}

// WithRetryIf returns a copy of the config with the given RetryIf predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithOnRetry returns a copy of the config with the given retry hook.
func (c Config) WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Config {
	c.OnRetry = fn
	return c
}
