// Package retry re-attempts flaky inventory lookups with exponential backoff.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Config shapes one backoff schedule.
type Config struct {
	// MaxAttempts counts the initial call, so 3 means at most two retries.
	MaxAttempts int

	// InitialDelay seeds the backoff before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the sleep between attempts.
	MaxDelay time.Duration

	// Multiplier grows the delay after every failed attempt.
	Multiplier float64

	// JitterFactor adds up to that fraction of extra random sleep, keeping
	// concurrent search units from retrying in lockstep.
	JitterFactor float64
}

// InventoryConfig is the schedule the flight and hotel inventory decorators
// run with.
var InventoryConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// Do calls fn until it succeeds, attempts run out, or the context ends.
// When every attempt fails it returns the last result and error; a context
// error wins over whatever fn last returned.
func Do[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(backoff(delay, cfg)):
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// backoff jitters the current delay and caps it at the configured maximum.
func backoff(delay time.Duration, cfg Config) time.Duration {
	sleep := delay + time.Duration(rand.Float64()*float64(delay)*cfg.JitterFactor)
	if sleep > cfg.MaxDelay {
		sleep = cfg.MaxDelay
	}
	return sleep
}
