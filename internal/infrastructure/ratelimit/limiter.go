// Package ratelimit provides per-inventory request throttling.
// The search engines fan out many concurrent lookups; the limiter keeps the
// aggregate call rate within each backend's capacity.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config holds the default rate limit applied to each inventory.
type Config struct {
	// RequestsPerSecond is the sustained rate allowed per inventory.
	RequestsPerSecond float64

	// BurstSize is the number of calls that may be issued at once.
	BurstSize int
}

// DefaultConfig returns limits sized for the in-process sample inventories.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 200,
		BurstSize:         50,
	}
}

// InventoryLimiter maintains one token-bucket limiter per named inventory.
// Limiters are created lazily on first use.
type InventoryLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

// NewInventoryLimiter creates a limiter registry with the given defaults.
func NewInventoryLimiter(cfg Config) *InventoryLimiter {
	return &InventoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

// Limiter returns the limiter for the named inventory, creating it on demand.
func (l *InventoryLimiter) Limiter(inventory string) *rate.Limiter {
	l.mu.RLock()
	limiter, ok := l.limiters[inventory]
	l.mu.RUnlock()
	if ok {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok = l.limiters[inventory]; ok {
		return limiter
	}
	limiter = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.BurstSize)
	l.limiters[inventory] = limiter
	return limiter
}

// SetLimit overrides the rate for one inventory.
func (l *InventoryLimiter) SetLimit(inventory string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.limiters[inventory] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the named inventory may be called, or the context ends.
func (l *InventoryLimiter) Wait(ctx context.Context, inventory string) error {
	return l.Limiter(inventory).Wait(ctx)
}
