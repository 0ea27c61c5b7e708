package usecase

import "time"

// Default engine limits.
const (
	// DefaultMaxConcurrent bounds how many inventory lookups a single search
	// runs at once.
	DefaultMaxConcurrent = 16

	// DefaultCacheTTL is how long flexible-date responses stay cached.
	DefaultCacheTTL = 5 * time.Minute
)

// Config holds the tunables of the planning engines.
type Config struct {
	// MaxConcurrent is the fan-out concurrency limit per search
	MaxConcurrent int

	// CacheTTL is the time-to-live for cached search responses
	CacheTTL time.Duration
}

// DefaultEngineConfig returns the production defaults.
func DefaultEngineConfig() Config {
	return Config{
		MaxConcurrent: DefaultMaxConcurrent,
		CacheTTL:      DefaultCacheTTL,
	}
}

// normalize replaces unset fields with defaults.
func (c *Config) normalize() {
	if c.MaxConcurrent < 1 {
		c.MaxConcurrent = DefaultMaxConcurrent
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}
}
