// config.go: configuration for Pondus
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

import (
	"math"

	"github.com/agilira/go-timecache"
)

// Config holds configuration parameters for the cache.
type Config struct {
	// MaxCount is the number of maximal-weight items the cache can hold.
	// Must be > 0.
	MaxCount int

	// MaxItemWeight is the heaviest single value the cache accepts.
	// Must be > 0. The total weight budget is MaxCount * MaxItemWeight.
	MaxItemWeight int

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for latency measurements.
	// If nil, a go-timecache backed implementation is used.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics (latencies, hit/miss, evictions).
	// If nil, NoOpMetricsCollector is used (zero overhead). Default: NoOpMetricsCollector.
	MetricsCollector MetricsCollector

	// OnEvict is called when an entry is evicted to make room for an insert.
	// It is not called for Remove or Clear. It runs synchronously inside
	// Insert and must not call back into the cache.
	OnEvict func(key interface{}, value interface{})
}

// Validate checks the weight limits and applies defaults to the optional fields.
//
// Returns a PONDUS_NONSENSE_PARAMETERS error when MaxCount or MaxItemWeight is
// not positive, or when their product does not fit in an int. The limits are
// never defaulted: a zero limit is a caller bug, not a request for defaults.
//
// Default values applied:
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.MaxCount <= 0 || c.MaxItemWeight <= 0 {
		return NewErrNonsenseParameters(c.MaxCount, c.MaxItemWeight, reasonNonPositiveLimit)
	}

	if c.MaxCount > math.MaxInt/c.MaxItemWeight {
		return NewErrNonsenseParameters(c.MaxCount, c.MaxItemWeight, reasonTotalOverflow)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// MaxTotalWeight returns the weight budget described by the configuration.
// The result is meaningless unless Validate succeeded.
func (c Config) MaxTotalWeight() int {
	return c.MaxCount * c.MaxItemWeight
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxCount:         DefaultMaxCount,
		MaxItemWeight:    DefaultMaxItemWeight,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides much faster time access compared to time.Now() with zero allocations.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
