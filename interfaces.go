// interfaces.go: public interfaces for Pondus
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

// CacheStats provides statistics about cache usage.
type CacheStats struct {
	// Hits is the number of Get calls that found their key
	Hits uint64

	// Misses is the number of Get calls that did not find their key
	Misses uint64

	// Inserts is the number of inserts that added a new key
	Inserts uint64

	// Updates is the number of inserts that replaced the value of an existing key
	Updates uint64

	// Removes is the number of successful Remove calls
	Removes uint64

	// Evictions is the number of entries evicted to make room
	Evictions uint64

	// Rejections is the number of inserts refused for exceeding MaxItemWeight
	Rejections uint64

	// Len is the current number of entries
	Len int

	// Weight is the current total weight
	Weight int

	// MaxItemWeight is the heaviest value the cache accepts
	MaxItemWeight int

	// MaxTotalWeight is the weight budget of the whole cache
	MaxTotalWeight int
}

// HitRatio returns the cache hit ratio as a percentage (0-100).
// Returns 0.0 if no Get operations have been performed yet.
func (s CacheStats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Utilization returns the used share of the weight budget as a percentage (0-100).
func (s CacheStats) Utilization() float64 {
	if s.MaxTotalWeight == 0 {
		return 0
	}
	return float64(s.Weight) / float64(s.MaxTotalWeight) * 100
}

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	Now() int64
}

// MetricsCollector defines an interface for collecting cache operation metrics.
// Implementations can send metrics to Prometheus, DataDog, StatsD, or other monitoring systems.
//
// The cache itself is single-goroutine, but one collector may be shared by
// several caches, so implementations should be safe for concurrent use.
type MetricsCollector interface {
	// RecordGet records a Get operation with its latency and hit/miss result.
	RecordGet(latencyNs int64, hit bool)

	// RecordInsert records a successful Insert with its latency and the
	// weight of the stored value.
	RecordInsert(latencyNs int64, weight int)

	// RecordRemove records a Remove operation with its latency.
	RecordRemove(latencyNs int64)

	// RecordEviction records an entry evicted to make room, with its weight.
	RecordEviction(weight int)

	// RecordRejection records an Insert refused because the value weighed
	// more than MaxItemWeight.
	RecordRejection(weight int)
}

// NoOpMetricsCollector is a metrics collector that does nothing.
// Used as default to avoid nil checks and ensure zero overhead.
type NoOpMetricsCollector struct{}

// RecordGet does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordGet(latencyNs int64, hit bool) {}

// RecordInsert does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordInsert(latencyNs int64, weight int) {}

// RecordRemove does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordRemove(latencyNs int64) {}

// RecordEviction does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordEviction(weight int) {}

// RecordRejection does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordRejection(weight int) {}
