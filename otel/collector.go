// collector.go: OpenTelemetry implementation of pondus.MetricsCollector
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package otel

import (
	"context"
	"errors"

	"github.com/agilira/pondus"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements pondus.MetricsCollector using OpenTelemetry.
//
// Thread-safety: Safe for concurrent use by multiple goroutines, so one
// collector can be shared by several caches.
type OTelMetricsCollector struct {
	getLatency    metric.Int64Histogram // Get operation latency histogram
	insertLatency metric.Int64Histogram // Insert operation latency histogram
	removeLatency metric.Int64Histogram // Remove operation latency histogram
	insertWeight  metric.Int64Histogram // Weight of inserted values
	hits          metric.Int64Counter   // Cache hits counter
	misses        metric.Int64Counter   // Cache misses counter
	evictions     metric.Int64Counter   // Evictions counter
	evictedWeight metric.Int64Counter   // Total weight released by evictions
	rejections    metric.Int64Counter   // Oversized inserts counter
}

// Options for configuring OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/pondus"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name.
// This is useful for distinguishing metrics from multiple cache instances.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a new OpenTelemetry metrics collector.
//
// Parameters:
//   - provider: OpenTelemetry MeterProvider. Must not be nil.
//   - opts: Optional configuration options (meter name, etc.)
//
// Example:
//
//	reader := metric.NewManualReader()
//	provider := metric.NewMeterProvider(metric.WithReader(reader))
//	collector, err := NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{
		MeterName: "github.com/agilira/pondus",
	}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	histograms := []struct {
		target      *metric.Int64Histogram
		name        string
		description string
		unit        string
	}{
		{&collector.getLatency, "pondus_get_latency_ns", "Latency of Get operations in nanoseconds", "ns"},
		{&collector.insertLatency, "pondus_insert_latency_ns", "Latency of Insert operations in nanoseconds", "ns"},
		{&collector.removeLatency, "pondus_remove_latency_ns", "Latency of Remove operations in nanoseconds", "ns"},
		{&collector.insertWeight, "pondus_insert_weight", "Weight of values stored by Insert", "1"},
	}
	for _, h := range histograms {
		*h.target, err = meter.Int64Histogram(h.name,
			metric.WithDescription(h.description),
			metric.WithUnit(h.unit),
		)
		if err != nil {
			return nil, err
		}
	}

	counters := []struct {
		target      *metric.Int64Counter
		name        string
		description string
	}{
		{&collector.hits, "pondus_get_hits_total", "Total number of cache hits"},
		{&collector.misses, "pondus_get_misses_total", "Total number of cache misses"},
		{&collector.evictions, "pondus_evictions_total", "Total number of evictions"},
		{&collector.evictedWeight, "pondus_evicted_weight_total", "Total weight released by evictions"},
		{&collector.rejections, "pondus_rejections_total", "Total number of inserts rejected for exceeding the item weight limit"},
	}
	for _, c := range counters {
		*c.target, err = meter.Int64Counter(c.name, metric.WithDescription(c.description))
		if err != nil {
			return nil, err
		}
	}

	return collector, nil
}

// RecordGet records latency and increments either hits or misses.
func (c *OTelMetricsCollector) RecordGet(latencyNs int64, hit bool) {
	ctx := context.Background()

	c.getLatency.Record(ctx, latencyNs)
	if hit {
		c.hits.Add(ctx, 1)
	} else {
		c.misses.Add(ctx, 1)
	}
}

// RecordInsert records Insert latency and the weight of the stored value.
func (c *OTelMetricsCollector) RecordInsert(latencyNs int64, weight int) {
	ctx := context.Background()

	c.insertLatency.Record(ctx, latencyNs)
	c.insertWeight.Record(ctx, int64(weight))
}

// RecordRemove records Remove latency.
func (c *OTelMetricsCollector) RecordRemove(latencyNs int64) {
	c.removeLatency.Record(context.Background(), latencyNs)
}

// RecordEviction counts an eviction and the weight it released.
func (c *OTelMetricsCollector) RecordEviction(weight int) {
	ctx := context.Background()

	c.evictions.Add(ctx, 1)
	c.evictedWeight.Add(ctx, int64(weight))
}

// RecordRejection counts an Insert refused for exceeding the item weight limit.
func (c *OTelMetricsCollector) RecordRejection(weight int) {
	c.rejections.Add(context.Background(), 1)
}

// Compile-time interface check
var _ pondus.MetricsCollector = (*OTelMetricsCollector)(nil)
