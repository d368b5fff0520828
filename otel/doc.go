// Package otel provides OpenTelemetry integration for pondus cache metrics.
//
// # Overview
//
// This package implements the pondus.MetricsCollector interface using OpenTelemetry.
// It is a separate module so applications that don't need metrics don't pay
// for the OTEL dependencies.
//
// # Quick Start
//
//	import (
//	    "github.com/agilira/pondus"
//	    pondusotel "github.com/agilira/pondus/otel"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	provider := metric.NewMeterProvider(metric.WithReader(reader))
//	defer provider.Shutdown(context.Background())
//
//	collector, err := pondusotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := pondus.DefaultConfig()
//	cfg.MaxCount = 256
//	cfg.MaxItemWeight = 64 << 10
//	cfg.MetricsCollector = collector
//	cache, err := pondus.NewWithConfig[string](cfg, pondus.BytesWeight)
//
// # Metrics Exposed
//
// Histograms:
//   - pondus_get_latency_ns: Get() latency in nanoseconds
//   - pondus_insert_latency_ns: Insert() latency in nanoseconds
//   - pondus_remove_latency_ns: Remove() latency in nanoseconds
//   - pondus_insert_weight: weight of each stored value
//
// Counters:
//   - pondus_get_hits_total / pondus_get_misses_total
//   - pondus_evictions_total: entries evicted to make room
//   - pondus_evicted_weight_total: weight released by evictions
//   - pondus_rejections_total: inserts refused for exceeding the item weight limit
//
// # Prometheus Queries
//
// Hit ratio:
//
//	rate(pondus_get_hits_total[5m]) /
//	(rate(pondus_get_hits_total[5m]) + rate(pondus_get_misses_total[5m]))
//
// Average weight evicted per eviction, a hint that MaxItemWeight is too generous:
//
//	rate(pondus_evicted_weight_total[5m]) / rate(pondus_evictions_total[5m])
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package otel
