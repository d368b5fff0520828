// Package pondus provides an in-memory LRU cache bounded by total weight
// rather than by entry count.
//
// # Overview
//
// A classic LRU cache is "full" when it holds N entries. That is a poor bound
// when values have very different sizes (strings, documents, blobs): ten
// 1-byte values and ten 1-megabyte values count the same. Pondus asks the
// caller for a weight function and bounds the sum of weights instead.
//
// Two numbers configure a cache:
//   - MaxItemWeight: the heaviest single value the cache will accept
//   - MaxCount: how many maximal-weight values the cache can hold
//
// The total budget is MaxCount * MaxItemWeight. With a string length weight,
// MaxItemWeight 20 and MaxCount 5, the budget is 100: the cache holds 5
// strings of length 20, or 10 of length 10, or 25 of length 4. It never holds
// a string of length 25: Insert rejects it.
//
// # Quick Start
//
//	cache, err := pondus.New[string, string](5, 20, pondus.StringWeight)
//	if err != nil {
//	    log.Fatal(err) // PONDUS_NONSENSE_PARAMETERS
//	}
//
//	if err := cache.Insert("greeting", "hello"); err != nil {
//	    // PONDUS_EXCEEDS_MAXIMUM_WEIGHT, cache unchanged
//	}
//
//	if v, ok := cache.Get("greeting"); ok {
//	    fmt.Println(v, cache.Len(), cache.Weight())
//	}
//
// Values that know their own cost can implement Weighted and use NewWeighted:
//
//	type Document struct{ Body []byte }
//
//	func (d Document) Weight() int { return len(d.Body) }
//
//	docs, _ := pondus.NewWeighted[string, Document](100, 64<<10)
//
// A plain count-bounded LRU is the special case UnitWeight:
//
//	lru, _ := pondus.New[int, string](1000, 1, pondus.UnitWeight[string])
//
// # Eviction
//
// Entries are kept in recency order, most recently inserted first. Before an
// insert commits, the least recently inserted entries are evicted one at a
// time until the new value fits. Eviction removes the minimum number of
// entries needed. Re-inserting an existing key replaces its value in place,
// its old weight is not counted against the new one, and it becomes the entry
// safest from eviction.
//
// Get does not refresh recency. Only Insert counts as a use. Callers that want
// read promotion re-insert the value they read.
//
// # Errors
//
// Only two errors come out of cache operations, both go-errors coded errors:
//   - PONDUS_NONSENSE_PARAMETERS: construction with a zero (or negative) limit
//   - PONDUS_EXCEEDS_MAXIMUM_WEIGHT: Insert of a value heavier than MaxItemWeight
//
// Use IsNonsenseParameters / IsExceedsMaximumWeight or GetErrorCode to classify
// them. Missing keys are reported with a boolean, never an error.
//
// # Concurrency
//
// A WeightedCache is not safe for concurrent use. Guard it with a single
// sync.Mutex when it is shared between goroutines. No operation blocks, spawns
// goroutines or performs I/O.
//
// # Observability
//
// Config.Logger and Config.MetricsCollector receive cache events. The
// github.com/agilira/pondus/otel module provides an OpenTelemetry collector.
// Stats returns counters and the current weight.
//
// # Packages
//
//   - github.com/agilira/pondus: Core cache implementation
//   - github.com/agilira/pondus/otel: OpenTelemetry integration (separate module)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package pondus
