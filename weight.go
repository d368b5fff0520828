// weight.go: the weight capability used to bound the cache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

// Weighted is implemented by values that report their own retention cost.
// The weight must be non-negative and must depend only on the value.
type Weighted interface {
	Weight() int
}

// WeightFunc returns the retention cost of a value.
// It must be deterministic and return a non-negative number.
type WeightFunc[V any] func(value V) int

// WeightOf is the WeightFunc for values implementing Weighted.
func WeightOf[V Weighted](value V) int {
	return value.Weight()
}

// StringWeight weighs a string by its length in bytes.
func StringWeight(value string) int {
	return len(value)
}

// BytesWeight weighs a byte slice by its length.
func BytesWeight(value []byte) int {
	return len(value)
}

// UnitWeight gives every value a weight of 1, turning the cache into a
// plain count-bounded LRU holding MaxCount*MaxItemWeight entries.
func UnitWeight[V any](V) int {
	return 1
}

// weigh calls fn and clamps misbehaving negative results to 0 so the
// running total can never go below the real sum.
func weigh[V any](fn WeightFunc[V], value V) int {
	if w := fn(value); w > 0 {
		return w
	}
	return 0
}
