// evict_test.go: tests for weight-driven eviction
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

import (
	"math"
	"slices"
	"testing"
)

func identityWeight(v int) int {
	return v
}

func newIntCache(t *testing.T, maxCount, maxItemWeight int) *WeightedCache[string, int] {
	t.Helper()
	c, err := New[string, int](maxCount, maxItemWeight, identityWeight)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", maxCount, maxItemWeight, err)
	}
	return c
}

// TestMakeRoom_EvictsMinimum verifies eviction stops as soon as the candidate fits
func TestMakeRoom_EvictsMinimum(t *testing.T) {
	c := newIntCache(t, 2, 5)
	_ = c.Insert("a", 3)
	_ = c.Insert("b", 3)
	_ = c.Insert("c", 4)

	c.makeRoom(5, 0)

	if !slices.Equal(c.Keys(), []string{"c"}) {
		t.Errorf("Expected only c to remain, got %v", c.Keys())
	}
	if c.Weight() != 4 {
		t.Errorf("Expected Weight() 4, got %d", c.Weight())
	}
	checkInvariants(t, c)
}

// TestMakeRoom_ReplacedWeightCountsAsFree verifies the replaced entry's weight is not double counted
func TestMakeRoom_ReplacedWeightCountsAsFree(t *testing.T) {
	c := newIntCache(t, 2, 5)
	_ = c.Insert("a", 5)
	_ = c.Insert("b", 5)

	// b is at the head and weighs 5, so a value of 5 replacing it fits
	c.makeRoom(5, 5)

	if c.Len() != 2 {
		t.Errorf("Expected no eviction, got keys %v", c.Keys())
	}
}

// TestMakeRoom_EmptyCache verifies the loop ends on an empty list
func TestMakeRoom_EmptyCache(t *testing.T) {
	c := newIntCache(t, 1, 1)
	c.makeRoom(1, 0)

	if c.Stats().Evictions != 0 {
		t.Errorf("Expected 0 evictions, got %d", c.Stats().Evictions)
	}
}

// TestInsert_MaxIntLimits verifies weight accounting with a budget of math.MaxInt
func TestInsert_MaxIntLimits(t *testing.T) {
	c := newIntCache(t, 1, math.MaxInt)

	if err := c.Insert("a", math.MaxInt); err != nil {
		t.Fatalf("Insert(a) failed: %v", err)
	}
	if err := c.Insert("b", math.MaxInt); err != nil {
		t.Fatalf("Insert(b) failed: %v", err)
	}

	if c.Len() != 1 {
		t.Errorf("Expected Len() 1, got %d", c.Len())
	}
	if c.Weight() != math.MaxInt {
		t.Errorf("Expected Weight() %d, got %d", math.MaxInt, c.Weight())
	}
	if c.ContainsKey("a") || !c.ContainsKey("b") {
		t.Errorf("Expected a evicted in favour of b, got %v", c.Keys())
	}
	checkInvariants(t, c)
}

// TestInsert_NearMaxIntBudget verifies eviction when the running sum would wrap
func TestInsert_NearMaxIntBudget(t *testing.T) {
	half := math.MaxInt / 2
	c := newIntCache(t, 2, half)

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Insert(k, half); err != nil {
			t.Fatalf("Insert(%s) failed: %v", k, err)
		}
		if c.Weight() < 0 {
			t.Fatalf("Weight() went negative after Insert(%s): %d", k, c.Weight())
		}
	}

	if c.Len() != 2 {
		t.Errorf("Expected Len() 2, got %d", c.Len())
	}
	if c.Weight() != 2*half {
		t.Errorf("Expected Weight() %d, got %d", 2*half, c.Weight())
	}
	if !slices.Equal(c.Keys(), []string{"c", "b"}) {
		t.Errorf("Expected keys [c b], got %v", c.Keys())
	}
	checkInvariants(t, c)
}

// TestInsert_ReplaceAtMaxInt verifies replacing a maximal entry does not overflow
func TestInsert_ReplaceAtMaxInt(t *testing.T) {
	c := newIntCache(t, 1, math.MaxInt)
	_ = c.Insert("a", math.MaxInt)

	if err := c.Insert("a", math.MaxInt-1); err != nil {
		t.Fatalf("Insert(a) replacement failed: %v", err)
	}
	if c.Weight() != math.MaxInt-1 || c.Len() != 1 {
		t.Errorf("Expected len=1 weight=%d, got len=%d weight=%d", math.MaxInt-1, c.Len(), c.Weight())
	}
	checkInvariants(t, c)
}
