// store.go: key index over the recency arena
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

// cacheStore maps each live key to the arena slot holding its entry.
// The arena owns the key and value; the index never aliases into it.
type cacheStore[K comparable] struct {
	index map[K]int32
}

func newCacheStore[K comparable](sizeHint int) cacheStore[K] {
	if sizeHint > maxPreallocatedSlots {
		sizeHint = maxPreallocatedSlots
	}
	return cacheStore[K]{index: make(map[K]int32, sizeHint)}
}

func (s *cacheStore[K]) lookup(key K) (int32, bool) {
	slot, ok := s.index[key]
	return slot, ok
}

// insert registers key. The caller guarantees the key is not present.
func (s *cacheStore[K]) insert(key K, slot int32) {
	s.index[key] = slot
}

// remove forgets key and hands its slot back. The caller detaches the slot
// from the recency list.
func (s *cacheStore[K]) remove(key K) (int32, bool) {
	slot, ok := s.index[key]
	if ok {
		delete(s.index, key)
	}
	return slot, ok
}

func (s *cacheStore[K]) len() int {
	return len(s.index)
}

func (s *cacheStore[K]) reset() {
	clear(s.index)
}
