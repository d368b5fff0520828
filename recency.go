// recency.go: arena-backed recency list
//
// Entries live in a growable slice and link to each other by slot index.
// Slot 0 is the root sentinel: root.next is the most recently used entry and
// root.prev the least recently used one. The sentinel only ever holds zero
// values and is never handed out as data.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

const (
	// rootSlot is the sentinel bounding the list on both sides
	rootSlot int32 = 0

	// unattached marks the links of a node that is not in the list
	unattached int32 = -1

	// maxPreallocatedSlots caps the initial arena size
	maxPreallocatedSlots = 1024
)

// node is one arena slot. It owns the key, the value and the value's weight.
type node[K comparable, V any] struct {
	key    K
	value  V
	weight int
	prev   int32
	next   int32
}

// recencyList keeps live entries ordered from most to least recently used.
// Freed slots are recycled through a free list.
type recencyList[K comparable, V any] struct {
	nodes    []node[K, V]
	free     []int32
	attached int
}

func newRecencyList[K comparable, V any](sizeHint int) *recencyList[K, V] {
	if sizeHint > maxPreallocatedSlots {
		sizeHint = maxPreallocatedSlots
	}
	if sizeHint < 0 {
		sizeHint = 0
	}
	l := &recencyList[K, V]{
		nodes: make([]node[K, V], 1, sizeHint+1),
	}
	l.nodes[rootSlot].prev = rootSlot
	l.nodes[rootSlot].next = rootSlot
	return l
}

// alloc stores a new unattached node and returns its slot.
func (l *recencyList[K, V]) alloc(key K, value V, weight int) int32 {
	n := node[K, V]{
		key:    key,
		value:  value,
		weight: weight,
		prev:   unattached,
		next:   unattached,
	}
	if last := len(l.free) - 1; last >= 0 {
		slot := l.free[last]
		l.free = l.free[:last]
		l.nodes[slot] = n
		return slot
	}
	l.nodes = append(l.nodes, n)
	return int32(len(l.nodes) - 1) // #nosec G115 - bounded by the number of live entries
}

// release returns a detached slot to the free list, dropping its key and value.
func (l *recencyList[K, V]) release(slot int32) {
	l.nodes[slot] = node[K, V]{prev: unattached, next: unattached}
	l.free = append(l.free, slot)
}

// at returns the node stored in slot. The pointer is valid until the next alloc.
func (l *recencyList[K, V]) at(slot int32) *node[K, V] {
	return &l.nodes[slot]
}

// attachAtHead links slot right after the root, making it the most recently used.
func (l *recencyList[K, V]) attachAtHead(slot int32) {
	first := l.nodes[rootSlot].next
	n := &l.nodes[slot]
	n.prev = rootSlot
	n.next = first
	l.nodes[first].prev = slot
	l.nodes[rootSlot].next = slot
	l.attached++
}

// detach splices slot out of the list by relinking its neighbours.
func (l *recencyList[K, V]) detach(slot int32) {
	n := &l.nodes[slot]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	n.prev = unattached
	n.next = unattached
	l.attached--
}

// promote moves slot to the head. No-op when it is already there.
func (l *recencyList[K, V]) promote(slot int32) {
	if l.nodes[rootSlot].next == slot {
		return
	}
	l.detach(slot)
	l.attachAtHead(slot)
}

// head returns the most recently used slot, or rootSlot when empty.
func (l *recencyList[K, V]) head() int32 {
	return l.nodes[rootSlot].next
}

// tail returns the least recently used slot, or rootSlot when empty.
// Eviction only calls it while at least one entry is live.
func (l *recencyList[K, V]) tail() int32 {
	return l.nodes[rootSlot].prev
}

// next returns the slot following slot towards the tail.
func (l *recencyList[K, V]) next(slot int32) int32 {
	return l.nodes[slot].next
}

// prev returns the slot preceding slot towards the head.
func (l *recencyList[K, V]) prev(slot int32) int32 {
	return l.nodes[slot].prev
}

func (l *recencyList[K, V]) len() int {
	return l.attached
}

// reset drops every node. Only the sentinel survives.
func (l *recencyList[K, V]) reset() {
	clear(l.nodes)
	l.nodes = l.nodes[:1]
	l.nodes[rootSlot].prev = rootSlot
	l.nodes[rootSlot].next = rootSlot
	l.free = l.free[:0]
	l.attached = 0
}
