// evict.go: weight-driven LRU eviction
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

// makeRoom evicts least recently used entries until a value of candidate
// weight fits in the budget. replaced is the weight of the entry the insert
// will overwrite (0 for a new key); it is already accounted in
// currentWeight, so it is excluded rather than added on top.
//
// The caller has checked candidate <= maxItemWeight <= maxTotalWeight, so the
// loop ends at the latest when nothing else is left. An entry being replaced
// has been promoted to the head beforehand and is therefore never the victim.
// The budget is compared by subtraction: with limits near math.MaxInt,
// effective+candidate can overflow while maxTotalWeight-candidate cannot.
func (c *WeightedCache[K, V]) makeRoom(candidate, replaced int) {
	effective := c.currentWeight - replaced
	for effective > c.maxTotalWeight-candidate {
		slot := c.list.tail()
		if slot == rootSlot {
			return
		}
		effective -= c.evict(slot)
	}
}

// evict drops the entry in slot and returns its weight.
func (c *WeightedCache[K, V]) evict(slot int32) int {
	n := c.list.at(slot)
	key, value, weight := n.key, n.value, n.weight

	c.store.remove(key)
	c.list.detach(slot)
	c.list.release(slot)
	c.currentWeight -= weight

	c.evictions++
	c.metrics.RecordEviction(weight)
	c.logger.Debug("pondus: evicted entry",
		"key", key,
		"weight", weight,
		"current_weight", c.currentWeight)

	if c.onEvict != nil {
		c.onEvict(key, value)
	}
	return weight
}
