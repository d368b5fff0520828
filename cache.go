// cache.go: weight-bounded LRU cache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

import "iter"

// WeightedCache is an LRU cache whose capacity is a total weight.
// K must be comparable (can be used as map key).
// V can be any type; its cost is given by the cache's WeightFunc.
//
// Invariants, holding between any two calls:
//   - Weight() is the sum of the weights of all live values
//   - Weight() <= MaxTotalWeight()
//   - the key index and the recency list hold the same keys, once each
//
// A WeightedCache is not safe for concurrent use.
type WeightedCache[K comparable, V any] struct {
	// Limits (immutable after creation)
	maxItemWeight  int
	maxTotalWeight int

	currentWeight int
	weigh         WeightFunc[V]

	store cacheStore[K]
	list  *recencyList[K, V]

	cfg          Config
	logger       Logger
	metrics      MetricsCollector
	timeProvider TimeProvider
	onEvict      func(key interface{}, value interface{})

	// Statistics counters
	hits       uint64
	misses     uint64
	inserts    uint64
	updates    uint64
	removes    uint64
	evictions  uint64
	rejections uint64
}

// New creates a cache holding up to maxCount values of maxItemWeight each,
// that is a total weight of maxCount*maxItemWeight.
//
// Returns a PONDUS_NONSENSE_PARAMETERS error if either limit is not positive
// or weigh is nil.
//
// Example:
//
//	cache, err := pondus.New[string, string](5, 20, pondus.StringWeight)
func New[K comparable, V any](maxCount, maxItemWeight int, weigh WeightFunc[V]) (*WeightedCache[K, V], error) {
	cfg := DefaultConfig()
	cfg.MaxCount = maxCount
	cfg.MaxItemWeight = maxItemWeight
	return NewWithConfig[K](cfg, weigh)
}

// NewWeighted creates a cache for values implementing Weighted.
func NewWeighted[K comparable, V Weighted](maxCount, maxItemWeight int) (*WeightedCache[K, V], error) {
	return New[K](maxCount, maxItemWeight, WeightOf[V])
}

// NewWithConfig creates a cache from a full configuration.
// cfg is validated (see Config.Validate) before use.
func NewWithConfig[K comparable, V any](cfg Config, weigh WeightFunc[V]) (*WeightedCache[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if weigh == nil {
		return nil, NewErrNonsenseParameters(cfg.MaxCount, cfg.MaxItemWeight, reasonNilWeightFunc)
	}

	c := &WeightedCache[K, V]{
		maxItemWeight:  cfg.MaxItemWeight,
		maxTotalWeight: cfg.MaxTotalWeight(),
		weigh:          weigh,
		store:          newCacheStore[K](cfg.MaxCount),
		list:           newRecencyList[K, V](cfg.MaxCount),
		cfg:            cfg,
		logger:         cfg.Logger,
		metrics:        cfg.MetricsCollector,
		timeProvider:   cfg.TimeProvider,
		onEvict:        cfg.OnEvict,
	}

	c.logger.Info("pondus: cache created",
		"max_count", cfg.MaxCount,
		"max_item_weight", c.maxItemWeight,
		"max_total_weight", c.maxTotalWeight)

	return c, nil
}

// WillAccept reports whether value is light enough to be inserted.
// It does not look at the current content: any acceptable value fits once
// enough older entries are evicted.
func (c *WeightedCache[K, V]) WillAccept(value V) bool {
	return weigh(c.weigh, value) <= c.maxItemWeight
}

// Insert stores value under key, evicting least recently inserted entries
// until it fits.
//
// If key is already present its value is replaced in place, the old weight is
// released, and the entry becomes the most recently used. The entry count is
// unchanged in that case.
//
// Returns a PONDUS_EXCEEDS_MAXIMUM_WEIGHT error, leaving the cache untouched,
// if value weighs more than MaxItemWeight.
func (c *WeightedCache[K, V]) Insert(key K, value V) error {
	start := c.timeProvider.Now()

	weight := weigh(c.weigh, value)
	if weight > c.maxItemWeight {
		c.rejections++
		c.metrics.RecordRejection(weight)
		c.logger.Debug("pondus: rejected oversized value",
			"key", key,
			"weight", weight,
			"max_item_weight", c.maxItemWeight)
		return NewErrExceedsMaximumWeight(weight, c.maxItemWeight)
	}

	if slot, found := c.store.lookup(key); found {
		old := c.list.at(slot).weight
		c.list.promote(slot)
		c.makeRoom(weight, old)

		n := c.list.at(slot)
		n.value = value
		n.weight = weight
		c.currentWeight = c.currentWeight - old + weight
		c.updates++
	} else {
		c.makeRoom(weight, 0)
		c.place(key, value, weight)
		c.inserts++
	}

	c.metrics.RecordInsert(c.timeProvider.Now()-start, weight)
	return nil
}

// Get returns the value stored under key.
//
// Get does not change recency: reading an entry does not protect it from
// eviction. Only Insert does.
func (c *WeightedCache[K, V]) Get(key K) (value V, found bool) {
	start := c.timeProvider.Now()

	slot, found := c.store.lookup(key)
	if found {
		value = c.list.at(slot).value
		c.hits++
	} else {
		c.misses++
	}

	c.metrics.RecordGet(c.timeProvider.Now()-start, found)
	return value, found
}

// Remove deletes key and returns the value it held.
func (c *WeightedCache[K, V]) Remove(key K) (value V, found bool) {
	start := c.timeProvider.Now()

	slot, found := c.store.remove(key)
	if !found {
		return value, false
	}

	n := c.list.at(slot)
	value = n.value
	c.currentWeight -= n.weight
	c.list.detach(slot)
	c.list.release(slot)
	c.removes++

	c.metrics.RecordRemove(c.timeProvider.Now() - start)
	return value, true
}

// ContainsKey reports whether key is present, without touching recency.
func (c *WeightedCache[K, V]) ContainsKey(key K) bool {
	_, found := c.store.lookup(key)
	return found
}

// Len returns the number of entries.
func (c *WeightedCache[K, V]) Len() int {
	return c.store.len()
}

// IsEmpty reports whether the cache holds no entries.
func (c *WeightedCache[K, V]) IsEmpty() bool {
	return c.store.len() == 0
}

// Weight returns the current total weight.
func (c *WeightedCache[K, V]) Weight() int {
	return c.currentWeight
}

// MaxItemWeight returns the heaviest value the cache accepts.
func (c *WeightedCache[K, V]) MaxItemWeight() int {
	return c.maxItemWeight
}

// MaxTotalWeight returns the weight budget, MaxCount * MaxItemWeight.
func (c *WeightedCache[K, V]) MaxTotalWeight() int {
	return c.maxTotalWeight
}

// Oldest returns the entry that the next eviction would remove.
func (c *WeightedCache[K, V]) Oldest() (key K, value V, found bool) {
	slot := c.list.tail()
	if slot == rootSlot {
		return key, value, false
	}
	n := c.list.at(slot)
	return n.key, n.value, true
}

// Keys returns the keys from most to least recently inserted.
func (c *WeightedCache[K, V]) Keys() []K {
	keys := make([]K, 0, c.list.len())
	for slot := c.list.head(); slot != rootSlot; slot = c.list.next(slot) {
		keys = append(keys, c.list.at(slot).key)
	}
	return keys
}

// All iterates over entries from most to least recently inserted.
// The cache must not be modified during iteration.
func (c *WeightedCache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for slot := c.list.head(); slot != rootSlot; slot = c.list.next(slot) {
			n := c.list.at(slot)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Clear removes every entry and resets statistics. OnEvict is not called.
func (c *WeightedCache[K, V]) Clear() {
	c.store.reset()
	c.list.reset()
	c.currentWeight = 0

	c.hits = 0
	c.misses = 0
	c.inserts = 0
	c.updates = 0
	c.removes = 0
	c.evictions = 0
	c.rejections = 0
}

// Stats returns cache statistics.
func (c *WeightedCache[K, V]) Stats() CacheStats {
	return CacheStats{
		Hits:           c.hits,
		Misses:         c.misses,
		Inserts:        c.inserts,
		Updates:        c.updates,
		Removes:        c.removes,
		Evictions:      c.evictions,
		Rejections:     c.rejections,
		Len:            c.store.len(),
		Weight:         c.currentWeight,
		MaxItemWeight:  c.maxItemWeight,
		MaxTotalWeight: c.maxTotalWeight,
	}
}

// Logger returns the logger the cache reports to.
func (c *WeightedCache[K, V]) Logger() Logger {
	return c.logger
}

// Resized builds a new cache with the limits of cfg and the same weight
// function, holding the newest entries of c that fit the new budget in their
// current recency order. Entries heavier than the new item limit are dropped;
// of the rest, the oldest ones that no longer fit are left out, exactly as if
// they had been evicted.
//
// Nothing is evicted along the way: OnEvict and the MetricsCollector see no
// events from the copy, and the new cache starts with zeroed statistics.
//
// Unset optional fields of cfg (Logger, MetricsCollector, TimeProvider,
// OnEvict) are inherited from c. The receiver is left unchanged.
func (c *WeightedCache[K, V]) Resized(cfg Config) (*WeightedCache[K, V], error) {
	if cfg.Logger == nil {
		cfg.Logger = c.cfg.Logger
	}
	if cfg.MetricsCollector == nil {
		cfg.MetricsCollector = c.cfg.MetricsCollector
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = c.cfg.TimeProvider
	}
	if cfg.OnEvict == nil {
		cfg.OnEvict = c.cfg.OnEvict
	}

	next, err := NewWithConfig[K](cfg, c.weigh)
	if err != nil {
		return nil, err
	}

	// Walk from the newest entry while the budget allows.
	budget := next.maxTotalWeight
	kept := make([]int32, 0, c.list.len())
	dropped, trimmed := 0, 0
	slot := c.list.head()
	for ; slot != rootSlot; slot = c.list.next(slot) {
		n := c.list.at(slot)
		if n.weight > next.maxItemWeight {
			dropped++
			continue
		}
		if n.weight > budget {
			break
		}
		budget -= n.weight
		kept = append(kept, slot)
	}
	for ; slot != rootSlot; slot = c.list.next(slot) {
		trimmed++
	}

	for i := len(kept) - 1; i >= 0; i-- {
		n := c.list.at(kept[i])
		next.place(n.key, n.value, n.weight)
	}

	if dropped > 0 || trimmed > 0 {
		next.logger.Warn("pondus: entries dropped while resizing",
			"dropped", dropped,
			"trimmed", trimmed,
			"max_item_weight", next.maxItemWeight,
			"max_total_weight", next.maxTotalWeight)
	}
	return next, nil
}

// place links a new entry at the head. The caller has made room and
// knows the key is absent.
func (c *WeightedCache[K, V]) place(key K, value V, weight int) {
	slot := c.list.alloc(key, value, weight)
	c.list.attachAtHead(slot)
	c.store.insert(key, slot)
	c.currentWeight += weight
}
