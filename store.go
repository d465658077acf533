// store.go: sharded concurrent backend store with size/weight-bounded
// eviction, sitting underneath the cache adapter
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"hash/maphash"
	"sync"
)

// Weigher computes the "size" of a value for weight-based capacity limits.
// When unset, the store falls back to counting entries (MaximumSize).
type Weigher func(key, value interface{}) int64

// computeAction is the net effect a compute callback wants applied to the
// slot it was given.
type computeAction int

const (
	actionKeep computeAction = iota
	actionPut
	actionDelete
)

// computeFunc is the store's sole mutation primitive. It receives the
// slot's current value (zero Expirable and exists=false on a miss) and
// decides what should happen to the slot. The store applies the decision
// atomically under the shard lock and returns whatever the callback
// chooses to report back to its caller. The callback runs with the shard
// lock held; Invoke's callback runs the entry processor, the CacheWriter
// and, through MutableEntry.GetValue, the CacheLoader inside it.
type computeFunc func(existing Expirable, exists bool) (result Expirable, action computeAction, out interface{})

type shard struct {
	mu      sync.Mutex
	entries map[interface{}]Expirable
	weight  int64
}

// store is the concurrent associative backend the cache adapter sits on
// top of. The adapter never reaches past this interface into shard
// internals — every mutation, including conditional ones, goes through
// compute so that decision and commit happen under the same lock.
type store struct {
	shards     []*shard
	shardMask  uint64
	seed       maphash.Seed
	weigher    Weigher
	maxWeight  int64
	maxEntries int64
	sketch     *frequencySketch
	onEvict    func(key interface{}, value Expirable)
}

func newStore(shardCount int, maxEntries, maxWeight int64, weigher Weigher, onEvict func(interface{}, Expirable)) *store {
	if shardCount <= 0 {
		shardCount = DefaultShardCount
	}
	shardCount = int(nextPowerOf2(shardCount))

	shards := make([]*shard, shardCount)
	for i := range shards {
		shards[i] = &shard{entries: make(map[interface{}]Expirable)}
	}

	sketchSize := int(maxEntries)
	if sketchSize <= 0 {
		sketchSize = DefaultMaxSize
	}

	return &store{
		shards:     shards,
		shardMask:  uint64(shardCount - 1),
		seed:       maphash.MakeSeed(),
		weigher:    weigher,
		maxWeight:  maxWeight,
		maxEntries: maxEntries,
		sketch:     newFrequencySketch(sketchSize),
		onEvict:    onEvict,
	}
}

func (s *store) hash(key interface{}) uint64 {
	var h maphash.Hash
	h.SetSeed(s.seed)
	_, _ = h.WriteString(fmt.Sprint(key))
	return h.Sum64()
}

func (s *store) shardFor(h uint64) *shard {
	return s.shards[h&s.shardMask]
}

// get returns the raw Expirable stored for key, with no expiry check and
// no copy applied — the adapter is responsible for both.
func (s *store) get(key interface{}) (Expirable, bool) {
	h := s.hash(key)
	sh := s.shardFor(h)

	sh.mu.Lock()
	e, ok := sh.entries[key]
	sh.mu.Unlock()

	if ok {
		s.sketch.increment(h)
	}
	return e, ok
}

// compute runs fn against the current slot for key under the shard lock
// and applies whatever action it chooses. After a put, if the shard is
// over capacity, it evicts sampled low-frequency keys, which may include
// the key just written. It returns whatever out value fn
// produced plus the prior (value, exists) for event/stat bookkeeping.
func (s *store) compute(key interface{}, fn computeFunc) (out interface{}, prevValue Expirable, prevExists bool) {
	h := s.hash(key)
	sh := s.shardFor(h)

	sh.mu.Lock()
	existing, exists := sh.entries[key]
	result, action, retVal := fn(existing, exists)

	switch action {
	case actionPut:
		var oldWeight int64
		if exists {
			oldWeight = s.weightOf(key, existing)
		}
		newWeight := s.weightOf(key, result)
		sh.entries[key] = result
		sh.weight += newWeight - oldWeight
	case actionDelete:
		if exists {
			sh.weight -= s.weightOf(key, existing)
			delete(sh.entries, key)
		}
	}
	sh.mu.Unlock()

	s.sketch.increment(h)

	if action == actionPut {
		s.evictIfNeeded(sh)
	}

	return retVal, existing, exists
}

func (s *store) weightOf(key interface{}, e Expirable) int64 {
	if s.weigher != nil {
		return s.weigher(key, e.value)
	}
	return 1
}

// evictIfNeeded drops entries from sh until it satisfies the configured
// capacity, preferring to evict whichever candidate the frequency sketch
// estimates is accessed least often — a single-shard approximation of
// W-TinyLFU admission, cheap enough to run inline after every put.
func (s *store) evictIfNeeded(sh *shard) {
	limit := s.perShardLimit()
	if limit <= 0 {
		return
	}

	for {
		sh.mu.Lock()
		if sh.weight <= limit {
			sh.mu.Unlock()
			return
		}

		var victimKey interface{}
		found := false
		const sampleSize = 5
		var bestFreq uint64
		i := 0
		for k := range sh.entries {
			f := s.sketch.estimate(s.hash(k))
			if !found || f < bestFreq {
				victimKey, bestFreq, found = k, f, true
			}
			i++
			if i >= sampleSize {
				break
			}
		}
		if !found {
			sh.mu.Unlock()
			return
		}

		victimValue := sh.entries[victimKey]
		sh.weight -= s.weightOf(victimKey, victimValue)
		delete(sh.entries, victimKey)
		sh.mu.Unlock()

		if s.onEvict != nil {
			s.onEvict(victimKey, victimValue)
		}
	}
}

func (s *store) perShardLimit() int64 {
	var total int64
	if s.maxWeight > 0 {
		total = s.maxWeight
	} else if s.maxEntries > 0 {
		total = s.maxEntries
	} else {
		return 0
	}
	per := total / int64(len(s.shards))
	if per < 1 {
		per = 1
	}
	return per
}

// length returns the total number of entries across all shards,
// including entries that have expired but have not yet been swept.
func (s *store) length() int64 {
	var n int64
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += int64(len(sh.entries))
		sh.mu.Unlock()
	}
	return n
}

// forEach visits every (key, value) pair in an unspecified order. fn may
// return false to stop the walk early. forEach takes a snapshot per shard
// before invoking fn so fn itself may call back into the store.
func (s *store) forEach(fn func(key interface{}, value Expirable) bool) {
	for _, sh := range s.shards {
		sh.mu.Lock()
		snapshot := make(map[interface{}]Expirable, len(sh.entries))
		for k, v := range sh.entries {
			snapshot[k] = v
		}
		sh.mu.Unlock()

		for k, v := range snapshot {
			if !fn(k, v) {
				return
			}
		}
	}
}

// clear removes every entry from every shard and returns how many were
// removed.
func (s *store) clear() int64 {
	var n int64
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += int64(len(sh.entries))
		sh.entries = make(map[interface{}]Expirable)
		sh.weight = 0
		sh.mu.Unlock()
	}
	return n
}
