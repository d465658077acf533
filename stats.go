// stats.go: hit/miss/put/removal/eviction accounting
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "sync/atomic"

// Statistics exposes a live, atomically-updated view of cache activity.
// All counters are cumulative since the cache was created or last reset.
// When statistics are disabled every recording method is a no-op, so the
// cache never has to branch on the enabled flag at each call site.
type Statistics struct {
	enabled int32

	hits      int64
	misses    int64
	puts      int64
	removals  int64
	evictions int64
}

func newStatistics(enabled bool) *Statistics {
	s := &Statistics{}
	if enabled {
		atomic.StoreInt32(&s.enabled, 1)
	}
	return s
}

// Enabled reports whether statistics are currently being recorded.
func (s *Statistics) Enabled() bool {
	return atomic.LoadInt32(&s.enabled) == 1
}

// SetEnabled turns recording on or off without resetting the counters
// already accumulated.
func (s *Statistics) SetEnabled(enabled bool) {
	if enabled {
		atomic.StoreInt32(&s.enabled, 1)
	} else {
		atomic.StoreInt32(&s.enabled, 0)
	}
}

func (s *Statistics) recordHit() {
	if s.Enabled() {
		atomic.AddInt64(&s.hits, 1)
	}
}

func (s *Statistics) recordMiss() {
	if s.Enabled() {
		atomic.AddInt64(&s.misses, 1)
	}
}

func (s *Statistics) recordPuts(n int64) {
	if n > 0 && s.Enabled() {
		atomic.AddInt64(&s.puts, n)
	}
}

func (s *Statistics) recordRemovals(n int64) {
	if n > 0 && s.Enabled() {
		atomic.AddInt64(&s.removals, n)
	}
}

func (s *Statistics) recordEvictions(n int64) {
	if n > 0 && s.Enabled() {
		atomic.AddInt64(&s.evictions, n)
	}
}

// CacheHits is the cumulative number of Get-family calls that found a
// live, non-expired entry.
func (s *Statistics) CacheHits() int64 { return atomic.LoadInt64(&s.hits) }

// CacheMisses is the cumulative number of Get-family calls that found no
// live entry, including entries discarded by lazy expiry.
func (s *Statistics) CacheMisses() int64 { return atomic.LoadInt64(&s.misses) }

// CachePuts is the cumulative number of entries installed by a put-family
// operation, including those applied by read-through loads.
func (s *Statistics) CachePuts() int64 { return atomic.LoadInt64(&s.puts) }

// CacheRemovals is the cumulative number of entries explicitly removed.
func (s *Statistics) CacheRemovals() int64 { return atomic.LoadInt64(&s.removals) }

// CacheEvictions is the cumulative number of entries discarded, whether
// by the backend store's capacity policy or found expired on access.
func (s *Statistics) CacheEvictions() int64 { return atomic.LoadInt64(&s.evictions) }

// CacheGets is the total number of Get-family calls, hit or miss.
func (s *Statistics) CacheGets() int64 { return s.CacheHits() + s.CacheMisses() }

// CacheHitPercentage is the hit ratio over [0, 100], or 0 when no gets
// have been recorded yet.
func (s *Statistics) CacheHitPercentage() float64 {
	gets := s.CacheGets()
	if gets == 0 {
		return 0
	}
	return 100 * float64(s.CacheHits()) / float64(gets)
}

// CacheMissPercentage is the miss ratio over [0, 100], or 0 when no gets
// have been recorded yet.
func (s *Statistics) CacheMissPercentage() float64 {
	gets := s.CacheGets()
	if gets == 0 {
		return 0
	}
	return 100 * float64(s.CacheMisses()) / float64(gets)
}

// Clear resets every counter to zero without changing the enabled flag.
func (s *Statistics) Clear() {
	atomic.StoreInt64(&s.hits, 0)
	atomic.StoreInt64(&s.misses, 0)
	atomic.StoreInt64(&s.puts, 0)
	atomic.StoreInt64(&s.removals, 0)
	atomic.StoreInt64(&s.evictions, 0)
}
