// iterator_test.go: lazy-expiring iteration over live entries.
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestIterator_VisitsAllLiveEntries(t *testing.T) {
	cache, _ := newTestCache(NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	want := map[interface{}]interface{}{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		_ = cache.Put(k, v)
	}

	got := map[interface{}]interface{}{}
	it := cache.Iterator()
	for it.HasNext() {
		k, v, err := it.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got[k] = v
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(got), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("key %v: got %v, want %v", k, got[k], v)
		}
	}
}

func TestIterator_EmptyCache(t *testing.T) {
	cache, _ := newTestCache(NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	it := cache.Iterator()
	if it.HasNext() {
		t.Fatal("expected no entries in an empty cache")
	}
}

func TestIterator_NextPanicsWithNoRemainingEntries(t *testing.T) {
	cache, _ := newTestCache(NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	it := cache.Iterator()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Next to panic with no remaining entries")
		}
	}()
	_, _, _ = it.Next()
}

// Scenario: an iterator must silently skip expired entries, lazily
// expiring them (Expired event + statistics) exactly as a Get would,
// rather than surfacing them as live.
func TestIterator_SkipsAndExpiresStaleEntries(t *testing.T) {
	cache, clock := newTestCache(NewConfiguration().
		WithMaximumSize(100).
		WithExpiryPolicy(CreatedExpiryPolicy(10 * time.Millisecond)).
		WithStatisticsEnabled(true))
	defer cache.Close()

	_ = cache.Put("stale", "old")

	var expiredEvents int32
	cache.RegisterListener(ListenerConfig{
		Listener:    expiredListenerFunc(func(ev CacheEntryEvent) { atomic.AddInt32(&expiredEvents, 1) }),
		Synchronous: true,
	})

	clock.advance(20 * time.Millisecond)

	_ = cache.Put("fresh", "new")
	// fresh was just created under the same ExpiryPolicy; it is live
	// relative to the clock at creation time, while stale was created
	// 20ms before the clock last advanced and so has already expired.

	it := cache.Iterator()
	seen := map[interface{}]interface{}{}
	for it.HasNext() {
		k, v, err := it.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		seen[k] = v
	}

	if _, found := seen["stale"]; found {
		t.Error("expected stale entry to be skipped by the iterator")
	}
	if seen["fresh"] != "new" {
		t.Errorf("expected fresh entry to survive, got %v", seen["fresh"])
	}
	if atomic.LoadInt32(&expiredEvents) != 1 {
		t.Errorf("expected exactly one Expired event from the iterator's lazy expiry, got %d", expiredEvents)
	}

	exists, _ := cache.ContainsKey("stale")
	if exists {
		t.Error("expected the iterator to have actually removed the stale entry from the cache")
	}
}

func TestIterator_Remove(t *testing.T) {
	cache, _ := newTestCache(NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	_ = cache.Put("a", 1)
	_ = cache.Put("b", 2)

	it := cache.Iterator()
	for it.HasNext() {
		k, _, _ := it.Next()
		if k == "a" {
			if err := it.Remove(); err != nil {
				t.Fatalf("Remove failed: %v", err)
			}
		}
	}

	aExists, _ := cache.ContainsKey("a")
	if aExists {
		t.Error("expected a to have been removed")
	}
	bExists, _ := cache.ContainsKey("b")
	if !bExists {
		t.Error("expected b to survive")
	}
}
