// typedcache_test.go: the generic TypedCache facade.
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "testing"

func TestTypedCache_PutGet(t *testing.T) {
	cache, err := NewTypedCache[string, int](NewConfiguration().WithMaximumSize(100))
	if err != nil {
		t.Fatalf("NewTypedCache failed: %v", err)
	}
	defer cache.Close()

	if err := cache.Put("k", 42); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	v, found, err := cache.Get("k")
	if err != nil || !found || v != 42 {
		t.Fatalf("expected found=true value=42, got found=%v value=%v err=%v", found, v, err)
	}
}

func TestTypedCache_GetMissReturnsZeroValue(t *testing.T) {
	cache, err := NewTypedCache[string, int](NewConfiguration().WithMaximumSize(100))
	if err != nil {
		t.Fatalf("NewTypedCache failed: %v", err)
	}
	defer cache.Close()

	v, found, err := cache.Get("missing")
	if err != nil || found || v != 0 {
		t.Fatalf("expected zero value on miss, got found=%v value=%v err=%v", found, v, err)
	}
}

func TestTypedCache_PutIfAbsent(t *testing.T) {
	cache, _ := NewTypedCache[string, string](NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	ok, err := cache.PutIfAbsent("k", "v1")
	if err != nil || !ok {
		t.Fatalf("expected first PutIfAbsent to install, ok=%v err=%v", ok, err)
	}
	ok, err = cache.PutIfAbsent("k", "v2")
	if err != nil || ok {
		t.Fatalf("expected second PutIfAbsent to be rejected, ok=%v err=%v", ok, err)
	}
}

func TestTypedCache_GetAndPut(t *testing.T) {
	cache, _ := NewTypedCache[string, int](NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	_, had, err := cache.GetAndPut("k", 1)
	if err != nil || had {
		t.Fatalf("expected no previous value, had=%v err=%v", had, err)
	}
	old, had, err := cache.GetAndPut("k", 2)
	if err != nil || !had || old != 1 {
		t.Fatalf("expected old=1, got old=%v had=%v err=%v", old, had, err)
	}
}

func TestTypedCache_RemoveAndGetAndRemove(t *testing.T) {
	cache, _ := NewTypedCache[string, int](NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	_ = cache.Put("k", 7)

	old, had, err := cache.GetAndRemove("k")
	if err != nil || !had || old != 7 {
		t.Fatalf("expected old=7, got old=%v had=%v err=%v", old, had, err)
	}

	ok, err := cache.Remove("k")
	if err != nil || ok {
		t.Fatalf("expected second removal to report absent, ok=%v err=%v", ok, err)
	}
}

func TestTypedCache_ContainsKeyAndClear(t *testing.T) {
	cache, _ := NewTypedCache[string, int](NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	_ = cache.Put("k", 1)
	exists, err := cache.ContainsKey("k")
	if err != nil || !exists {
		t.Fatalf("expected key to exist, exists=%v err=%v", exists, err)
	}

	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	exists, _ = cache.ContainsKey("k")
	if exists {
		t.Error("expected key to be gone after Clear")
	}
}

func TestTypedCache_PutAllGetAllRemoveAll(t *testing.T) {
	cache, _ := NewTypedCache[string, int](NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	if err := cache.PutAll(map[string]int{"a": 1, "b": 2, "c": 3}); err != nil {
		t.Fatalf("PutAll failed: %v", err)
	}

	got, err := cache.GetAll([]string{"a", "b", "missing"})
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) != 2 || got["a"] != 1 || got["b"] != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}

	removed, err := cache.RemoveAll([]string{"a", "b"})
	if err != nil || removed != 2 {
		t.Fatalf("expected 2 removed, got %d err=%v", removed, err)
	}
}

func TestTypedCache_UnderlyingExposesRawCache(t *testing.T) {
	cache, _ := NewTypedCache[string, int](NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	_ = cache.Put("k", 1)
	raw := cache.Underlying()
	v, found, err := raw.Get("k")
	if err != nil || !found || v != 1 {
		t.Fatalf("expected the underlying cache to see the same entry, found=%v value=%v err=%v", found, v, err)
	}
}

func TestTypedCache_InvalidConfigurationReturnsError(t *testing.T) {
	_, err := NewTypedCache[string, int](NewConfiguration().WithMaximumWeight(10, nil))
	if !IsConfigurationError(err) {
		t.Fatalf("expected a configuration error, got %v", err)
	}
}

func TestTypedCache_Statistics(t *testing.T) {
	cache, _ := NewTypedCache[string, int](NewConfiguration().WithMaximumSize(100).WithStatisticsEnabled(true))
	defer cache.Close()

	_ = cache.Put("k", 1)
	_, _, _ = cache.Get("k")

	stats := cache.GetStatistics()
	if stats.CachePuts() != 1 || stats.CacheHits() != 1 {
		t.Errorf("expected 1 put and 1 hit, got puts=%d hits=%d", stats.CachePuts(), stats.CacheHits())
	}
}
