// cache_loadall_test.go: bulk asynchronous loading via LoadAll.
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"sync"
	"testing"
)

type mapLoader struct {
	data map[interface{}]interface{}
}

func (l *mapLoader) Load(key interface{}) (interface{}, bool, error) {
	v, found := l.data[key]
	return v, found, nil
}

func (l *mapLoader) LoadAll(keys []interface{}) (map[interface{}]interface{}, error) {
	out := make(map[interface{}]interface{})
	for _, k := range keys {
		if v, found := l.data[k]; found {
			out[k] = v
		}
	}
	return out, nil
}

func TestCache_LoadAll_WithoutReadThroughFails(t *testing.T) {
	cache, _ := newTestCache(NewConfiguration().WithMaximumSize(100))
	defer cache.Close()

	err := cache.LoadAll([]interface{}{"a"}, false, nil)
	if !IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCache_LoadAll_InstallsLoadedEntries(t *testing.T) {
	loader := &mapLoader{data: map[interface{}]interface{}{"a": 1, "b": 2, "c": 3}}
	cache, _ := newTestCache(NewConfiguration().WithMaximumSize(100).WithReadThrough(loader))
	defer cache.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	var completionErr error
	listener := NewCompletionListener(func() { wg.Done() }, func(err error) {
		completionErr = err
		wg.Done()
	})

	if err := cache.LoadAll([]interface{}{"a", "b", "missing"}, false, listener); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	wg.Wait()

	if completionErr != nil {
		t.Fatalf("unexpected completion error: %v", completionErr)
	}

	v, found, _ := cache.Get("a")
	if !found || v != 1 {
		t.Errorf("expected a=1 to be installed, found=%v value=%v", found, v)
	}
	v, found, _ = cache.Get("b")
	if !found || v != 2 {
		t.Errorf("expected b=2 to be installed, found=%v value=%v", found, v)
	}
	_, found, _ = cache.Get("missing")
	if found {
		t.Error("expected missing key to stay absent")
	}
}

func TestCache_LoadAll_SkipsExistingEntriesByDefault(t *testing.T) {
	loader := &mapLoader{data: map[interface{}]interface{}{"a": "fromLoader"}}
	cache, _ := newTestCache(NewConfiguration().WithMaximumSize(100).WithReadThrough(loader))
	defer cache.Close()

	_ = cache.Put("a", "alreadyHere")

	var wg sync.WaitGroup
	wg.Add(1)
	listener := NewCompletionListener(func() { wg.Done() }, func(err error) { wg.Done() })

	if err := cache.LoadAll([]interface{}{"a"}, false, listener); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	wg.Wait()

	v, _, _ := cache.Get("a")
	if v != "alreadyHere" {
		t.Errorf("expected existing value to survive since replaceExisting=false, got %v", v)
	}
}

func TestCache_LoadAll_ReplaceExistingOverwrites(t *testing.T) {
	loader := &mapLoader{data: map[interface{}]interface{}{"a": "fromLoader"}}
	cache, _ := newTestCache(NewConfiguration().WithMaximumSize(100).WithReadThrough(loader))
	defer cache.Close()

	_ = cache.Put("a", "alreadyHere")

	var wg sync.WaitGroup
	wg.Add(1)
	listener := NewCompletionListener(func() { wg.Done() }, func(err error) { wg.Done() })

	if err := cache.LoadAll([]interface{}{"a"}, true, listener); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	wg.Wait()

	v, _, _ := cache.Get("a")
	if v != "fromLoader" {
		t.Errorf("expected replaceExisting=true to overwrite, got %v", v)
	}
}

func TestCache_LoadAll_NilKeyRejected(t *testing.T) {
	loader := &mapLoader{data: map[interface{}]interface{}{}}
	cache, _ := newTestCache(NewConfiguration().WithMaximumSize(100).WithReadThrough(loader))
	defer cache.Close()

	err := cache.LoadAll([]interface{}{nil}, false, nil)
	if !IsNullKey(err) {
		t.Fatalf("expected null key error, got %v", err)
	}
}
