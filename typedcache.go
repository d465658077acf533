// typedcache.go: compile-time type-safe facade over Cache
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// TypedCache wraps a Cache behind a generic API so callers never need to
// type-assert values coming back out of it. It delegates every operation
// to the underlying Cache, so all the same invariants (expiry, by-value
// semantics, statistics, events, read/write-through, entry processors)
// apply unchanged.
type TypedCache[K comparable, V any] struct {
	cache *Cache
}

// NewTypedCache builds a TypedCache backed by a Cache constructed from cfg.
func NewTypedCache[K comparable, V any](cfg *Configuration) (*TypedCache[K, V], error) {
	c, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &TypedCache[K, V]{cache: c}, nil
}

// Underlying returns the generic, interface{}-keyed Cache this TypedCache
// wraps, for callers that need an operation TypedCache does not expose
// (such as Invoke or Iterator).
func (t *TypedCache[K, V]) Underlying() *Cache { return t.cache }

// Get returns the value for key.
func (t *TypedCache[K, V]) Get(key K) (V, bool, error) {
	var zero V
	v, found, err := t.cache.Get(key)
	if err != nil || !found {
		return zero, found, err
	}
	return v.(V), true, nil
}

// Put creates or updates the mapping for key.
func (t *TypedCache[K, V]) Put(key K, value V) error {
	return t.cache.Put(key, value)
}

// PutIfAbsent creates the mapping for key only if absent.
func (t *TypedCache[K, V]) PutIfAbsent(key K, value V) (bool, error) {
	return t.cache.PutIfAbsent(key, value)
}

// GetAndPut associates key with value, returning the previous value.
func (t *TypedCache[K, V]) GetAndPut(key K, value V) (V, bool, error) {
	var zero V
	old, had, err := t.cache.GetAndPut(key, value)
	if err != nil || !had {
		return zero, had, err
	}
	return old.(V), true, nil
}

// Remove deletes the mapping for key.
func (t *TypedCache[K, V]) Remove(key K) (bool, error) {
	return t.cache.Remove(key)
}

// GetAndRemove removes key's mapping, returning its previous value.
func (t *TypedCache[K, V]) GetAndRemove(key K) (V, bool, error) {
	var zero V
	old, had, err := t.cache.GetAndRemove(key)
	if err != nil || !had {
		return zero, had, err
	}
	return old.(V), true, nil
}

// ContainsKey reports whether key maps to a live entry.
func (t *TypedCache[K, V]) ContainsKey(key K) (bool, error) {
	return t.cache.ContainsKey(key)
}

// Clear removes every entry.
func (t *TypedCache[K, V]) Clear() error { return t.cache.Clear() }

// Close releases the underlying cache's resources.
func (t *TypedCache[K, V]) Close() error { return t.cache.Close() }

// GetStatistics returns the underlying cache's Statistics.
func (t *TypedCache[K, V]) GetStatistics() *Statistics { return t.cache.GetStatistics() }

// PutAll creates or updates the mappings in entries.
func (t *TypedCache[K, V]) PutAll(entries map[K]V) error {
	raw := make(map[interface{}]interface{}, len(entries))
	for k, v := range entries {
		raw[k] = v
	}
	return t.cache.PutAll(raw)
}

// GetAll returns the live values mapped for keys.
func (t *TypedCache[K, V]) GetAll(keys []K) (map[K]V, error) {
	rawKeys := make([]interface{}, len(keys))
	for i, k := range keys {
		rawKeys[i] = k
	}
	raw, err := t.cache.GetAll(rawKeys)
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, len(raw))
	for k, v := range raw {
		out[k.(K)] = v.(V)
	}
	return out, nil
}

// RemoveAll deletes the mappings for keys, returning how many existed.
func (t *TypedCache[K, V]) RemoveAll(keys []K) (int64, error) {
	rawKeys := make([]interface{}, len(keys))
	for i, k := range keys {
		rawKeys[i] = k
	}
	return t.cache.RemoveAll(rawKeys)
}
