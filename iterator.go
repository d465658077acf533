// iterator.go: lazy-expiring iteration over live entries
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Iterator walks the cache's live entries, silently skipping and
// removing any entry discovered to be expired along the way (emitting an
// Expired event and counting an eviction; unlike a lazy Get expiry, no
// miss is counted).
type Iterator struct {
	cache   *Cache
	keys    []interface{}
	pos     int
	started bool

	curKey   interface{}
	curValue interface{}
	haveCur  bool
}

func newIterator(c *Cache) *Iterator {
	it := &Iterator{cache: c}
	c.store.forEach(func(key interface{}, _ Expirable) bool {
		it.keys = append(it.keys, key)
		return true
	})
	return it
}

// HasNext advances past any expired entries and reports whether a live
// entry remains.
func (it *Iterator) HasNext() bool {
	if it.haveCur {
		return true
	}
	now := it.cache.now()
	for it.pos < len(it.keys) {
		key := it.keys[it.pos]
		it.pos++

		e, exists := it.cache.store.get(key)
		if !exists {
			continue
		}
		if e.isExpired(now) {
			it.cache.expireEntry(key)
			continue
		}
		it.curKey = key
		it.curValue = e.value
		it.haveCur = true
		return true
	}
	return false
}

// Next returns the current entry's key and value and advances the
// iterator. Next panics if HasNext was not called or returned false —
// mirroring the contract's iterator discipline.
func (it *Iterator) Next() (key, value interface{}, err error) {
	if !it.haveCur {
		if !it.HasNext() {
			panic("xanthos: Iterator.Next called with no remaining entries")
		}
	}
	k, v := it.curKey, it.curValue
	it.haveCur = false

	out, cerr := it.cache.copyOut(v)
	if cerr != nil {
		return k, nil, cerr
	}
	return k, out, nil
}

// Remove deletes the entry most recently returned by Next, if it is
// still present and still live.
func (it *Iterator) Remove() error {
	if it.curKey == nil {
		return nil
	}
	_, err := it.cache.GetAndRemove(it.curKey)
	return err
}
