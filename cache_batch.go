// cache_batch.go: multi-key operations
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// PutAll creates or updates the mappings in entries. When write-through
// is enabled, the writer's WriteAll is called first; entries it reports
// as failed are skipped, and the remaining entries still commit — a
// partial failure never blocks the entries that did succeed.
func (c *Cache) PutAll(entries map[interface{}]interface{}) error {
	if err := c.checkOpen("PutAll"); err != nil {
		return err
	}
	for k, v := range entries {
		if k == nil {
			return NewErrNullKey("PutAll")
		}
		if v == nil {
			return NewErrNullValue("PutAll")
		}
	}

	toWrite := make(map[interface{}]interface{}, len(entries))
	copiedValues := make(map[interface{}]interface{}, len(entries))
	for k, v := range entries {
		copied, err := c.copyIn(v)
		if err != nil {
			return err
		}
		copiedValues[k] = copied
		toWrite[k] = v
	}

	failed := map[interface{}]bool{}
	if c.writer != nil {
		failedKeys, err := c.writer.WriteAll(toWrite)
		for _, k := range failedKeys {
			failed[k] = true
		}
		if err != nil && len(failedKeys) == 0 {
			// The writer failed wholesale without identifying individual
			// keys: treat every entry as failed.
			for k := range entries {
				failed[k] = true
			}
		}
	}

	now := c.now()
	var puts int64
	for k, copied := range copiedValues {
		if failed[k] {
			continue
		}
		type outcome struct {
			created bool
			old     interface{}
		}
		outRaw, _, _ := c.store.compute(k, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
			live := exists && !existing.isExpired(now)
			var expireAt int64
			if live {
				expireAt = c.expiryCalc.forUpdate(now, existing.expireAt)
			} else {
				expireAt = c.expiryCalc.forCreation(now)
			}
			out := outcome{created: !live}
			if live {
				out.old = existing.value
			}
			return newExpirable(copied, expireAt), actionPut, out
		})
		out := outRaw.(outcome)
		puts++
		if out.created {
			c.events.dispatch(CacheEntryEvent{Type: Created, Key: k, Value: copied})
		} else {
			c.events.dispatch(CacheEntryEvent{Type: Updated, Key: k, Value: copied, OldValue: out.old})
		}
	}
	c.stats.recordPuts(puts)

	if len(failed) > 0 {
		failedKeys := make([]interface{}, 0, len(failed))
		for k := range failed {
			failedKeys = append(failedKeys, k)
		}
		return NewErrWriterFailedBatch(failedKeys, nil)
	}
	return nil
}

// GetAll returns the live values mapped for keys, loading through the
// configured CacheLoader for any key that misses when read-through is
// enabled. Keys with no value (and, on read-through, no value in the
// system of record) are simply absent from the result.
func (c *Cache) GetAll(keys []interface{}) (map[interface{}]interface{}, error) {
	if err := c.checkOpen("GetAll"); err != nil {
		return nil, err
	}

	result := make(map[interface{}]interface{}, len(keys))

	for _, k := range keys {
		if k == nil {
			return nil, NewErrNullKey("GetAll")
		}
		// Each Get call already performs read-through individually; a
		// dedicated loader.LoadAll batch path is reserved for LoadAll.
		v, found, err := c.Get(k)
		if err != nil {
			return nil, err
		}
		if found {
			result[k] = v
		}
	}

	return result, nil
}

// RemoveAll deletes the mappings for keys, returning how many existed.
// When write-through is enabled, DeleteAll is invoked first; keys it
// reports as failed are left untouched in the cache.
func (c *Cache) RemoveAll(keys []interface{}) (int64, error) {
	if err := c.checkOpen("RemoveAll"); err != nil {
		return 0, err
	}
	for _, k := range keys {
		if k == nil {
			return 0, NewErrNullKey("RemoveAll")
		}
	}

	failed := map[interface{}]bool{}
	if c.writer != nil {
		failedKeys, err := c.writer.DeleteAll(keys)
		for _, k := range failedKeys {
			failed[k] = true
		}
		if err != nil && len(failedKeys) == 0 {
			for _, k := range keys {
				failed[k] = true
			}
		}
	}

	now := c.now()
	var removed int64
	for _, k := range keys {
		if failed[k] {
			continue
		}
		type outcome struct {
			old       interface{}
			didRemove bool
		}
		outRaw, _, _ := c.store.compute(k, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
			if !exists {
				return existing, actionKeep, outcome{}
			}
			if existing.isExpired(now) {
				return Expirable{}, actionDelete, outcome{}
			}
			return Expirable{}, actionDelete, outcome{old: existing.value, didRemove: true}
		})
		out := outRaw.(outcome)
		if out.didRemove {
			removed++
			c.events.dispatch(CacheEntryEvent{Type: Removed, Key: k, OldValue: out.old})
		}
	}
	c.stats.recordRemovals(removed)

	if len(failed) > 0 {
		failedKeys := make([]interface{}, 0, len(failed))
		for k := range failed {
			failedKeys = append(failedKeys, k)
		}
		return removed, NewErrWriterFailedBatch(failedKeys, nil)
	}
	return removed, nil
}

// RemoveAllEntries removes every entry currently in the cache, going
// through CacheWriter.DeleteAll and emitting a Removed event per entry —
// unlike Clear, which bypasses both.
func (c *Cache) RemoveAllEntries() (int64, error) {
	if err := c.checkOpen("RemoveAllEntries"); err != nil {
		return 0, err
	}

	var keys []interface{}
	c.store.forEach(func(key interface{}, _ Expirable) bool {
		keys = append(keys, key)
		return true
	})
	return c.RemoveAll(keys)
}
