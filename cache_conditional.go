// cache_conditional.go: conditional single-key mutations
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// PutIfAbsent creates the mapping for key only if no live entry exists,
// returning whether it did so. When write-through is enabled, the writer
// is invoked before the attempt is known to succeed; a rare, harmless
// wasted write can occur under contention if another goroutine wins the
// race after the writer call but before the store commit.
func (c *Cache) PutIfAbsent(key, value interface{}) (bool, error) {
	if err := c.checkOpen("PutIfAbsent"); err != nil {
		return false, err
	}
	if key == nil {
		return false, NewErrNullKey("PutIfAbsent")
	}
	if value == nil {
		return false, NewErrNullValue("PutIfAbsent")
	}

	now := c.now()
	if live, _ := c.liveGet(key, now); live {
		c.stats.recordHit()
		return false, nil
	}

	copied, err := c.copyIn(value)
	if err != nil {
		return false, err
	}
	if c.writer != nil {
		if werr := c.writer.Write(key, value); werr != nil {
			return false, NewErrWriterFailed(key, werr)
		}
	}

	installedRaw, _, _ := c.store.compute(key, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
		if exists && !existing.isExpired(now) {
			return existing, actionKeep, false
		}
		expireAt := c.expiryCalc.forCreation(now)
		return newExpirable(copied, expireAt), actionPut, true
	})
	installed := installedRaw.(bool)
	if installed {
		c.stats.recordPuts(1)
		c.stats.recordMiss()
		c.events.dispatch(CacheEntryEvent{Type: Created, Key: key, Value: copied})
	}
	return installed, nil
}

// liveGet reports whether key currently maps to a live entry, lazily
// expiring it first if necessary. It does not count as an access.
func (c *Cache) liveGet(key interface{}, now int64) (bool, interface{}) {
	e, exists := c.store.get(key)
	if !exists {
		return false, nil
	}
	if e.isExpired(now) {
		c.expireEntry(key)
		return false, nil
	}
	return true, e.value
}

// GetAndPut associates key with value, returning the previous value (if
// any) and whether it existed.
func (c *Cache) GetAndPut(key, value interface{}) (interface{}, bool, error) {
	if err := c.checkOpen("GetAndPut"); err != nil {
		return nil, false, err
	}
	if key == nil {
		return nil, false, NewErrNullKey("GetAndPut")
	}
	if value == nil {
		return nil, false, NewErrNullValue("GetAndPut")
	}

	copied, err := c.copyIn(value)
	if err != nil {
		return nil, false, err
	}
	if c.writer != nil {
		if werr := c.writer.Write(key, value); werr != nil {
			return nil, false, NewErrWriterFailed(key, werr)
		}
	}

	now := c.now()
	type outcome struct {
		old     interface{}
		hadOld  bool
		created bool
	}
	outRaw, _, _ := c.store.compute(key, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
		live := exists && !existing.isExpired(now)
		var expireAt int64
		if live {
			expireAt = c.expiryCalc.forUpdate(now, existing.expireAt)
		} else {
			expireAt = c.expiryCalc.forCreation(now)
		}
		out := outcome{created: !live}
		if live {
			out.old, out.hadOld = existing.value, true
		}
		return newExpirable(copied, expireAt), actionPut, out
	})
	out := outRaw.(outcome)

	c.stats.recordPuts(1)
	if out.created {
		c.stats.recordMiss()
		c.events.dispatch(CacheEntryEvent{Type: Created, Key: key, Value: copied})
		return nil, false, nil
	}
	c.stats.recordHit()
	c.events.dispatch(CacheEntryEvent{Type: Updated, Key: key, Value: copied, OldValue: out.old})
	oldOut, err := c.copyOut(out.old)
	if err != nil {
		return nil, false, err
	}
	return oldOut, out.hadOld, nil
}

// GetAndReplace replaces the value for key only if a live mapping
// already exists, returning the previous value and whether it did.
func (c *Cache) GetAndReplace(key, value interface{}) (interface{}, bool, error) {
	if err := c.checkOpen("GetAndReplace"); err != nil {
		return nil, false, err
	}
	if key == nil {
		return nil, false, NewErrNullKey("GetAndReplace")
	}
	if value == nil {
		return nil, false, NewErrNullValue("GetAndReplace")
	}

	now := c.now()
	if live, _ := c.liveGet(key, now); !live {
		c.stats.recordMiss()
		return nil, false, nil
	}

	copied, err := c.copyIn(value)
	if err != nil {
		return nil, false, err
	}
	if c.writer != nil {
		if werr := c.writer.Write(key, value); werr != nil {
			return nil, false, NewErrWriterFailed(key, werr)
		}
	}

	type outcome struct {
		old      interface{}
		replaced bool
	}
	outRaw, _, _ := c.store.compute(key, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
		if !exists || existing.isExpired(now) {
			return existing, actionKeep, outcome{}
		}
		expireAt := c.expiryCalc.forUpdate(now, existing.expireAt)
		return newExpirable(copied, expireAt), actionPut, outcome{old: existing.value, replaced: true}
	})
	out := outRaw.(outcome)
	if !out.replaced {
		c.stats.recordMiss()
		return nil, false, nil
	}

	c.stats.recordPuts(1)
	c.stats.recordHit()
	c.events.dispatch(CacheEntryEvent{Type: Updated, Key: key, Value: copied, OldValue: out.old})
	oldOut, err := c.copyOut(out.old)
	if err != nil {
		return nil, false, err
	}
	return oldOut, true, nil
}

// Replace updates the value for key only if a live mapping already
// exists, returning whether it did.
func (c *Cache) Replace(key, value interface{}) (bool, error) {
	_, replaced, err := c.GetAndReplace(key, value)
	return replaced, err
}

// ReplaceIfEqual updates key's value to newValue only if its current
// value equals oldValue, as determined by Go's == operator on the two
// interface values: values of different dynamic types never match, and
// two values of the same non-comparable type make the comparison panic.
func (c *Cache) ReplaceIfEqual(key, oldValue, newValue interface{}) (bool, error) {
	if err := c.checkOpen("ReplaceIfEqual"); err != nil {
		return false, err
	}
	if key == nil {
		return false, NewErrNullKey("ReplaceIfEqual")
	}
	if newValue == nil {
		return false, NewErrNullValue("ReplaceIfEqual")
	}

	now := c.now()
	live, current := c.liveGet(key, now)
	if !live || current != oldValue {
		c.stats.recordMiss()
		return false, nil
	}

	copied, err := c.copyIn(newValue)
	if err != nil {
		return false, err
	}
	if c.writer != nil {
		if werr := c.writer.Write(key, newValue); werr != nil {
			return false, NewErrWriterFailed(key, werr)
		}
	}

	replacedRaw, _, _ := c.store.compute(key, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
		if !exists || existing.isExpired(now) || existing.value != oldValue {
			return existing, actionKeep, false
		}
		expireAt := c.expiryCalc.forUpdate(now, existing.expireAt)
		return newExpirable(copied, expireAt), actionPut, true
	})
	replaced := replacedRaw.(bool)
	if replaced {
		c.stats.recordPuts(1)
		c.stats.recordHit()
		c.events.dispatch(CacheEntryEvent{Type: Updated, Key: key, Value: copied, OldValue: oldValue})
	} else {
		c.stats.recordMiss()
	}
	return replaced, nil
}

// GetAndRemove removes key's mapping if present, returning its previous
// value and whether it existed.
func (c *Cache) GetAndRemove(key interface{}) (interface{}, bool, error) {
	if err := c.checkOpen("GetAndRemove"); err != nil {
		return nil, false, err
	}
	if key == nil {
		return nil, false, NewErrNullKey("GetAndRemove")
	}

	now := c.now()
	live, _ := c.liveGet(key, now)
	if !live {
		c.stats.recordMiss()
		return nil, false, nil
	}

	if c.writer != nil {
		if werr := c.writer.Delete(key); werr != nil {
			return nil, false, NewErrWriterFailed(key, werr)
		}
	}

	type outcome struct {
		old     interface{}
		removed bool
	}
	outRaw, _, _ := c.store.compute(key, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
		if !exists || existing.isExpired(now) {
			return existing, actionKeep, outcome{}
		}
		return Expirable{}, actionDelete, outcome{old: existing.value, removed: true}
	})
	out := outRaw.(outcome)
	if !out.removed {
		c.stats.recordMiss()
		return nil, false, nil
	}

	c.stats.recordRemovals(1)
	c.stats.recordHit()
	c.events.dispatch(CacheEntryEvent{Type: Removed, Key: key, OldValue: out.old})
	oldOut, err := c.copyOut(out.old)
	if err != nil {
		return nil, false, err
	}
	return oldOut, true, nil
}

// Remove deletes the mapping for key, returning whether it existed.
func (c *Cache) Remove(key interface{}) (bool, error) {
	_, removed, err := c.GetAndRemove(key)
	return removed, err
}

// RemoveIfEqual deletes the mapping for key only if its current value
// equals value, returning whether it did.
func (c *Cache) RemoveIfEqual(key, value interface{}) (bool, error) {
	if err := c.checkOpen("RemoveIfEqual"); err != nil {
		return false, err
	}
	if key == nil {
		return false, NewErrNullKey("RemoveIfEqual")
	}

	now := c.now()
	live, current := c.liveGet(key, now)
	if !live || current != value {
		c.stats.recordMiss()
		return false, nil
	}

	if c.writer != nil {
		if werr := c.writer.Delete(key); werr != nil {
			return false, NewErrWriterFailed(key, werr)
		}
	}

	removedRaw, _, _ := c.store.compute(key, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
		if !exists || existing.isExpired(now) || existing.value != value {
			return existing, actionKeep, false
		}
		return Expirable{}, actionDelete, true
	})
	removed := removedRaw.(bool)
	if removed {
		c.stats.recordRemovals(1)
		c.stats.recordHit()
		c.events.dispatch(CacheEntryEvent{Type: Removed, Key: key, OldValue: value})
	} else {
		c.stats.recordMiss()
	}
	return removed, nil
}
