// cache.go: the cache adapter — construction, single-key Get/Put, and
// cache-wide lifecycle operations
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "sync/atomic"

// Cache is an in-process key/value cache implementing per-entry
// expiration, by-value semantics, event notification, statistics,
// read-through loading, write-through persistence, and atomic
// entry-processor operations.
//
// A Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	name string

	store      *store
	expiryCalc *expiryCalculator
	copier     Copier
	clock      TimeProvider
	logger     Logger

	stats   *Statistics
	events  *eventDispatcher
	metrics MetricsCollector

	reentrancy *reentrancyGuard

	loader  CacheLoader
	writer  CacheWriter

	closed int32
}

func newCache(cfg *Configuration) *Cache {
	c := &Cache{
		name:       cfg.name,
		expiryCalc: newExpiryCalculator(cfg.expiryPolicy, cfg.clock),
		copier:     cfg.copier,
		clock:      cfg.clock,
		logger:     cfg.logger,
		stats:      newStatistics(cfg.statisticsEnabled),
		reentrancy: newReentrancyGuard(),
		metrics:    cfg.metrics,
	}
	if c.metrics == nil {
		c.metrics = NoOpMetricsCollector{}
	}
	c.events = newEventDispatcher(c.logger)

	var onEvict func(interface{}, Expirable)
	onEvict = func(key interface{}, e Expirable) {
		c.stats.recordEvictions(1)
		c.metrics.RecordEviction()
		c.events.dispatch(CacheEntryEvent{Type: Removed, Key: key, OldValue: e.value})
	}
	c.store = newStore(cfg.shardCount, cfg.maximumSize, cfg.maximumWeight, cfg.weigher, onEvict)

	if cfg.readThrough {
		c.loader = cfg.cacheLoader
	}
	if cfg.writeThrough {
		c.writer = cfg.cacheWriter
	}

	for _, lc := range cfg.listeners {
		c.events.register(lc)
	}

	return c
}

// GetName returns the cache's configured name, or the empty string if
// none was set.
func (c *Cache) GetName() string { return c.name }

// IsClosed reports whether Close has been called.
func (c *Cache) IsClosed() bool { return atomic.LoadInt32(&c.closed) == 1 }

// Close releases the cache's resources. Close is idempotent; subsequent
// operations return a "closed" error.
func (c *Cache) Close() error {
	atomic.StoreInt32(&c.closed, 1)
	return nil
}

func (c *Cache) checkOpen(operation string) error {
	if c.IsClosed() {
		return NewErrClosed(operation)
	}
	return nil
}

// GetStatistics returns the cache's live Statistics. It is never nil,
// even if statistics were not enabled at configuration time.
func (c *Cache) GetStatistics() *Statistics { return c.stats }

// RegisterListener attaches a listener and returns a token that can later
// be passed to DeregisterListener.
func (c *Cache) RegisterListener(cfg ListenerConfig) ListenerRegistration {
	return c.events.register(cfg)
}

// DeregisterListener removes a previously registered listener.
func (c *Cache) DeregisterListener(reg ListenerRegistration) {
	c.events.deregister(reg)
}

// copyOut applies the configured Copier to a value leaving the cache
// (via Get, an event, or an entry-adapter read).
func (c *Cache) copyOut(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return c.copier.Copy(v)
}

// copyIn applies the configured Copier to a value entering the cache.
func (c *Cache) copyIn(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return c.copier.Copy(v)
}

func (c *Cache) now() int64 { return c.clock.Now() }

// ContainsKey reports whether key maps to a live, non-expired entry.
// ContainsKey does not count as an access for expiry-on-access policies
// and is not recorded in hit/miss statistics.
func (c *Cache) ContainsKey(key interface{}) (bool, error) {
	if err := c.checkOpen("ContainsKey"); err != nil {
		return false, err
	}
	if key == nil {
		return false, NewErrNullKey("ContainsKey")
	}

	e, exists := c.store.get(key)
	if !exists {
		return false, nil
	}
	if e.isExpired(c.now()) {
		c.expireEntry(key)
		return false, nil
	}
	return true, nil
}

// expireEntry removes key if it is still present and still expired,
// emitting an Expired event and counting it in statistics. Used by the
// lazy expiry path shared by Get/ContainsKey/iteration.
func (c *Cache) expireEntry(key interface{}) {
	now := c.now()
	_, prevValue, prevExisted := c.store.compute(key, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
		if !exists || !existing.isExpired(now) {
			return existing, actionKeep, nil
		}
		return Expirable{}, actionDelete, nil
	})
	if prevExisted && prevValue.isExpired(now) {
		c.stats.recordEvictions(1)
		c.metrics.RecordExpiration()
		c.events.dispatch(CacheEntryEvent{Type: Expired, Key: key, OldValue: prevValue.value})
	}
}

// Get returns the value for key, loading it through the configured
// CacheLoader on a miss when read-through is enabled.
func (c *Cache) Get(key interface{}) (interface{}, bool, error) {
	if err := c.checkOpen("Get"); err != nil {
		return nil, false, err
	}
	if key == nil {
		return nil, false, NewErrNullKey("Get")
	}

	now := c.now()
	type getOutcome struct {
		value   interface{}
		hit     bool
		expired bool
	}

	outRaw, prevValue, prevExisted := c.store.compute(key, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
		if !exists {
			return existing, actionKeep, getOutcome{}
		}
		if existing.isExpired(now) {
			return Expirable{}, actionDelete, getOutcome{expired: true}
		}
		newExpireAt := c.expiryCalc.forAccess(now, existing.expireAt)
		updated := existing.withExpireTime(newExpireAt)
		return updated, actionPut, getOutcome{value: existing.value, hit: true}
	})
	out := outRaw.(getOutcome)

	if out.expired {
		if prevExisted {
			c.stats.recordEvictions(1)
			c.events.dispatch(CacheEntryEvent{Type: Expired, Key: key, OldValue: prevValue.value})
		}
		c.stats.recordMiss()
		c.metrics.RecordGet(false)
	}

	if out.hit {
		c.stats.recordHit()
		c.metrics.RecordGet(true)
		v, err := c.copyOut(out.value)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	}

	if !out.expired {
		c.stats.recordMiss()
		c.metrics.RecordGet(false)
	}
	if c.loader == nil {
		return nil, false, nil
	}

	return c.getReadThrough(key, now)
}

// getReadThrough implements the two-phase read-through protocol: the
// loader is invoked outside any lock (phase A), then a second atomic
// compute folds the result into the store only if the slot is still
// absent — if a concurrent writer has installed something in the
// meantime, the load is discarded rather than overwriting it (phase B).
func (c *Cache) getReadThrough(key interface{}, now int64) (interface{}, bool, error) {
	loaded, found, err := c.loader.Load(key)
	if err != nil {
		return nil, false, NewErrLoaderFailed(key, err)
	}
	if !found {
		return nil, false, nil
	}

	copied, err := c.copyIn(loaded)
	if err != nil {
		return nil, false, err
	}

	type loadOutcome struct {
		installed bool
		value     interface{}
	}

	outRaw, _, _ := c.store.compute(key, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
		if exists && !existing.isExpired(now) {
			// A concurrent writer already won; discard our load.
			return existing, actionKeep, loadOutcome{installed: false, value: existing.value}
		}
		expireAt := c.expiryCalc.forCreation(now)
		return newExpirable(copied, expireAt), actionPut, loadOutcome{installed: true, value: copied}
	})
	out := outRaw.(loadOutcome)

	if out.installed {
		c.stats.recordPuts(1)
		c.events.dispatch(CacheEntryEvent{Type: Created, Key: key, Value: out.value})
	}

	v, err := c.copyOut(out.value)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Put creates or updates the mapping for key.
func (c *Cache) Put(key, value interface{}) error {
	if err := c.checkOpen("Put"); err != nil {
		return err
	}
	if key == nil {
		return NewErrNullKey("Put")
	}
	if value == nil {
		return NewErrNullValue("Put")
	}

	copied, err := c.copyIn(value)
	if err != nil {
		return err
	}

	if c.writer != nil {
		if werr := c.writer.Write(key, value); werr != nil {
			return NewErrWriterFailed(key, werr)
		}
	}

	now := c.now()
	type putOutcome struct {
		created bool
		old     interface{}
	}

	outRaw, _, _ := c.store.compute(key, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
		liveExisting := exists && !existing.isExpired(now)
		var expireAt int64
		if liveExisting {
			expireAt = c.expiryCalc.forUpdate(now, existing.expireAt)
		} else {
			expireAt = c.expiryCalc.forCreation(now)
		}
		out := putOutcome{created: !liveExisting}
		if liveExisting {
			out.old = existing.value
		}
		return newExpirable(copied, expireAt), actionPut, out
	})
	out := outRaw.(putOutcome)

	c.stats.recordPuts(1)
	c.metrics.RecordPut()
	if out.created {
		c.events.dispatch(CacheEntryEvent{Type: Created, Key: key, Value: copied})
	} else {
		c.events.dispatch(CacheEntryEvent{Type: Updated, Key: key, Value: copied, OldValue: out.old})
	}
	return nil
}

// Clear removes every entry without invoking CacheWriter and without
// emitting per-entry Removed events, mirroring a bulk administrative
// reset rather than an application-level removal.
func (c *Cache) Clear() error {
	if err := c.checkOpen("Clear"); err != nil {
		return err
	}
	c.store.clear()
	return nil
}

// Iterator returns an Iterator over the cache's live entries.
func (c *Cache) Iterator() *Iterator {
	return newIterator(c)
}

// Len reports the number of entries currently stored, including entries
// that have expired but have not yet been lazily swept.
func (c *Cache) Len() int64 {
	return c.store.length()
}
