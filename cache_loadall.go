// cache_loadall.go: bulk asynchronous loading via the CacheLoader
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// LoadAll asynchronously loads keys through the configured CacheLoader
// and installs the results, notifying listener when the operation
// finishes. Keys that already map to a live entry are skipped unless
// replaceExisting is true. LoadAll returns immediately; listener may be
// nil if the caller does not need completion notification.
func (c *Cache) LoadAll(keys []interface{}, replaceExisting bool, listener CompletionListener) error {
	if err := c.checkOpen("LoadAll"); err != nil {
		return err
	}
	if c.loader == nil {
		return NewErrConfiguration("LoadAll called without read-through configured")
	}
	for _, k := range keys {
		if k == nil {
			return NewErrNullKey("LoadAll")
		}
	}

	go c.loadAllSync(keys, replaceExisting, listener)
	return nil
}

func (c *Cache) loadAllSync(keys []interface{}, replaceExisting bool, listener CompletionListener) {
	now := c.now()

	var toLoad []interface{}
	for _, k := range keys {
		if replaceExisting {
			toLoad = append(toLoad, k)
			continue
		}
		if live, _ := c.liveGet(k, now); !live {
			toLoad = append(toLoad, k)
		}
	}
	if len(toLoad) == 0 {
		if listener != nil {
			listener.OnCompletion()
		}
		return
	}

	loaded, err := c.loader.LoadAll(toLoad)
	if err != nil {
		if listener != nil {
			listener.OnException(NewErrLoaderFailed(nil, err))
		}
		return
	}

	var puts int64
	for k, v := range loaded {
		copied, cerr := c.copyIn(v)
		if cerr != nil {
			if listener != nil {
				listener.OnException(cerr)
			}
			return
		}

		type outcome struct {
			applied bool
			created bool
			old     interface{}
		}
		outRaw, _, _ := c.store.compute(k, func(existing Expirable, exists bool) (Expirable, computeAction, interface{}) {
			live := exists && !existing.isExpired(now)
			if live && !replaceExisting {
				return existing, actionKeep, outcome{}
			}
			var expireAt int64
			if live {
				expireAt = c.expiryCalc.forUpdate(now, existing.expireAt)
			} else {
				expireAt = c.expiryCalc.forCreation(now)
			}
			out := outcome{applied: true, created: !live}
			if live {
				out.old = existing.value
			}
			return newExpirable(copied, expireAt), actionPut, out
		})
		out := outRaw.(outcome)
		if !out.applied {
			continue
		}
		puts++
		if out.created {
			c.events.dispatch(CacheEntryEvent{Type: Created, Key: k, Value: copied})
		} else {
			c.events.dispatch(CacheEntryEvent{Type: Updated, Key: k, Value: copied, OldValue: out.old})
		}
	}
	c.stats.recordPuts(puts)

	if listener != nil {
		listener.OnCompletion()
	}
}
