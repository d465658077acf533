// loader_writer.go: read-through and write-through external hooks
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// CacheLoader loads values from an external system of record on a cache
// miss. Get calls Load outside any internal lock; MutableEntry.GetValue
// inside Invoke calls it with the key's shard lock held. LoadAll batches several
// keys in one round trip where the backing system supports it.
type CacheLoader interface {
	// Load fetches the value for key. Returning found=false means the
	// system of record genuinely has no value for key — not an error.
	Load(key interface{}) (value interface{}, found bool, err error)

	// LoadAll fetches values for keys, returning a map containing only
	// the keys that were found. Keys absent from the system of record
	// are simply omitted, not reported as an error.
	LoadAll(keys []interface{}) (map[interface{}]interface{}, error)
}

// CacheWriter persists mutations to an external system of record,
// invoked before the corresponding in-memory mutation commits.
type CacheWriter interface {
	// Write persists a single key/value pair.
	Write(key, value interface{}) error

	// WriteAll persists several entries. It returns the subset of
	// entries (by key) it failed to persist; the cache only commits the
	// entries that succeeded.
	WriteAll(entries map[interface{}]interface{}) (failedKeys []interface{}, err error)

	// Delete removes a single key from the system of record.
	Delete(key interface{}) error

	// DeleteAll removes several keys, returning the subset it failed to
	// remove.
	DeleteAll(keys []interface{}) (failedKeys []interface{}, err error)
}

// CompletionListener is notified when an asynchronous LoadAll finishes.
type CompletionListener interface {
	OnCompletion()
	OnException(err error)
}

// completionListenerFunc adapts two plain functions into a
// CompletionListener, the way callers most often want to use it.
type completionListenerFunc struct {
	onCompletion func()
	onException  func(error)
}

// NewCompletionListener builds a CompletionListener from callback
// functions. Either may be nil.
func NewCompletionListener(onCompletion func(), onException func(error)) CompletionListener {
	return completionListenerFunc{onCompletion: onCompletion, onException: onException}
}

func (c completionListenerFunc) OnCompletion() {
	if c.onCompletion != nil {
		c.onCompletion()
	}
}

func (c completionListenerFunc) OnException(err error) {
	if c.onException != nil {
		c.onException(err)
	}
}
