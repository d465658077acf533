// entryprocessor.go: the staging entry view used by Invoke
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// MutableEntry is the staging view an EntryProcessor operates on. None of
// its methods touch the backend store directly: GetValue/SetValue/Remove
// only record intent on the adapter, which the cache commits atomically
// once the processor returns normally.
type MutableEntry interface {
	// Key returns the key the processor was invoked for.
	Key() interface{}

	// Exists reports whether the entry currently has a mapping, taking
	// into account any SetValue/Remove call already made during this
	// invocation.
	Exists() bool

	// GetValue returns the current value, loading it from a configured
	// CacheLoader on a read-through miss. Calling GetValue counts as an
	// access for expiry-on-access policies and for hit/miss accounting.
	GetValue() (interface{}, error)

	// SetValue stages a create-or-update of the entry's value. It replaces
	// any earlier SetValue or Remove call within the same invocation.
	SetValue(value interface{})

	// Remove stages removal of the entry. It replaces any earlier SetValue
	// call within the same invocation.
	Remove()
}

// entryAction enumerates the net intent recorded by a MutableEntry by the
// time its EntryProcessor returns.
type entryAction int

const (
	actionNone entryAction = iota
	actionAccess
	actionCreateOrUpdate
	actionRemove
)

// entryAdapter is the concrete MutableEntry. Exactly one of the action
// transitions below applies once the processor body returns; GetValue may
// trigger a read-through load as a side channel that does not by itself
// change the committed action.
type entryAdapter struct {
	key            interface{}
	originalValue  interface{}
	originalExists bool
	originalExpire int64
	valueAccessed  bool
	newValue       interface{}
	action         entryAction
	loader         func(key interface{}) (interface{}, bool, error)
	loadedValue    interface{}
	loadedExists   bool
	loadAttempted  bool
	loadErr        error
}

func newEntryAdapter(key, originalValue interface{}, originalExists bool, originalExpire int64, loader func(interface{}) (interface{}, bool, error)) *entryAdapter {
	return &entryAdapter{
		key:            key,
		originalValue:  originalValue,
		originalExists: originalExists,
		originalExpire: originalExpire,
		loader:         loader,
	}
}

func (e *entryAdapter) Key() interface{} { return e.key }

func (e *entryAdapter) Exists() bool {
	switch e.action {
	case actionCreateOrUpdate:
		return true
	case actionRemove:
		return false
	default:
		return e.originalExists
	}
}

func (e *entryAdapter) GetValue() (interface{}, error) {
	e.valueAccessed = true

	switch e.action {
	case actionCreateOrUpdate:
		return e.newValue, nil
	case actionRemove:
		return nil, nil
	}

	if e.originalExists {
		return e.originalValue, nil
	}

	if e.loader == nil {
		return nil, nil
	}
	if !e.loadAttempted {
		e.loadAttempted = true
		v, found, err := e.loader(e.key)
		if err != nil {
			e.loadErr = err
			return nil, err
		}
		e.loadedValue = v
		e.loadedExists = found
	}
	if e.loadErr != nil {
		return nil, e.loadErr
	}
	if e.loadedExists {
		// A successful read-through load, while staged here, does not by
		// itself stage a create — the cache decides at commit time
		// whether to persist the loaded value. Unlike Get's two-phase
		// read-through, this load runs inside Invoke's compute callback,
		// with the key's shard lock held.
		return e.loadedValue, nil
	}
	return nil, nil
}

func (e *entryAdapter) SetValue(value interface{}) {
	e.action = actionCreateOrUpdate
	e.newValue = value
}

func (e *entryAdapter) Remove() {
	e.action = actionRemove
	e.newValue = nil
}

// resolvedLoad reports whether GetValue performed a read-through load that
// found a value, and what it was — used by Invoke to decide whether to
// persist the loaded value when the processor made no explicit SetValue.
func (e *entryAdapter) resolvedLoad() (interface{}, bool) {
	return e.loadedValue, e.loadAttempted && e.loadedExists
}
