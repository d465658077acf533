// interfaces.go: small ambient collaborator interfaces
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "github.com/agilira/go-timecache"

// Logger defines a minimal structured logging interface. Implementations
// should be allocation-free on the hot path; the cache only logs on
// exceptional paths (swallowed listener panics).
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger discards every message. Used as the default so the cache
// never needs to nil-check its logger.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}
func (NoOpLogger) Info(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Warn(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider supplies the current wall-clock time in nanoseconds since
// the epoch. Injecting it allows deterministic tests of expiry logic and
// lets production builds use a cached-clock implementation.
type TimeProvider interface {
	Now() int64
}

// systemTimeProvider is the default TimeProvider, backed by go-timecache's
// cached monotonic clock rather than a raw time.Now() call on every
// operation.
type systemTimeProvider struct{}

func (systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
