// errors.go: structured error taxonomy for cache operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for all cache operations.
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import (
	goerrors "errors"
	"fmt"
	"reflect"

	"github.com/agilira/go-errors"
)

// Error codes for xanthos cache operations.
const (
	// Argument errors (1xxx)
	ErrCodeNullKey   errors.ErrorCode = "XANTHOS_NULL_KEY"
	ErrCodeNullValue errors.ErrorCode = "XANTHOS_NULL_VALUE"

	// Lifecycle errors (2xxx)
	ErrCodeClosed errors.ErrorCode = "XANTHOS_CLOSED"

	// Entry-processor errors (3xxx)
	ErrCodeReentrant      errors.ErrorCode = "XANTHOS_REENTRANT_ENTRY_PROCESSOR"
	ErrCodeProcessorPanic errors.ErrorCode = "XANTHOS_PROCESSOR_FAILED"

	// Read-through / write-through errors (4xxx)
	ErrCodeLoaderFailed errors.ErrorCode = "XANTHOS_LOADER_FAILED"
	ErrCodeWriterFailed errors.ErrorCode = "XANTHOS_WRITER_FAILED"

	// Copy errors (5xxx)
	ErrCodeSerialization errors.ErrorCode = "XANTHOS_SERIALIZATION"

	// Configuration errors (6xxx)
	ErrCodeConfiguration errors.ErrorCode = "XANTHOS_CONFIGURATION"
)

// Common error messages.
const (
	msgNullKey        = "key must not be nil"
	msgNullValue      = "value must not be nil"
	msgClosed         = "cache is closed"
	msgReentrant      = "entry processor re-entered the cache it is running against"
	msgProcessorPanic = "entry processor panicked"
	msgLoaderFailed   = "cache loader failed"
	msgWriterFailed   = "cache writer failed"
	msgSerialization  = "value could not be copied"
	msgConfiguration  = "invalid cache configuration"
)

// ErrReentrantEntryProcessor is returned by Invoke/InvokeAll when the
// calling goroutine is already executing inside an entry processor body
// for this cache.
var ErrReentrantEntryProcessor = errors.NewWithField(ErrCodeReentrant, msgReentrant, "reason", "nested invoke")

// =============================================================================
// ARGUMENT ERRORS
// =============================================================================

// NewErrNullKey reports that operation was called with a nil key.
func NewErrNullKey(operation string) error {
	return errors.NewWithField(ErrCodeNullKey, msgNullKey, "operation", operation)
}

// NewErrNullValue reports that operation was called with a nil value.
func NewErrNullValue(operation string) error {
	return errors.NewWithField(ErrCodeNullValue, msgNullValue, "operation", operation)
}

// =============================================================================
// LIFECYCLE ERRORS
// =============================================================================

// NewErrClosed reports that operation was called on a closed cache.
func NewErrClosed(operation string) error {
	return errors.NewWithField(ErrCodeClosed, msgClosed, "operation", operation)
}

// =============================================================================
// ENTRY PROCESSOR ERRORS
// =============================================================================

// NewErrProcessorFailed wraps a panic recovered from inside an
// EntryProcessor body. The original panic value is preserved in context.
func NewErrProcessorFailed(key interface{}, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodeProcessorPanic, msgProcessorPanic, map[string]interface{}{
		"key":         key,
		"panic_value": fmt.Sprintf("%v", panicValue),
	}).WithSeverity("critical")
}

// =============================================================================
// READ-THROUGH / WRITE-THROUGH ERRORS
// =============================================================================

// NewErrLoaderFailed wraps a CacheLoader failure for key.
func NewErrLoaderFailed(key interface{}, cause error) error {
	return errors.Wrap(cause, ErrCodeLoaderFailed, msgLoaderFailed).
		WithContext("key", key).
		AsRetryable()
}

// NewErrWriterFailed wraps a CacheWriter failure for key.
func NewErrWriterFailed(key interface{}, cause error) error {
	return errors.Wrap(cause, ErrCodeWriterFailed, msgWriterFailed).
		WithContext("key", key).
		AsRetryable()
}

// NewErrWriterFailedBatch wraps a CacheWriter batch failure, recording
// which keys were not successfully persisted.
func NewErrWriterFailedBatch(failedKeys []interface{}, cause error) error {
	return errors.Wrap(cause, ErrCodeWriterFailed, msgWriterFailed).
		WithContext("failed_keys", failedKeys).
		AsRetryable()
}

// =============================================================================
// SERIALIZATION ERRORS
// =============================================================================

// NewErrSerialization wraps a failure encountered while deep-copying a
// value across a cache boundary.
func NewErrSerialization(cause error) error {
	return errors.Wrap(cause, ErrCodeSerialization, msgSerialization)
}

func errUnsupportedKind(k reflect.Kind) error {
	return fmt.Errorf("unsupported kind for deep copy: %s", k)
}

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrConfiguration reports an invalid Configuration.
func NewErrConfiguration(reason string) error {
	return errors.NewWithField(ErrCodeConfiguration, msgConfiguration, "reason", reason)
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsNullKey reports whether err is a nil-key error.
func IsNullKey(err error) bool { return errors.HasCode(err, ErrCodeNullKey) }

// IsNullValue reports whether err is a nil-value error.
func IsNullValue(err error) bool { return errors.HasCode(err, ErrCodeNullValue) }

// IsClosed reports whether err indicates the cache was closed.
func IsClosed(err error) bool { return errors.HasCode(err, ErrCodeClosed) }

// IsReentrant reports whether err indicates a reentrant entry-processor call.
func IsReentrant(err error) bool { return errors.HasCode(err, ErrCodeReentrant) }

// IsProcessorFailed reports whether err wraps an entry-processor panic.
func IsProcessorFailed(err error) bool { return errors.HasCode(err, ErrCodeProcessorPanic) }

// IsLoaderFailed reports whether err wraps a CacheLoader failure.
func IsLoaderFailed(err error) bool { return errors.HasCode(err, ErrCodeLoaderFailed) }

// IsWriterFailed reports whether err wraps a CacheWriter failure.
func IsWriterFailed(err error) bool { return errors.HasCode(err, ErrCodeWriterFailed) }

// IsSerialization reports whether err wraps a copy failure.
func IsSerialization(err error) bool { return errors.HasCode(err, ErrCodeSerialization) }

// IsConfigurationError reports whether err is a configuration error.
func IsConfigurationError(err error) bool { return errors.HasCode(err, ErrCodeConfiguration) }

// IsRetryable reports whether err can be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from err, if any.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts the structured context attached to err, if any.
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var xanthosErr *errors.Error
	if goerrors.As(err, &xanthosErr) {
		return xanthosErr.Context
	}
	return nil
}
