// xanthos.go: module constants and top-level identity
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

const (
	// Version of the xanthos cache library.
	Version = "v0.1.0-dev"

	// DefaultMaxSize is the default maximum number of entries when neither
	// MaximumSize nor MaximumWeight is configured.
	DefaultMaxSize = 10_000

	// DefaultShardCount is the number of internal map shards the backend
	// store splits keys across.
	DefaultShardCount = 32
)
