// Package xanthos implements an in-process key/value cache that honors a
// standards-oriented caching contract: per-entry expiration, by-value
// semantics, event notification, statistics, read-through loading,
// write-through persistence and atomic entry-processor operations.
//
// # Overview
//
// xanthos is the adapter layer: it imposes contract semantics (the same
// shape as JSR107/javax.cache) on top of a high-performance concurrent
// associative store. The adapter owns expiry calculation and lazy
// eviction, the atomic/side-effect separation discipline on every
// mutation, read-through composition (a two-phase loader protocol for Get;
// an entry processor's GetValue calls the loader with the key's shard lock
// held), write-through ordering and
// partial-failure handling, per-operation event dispatch, statistics
// accounting, and reentrancy guarding inside entry processors.
//
// # Quick start
//
//	cache, err := xanthos.NewConfiguration().
//		WithExpiryPolicy(xanthos.CreatedExpiryPolicy(time.Hour)).
//		WithStatisticsEnabled(true).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer cache.Close()
//
//	cache.Put("user:123", User{ID: 123, Name: "Alice"})
//	if v, found, err := cache.Get("user:123"); err == nil && found {
//		fmt.Println(v.(User).Name)
//	}
//
// # Type-safe facade
//
// TypedCache[K, V] wraps Cache behind a generic, compile-time-checked API,
// mirroring the way many Go caches offer both an interface{}-keyed core
// and a generic convenience wrapper:
//
//	tc, err := xanthos.NewTypedCache[string, User](cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tc.Put("user:123", User{ID: 123})
//	user, found, err := tc.Get("user:123")
//
// # Read-through and write-through
//
// Configure a CacheLoader to enable read-through: misses call the loader
// outside any lock, then fold the result into the store through a second
// atomic step that discards the loaded value if a concurrent writer has
// already installed something newer. Configure a CacheWriter to enable
// write-through: the writer runs before the mutation is committed, and a
// writer failure leaves the cache state unchanged.
//
// # Entry processors
//
// Invoke atomically reads and optionally mutates a single key through a
// MutableEntry staging view; the processor's intent (read, write, remove)
// commits only when the processor returns normally. Calling back into the
// cache from inside a processor body fails fast with a reentrancy error.
//
// # Observability
//
// Statistics tracks hits, misses, puts, removals and evictions with the
// exact accounting taxonomy of the contract. The xanthosotel submodule
// wires those counters into OpenTelemetry for production observability,
// the same way the ambient logging and time-source interfaces
// (Logger, TimeProvider) let the embedding application plug in its own
// structured logger and clock.
package xanthos
