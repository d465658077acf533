// config.go: cache configuration and the builder that constructs a Cache
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Configuration collects every option that shapes a Cache. Construct one
// with NewConfiguration and chain the With* methods, then call Build.
type Configuration struct {
	name string

	copier       Copier
	storeByValue bool
	expiryPolicy ExpiryPolicy
	clock        TimeProvider
	logger       Logger
	metrics      MetricsCollector

	statisticsEnabled bool

	readThrough bool
	cacheLoader CacheLoader

	writeThrough bool
	cacheWriter  CacheWriter

	maximumSize   int64
	maximumWeight int64
	weigher       Weigher
	shardCount    int

	listeners []ListenerConfig
}

// NewConfiguration returns a Configuration with sensible defaults: an
// eternal expiry policy, store-by-reference (IdentityCopier), statistics
// disabled, read-through and write-through disabled, and a capacity of
// DefaultMaxSize entries.
func NewConfiguration() *Configuration {
	return &Configuration{
		copier:       IdentityCopier{},
		expiryPolicy: EternalExpiryPolicy(),
		maximumSize:  DefaultMaxSize,
		shardCount:   DefaultShardCount,
	}
}

// WithName sets a human-readable cache name, surfaced in logs and metrics.
func (c *Configuration) WithName(name string) *Configuration {
	c.name = name
	return c
}

// WithStoreByValue switches the cache to deep-copy semantics (DeepCopier)
// at every boundary instead of the default store-by-reference.
func (c *Configuration) WithStoreByValue(storeByValue bool) *Configuration {
	c.storeByValue = storeByValue
	if storeByValue {
		c.copier = DeepCopier{}
	} else {
		c.copier = IdentityCopier{}
	}
	return c
}

// WithCopier overrides the Copier entirely. WithCopier and
// WithStoreByValue both set the Copier; whichever is called last wins.
func (c *Configuration) WithCopier(copier Copier) *Configuration {
	c.copier = copier
	return c
}

// WithExpiryPolicy sets the ExpiryPolicy governing creation/update/access
// expiry calculation.
func (c *Configuration) WithExpiryPolicy(policy ExpiryPolicy) *Configuration {
	c.expiryPolicy = policy
	return c
}

// WithTimeProvider overrides the clock used for expiry calculation,
// mainly useful in tests.
func (c *Configuration) WithTimeProvider(clock TimeProvider) *Configuration {
	c.clock = clock
	return c
}

// WithLogger overrides the Logger used for exceptional-path diagnostics.
func (c *Configuration) WithLogger(logger Logger) *Configuration {
	c.logger = logger
	return c
}

// WithMetricsCollector wires an external observability sink, such as the
// xanthosotel submodule's OpenTelemetry collector, into the cache. The
// cache reports Get hits and misses, Put calls, capacity evictions, and
// expirations found by ContainsKey, the conditional operations and the
// Iterator. Other operations are not reported, and RecordRemoval is
// never called.
func (c *Configuration) WithMetricsCollector(collector MetricsCollector) *Configuration {
	c.metrics = collector
	return c
}

// WithStatisticsEnabled turns hit/miss/put/removal/eviction accounting on
// or off.
func (c *Configuration) WithStatisticsEnabled(enabled bool) *Configuration {
	c.statisticsEnabled = enabled
	return c
}

// WithReadThrough enables read-through loading via loader on cache misses.
func (c *Configuration) WithReadThrough(loader CacheLoader) *Configuration {
	c.readThrough = true
	c.cacheLoader = loader
	return c
}

// WithWriteThrough enables write-through persistence via writer, invoked
// before each mutation commits.
func (c *Configuration) WithWriteThrough(writer CacheWriter) *Configuration {
	c.writeThrough = true
	c.cacheWriter = writer
	return c
}

// WithMaximumSize bounds the cache by entry count. Mutually exclusive
// with WithMaximumWeight; the last one called wins at Build time.
func (c *Configuration) WithMaximumSize(maxEntries int64) *Configuration {
	c.maximumSize = maxEntries
	c.maximumWeight = 0
	c.weigher = nil
	return c
}

// WithMaximumWeight bounds the cache by a weighted size computed by
// weigher, rather than by entry count.
func (c *Configuration) WithMaximumWeight(maxWeight int64, weigher Weigher) *Configuration {
	c.maximumWeight = maxWeight
	c.weigher = weigher
	c.maximumSize = 0
	return c
}

// WithShardCount overrides the number of internal store shards. Rounded
// up to the next power of 2 at Build time.
func (c *Configuration) WithShardCount(shards int) *Configuration {
	c.shardCount = shards
	return c
}

// WithListener registers a listener configuration, added in order and
// replayed identically on every Build call from this Configuration.
func (c *Configuration) WithListener(cfg ListenerConfig) *Configuration {
	c.listeners = append(c.listeners, cfg)
	return c
}

// Validate normalizes the configuration, applying defaults for any unset
// field, and reports a configuration error for option combinations that
// cannot both hold (for example maximumWeight set without a weigher).
func (c *Configuration) Validate() error {
	if c.copier == nil {
		c.copier = IdentityCopier{}
	}
	if c.expiryPolicy == nil {
		c.expiryPolicy = EternalExpiryPolicy()
	}
	if c.clock == nil {
		c.clock = systemTimeProvider{}
	}
	if c.logger == nil {
		c.logger = NoOpLogger{}
	}
	if c.metrics == nil {
		c.metrics = NoOpMetricsCollector{}
	}
	if c.shardCount <= 0 {
		c.shardCount = DefaultShardCount
	}

	if c.maximumWeight > 0 && c.weigher == nil {
		return NewErrConfiguration("maximumWeight set without a weigher")
	}
	if c.maximumSize <= 0 && c.maximumWeight <= 0 {
		c.maximumSize = DefaultMaxSize
	}

	if c.readThrough && c.cacheLoader == nil {
		return NewErrConfiguration("read-through enabled without a CacheLoader")
	}
	if c.writeThrough && c.cacheWriter == nil {
		return NewErrConfiguration("write-through enabled without a CacheWriter")
	}

	return nil
}

// Build validates the configuration and constructs the Cache it describes.
func (c *Configuration) Build() (*Cache, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return newCache(c), nil
}

// NewCache builds a Cache from cfg, panicking on an invalid configuration.
// Prefer Configuration.Build for callers that want to handle configuration
// errors explicitly.
func NewCache(cfg *Configuration) *Cache {
	cache, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return cache
}
