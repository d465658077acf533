// hot-reload.go: dynamic configuration reload via Argus
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// ReloadableSettings is the subset of cache behavior that can change
// after construction without rebuilding the store: the default creation
// TTL and whether statistics are recorded. Capacity (MaximumSize /
// MaximumWeight) is fixed at construction — resizing the backend store
// live would require migrating every shard's entries, which HotConfig
// does not attempt.
type ReloadableSettings struct {
	DefaultTTL        time.Duration
	StatisticsEnabled bool
}

// HotConfig watches a configuration file with Argus and applies the
// reloadable subset of settings to a live Cache as the file changes.
type HotConfig struct {
	cache   *Cache
	watcher *argus.Watcher
	mu      sync.RWMutex
	current ReloadableSettings

	// OnReload is called after settings are successfully reloaded. It
	// must be fast and non-blocking.
	OnReload func(old, new ReloadableSettings)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, and Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	OnReload func(old, new ReloadableSettings)

	Logger Logger
}

// NewHotConfig attaches hot-reload to cache and starts watching
// opts.ConfigPath immediately.
//
// Supported configuration keys, under a top-level "cache" section:
//   - cache.default_ttl (duration string, e.g. "1h"): applied as a
//     CreatedExpiryPolicy for entries created after the reload.
//   - cache.statistics_enabled (bool): toggles Statistics recording.
func NewHotConfig(cache *Cache, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	hc := &HotConfig{
		cache:    cache,
		OnReload: opts.OnReload,
		current: ReloadableSettings{
			StatisticsEnabled: cache.GetStatistics().Enabled(),
		},
	}

	argusConfig := argus.Config{PollInterval: opts.PollInterval}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file, if not already running.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// GetSettings returns the most recently applied ReloadableSettings.
func (hc *HotConfig) GetSettings() ReloadableSettings {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.current
}

func (hc *HotConfig) handleConfigChange(data map[string]interface{}) {
	next := hc.parseSettings(data)

	hc.mu.Lock()
	old := hc.current
	hc.current = next
	hc.mu.Unlock()

	hc.applyChanges(old, next)

	if hc.OnReload != nil {
		hc.OnReload(old, next)
	}
}

func (hc *HotConfig) parseSettings(data map[string]interface{}) ReloadableSettings {
	settings := hc.GetSettings()

	section, ok := data["cache"].(map[string]interface{})
	if !ok {
		if _, hasTTL := data["default_ttl"]; hasTTL {
			section = data
		} else {
			return settings
		}
	}

	if raw, ok := section["default_ttl"].(string); ok {
		if d, err := time.ParseDuration(raw); err == nil {
			settings.DefaultTTL = d
		}
	}
	if enabled, ok := section["statistics_enabled"].(bool); ok {
		settings.StatisticsEnabled = enabled
	}

	return settings
}

// applyChanges pushes the reloadable subset onto the live cache: a new
// default TTL replaces the expiry calculator's policy for entries
// created from this point on, and the statistics enabled flag is
// toggled without resetting accumulated counters.
func (hc *HotConfig) applyChanges(old, new ReloadableSettings) {
	if new.DefaultTTL != old.DefaultTTL && new.DefaultTTL > 0 {
		hc.cache.expiryCalc.setPolicy(CreatedExpiryPolicy(new.DefaultTTL))
	}
	if new.StatisticsEnabled != old.StatisticsEnabled {
		hc.cache.GetStatistics().SetEnabled(new.StatisticsEnabled)
	}
}
