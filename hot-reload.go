// hot-reload.go: dynamic configuration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

import (
	"math"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotConfig watches a configuration file with Argus and keeps the latest
// valid cache limits.
//
// A cache's limits are fixed for its lifetime, so HotConfig never touches a
// cache itself. OnReload runs on the watcher goroutine; the owner of the cache
// applies the new limits with WeightedCache.Resized under its own lock.
type HotConfig struct {
	watcher *argus.Watcher
	logger  Logger
	path    string

	mu     sync.RWMutex
	config Config

	// OnReload is called after configuration is successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldConfig, newConfig Config)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig Config)
}

// NewHotConfig creates a hot-reloadable configuration starting from base.
// Fields not present in the file (Logger, MetricsCollector, OnEvict, ...)
// are carried over from base on every reload.
//
// Example configuration file (YAML):
//
//	cache:
//	  max_count: 1024
//	  max_item_weight: 4096
//
// Supported configuration keys:
//   - cache.max_count (int): number of maximal-weight items
//   - cache.max_item_weight (int): heaviest accepted value
//
// A reload producing nonsense limits is logged and ignored; the previous
// configuration stays in effect.
func NewHotConfig(base Config, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, NewErrInvalidConfig("", "config_path is required")
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	hc := &HotConfig{
		logger:   base.Logger,
		path:     opts.ConfigPath,
		config:   base,
		OnReload: opts.OnReload,
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
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

// GetConfig returns the current configuration (thread-safe).
func (hc *HotConfig) GetConfig() Config {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

// handleConfigChange is called by Argus when configuration changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	oldConfig := hc.config
	newConfig := parseConfig(oldConfig, configData)
	if err := newConfig.Validate(); err != nil {
		hc.mu.Unlock()
		hc.logger.Warn("pondus: ignoring invalid configuration",
			"path", hc.path,
			"error", err)
		return
	}
	hc.config = newConfig
	hc.mu.Unlock()

	if oldConfig.MaxCount == newConfig.MaxCount && oldConfig.MaxItemWeight == newConfig.MaxItemWeight {
		return
	}

	hc.logger.Info("pondus: configuration reloaded",
		"path", hc.path,
		"max_count", newConfig.MaxCount,
		"max_item_weight", newConfig.MaxItemWeight)

	if hc.OnReload != nil {
		hc.OnReload(oldConfig, newConfig)
	}
}

// parseInt extracts an integer from a decoded config value.
// Supports int, int64 and float64 (YAML/JSON decoders vary). Non-integral
// floats are rejected.
func parseInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case float64:
		if v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}

// parseConfig overlays the limits found in data on top of current.
// Keys may live under a "cache" section or at the top level.
// Values of the wrong type are ignored; values out of range are kept so that
// Validate rejects the whole reload.
func parseConfig(current Config, data map[string]interface{}) Config {
	config := current

	section, ok := data["cache"].(map[string]interface{})
	if !ok {
		section = data
	}

	if maxCount, ok := parseInt(section["max_count"]); ok {
		config.MaxCount = maxCount
	}

	if maxItemWeight, ok := parseInt(section["max_item_weight"]); ok {
		config.MaxItemWeight = maxItemWeight
	}

	return config
}
