// Package xanthosotel provides OpenTelemetry integration for xanthos
// cache metrics.
//
// This package implements the xanthos.MetricsCollector interface using
// OpenTelemetry, enabling observability backends (Prometheus, Jaeger,
// DataDog, Grafana) to consume get/put/removal/eviction/expiration
// counts without xanthos importing any OTEL package directly.
//
// # Usage
//
//	import (
//	    "github.com/agilira/xanthos"
//	    "github.com/agilira/xanthos/xanthosotel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	collector, _ := xanthosotel.NewOTelMetricsCollector(provider)
//
//	cache, _ := xanthos.NewConfiguration().
//	    WithMetricsCollector(collector).
//	    Build()
//
// # Metrics exposed
//
//   - xanthos_cache_gets_total: counter of Get calls, with a "result"
//     attribute of "hit" or "miss"
//   - xanthos_cache_puts_total: counter of Put-family operations
//   - xanthos_cache_removals_total: counter of explicit removals
//   - xanthos_cache_evictions_total: counter of capacity-driven evictions
//   - xanthos_cache_expirations_total: counter of expiry-driven removals
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0
package xanthosotel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements xanthos.MetricsCollector using
// OpenTelemetry counters. Thread-safe; the underlying OTEL instruments
// are safe for concurrent use.
type OTelMetricsCollector struct {
	gets        metric.Int64Counter
	puts        metric.Int64Counter
	removals    metric.Int64Counter
	evictions   metric.Int64Counter
	expirations metric.Int64Counter
}

// Options configures OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/xanthos"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful for distinguishing
// metrics from multiple cache instances.
func WithMeterName(name string) Option {
	return func(o *Options) { o.MeterName = name }
}

// NewOTelMetricsCollector creates a collector backed by provider. provider
// must not be nil.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/agilira/xanthos"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.gets, err = meter.Int64Counter(
		"xanthos_cache_gets_total",
		metric.WithDescription("Total number of Get-family calls, by hit/miss result"),
	)
	if err != nil {
		return nil, err
	}

	collector.puts, err = meter.Int64Counter(
		"xanthos_cache_puts_total",
		metric.WithDescription("Total number of put-family operations"),
	)
	if err != nil {
		return nil, err
	}

	collector.removals, err = meter.Int64Counter(
		"xanthos_cache_removals_total",
		metric.WithDescription("Total number of explicit removals"),
	)
	if err != nil {
		return nil, err
	}

	collector.evictions, err = meter.Int64Counter(
		"xanthos_cache_evictions_total",
		metric.WithDescription("Total number of capacity-driven evictions"),
	)
	if err != nil {
		return nil, err
	}

	collector.expirations, err = meter.Int64Counter(
		"xanthos_cache_expirations_total",
		metric.WithDescription("Total number of expiry-driven removals"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordGet records a Get-family call and whether it was a hit.
func (c *OTelMetricsCollector) RecordGet(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.gets.Add(context.Background(), 1, metric.WithAttributes(attribute.String("result", result)))
}

// RecordPut records a put-family operation.
func (c *OTelMetricsCollector) RecordPut() {
	c.puts.Add(context.Background(), 1)
}

// RecordRemoval records an explicit removal.
func (c *OTelMetricsCollector) RecordRemoval() {
	c.removals.Add(context.Background(), 1)
}

// RecordEviction records a capacity-driven eviction.
func (c *OTelMetricsCollector) RecordEviction() {
	c.evictions.Add(context.Background(), 1)
}

// RecordExpiration records an expiry-driven removal.
func (c *OTelMetricsCollector) RecordExpiration() {
	c.expirations.Add(context.Background(), 1)
}
