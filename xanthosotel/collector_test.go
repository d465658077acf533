package xanthosotel

import (
	"context"
	"testing"

	"github.com/agilira/xanthos"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestOTelMetricsCollector_Interface(t *testing.T) {
	var _ xanthos.MetricsCollector = (*OTelMetricsCollector)(nil)
}

func TestNewOTelMetricsCollector(t *testing.T) {
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Errorf("Failed to shutdown provider: %v", err)
		}
	}()

	collector, err := NewOTelMetricsCollector(provider)
	if err != nil {
		t.Fatalf("NewOTelMetricsCollector() error = %v", err)
	}
	if collector == nil {
		t.Fatal("NewOTelMetricsCollector() returned nil")
	}
}

func TestNewOTelMetricsCollector_NilProvider(t *testing.T) {
	collector, err := NewOTelMetricsCollector(nil)
	if err == nil {
		t.Fatal("NewOTelMetricsCollector(nil) should return error")
	}
	if collector != nil {
		t.Fatal("NewOTelMetricsCollector(nil) should return nil collector")
	}
}

func TestOTelMetricsCollector_RecordGet(t *testing.T) {
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	collector, err := NewOTelMetricsCollector(provider)
	if err != nil {
		t.Fatalf("NewOTelMetricsCollector() error = %v", err)
	}

	collector.RecordGet(true)
	collector.RecordGet(false)
	collector.RecordGet(true)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Failed to collect metrics: %v", err)
	}
	if len(rm.ScopeMetrics) == 0 {
		t.Fatal("No scope metrics recorded")
	}

	var foundGets bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "xanthos_cache_gets_total" {
				foundGets = true
			}
		}
	}
	if !foundGets {
		t.Fatal("xanthos_cache_gets_total metric not found")
	}
}

func TestOTelMetricsCollector_RecordPutRemovalEvictionExpiration(t *testing.T) {
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	collector, err := NewOTelMetricsCollector(provider)
	if err != nil {
		t.Fatalf("NewOTelMetricsCollector() error = %v", err)
	}

	collector.RecordPut()
	collector.RecordRemoval()
	collector.RecordEviction()
	collector.RecordExpiration()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Failed to collect metrics: %v", err)
	}

	wantNames := map[string]bool{
		"xanthos_cache_puts_total":        false,
		"xanthos_cache_removals_total":    false,
		"xanthos_cache_evictions_total":   false,
		"xanthos_cache_expirations_total": false,
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if _, ok := wantNames[m.Name]; ok {
				wantNames[m.Name] = true
			}
		}
	}
	for name, found := range wantNames {
		if !found {
			t.Errorf("metric %s not found", name)
		}
	}
}
