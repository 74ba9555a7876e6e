package internal

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newProvider(t *testing.T) *Provider {
	t.Helper()
	provider, err := NewProvider(context.Background(), ProviderOptions{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
	})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return provider
}

func TestNewProvider_Success(t *testing.T) {
	provider := newProvider(t)
	if provider.MeterProvider == nil {
		t.Error("MeterProvider should not be nil")
	}
}

func TestNewProvider_EmptyServiceName(t *testing.T) {
	provider, err := NewProvider(context.Background(), ProviderOptions{ServiceVersion: "1.0.0"})
	if err == nil {
		t.Fatal("NewProvider() should return error for empty service name")
	}
	if provider != nil {
		t.Error("NewProvider() should return nil provider on error")
	}
	if err.Error() != "service name is required" {
		t.Errorf("Error message = %q, want %q", err.Error(), "service name is required")
	}
}

func TestNewProvider_WithResourceAttrs(t *testing.T) {
	provider, err := NewProvider(context.Background(), ProviderOptions{
		ServiceName: "test-service",
		ResourceAttrs: map[string]string{
			"env":    "test",
			"region": "us-east-1",
		},
	})
	if err != nil {
		t.Fatalf("NewProvider() error = %v, want nil", err)
	}
	_ = provider.Shutdown(context.Background())
}

func TestProvider_GetPrometheusHandler(t *testing.T) {
	provider := newProvider(t)
	if err := EnableRuntimeMetrics(context.Background(), provider.MeterProvider); err != nil {
		t.Fatalf("EnableRuntimeMetrics() error = %v", err)
	}

	w := httptest.NewRecorder()
	provider.GetPrometheusHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Handler status code = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "process_runtime_go_goroutines") {
		t.Errorf("runtime metrics missing from body:\n%s", w.Body.String())
	}
}

func TestProvider_GetPrometheusHandler_NilRegistry(t *testing.T) {
	provider := &Provider{}

	w := httptest.NewRecorder()
	provider.GetPrometheusHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Handler status code = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestProvider_WriteText(t *testing.T) {
	provider := newProvider(t)
	if err := EnableRuntimeMetrics(context.Background(), provider.MeterProvider); err != nil {
		t.Fatalf("EnableRuntimeMetrics() error = %v", err)
	}

	var buf bytes.Buffer
	if err := provider.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if !strings.Contains(buf.String(), "process_runtime_go_goroutines") {
		t.Errorf("unexpected text output:\n%s", buf.String())
	}

	if err := (&Provider{}).WriteText(&buf); err == nil {
		t.Error("WriteText() without registry should fail")
	}
}

func TestProvider_Shutdown_NilProvider(t *testing.T) {
	provider := &Provider{}
	if err := provider.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v, want nil", err)
	}
}

func TestNewTracerProvider(t *testing.T) {
	if _, err := NewTracerProvider(context.Background(), TracerOptions{ServiceName: "test-service"}); err == nil {
		t.Fatal("NewTracerProvider() should fail without an endpoint")
	}
	if _, err := NewTracerProvider(context.Background(), TracerOptions{Endpoint: "http://127.0.0.1:4317"}); err == nil {
		t.Fatal("NewTracerProvider() should fail without a service name")
	}

	tp, err := NewTracerProvider(context.Background(), TracerOptions{
		ServiceName: "test-service",
		Endpoint:    "http://127.0.0.1:4317",
		SampleRatio: 0.5,
	})
	if err != nil {
		t.Fatalf("NewTracerProvider() error = %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = tp.Shutdown(ctx)
}

func TestNewProvider_OTLPReader(t *testing.T) {
	provider, err := NewProvider(context.Background(), ProviderOptions{
		ServiceName:    "test-service",
		OTLPEndpoint:   "http://127.0.0.1:4317",
		ExportInterval: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if provider.MeterProvider == nil {
		t.Fatal("MeterProvider should not be nil")
	}
	// The collector is absent; only the Prometheus side must still work.
	var buf bytes.Buffer
	if err := provider.WriteText(&buf); err != nil {
		t.Errorf("WriteText() error = %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = provider.Shutdown(ctx)
}
