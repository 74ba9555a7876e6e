package obsx

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/openstatushq/openstatus-go/obsx/internal"
)

// Options describes the process the metrics belong to.
type Options struct {
	ServiceName    string            // required, becomes service.name
	ServiceVersion string            // optional service.version
	ResourceAttrs  map[string]string // extra resource attributes

	// OTLPEndpoint, when set, also pushes metrics over OTLP/gRPC every
	// ExportInterval (30s by default) and once more on Shutdown.
	OTLPEndpoint   string
	ExportInterval time.Duration
}

// TracingOptions configures NewTracerProvider.
type TracingOptions struct {
	ServiceName    string
	ServiceVersion string
	ResourceAttrs  map[string]string
	Endpoint       string  // OTLP/gRPC collector URL, required
	SampleRatio    float64 // fraction of root spans kept; 0 keeps all
}

// Provider is a meter provider whose readings are exposed in the
// Prometheus text format. Call Shutdown when done.
type Provider struct {
	impl *internal.Provider
}

// NewProvider builds a Provider backed by its own Prometheus registry. It
// does not touch the global OpenTelemetry state.
func NewProvider(ctx context.Context, opts Options) (*Provider, error) {
	impl, err := internal.NewProvider(ctx, internal.ProviderOptions{
		ServiceName:    opts.ServiceName,
		ServiceVersion: opts.ServiceVersion,
		ResourceAttrs:  opts.ResourceAttrs,
		OTLPEndpoint:   opts.OTLPEndpoint,
		ExportInterval: opts.ExportInterval,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{impl: impl}, nil
}

// NewTracerProvider returns a tracer provider that batches spans to an OTLP
// collector, for use with openstatus.WithTracerProvider. The caller owns it
// and must call Shutdown to flush.
func NewTracerProvider(ctx context.Context, opts TracingOptions) (*sdktrace.TracerProvider, error) {
	return internal.NewTracerProvider(ctx, internal.TracerOptions{
		ServiceName:    opts.ServiceName,
		ServiceVersion: opts.ServiceVersion,
		ResourceAttrs:  opts.ResourceAttrs,
		Endpoint:       opts.Endpoint,
		SampleRatio:    opts.SampleRatio,
	})
}

// MeterProvider is what openstatus.WithMeterProvider expects.
func (p *Provider) MeterProvider() *sdkmetric.MeterProvider {
	return p.impl.MeterProvider
}

// Meter returns a named meter for instruments of the caller's own.
func (p *Provider) Meter(name string) metric.Meter {
	return p.impl.MeterProvider.Meter(name)
}

// PrometheusHandler serves the registry for scraping, for long-running
// programs that embed the SDK:
//
//	mux.Handle("/metrics", provider.PrometheusHandler())
func (p *Provider) PrometheusHandler() http.Handler {
	return p.impl.GetPrometheusHandler()
}

// WriteText writes a one-off Prometheus text snapshot to w.
func (p *Provider) WriteText(w io.Writer) error {
	return p.impl.WriteText(w)
}

// EnableRuntimeMetrics adds goroutine, heap, stack and GC gauges.
func (p *Provider) EnableRuntimeMetrics(ctx context.Context) error {
	return internal.EnableRuntimeMetrics(ctx, p.impl.MeterProvider)
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.impl.Shutdown(ctx)
}
