package internal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const defaultExportInterval = 30 * time.Second

// TracerOptions configures an OTLP/gRPC span exporter.
type TracerOptions struct {
	ServiceName    string
	ServiceVersion string
	ResourceAttrs  map[string]string
	Endpoint       string  // e.g. http://localhost:4317; http means plaintext
	SampleRatio    float64 // 0 or >= 1 samples everything
}

// NewTracerProvider builds a batching tracer provider that exports to
// opts.Endpoint. The global tracer provider is left untouched.
func NewTracerProvider(ctx context.Context, opts TracerOptions) (*sdktrace.TracerProvider, error) {
	if opts.Endpoint == "" {
		return nil, errors.New("otlp endpoint is required")
	}
	res, err := buildResource(ctx, opts.ServiceName, opts.ServiceVersion, opts.ResourceAttrs)
	if err != nil {
		return nil, err
	}

	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpointURL(opts.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("build otlp trace exporter: %w", err)
	}

	sampler := sdktrace.AlwaysSample()
	if opts.SampleRatio > 0 && opts.SampleRatio < 1 {
		sampler = sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	), nil
}

func newOTLPMetricReader(ctx context.Context, endpoint string, interval time.Duration) (metric.Reader, error) {
	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("build otlp metric exporter: %w", err)
	}
	if interval <= 0 {
		interval = defaultExportInterval
	}
	return metric.NewPeriodicReader(exporter, metric.WithInterval(interval)), nil
}
