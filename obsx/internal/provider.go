// Package internal builds the meter provider behind obsx.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

const shutdownTimeout = 5 * time.Second

var errNoRegistry = errors.New("prometheus registry not initialized")

// ProviderOptions describes the process behind the metrics. OTLPEndpoint
// adds a push reader next to the Prometheus one.
type ProviderOptions struct {
	ServiceName    string
	ServiceVersion string
	ResourceAttrs  map[string]string
	OTLPEndpoint   string
	ExportInterval time.Duration
}

// Provider pairs a meter provider with the private registry its Prometheus
// reader writes into.
type Provider struct {
	MeterProvider *metric.MeterProvider
	registry      *promclient.Registry
}

// NewProvider builds the resource, registry, exporter and meter provider.
// The global OpenTelemetry meter provider is left untouched.
func NewProvider(ctx context.Context, opts ProviderOptions) (*Provider, error) {
	res, err := buildResource(ctx, opts.ServiceName, opts.ServiceVersion, opts.ResourceAttrs)
	if err != nil {
		return nil, err
	}

	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(
		prometheus.WithRegisterer(registry),
		prometheus.WithoutUnits(),
		prometheus.WithoutScopeInfo(),
		prometheus.WithoutCounterSuffixes(),
	)
	if err != nil {
		return nil, fmt.Errorf("build prometheus exporter: %w", err)
	}

	mpOpts := []metric.Option{metric.WithResource(res), metric.WithReader(exporter)}
	if opts.OTLPEndpoint != "" {
		reader, err := newOTLPMetricReader(ctx, opts.OTLPEndpoint, opts.ExportInterval)
		if err != nil {
			return nil, err
		}
		mpOpts = append(mpOpts, metric.WithReader(reader))
	}

	return &Provider{
		MeterProvider: metric.NewMeterProvider(mpOpts...),
		registry:      registry,
	}, nil
}

func buildResource(ctx context.Context, name, version string, extra map[string]string) (*resource.Resource, error) {
	if name == "" {
		return nil, errors.New("service name is required")
	}

	attrs := []attribute.KeyValue{semconv.ServiceName(name)}
	if version != "" {
		attrs = append(attrs, semconv.ServiceVersion(version))
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, attribute.String(k, extra[k]))
	}

	res, err := resource.New(ctx, resource.WithSchemaURL(semconv.SchemaURL), resource.WithAttributes(attrs...))
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}
	return res, nil
}

// GetPrometheusHandler serves the registry, or 503 when there is none.
func (p *Provider) GetPrometheusHandler() http.Handler {
	if p.registry == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, errNoRegistry.Error(), http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// WriteText gathers the registry into the Prometheus text format.
func (p *Provider) WriteText(w io.Writer) error {
	if p.registry == nil {
		return errNoRegistry
	}
	families, err := p.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Shutdown stops the meter provider, waiting at most shutdownTimeout.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.MeterProvider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := p.MeterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown meter provider: %w", err)
	}
	return nil
}
