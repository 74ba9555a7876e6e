package clientx

import (
	"context"
	"strings"
	"time"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names recorded by Metrics.
const (
	MetricRequests = "rpc_client_requests_total"
	MetricDuration = "rpc_client_request_duration_seconds"
	MetricInFlight = "rpc_client_requests_in_flight"
)

// Latency buckets in seconds. The hosted API answers most calls well under
// a second; the tail covers slow list calls over poor links.
var durationBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Metrics records one counter, one latency histogram and one in-flight
// gauge per procedure. The zero value and a nil *Metrics record nothing.
type Metrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
}

// NewMetrics creates the instruments on provider. A nil provider yields a
// Metrics that records nothing.
func NewMetrics(provider metric.MeterProvider) (*Metrics, error) {
	if provider == nil {
		return &Metrics{}, nil
	}
	meter := provider.Meter(instrumentationName)

	var (
		m   Metrics
		err error
	)
	if m.requests, err = meter.Int64Counter(MetricRequests,
		metric.WithDescription("Outbound OpenStatus RPCs by service, method and code."),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, err
	}
	if m.duration, err = meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Outbound OpenStatus RPC latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	); err != nil {
		return nil, err
	}
	if m.inFlight, err = meter.Int64UpDownCounter(MetricInFlight,
		metric.WithDescription("Outbound OpenStatus RPCs awaiting a response."),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Metrics) enabled() bool {
	return m != nil && m.requests != nil
}

// Interceptor records every call that passes through it. Attributes are
// rpc_service, rpc_method and rpc_code ("ok" on success).
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		if !m.enabled() {
			return next
		}
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			service, method := splitProcedure(req.Spec().Procedure)
			target := metric.WithAttributes(
				attribute.String("rpc_service", service),
				attribute.String("rpc_method", method),
			)

			m.inFlight.Add(ctx, 1, target)
			start := time.Now()
			resp, err := next(ctx, req)
			elapsed := time.Since(start).Seconds()
			m.inFlight.Add(ctx, -1, target)

			result := metric.WithAttributes(
				attribute.String("rpc_service", service),
				attribute.String("rpc_method", method),
				attribute.String("rpc_code", codeOf(err)),
			)
			m.requests.Add(ctx, 1, result)
			m.duration.Record(ctx, elapsed, result)
			return resp, err
		}
	}
}

// splitProcedure turns "/pkg.Service/Method" into its service and method.
func splitProcedure(procedure string) (service, method string) {
	service, method, ok := strings.Cut(strings.TrimPrefix(procedure, "/"), "/")
	if !ok {
		return "", service
	}
	return service, method
}
