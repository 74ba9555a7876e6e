package openstatus

import (
	"time"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/openstatushq/openstatus-go/clientx"
	"github.com/openstatushq/openstatus-go/core/log"
)

// HTTP protocol versions accepted by WithHTTPVersion.
const (
	HTTPVersion1 = clientx.HTTPVersion1
	HTTPVersion2 = clientx.HTTPVersion2
)

// Options holds the settings NewClient builds a Client from.
type Options struct {
	APIKey         string                        // Sent as x-openstatus-key; empty sends nothing
	BaseURL        string                        // API root; see clientx.ResolveBaseURL
	HTTPVersion    string                        // "2" (default) or "1.1"
	HTTPClient     connect.HTTPClient            // Replaces the built HTTP client
	Timeout        time.Duration                 // Whole-request timeout of the built HTTP client
	Logger         log.Logger                    // Logs every call when set
	MeterProvider  metric.MeterProvider          // Records call counts and latency when set
	TracerProvider trace.TracerProvider          // Opens a client span per call when set
	Propagator     propagation.TextMapPropagator // Injects trace context; W3C by default
	RequestID      bool                          // Sends X-Request-Id on every call
	Interceptors   []connect.Interceptor         // Run before the built-in interceptors
}

// Option configures a Client.
type Option func(*Options)

// WithAPIKey sets the API key sent in the x-openstatus-key header. The key is
// sent as is; pass "Bearer <key>" verbatim if a proxy expects that form.
func WithAPIKey(key string) Option {
	return func(o *Options) {
		o.APIKey = key
	}
}

// WithBaseURL sets the API root. It wins over OPENSTATUS_API_URL.
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

// WithHTTPVersion selects the HTTP protocol, "2" or "1.1".
func WithHTTPVersion(version string) Option {
	return func(o *Options) {
		o.HTTPVersion = version
	}
}

// WithHTTPClient replaces the HTTP client. WithHTTPVersion and WithTimeout
// have no effect on a client supplied this way.
func WithHTTPClient(c connect.HTTPClient) Option {
	return func(o *Options) {
		o.HTTPClient = c
	}
}

// WithTimeout bounds every request, including reading the response body.
// Prefer context deadlines for per-call limits.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithLogger logs every call. The API key is never logged.
func WithLogger(logger log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMeterProvider records rpc_client_requests_total and
// rpc_client_request_duration_seconds through provider.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *Options) {
		o.MeterProvider = provider
	}
}

// WithTracerProvider starts a client span for every call.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = provider
	}
}

// WithPropagator sets the propagator used with WithTracerProvider.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(o *Options) {
		o.Propagator = p
	}
}

// WithRequestID sends an X-Request-Id header on every call, taken from the
// context (see core/identity) or generated.
func WithRequestID() Option {
	return func(o *Options) {
		o.RequestID = true
	}
}

// WithInterceptors adds interceptors ahead of the built-in ones. They see
// the request before the API key is attached.
func WithInterceptors(interceptors ...connect.Interceptor) Option {
	return func(o *Options) {
		o.Interceptors = append(o.Interceptors, interceptors...)
	}
}
