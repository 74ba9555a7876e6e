// Package clientx builds the Connect transport shared by the OpenStatus
// service clients.
//
// Overview:
//   - Responsibility: Resolve the API base URL, pick the HTTP protocol and hold the interceptor chain
//   - Key Types: TransportOptions for construction, Transport as the immutable result
//   - Concurrency Model: Transport is read-only after NewTransport and safe for concurrent use
//   - Error Semantics: Construction never fails; call errors surface as *connect.Error
//
// Usage:
//
//	t := clientx.NewTransport(clientx.TransportOptions{
//		Interceptors: []connect.Interceptor{clientx.AuthInterceptor(key)},
//	})
//	monitors := clientx.NewConnectClient(t, monitorv1connect.NewMonitorServiceClient)
package clientx

import (
	"net/http"
	"slices"
	"time"

	"connectrpc.com/connect"
	"github.com/openstatushq/openstatus-go/clientx/internal"
	"github.com/openstatushq/openstatus-go/codecx"
	"github.com/openstatushq/openstatus-go/configx"
)

const (
	// DefaultBaseURL is the RPC root of the hosted API.
	DefaultBaseURL = "https://api.openstatus.dev/rpc"

	// LegacyBaseURL is the API root used before RPC procedures moved under /rpc.
	//
	// Deprecated: use DefaultBaseURL.
	LegacyBaseURL = "https://api.openstatus.dev"

	// EnvAPIURL overrides DefaultBaseURL when no base URL is given explicitly.
	EnvAPIURL = configx.DefaultPrefix + "API_URL"
)

// HTTP protocol versions accepted in TransportOptions.HTTPVersion.
const (
	HTTPVersion1 = internal.HTTP1
	HTTPVersion2 = internal.HTTP2
)

// TransportOptions configures NewTransport. The zero value is valid.
type TransportOptions struct {
	BaseURL      string                 // Explicit API root; wins over EnvAPIURL
	HTTPVersion  string                 // "2" (default) or "1.1"
	HTTPClient   connect.HTTPClient     // Replaces the built client; HTTPVersion and Timeout are then ignored
	Timeout      time.Duration          // http.Client timeout, zero means none
	Interceptors []connect.Interceptor  // Outermost first
	Options      []connect.ClientOption // Extra options appended after the codec and interceptors
}

// Transport is the shared connection setup of one client façade.
type Transport struct {
	baseURL      string
	httpVersion  string
	httpClient   connect.HTTPClient
	interceptors []connect.Interceptor
	options      []connect.ClientOption
}

// NewTransport resolves the base URL and builds the HTTP client. It performs
// no I/O.
func NewTransport(opts TransportOptions) *Transport {
	version := opts.HTTPVersion
	if version != HTTPVersion1 {
		version = HTTPVersion2
	}

	baseURL := ResolveBaseURL(opts.BaseURL)

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: internal.NewRoundTripper(baseURL, version),
			Timeout:   opts.Timeout,
		}
	}

	return &Transport{
		baseURL:      baseURL,
		httpVersion:  version,
		httpClient:   httpClient,
		interceptors: slices.Clone(opts.Interceptors),
		options:      slices.Clone(opts.Options),
	}
}

// ResolveBaseURL applies the base URL precedence: explicit, then the
// OPENSTATUS_API_URL environment variable, then DefaultBaseURL.
func ResolveBaseURL(explicit string) string {
	if explicit != "" {
		return explicit
	}

	var env struct {
		APIURL string `env:"API_URL"`
	}
	err := configx.Load(&env, configx.WithPrefix(configx.DefaultPrefix), configx.WithoutValidation())
	if err == nil && env.APIURL != "" {
		return env.APIURL
	}
	return DefaultBaseURL
}

// BaseURL returns the resolved API root.
func (t *Transport) BaseURL() string { return t.baseURL }

// HTTPVersion returns HTTPVersion1 or HTTPVersion2.
func (t *Transport) HTTPVersion() string { return t.httpVersion }

// HTTPClient returns the client every service call goes through.
func (t *Transport) HTTPClient() connect.HTTPClient { return t.httpClient }

// Interceptors returns a copy of the interceptor chain, outermost first.
func (t *Transport) Interceptors() []connect.Interceptor {
	return slices.Clone(t.interceptors)
}

// ClientOptions returns the Connect options every service client is built
// with: the JSON codec, the interceptor chain and any extra options.
func (t *Transport) ClientOptions() []connect.ClientOption {
	opts := make([]connect.ClientOption, 0, 2+len(t.options))
	opts = append(opts, connect.WithCodec(codecx.JSON))
	if len(t.interceptors) > 0 {
		opts = append(opts, connect.WithInterceptors(t.interceptors...))
	}
	return append(opts, t.options...)
}

// NewConnectClient binds a generated client constructor to t.
func NewConnectClient[T any](t *Transport, newClient func(connect.HTTPClient, string, ...connect.ClientOption) T) T {
	return newClient(t.httpClient, t.baseURL, t.ClientOptions()...)
}
