package obsx

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	healthv1 "github.com/openstatushq/openstatus-go/api/openstatus/health/v1"
	"github.com/openstatushq/openstatus-go/api/openstatus/health/v1/healthv1connect"
	"github.com/openstatushq/openstatus-go/clientx"
	"github.com/openstatushq/openstatus-go/testingx"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	provider, err := NewProvider(context.Background(), Options{
		ServiceName:    "openstatus-test",
		ServiceVersion: "1.0.0",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(ctx)
	})
	return provider
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"valid options", Options{ServiceName: "openstatus-cli", ServiceVersion: "1.0.0"}, false},
		{"missing service name", Options{ServiceVersion: "1.0.0"}, true},
		{"with resource attributes", Options{
			ServiceName:   "openstatus-cli",
			ResourceAttrs: map[string]string{"environment": "test"},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(context.Background(), tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, provider)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, provider.MeterProvider())
			assert.NoError(t, provider.Shutdown(context.Background()))
		})
	}
}

func TestProvider_RecordsClientCalls(t *testing.T) {
	provider := newTestProvider(t)

	srv := testingx.NewServer(t)
	testingx.Respond[healthv1.CheckRequest](srv, healthv1connect.HealthServiceCheckProcedure, &healthv1.CheckResponse{
		Status: healthv1.ServingStatusServing,
	})

	metrics, err := clientx.NewMetrics(provider.MeterProvider())
	require.NoError(t, err)

	transport := clientx.NewTransport(clientx.TransportOptions{
		BaseURL:      srv.URL(),
		Interceptors: []connect.Interceptor{metrics.Interceptor()},
	})

	client := healthv1connect.NewHealthServiceClient(transport.HTTPClient(), transport.BaseURL(), transport.ClientOptions()...)
	for i := 0; i < 2; i++ {
		_, err := client.Check(context.Background(), connect.NewRequest(&healthv1.CheckRequest{}))
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, provider.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "rpc_client_requests")
	assert.Contains(t, out, `rpc_method="Check"`)
	assert.Contains(t, out, `rpc_code="ok"`)

	rec := httptest.NewRecorder()
	provider.PrometheusHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rpc_client_requests")
}

func TestProvider_RuntimeMetrics(t *testing.T) {
	provider := newTestProvider(t)
	require.NoError(t, provider.EnableRuntimeMetrics(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, provider.WriteText(&buf))
	assert.Contains(t, buf.String(), "process_runtime_go_goroutines")
}

func TestProvider_Meter(t *testing.T) {
	provider := newTestProvider(t)

	counter, err := provider.Meter("cli").Int64Counter("cli_commands")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	var buf bytes.Buffer
	require.NoError(t, provider.WriteText(&buf))
	assert.Contains(t, buf.String(), "cli_commands")
}

func TestNewTracerProvider(t *testing.T) {
	_, err := NewTracerProvider(context.Background(), TracingOptions{ServiceName: "openstatus-cli"})
	assert.Error(t, err)

	tp, err := NewTracerProvider(context.Background(), TracingOptions{
		ServiceName: "openstatus-cli",
		Endpoint:    "http://127.0.0.1:4317",
	})
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "call")
	assert.True(t, span.SpanContext().IsSampled())
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = tp.Shutdown(ctx)
}
