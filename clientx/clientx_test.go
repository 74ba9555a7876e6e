package clientx

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	healthv1 "github.com/openstatushq/openstatus-go/api/openstatus/health/v1"
	"github.com/openstatushq/openstatus-go/api/openstatus/health/v1/healthv1connect"
	monitorv1 "github.com/openstatushq/openstatus-go/api/openstatus/monitor/v1"
	"github.com/openstatushq/openstatus-go/api/openstatus/monitor/v1/monitorv1connect"
	"github.com/openstatushq/openstatus-go/testingx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		env      string
		want     string
	}{
		{"default", "", "", DefaultBaseURL},
		{"env", "", "http://localhost:3000/rpc", "http://localhost:3000/rpc"},
		{"explicit wins over env", "https://staging.example.com/rpc", "http://localhost:3000/rpc", "https://staging.example.com/rpc"},
		{"explicit without env", LegacyBaseURL, "", LegacyBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAPIURL, tt.env)
			assert.Equal(t, tt.want, ResolveBaseURL(tt.explicit))
		})
	}
}

func TestNewTransport_ReadsEnvOnce(t *testing.T) {
	srv := newHealthServer(t)
	t.Setenv(EnvAPIURL, srv.URL())

	tr := NewTransport(TransportOptions{})
	client := NewConnectClient(tr, healthv1connect.NewHealthServiceClient)

	t.Setenv(EnvAPIURL, "http://127.0.0.1:1/rpc")
	assert.Equal(t, srv.URL(), tr.BaseURL())

	_, err := client.Check(context.Background(), connect.NewRequest(&healthv1.CheckRequest{}))
	require.NoError(t, err)
	assert.Equal(t, healthv1connect.HealthServiceCheckProcedure, srv.LastCall().Procedure)
}

func TestNewTransport_Defaults(t *testing.T) {
	t.Setenv(EnvAPIURL, "")

	tr := NewTransport(TransportOptions{})
	assert.Equal(t, DefaultBaseURL, tr.BaseURL())
	assert.Equal(t, HTTPVersion2, tr.HTTPVersion())
	assert.Empty(t, tr.Interceptors())

	hc, ok := tr.HTTPClient().(*http.Client)
	require.True(t, ok)
	assert.Zero(t, hc.Timeout)

	// Codec only.
	assert.Len(t, tr.ClientOptions(), 1)
}

func TestNewTransport_Options(t *testing.T) {
	auth := AuthInterceptor("k")
	tr := NewTransport(TransportOptions{
		BaseURL:      "http://localhost:3000/rpc",
		HTTPVersion:  HTTPVersion1,
		Timeout:      5 * time.Second,
		Interceptors: []connect.Interceptor{auth},
		Options:      []connect.ClientOption{connect.WithSendGzip()},
	})

	assert.Equal(t, "http://localhost:3000/rpc", tr.BaseURL())
	assert.Equal(t, HTTPVersion1, tr.HTTPVersion())
	assert.Equal(t, 5*time.Second, tr.HTTPClient().(*http.Client).Timeout)
	assert.Len(t, tr.Interceptors(), 1)
	assert.Len(t, tr.ClientOptions(), 3)

	// Interceptors returns a copy.
	tr.Interceptors()[0] = nil
	assert.NotNil(t, tr.Interceptors()[0])
}

func TestNewTransport_CustomHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: time.Minute}
	tr := NewTransport(TransportOptions{HTTPClient: custom, Timeout: time.Second})
	assert.Same(t, custom, tr.HTTPClient())
}

func TestNewConnectClient_EndToEnd(t *testing.T) {
	srv := testingx.NewServer(t)
	testingx.Respond[monitorv1.ListMonitorsRequest](srv, monitorv1connect.MonitorServiceListMonitorsProcedure,
		&monitorv1.ListMonitorsResponse{})

	tr := NewTransport(TransportOptions{
		BaseURL:      srv.URL() + "/",
		Interceptors: []connect.Interceptor{AuthInterceptor("abc123")},
	})
	client := NewConnectClient(tr, monitorv1connect.NewMonitorServiceClient)

	resp, err := client.ListMonitors(context.Background(), connect.NewRequest(&monitorv1.ListMonitorsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.HTTPMonitors)
	assert.Zero(t, resp.Msg.TotalSize)

	call := srv.LastCall()
	assert.Equal(t, "abc123", call.Header.Get(HeaderAPIKey))
	assert.Equal(t, "HTTP/2.0", call.Proto)
	assert.Equal(t, "application/json", call.Header.Get("Content-Type"))
}

func TestNewConnectClient_HTTP1(t *testing.T) {
	srv := testingx.NewServer(t)
	testingx.Respond[healthv1.CheckRequest](srv, healthv1connect.HealthServiceCheckProcedure,
		&healthv1.CheckResponse{Status: healthv1.ServingStatusServing})

	tr := NewTransport(TransportOptions{BaseURL: srv.URL(), HTTPVersion: HTTPVersion1})
	client := NewConnectClient(tr, healthv1connect.NewHealthServiceClient)

	_, err := client.Check(context.Background(), connect.NewRequest(&healthv1.CheckRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1", srv.LastCall().Proto)
}

func TestTransport_ConcurrentCalls(t *testing.T) {
	srv := testingx.NewServer(t)
	testingx.Respond[healthv1.CheckRequest](srv, healthv1connect.HealthServiceCheckProcedure,
		&healthv1.CheckResponse{Status: healthv1.ServingStatusServing})

	tr := NewTransport(TransportOptions{
		BaseURL:      srv.URL(),
		Interceptors: []connect.Interceptor{AuthInterceptor("abc123"), RequestIDInterceptor()},
	})
	client := NewConnectClient(tr, healthv1connect.NewHealthServiceClient)

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Check(context.Background(), connect.NewRequest(&healthv1.CheckRequest{}))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	ids := map[string]bool{}
	for _, call := range srv.Calls() {
		assert.Equal(t, "abc123", call.Header.Get(HeaderAPIKey))
		ids[call.Header.Get(HeaderRequestID)] = true
	}
	assert.Len(t, ids, n, "every call gets its own request ID")
}
