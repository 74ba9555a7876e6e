package openstatus

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	healthv1 "github.com/openstatushq/openstatus-go/api/openstatus/health/v1"
	"github.com/openstatushq/openstatus-go/api/openstatus/health/v1/healthv1connect"
	monitorv1 "github.com/openstatushq/openstatus-go/api/openstatus/monitor/v1"
	"github.com/openstatushq/openstatus-go/api/openstatus/monitor/v1/monitorv1connect"
	notificationv1 "github.com/openstatushq/openstatus-go/api/openstatus/notification/v1"
	"github.com/openstatushq/openstatus-go/api/openstatus/notification/v1/notificationv1connect"
	statuspagev1 "github.com/openstatushq/openstatus-go/api/openstatus/statuspage/v1"
	"github.com/openstatushq/openstatus-go/clientx"
	"github.com/openstatushq/openstatus-go/core/errors"
	"github.com/openstatushq/openstatus-go/testingx"
)

func newMockAPI(t *testing.T) *testingx.Server {
	t.Helper()
	srv := testingx.NewServer(t)
	testingx.Respond[healthv1.CheckRequest](srv, healthv1connect.HealthServiceCheckProcedure,
		&healthv1.CheckResponse{Status: healthv1.ServingStatusServing})
	testingx.Respond[monitorv1.ListMonitorsRequest](srv, monitorv1connect.MonitorServiceListMonitorsProcedure,
		&monitorv1.ListMonitorsResponse{
			HTTPMonitors: []*monitorv1.HTTPMonitor{},
			TCPMonitors:  []*monitorv1.TCPMonitor{},
			DNSMonitors:  []*monitorv1.DNSMonitor{},
			TotalSize:    0,
		})
	return srv
}

func TestNewClient_ListMonitorsWithAPIKey(t *testing.T) {
	srv := newMockAPI(t)
	client := NewClient(WithAPIKey("abc123"), WithBaseURL(srv.URL()))

	resp, err := client.Monitor.ListMonitors(context.Background(), connect.NewRequest(&monitorv1.ListMonitorsRequest{}))
	require.NoError(t, err)

	assert.Equal(t, &monitorv1.ListMonitorsResponse{
		HTTPMonitors: []*monitorv1.HTTPMonitor{},
		TCPMonitors:  []*monitorv1.TCPMonitor{},
		DNSMonitors:  []*monitorv1.DNSMonitor{},
		TotalSize:    0,
	}, resp.Msg)

	call := srv.LastCall()
	assert.Equal(t, monitorv1connect.MonitorServiceListMonitorsProcedure, call.Procedure)
	assert.Equal(t, []string{"abc123"}, call.Header.Values(clientx.HeaderAPIKey))
	assert.Equal(t, "HTTP/2.0", call.Proto)
}

func TestNewClient_ZeroConfigHealth(t *testing.T) {
	srv := newMockAPI(t)
	t.Setenv(clientx.EnvAPIURL, srv.URL())

	client := NewClient()
	assert.Equal(t, srv.URL(), client.Transport().BaseURL())
	assert.Empty(t, client.Transport().Interceptors())

	resp, err := client.Health.Check(context.Background(), connect.NewRequest(&healthv1.CheckRequest{}))
	require.NoError(t, err)
	assert.Equal(t, healthv1.ServingStatusServing, resp.Msg.Status)

	assert.Empty(t, srv.LastCall().Header.Values(clientx.HeaderAPIKey))
}

func TestNewClient_KeysDoNotLeak(t *testing.T) {
	srv := newMockAPI(t)
	a := NewClient(WithAPIKey("key-a"), WithBaseURL(srv.URL()))
	b := NewClient(WithAPIKey("key-b"), WithBaseURL(srv.URL()))
	anon := NewClient(WithBaseURL(srv.URL()))

	assert.NotSame(t, a.Transport(), b.Transport())

	clients := []*Client{a, b, anon, b, a}
	for _, c := range clients {
		_, err := c.Health.Check(context.Background(), connect.NewRequest(&healthv1.CheckRequest{}))
		require.NoError(t, err)
	}

	calls := srv.Calls()
	require.Len(t, calls, len(clients))
	want := [][]string{{"key-a"}, {"key-b"}, nil, {"key-b"}, {"key-a"}}
	for i, call := range calls {
		assert.Equal(t, want[i], call.Header.Values(clientx.HeaderAPIKey), "call %d", i)
	}
}

func TestNewClient_BaseURLPrecedence(t *testing.T) {
	t.Setenv(clientx.EnvAPIURL, "")
	assert.Equal(t, clientx.DefaultBaseURL, NewClient().Transport().BaseURL())

	t.Setenv(clientx.EnvAPIURL, "http://localhost:3000/rpc")
	assert.Equal(t, "http://localhost:3000/rpc", NewClient().Transport().BaseURL())
	assert.Equal(t, "https://example.com/rpc", NewClient(WithBaseURL("https://example.com/rpc")).Transport().BaseURL())
}

func TestNewClient_PerCallHeaders(t *testing.T) {
	srv := newMockAPI(t)
	client := NewClient(WithAPIKey("abc123"), WithBaseURL(srv.URL()))

	req := connect.NewRequest(&healthv1.CheckRequest{})
	req.Header().Set("X-Trace-Tag", "canary")
	_, err := client.Health.Check(context.Background(), req)
	require.NoError(t, err)

	call := srv.LastCall()
	assert.Equal(t, "canary", call.Header.Get("X-Trace-Tag"))
	assert.Equal(t, "abc123", call.Header.Get(clientx.HeaderAPIKey))

	req = connect.NewRequest(&healthv1.CheckRequest{})
	req.Header().Set(clientx.HeaderAPIKey, "override")
	req.Header().Set("X-Trace-Tag", "canary")
	_, err = client.Health.Check(context.Background(), req)
	require.NoError(t, err)

	call = srv.LastCall()
	assert.Equal(t, []string{"override"}, call.Header.Values(clientx.HeaderAPIKey))
	assert.Equal(t, "canary", call.Header.Get("X-Trace-Tag"))
}

func TestNewClient_InterceptorOrder(t *testing.T) {
	srv := newMockAPI(t)

	var seenKey string
	caller := connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			seenKey = req.Header().Get(clientx.HeaderAPIKey)
			return next(ctx, req)
		}
	})

	logger := testingx.NewMockLogger(t)
	client := NewClient(
		WithAPIKey("abc123"),
		WithBaseURL(srv.URL()),
		WithInterceptors(caller),
		WithRequestID(),
		WithLogger(logger),
	)
	assert.Len(t, client.Transport().Interceptors(), 4)

	_, err := client.Health.Check(context.Background(), connect.NewRequest(&healthv1.CheckRequest{}))
	require.NoError(t, err)

	// Caller interceptors run before auth.
	assert.Empty(t, seenKey)

	// Logging runs inside request-id, so the generated ID is logged.
	requestID := srv.LastCall().Header.Get(clientx.HeaderRequestID)
	require.NotEmpty(t, requestID)
	logger.AssertLogged("INFO", "rpc completed")
	entry := logger.Entries()[len(logger.Entries())-1]
	got, ok := entry.Field("request_id")
	require.True(t, ok)
	assert.Equal(t, requestID, got)

	for _, e := range logger.Entries() {
		for _, f := range e.Fields {
			assert.NotEqual(t, "abc123", f)
		}
	}
}

func TestNewClient_RequestIDFromContext(t *testing.T) {
	srv := newMockAPI(t)
	client := NewClient(WithBaseURL(srv.URL()), WithRequestID())

	ctx := testingx.NewContextWithRequestID(t, "req-42")
	_, err := client.Health.Check(ctx, connect.NewRequest(&healthv1.CheckRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "req-42", srv.LastCall().Header.Get(clientx.HeaderRequestID))
}

func TestNewClient_Unavailable(t *testing.T) {
	srv := testingx.NewServer(t)
	url := srv.URL()
	srv.Close()

	client := NewClient(WithAPIKey("abc123"), WithBaseURL(url))
	_, err := client.Health.Check(context.Background(), connect.NewRequest(&healthv1.CheckRequest{}))

	testingx.AssertError(t, err, errors.CodeUnavailable)
	assert.True(t, errors.IsRetryable(err))

	var connectErr *connect.Error
	assert.ErrorAs(t, err, &connectErr)
}

func TestNewClient_CanceledMidFlight(t *testing.T) {
	srv := testingx.NewServer(t)
	started := make(chan struct{})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	testingx.Handle(srv, healthv1connect.HealthServiceCheckProcedure,
		func(ctx context.Context, _ *connect.Request[healthv1.CheckRequest]) (*connect.Response[healthv1.CheckResponse], error) {
			close(started)
			select {
			case <-ctx.Done():
			case <-release:
			}
			return connect.NewResponse(&healthv1.CheckResponse{}), nil
		})

	client := NewClient(WithBaseURL(srv.URL()))
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Health.Check(ctx, connect.NewRequest(&healthv1.CheckRequest{}))
	testingx.AssertError(t, err, errors.CodeCanceled)
	assert.True(t, errors.IsCanceled(err))
}

func TestNewClient_DeadlineExceeded(t *testing.T) {
	srv := newMockAPI(t)
	client := NewClient(WithBaseURL(srv.URL()))

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := client.Health.Check(ctx, connect.NewRequest(&healthv1.CheckRequest{}))
	testingx.AssertError(t, err, errors.CodeDeadlineExceeded)
}

func TestNewClient_ServerError(t *testing.T) {
	srv := testingx.NewServer(t)
	testingx.Fail[notificationv1.CheckNotificationLimitRequest, notificationv1.CheckNotificationLimitResponse](
		srv, notificationv1connect.NotificationServiceCheckNotificationLimitProcedure,
		connect.CodeUnauthenticated, "invalid api key")

	client := NewClient(WithAPIKey("wrong"), WithBaseURL(srv.URL()))
	_, err := client.Notification.CheckNotificationLimit(context.Background(),
		connect.NewRequest(&notificationv1.CheckNotificationLimitRequest{}))

	testingx.AssertError(t, err, errors.CodeUnauthenticated)
	assert.Equal(t, "invalid api key", errors.Message(err))
}

func TestNewClient_Unimplemented(t *testing.T) {
	srv := testingx.NewServer(t)
	client := NewClient(WithBaseURL(srv.URL()))

	_, err := client.StatusPage.ListStatusPages(context.Background(), connect.NewRequest(&statuspagev1.ListStatusPagesRequest{}))
	testingx.AssertError(t, err, errors.CodeUnimplemented)
}

func TestNewClient_Observability(t *testing.T) {
	srv := newMockAPI(t)

	reader := sdkmetric.NewManualReader()
	meters := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	recorder := tracetest.NewSpanRecorder()
	tracers := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() {
		_ = meters.Shutdown(context.Background())
		_ = tracers.Shutdown(context.Background())
	})

	client := NewClient(
		WithBaseURL(srv.URL()),
		WithMeterProvider(meters),
		WithTracerProvider(tracers),
	)
	assert.Len(t, client.Transport().Interceptors(), 2)

	_, err := client.Monitor.ListMonitors(context.Background(), connect.NewRequest(&monitorv1.ListMonitorsRequest{}))
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "openstatus.monitor.v1.MonitorService/ListMonitors", spans[0].Name())
	assert.NotEmpty(t, srv.LastCall().Header.Get("Traceparent"))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var names []string
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names = append(names, m.Name)
		}
	}
	assert.Contains(t, names, "rpc_client_requests_total")
}

func TestNewClient_HTTP1(t *testing.T) {
	srv := newMockAPI(t)
	client := NewClient(WithBaseURL(srv.URL()), WithHTTPVersion(clientx.HTTPVersion1))

	_, err := client.Health.Check(context.Background(), connect.NewRequest(&healthv1.CheckRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1", srv.LastCall().Proto)
}

func TestNewClient_Concurrent(t *testing.T) {
	srv := newMockAPI(t)
	client := NewClient(WithAPIKey("abc123"), WithBaseURL(srv.URL()))

	const n = 24
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = client.Health.Check(context.Background(), connect.NewRequest(&healthv1.CheckRequest{}))
			} else {
				_, err = client.Monitor.ListMonitors(context.Background(), connect.NewRequest(&monitorv1.ListMonitorsRequest{}))
			}
			if err != nil {
				errs <- fmt.Errorf("call %d: %w", i, err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}

	calls := srv.Calls()
	assert.Len(t, calls, n)
	for _, call := range calls {
		assert.Equal(t, "abc123", call.Header.Get(clientx.HeaderAPIKey))
		assert.True(t, strings.HasPrefix(call.Procedure, "/openstatus."))
	}
}
