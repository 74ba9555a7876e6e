package openstatus

import (
	"slices"

	"connectrpc.com/connect"

	"github.com/openstatushq/openstatus-go/api/openstatus/health/v1/healthv1connect"
	"github.com/openstatushq/openstatus-go/api/openstatus/maintenance/v1/maintenancev1connect"
	"github.com/openstatushq/openstatus-go/api/openstatus/monitor/v1/monitorv1connect"
	"github.com/openstatushq/openstatus-go/api/openstatus/notification/v1/notificationv1connect"
	"github.com/openstatushq/openstatus-go/api/openstatus/statuspage/v1/statuspagev1connect"
	"github.com/openstatushq/openstatus-go/api/openstatus/statusreport/v1/statusreportv1connect"
	"github.com/openstatushq/openstatus-go/clientx"
	"github.com/openstatushq/openstatus-go/core/log"
)

// Client exposes one client per OpenStatus service.
type Client struct {
	Monitor      monitorv1connect.MonitorServiceClient
	Health       healthv1connect.HealthServiceClient
	StatusReport statusreportv1connect.StatusReportServiceClient
	StatusPage   statuspagev1connect.StatusPageServiceClient
	Maintenance  maintenancev1connect.MaintenanceServiceClient
	Notification notificationv1connect.NotificationServiceClient

	transport *clientx.Transport
}

// NewClient builds a Client. It performs no I/O and never fails; a bad base
// URL or key surfaces on the first call.
func NewClient(opts ...Option) *Client {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return NewClientFromTransport(clientx.NewTransport(clientx.TransportOptions{
		BaseURL:      o.BaseURL,
		HTTPVersion:  o.HTTPVersion,
		HTTPClient:   o.HTTPClient,
		Timeout:      o.Timeout,
		Interceptors: o.interceptors(),
	}))
}

// NewClientFromTransport binds every service client to t.
func NewClientFromTransport(t *clientx.Transport) *Client {
	return &Client{
		Monitor:      clientx.NewConnectClient(t, monitorv1connect.NewMonitorServiceClient),
		Health:       clientx.NewConnectClient(t, healthv1connect.NewHealthServiceClient),
		StatusReport: clientx.NewConnectClient(t, statusreportv1connect.NewStatusReportServiceClient),
		StatusPage:   clientx.NewConnectClient(t, statuspagev1connect.NewStatusPageServiceClient),
		Maintenance:  clientx.NewConnectClient(t, maintenancev1connect.NewMaintenanceServiceClient),
		Notification: clientx.NewConnectClient(t, notificationv1connect.NewNotificationServiceClient),
		transport:    t,
	}
}

// Transport returns the transport shared by the service clients.
func (c *Client) Transport() *clientx.Transport {
	return c.transport
}

// interceptors assembles the chain, outermost first: caller interceptors,
// auth, request ID, tracing, metrics, logging.
func (o Options) interceptors() []connect.Interceptor {
	chain := slices.Clone(o.Interceptors)

	if o.APIKey != "" {
		chain = append(chain, clientx.AuthInterceptor(o.APIKey))
	}
	if o.RequestID {
		chain = append(chain, clientx.RequestIDInterceptor())
	}
	if o.TracerProvider != nil {
		chain = append(chain, clientx.TracingInterceptor(o.TracerProvider, o.Propagator))
	}
	if o.MeterProvider != nil {
		metrics, err := clientx.NewMetrics(o.MeterProvider)
		if err != nil {
			logger := o.Logger
			if logger == nil {
				logger = log.Nop()
			}
			logger.Warn("client metrics disabled", log.Str("error", err.Error()))
		} else {
			chain = append(chain, metrics.Interceptor())
		}
	}
	if o.Logger != nil {
		chain = append(chain, clientx.LoggingInterceptor(o.Logger))
	}

	return chain
}
