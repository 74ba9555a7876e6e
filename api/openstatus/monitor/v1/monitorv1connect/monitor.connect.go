// Package monitorv1connect binds the openstatus.monitor.v1.MonitorService procedures to Connect clients.
package monitorv1connect

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/openstatushq/openstatus-go/api/openstatus/monitor/v1"
)

// MonitorServiceName is the fully-qualified name of the MonitorService.
const MonitorServiceName = "openstatus.monitor.v1.MonitorService"

// Procedure paths, appended to the base URL.
const (
	MonitorServiceCreateHTTPMonitorProcedure = "/openstatus.monitor.v1.MonitorService/CreateHTTPMonitor"
	MonitorServiceCreateTCPMonitorProcedure  = "/openstatus.monitor.v1.MonitorService/CreateTCPMonitor"
	MonitorServiceCreateDNSMonitorProcedure  = "/openstatus.monitor.v1.MonitorService/CreateDNSMonitor"
	MonitorServiceUpdateHTTPMonitorProcedure = "/openstatus.monitor.v1.MonitorService/UpdateHTTPMonitor"
	MonitorServiceUpdateTCPMonitorProcedure  = "/openstatus.monitor.v1.MonitorService/UpdateTCPMonitor"
	MonitorServiceUpdateDNSMonitorProcedure  = "/openstatus.monitor.v1.MonitorService/UpdateDNSMonitor"
	MonitorServiceGetMonitorProcedure        = "/openstatus.monitor.v1.MonitorService/GetMonitor"
	MonitorServiceListMonitorsProcedure      = "/openstatus.monitor.v1.MonitorService/ListMonitors"
	MonitorServiceTriggerMonitorProcedure    = "/openstatus.monitor.v1.MonitorService/TriggerMonitor"
	MonitorServiceDeleteMonitorProcedure     = "/openstatus.monitor.v1.MonitorService/DeleteMonitor"
	MonitorServiceGetMonitorStatusProcedure  = "/openstatus.monitor.v1.MonitorService/GetMonitorStatus"
	MonitorServiceGetMonitorSummaryProcedure = "/openstatus.monitor.v1.MonitorService/GetMonitorSummary"
)

// Procedures lists every procedure of the MonitorService in declaration order.
var Procedures = []string{
	MonitorServiceCreateHTTPMonitorProcedure,
	MonitorServiceCreateTCPMonitorProcedure,
	MonitorServiceCreateDNSMonitorProcedure,
	MonitorServiceUpdateHTTPMonitorProcedure,
	MonitorServiceUpdateTCPMonitorProcedure,
	MonitorServiceUpdateDNSMonitorProcedure,
	MonitorServiceGetMonitorProcedure,
	MonitorServiceListMonitorsProcedure,
	MonitorServiceTriggerMonitorProcedure,
	MonitorServiceDeleteMonitorProcedure,
	MonitorServiceGetMonitorStatusProcedure,
	MonitorServiceGetMonitorSummaryProcedure,
}

// MonitorServiceClient is a client for the openstatus.monitor.v1.MonitorService service.
type MonitorServiceClient interface {
	// CreateHTTPMonitor creates an HTTP monitor.
	CreateHTTPMonitor(context.Context, *connect.Request[v1.CreateHTTPMonitorRequest]) (*connect.Response[v1.CreateHTTPMonitorResponse], error)
	// CreateTCPMonitor creates a TCP monitor.
	CreateTCPMonitor(context.Context, *connect.Request[v1.CreateTCPMonitorRequest]) (*connect.Response[v1.CreateTCPMonitorResponse], error)
	// CreateDNSMonitor creates a DNS monitor.
	CreateDNSMonitor(context.Context, *connect.Request[v1.CreateDNSMonitorRequest]) (*connect.Response[v1.CreateDNSMonitorResponse], error)
	// UpdateHTTPMonitor replaces the settings of an HTTP monitor.
	UpdateHTTPMonitor(context.Context, *connect.Request[v1.UpdateHTTPMonitorRequest]) (*connect.Response[v1.UpdateHTTPMonitorResponse], error)
	// UpdateTCPMonitor replaces the settings of a TCP monitor.
	UpdateTCPMonitor(context.Context, *connect.Request[v1.UpdateTCPMonitorRequest]) (*connect.Response[v1.UpdateTCPMonitorResponse], error)
	// UpdateDNSMonitor replaces the settings of a DNS monitor.
	UpdateDNSMonitor(context.Context, *connect.Request[v1.UpdateDNSMonitorRequest]) (*connect.Response[v1.UpdateDNSMonitorResponse], error)
	// GetMonitor fetches a monitor of any kind.
	GetMonitor(context.Context, *connect.Request[v1.GetMonitorRequest]) (*connect.Response[v1.GetMonitorResponse], error)
	// ListMonitors lists the monitors of the workspace.
	ListMonitors(context.Context, *connect.Request[v1.ListMonitorsRequest]) (*connect.Response[v1.ListMonitorsResponse], error)
	// TriggerMonitor runs a monitor check immediately.
	TriggerMonitor(context.Context, *connect.Request[v1.TriggerMonitorRequest]) (*connect.Response[v1.TriggerMonitorResponse], error)
	// DeleteMonitor deletes a monitor.
	DeleteMonitor(context.Context, *connect.Request[v1.DeleteMonitorRequest]) (*connect.Response[v1.DeleteMonitorResponse], error)
	// GetMonitorStatus returns the per-region status of a monitor.
	GetMonitorStatus(context.Context, *connect.Request[v1.GetMonitorStatusRequest]) (*connect.Response[v1.GetMonitorStatusResponse], error)
	// GetMonitorSummary returns aggregated check results for a time range.
	GetMonitorSummary(context.Context, *connect.Request[v1.GetMonitorSummaryRequest]) (*connect.Response[v1.GetMonitorSummaryResponse], error)
}

// NewMonitorServiceClient constructs a client for the openstatus.monitor.v1.MonitorService service.
// baseURL is the API root, for example https://api.openstatus.dev/rpc; a
// trailing slash is ignored. Construction performs no I/O.
func NewMonitorServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MonitorServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &monitorServiceClient{
		createHTTPMonitor: connect.NewClient[v1.CreateHTTPMonitorRequest, v1.CreateHTTPMonitorResponse](
			httpClient,
			baseURL+MonitorServiceCreateHTTPMonitorProcedure,
			opts...,
		),
		createTCPMonitor: connect.NewClient[v1.CreateTCPMonitorRequest, v1.CreateTCPMonitorResponse](
			httpClient,
			baseURL+MonitorServiceCreateTCPMonitorProcedure,
			opts...,
		),
		createDNSMonitor: connect.NewClient[v1.CreateDNSMonitorRequest, v1.CreateDNSMonitorResponse](
			httpClient,
			baseURL+MonitorServiceCreateDNSMonitorProcedure,
			opts...,
		),
		updateHTTPMonitor: connect.NewClient[v1.UpdateHTTPMonitorRequest, v1.UpdateHTTPMonitorResponse](
			httpClient,
			baseURL+MonitorServiceUpdateHTTPMonitorProcedure,
			opts...,
		),
		updateTCPMonitor: connect.NewClient[v1.UpdateTCPMonitorRequest, v1.UpdateTCPMonitorResponse](
			httpClient,
			baseURL+MonitorServiceUpdateTCPMonitorProcedure,
			opts...,
		),
		updateDNSMonitor: connect.NewClient[v1.UpdateDNSMonitorRequest, v1.UpdateDNSMonitorResponse](
			httpClient,
			baseURL+MonitorServiceUpdateDNSMonitorProcedure,
			opts...,
		),
		getMonitor: connect.NewClient[v1.GetMonitorRequest, v1.GetMonitorResponse](
			httpClient,
			baseURL+MonitorServiceGetMonitorProcedure,
			opts...,
		),
		listMonitors: connect.NewClient[v1.ListMonitorsRequest, v1.ListMonitorsResponse](
			httpClient,
			baseURL+MonitorServiceListMonitorsProcedure,
			opts...,
		),
		triggerMonitor: connect.NewClient[v1.TriggerMonitorRequest, v1.TriggerMonitorResponse](
			httpClient,
			baseURL+MonitorServiceTriggerMonitorProcedure,
			opts...,
		),
		deleteMonitor: connect.NewClient[v1.DeleteMonitorRequest, v1.DeleteMonitorResponse](
			httpClient,
			baseURL+MonitorServiceDeleteMonitorProcedure,
			opts...,
		),
		getMonitorStatus: connect.NewClient[v1.GetMonitorStatusRequest, v1.GetMonitorStatusResponse](
			httpClient,
			baseURL+MonitorServiceGetMonitorStatusProcedure,
			opts...,
		),
		getMonitorSummary: connect.NewClient[v1.GetMonitorSummaryRequest, v1.GetMonitorSummaryResponse](
			httpClient,
			baseURL+MonitorServiceGetMonitorSummaryProcedure,
			opts...,
		),
	}
}

type monitorServiceClient struct {
	createHTTPMonitor *connect.Client[v1.CreateHTTPMonitorRequest, v1.CreateHTTPMonitorResponse]
	createTCPMonitor  *connect.Client[v1.CreateTCPMonitorRequest, v1.CreateTCPMonitorResponse]
	createDNSMonitor  *connect.Client[v1.CreateDNSMonitorRequest, v1.CreateDNSMonitorResponse]
	updateHTTPMonitor *connect.Client[v1.UpdateHTTPMonitorRequest, v1.UpdateHTTPMonitorResponse]
	updateTCPMonitor  *connect.Client[v1.UpdateTCPMonitorRequest, v1.UpdateTCPMonitorResponse]
	updateDNSMonitor  *connect.Client[v1.UpdateDNSMonitorRequest, v1.UpdateDNSMonitorResponse]
	getMonitor        *connect.Client[v1.GetMonitorRequest, v1.GetMonitorResponse]
	listMonitors      *connect.Client[v1.ListMonitorsRequest, v1.ListMonitorsResponse]
	triggerMonitor    *connect.Client[v1.TriggerMonitorRequest, v1.TriggerMonitorResponse]
	deleteMonitor     *connect.Client[v1.DeleteMonitorRequest, v1.DeleteMonitorResponse]
	getMonitorStatus  *connect.Client[v1.GetMonitorStatusRequest, v1.GetMonitorStatusResponse]
	getMonitorSummary *connect.Client[v1.GetMonitorSummaryRequest, v1.GetMonitorSummaryResponse]
}

func (c *monitorServiceClient) CreateHTTPMonitor(ctx context.Context, req *connect.Request[v1.CreateHTTPMonitorRequest]) (*connect.Response[v1.CreateHTTPMonitorResponse], error) {
	return c.createHTTPMonitor.CallUnary(ctx, req)
}

func (c *monitorServiceClient) CreateTCPMonitor(ctx context.Context, req *connect.Request[v1.CreateTCPMonitorRequest]) (*connect.Response[v1.CreateTCPMonitorResponse], error) {
	return c.createTCPMonitor.CallUnary(ctx, req)
}

func (c *monitorServiceClient) CreateDNSMonitor(ctx context.Context, req *connect.Request[v1.CreateDNSMonitorRequest]) (*connect.Response[v1.CreateDNSMonitorResponse], error) {
	return c.createDNSMonitor.CallUnary(ctx, req)
}

func (c *monitorServiceClient) UpdateHTTPMonitor(ctx context.Context, req *connect.Request[v1.UpdateHTTPMonitorRequest]) (*connect.Response[v1.UpdateHTTPMonitorResponse], error) {
	return c.updateHTTPMonitor.CallUnary(ctx, req)
}

func (c *monitorServiceClient) UpdateTCPMonitor(ctx context.Context, req *connect.Request[v1.UpdateTCPMonitorRequest]) (*connect.Response[v1.UpdateTCPMonitorResponse], error) {
	return c.updateTCPMonitor.CallUnary(ctx, req)
}

func (c *monitorServiceClient) UpdateDNSMonitor(ctx context.Context, req *connect.Request[v1.UpdateDNSMonitorRequest]) (*connect.Response[v1.UpdateDNSMonitorResponse], error) {
	return c.updateDNSMonitor.CallUnary(ctx, req)
}

func (c *monitorServiceClient) GetMonitor(ctx context.Context, req *connect.Request[v1.GetMonitorRequest]) (*connect.Response[v1.GetMonitorResponse], error) {
	return c.getMonitor.CallUnary(ctx, req)
}

func (c *monitorServiceClient) ListMonitors(ctx context.Context, req *connect.Request[v1.ListMonitorsRequest]) (*connect.Response[v1.ListMonitorsResponse], error) {
	return c.listMonitors.CallUnary(ctx, req)
}

func (c *monitorServiceClient) TriggerMonitor(ctx context.Context, req *connect.Request[v1.TriggerMonitorRequest]) (*connect.Response[v1.TriggerMonitorResponse], error) {
	return c.triggerMonitor.CallUnary(ctx, req)
}

func (c *monitorServiceClient) DeleteMonitor(ctx context.Context, req *connect.Request[v1.DeleteMonitorRequest]) (*connect.Response[v1.DeleteMonitorResponse], error) {
	return c.deleteMonitor.CallUnary(ctx, req)
}

func (c *monitorServiceClient) GetMonitorStatus(ctx context.Context, req *connect.Request[v1.GetMonitorStatusRequest]) (*connect.Response[v1.GetMonitorStatusResponse], error) {
	return c.getMonitorStatus.CallUnary(ctx, req)
}

func (c *monitorServiceClient) GetMonitorSummary(ctx context.Context, req *connect.Request[v1.GetMonitorSummaryRequest]) (*connect.Response[v1.GetMonitorSummaryResponse], error) {
	return c.getMonitorSummary.CallUnary(ctx, req)
}
