// Package statusreportv1connect binds the openstatus.status_report.v1.StatusReportService procedures to Connect clients.
package statusreportv1connect

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/openstatushq/openstatus-go/api/openstatus/statusreport/v1"
)

// StatusReportServiceName is the fully-qualified name of the StatusReportService.
const StatusReportServiceName = "openstatus.status_report.v1.StatusReportService"

// Procedure paths, appended to the base URL.
const (
	StatusReportServiceCreateStatusReportProcedure    = "/openstatus.status_report.v1.StatusReportService/CreateStatusReport"
	StatusReportServiceGetStatusReportProcedure       = "/openstatus.status_report.v1.StatusReportService/GetStatusReport"
	StatusReportServiceListStatusReportsProcedure     = "/openstatus.status_report.v1.StatusReportService/ListStatusReports"
	StatusReportServiceUpdateStatusReportProcedure    = "/openstatus.status_report.v1.StatusReportService/UpdateStatusReport"
	StatusReportServiceDeleteStatusReportProcedure    = "/openstatus.status_report.v1.StatusReportService/DeleteStatusReport"
	StatusReportServiceAddStatusReportUpdateProcedure = "/openstatus.status_report.v1.StatusReportService/AddStatusReportUpdate"
)

// Procedures lists every procedure of the StatusReportService in declaration order.
var Procedures = []string{
	StatusReportServiceCreateStatusReportProcedure,
	StatusReportServiceGetStatusReportProcedure,
	StatusReportServiceListStatusReportsProcedure,
	StatusReportServiceUpdateStatusReportProcedure,
	StatusReportServiceDeleteStatusReportProcedure,
	StatusReportServiceAddStatusReportUpdateProcedure,
}

// StatusReportServiceClient is a client for the openstatus.status_report.v1.StatusReportService service.
type StatusReportServiceClient interface {
	// CreateStatusReport opens an incident.
	CreateStatusReport(context.Context, *connect.Request[v1.CreateStatusReportRequest]) (*connect.Response[v1.CreateStatusReportResponse], error)
	// GetStatusReport fetches an incident with its updates.
	GetStatusReport(context.Context, *connect.Request[v1.GetStatusReportRequest]) (*connect.Response[v1.GetStatusReportResponse], error)
	// ListStatusReports lists incidents.
	ListStatusReports(context.Context, *connect.Request[v1.ListStatusReportsRequest]) (*connect.Response[v1.ListStatusReportsResponse], error)
	// UpdateStatusReport changes incident metadata.
	UpdateStatusReport(context.Context, *connect.Request[v1.UpdateStatusReportRequest]) (*connect.Response[v1.UpdateStatusReportResponse], error)
	// DeleteStatusReport deletes an incident.
	DeleteStatusReport(context.Context, *connect.Request[v1.DeleteStatusReportRequest]) (*connect.Response[v1.DeleteStatusReportResponse], error)
	// AddStatusReportUpdate appends an update to an incident timeline.
	AddStatusReportUpdate(context.Context, *connect.Request[v1.AddStatusReportUpdateRequest]) (*connect.Response[v1.AddStatusReportUpdateResponse], error)
}

// NewStatusReportServiceClient constructs a client for the openstatus.status_report.v1.StatusReportService service.
// baseURL is the API root, for example https://api.openstatus.dev/rpc; a
// trailing slash is ignored. Construction performs no I/O.
func NewStatusReportServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) StatusReportServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &statusReportServiceClient{
		createStatusReport: connect.NewClient[v1.CreateStatusReportRequest, v1.CreateStatusReportResponse](
			httpClient,
			baseURL+StatusReportServiceCreateStatusReportProcedure,
			opts...,
		),
		getStatusReport: connect.NewClient[v1.GetStatusReportRequest, v1.GetStatusReportResponse](
			httpClient,
			baseURL+StatusReportServiceGetStatusReportProcedure,
			opts...,
		),
		listStatusReports: connect.NewClient[v1.ListStatusReportsRequest, v1.ListStatusReportsResponse](
			httpClient,
			baseURL+StatusReportServiceListStatusReportsProcedure,
			opts...,
		),
		updateStatusReport: connect.NewClient[v1.UpdateStatusReportRequest, v1.UpdateStatusReportResponse](
			httpClient,
			baseURL+StatusReportServiceUpdateStatusReportProcedure,
			opts...,
		),
		deleteStatusReport: connect.NewClient[v1.DeleteStatusReportRequest, v1.DeleteStatusReportResponse](
			httpClient,
			baseURL+StatusReportServiceDeleteStatusReportProcedure,
			opts...,
		),
		addStatusReportUpdate: connect.NewClient[v1.AddStatusReportUpdateRequest, v1.AddStatusReportUpdateResponse](
			httpClient,
			baseURL+StatusReportServiceAddStatusReportUpdateProcedure,
			opts...,
		),
	}
}

type statusReportServiceClient struct {
	createStatusReport    *connect.Client[v1.CreateStatusReportRequest, v1.CreateStatusReportResponse]
	getStatusReport       *connect.Client[v1.GetStatusReportRequest, v1.GetStatusReportResponse]
	listStatusReports     *connect.Client[v1.ListStatusReportsRequest, v1.ListStatusReportsResponse]
	updateStatusReport    *connect.Client[v1.UpdateStatusReportRequest, v1.UpdateStatusReportResponse]
	deleteStatusReport    *connect.Client[v1.DeleteStatusReportRequest, v1.DeleteStatusReportResponse]
	addStatusReportUpdate *connect.Client[v1.AddStatusReportUpdateRequest, v1.AddStatusReportUpdateResponse]
}

func (c *statusReportServiceClient) CreateStatusReport(ctx context.Context, req *connect.Request[v1.CreateStatusReportRequest]) (*connect.Response[v1.CreateStatusReportResponse], error) {
	return c.createStatusReport.CallUnary(ctx, req)
}

func (c *statusReportServiceClient) GetStatusReport(ctx context.Context, req *connect.Request[v1.GetStatusReportRequest]) (*connect.Response[v1.GetStatusReportResponse], error) {
	return c.getStatusReport.CallUnary(ctx, req)
}

func (c *statusReportServiceClient) ListStatusReports(ctx context.Context, req *connect.Request[v1.ListStatusReportsRequest]) (*connect.Response[v1.ListStatusReportsResponse], error) {
	return c.listStatusReports.CallUnary(ctx, req)
}

func (c *statusReportServiceClient) UpdateStatusReport(ctx context.Context, req *connect.Request[v1.UpdateStatusReportRequest]) (*connect.Response[v1.UpdateStatusReportResponse], error) {
	return c.updateStatusReport.CallUnary(ctx, req)
}

func (c *statusReportServiceClient) DeleteStatusReport(ctx context.Context, req *connect.Request[v1.DeleteStatusReportRequest]) (*connect.Response[v1.DeleteStatusReportResponse], error) {
	return c.deleteStatusReport.CallUnary(ctx, req)
}

func (c *statusReportServiceClient) AddStatusReportUpdate(ctx context.Context, req *connect.Request[v1.AddStatusReportUpdateRequest]) (*connect.Response[v1.AddStatusReportUpdateResponse], error) {
	return c.addStatusReportUpdate.CallUnary(ctx, req)
}
