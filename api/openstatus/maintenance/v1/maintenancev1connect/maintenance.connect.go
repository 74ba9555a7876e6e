// Package maintenancev1connect binds the openstatus.maintenance.v1.MaintenanceService procedures to Connect clients.
package maintenancev1connect

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/openstatushq/openstatus-go/api/openstatus/maintenance/v1"
)

// MaintenanceServiceName is the fully-qualified name of the MaintenanceService.
const MaintenanceServiceName = "openstatus.maintenance.v1.MaintenanceService"

// Procedure paths, appended to the base URL.
const (
	MaintenanceServiceCreateMaintenanceProcedure = "/openstatus.maintenance.v1.MaintenanceService/CreateMaintenance"
	MaintenanceServiceGetMaintenanceProcedure    = "/openstatus.maintenance.v1.MaintenanceService/GetMaintenance"
	MaintenanceServiceListMaintenancesProcedure  = "/openstatus.maintenance.v1.MaintenanceService/ListMaintenances"
	MaintenanceServiceUpdateMaintenanceProcedure = "/openstatus.maintenance.v1.MaintenanceService/UpdateMaintenance"
	MaintenanceServiceDeleteMaintenanceProcedure = "/openstatus.maintenance.v1.MaintenanceService/DeleteMaintenance"
)

// Procedures lists every procedure of the MaintenanceService in declaration order.
var Procedures = []string{
	MaintenanceServiceCreateMaintenanceProcedure,
	MaintenanceServiceGetMaintenanceProcedure,
	MaintenanceServiceListMaintenancesProcedure,
	MaintenanceServiceUpdateMaintenanceProcedure,
	MaintenanceServiceDeleteMaintenanceProcedure,
}

// MaintenanceServiceClient is a client for the openstatus.maintenance.v1.MaintenanceService service.
type MaintenanceServiceClient interface {
	// CreateMaintenance schedules a maintenance window.
	CreateMaintenance(context.Context, *connect.Request[v1.CreateMaintenanceRequest]) (*connect.Response[v1.CreateMaintenanceResponse], error)
	// GetMaintenance fetches a maintenance window.
	GetMaintenance(context.Context, *connect.Request[v1.GetMaintenanceRequest]) (*connect.Response[v1.GetMaintenanceResponse], error)
	// ListMaintenances lists maintenance windows.
	ListMaintenances(context.Context, *connect.Request[v1.ListMaintenancesRequest]) (*connect.Response[v1.ListMaintenancesResponse], error)
	// UpdateMaintenance changes a maintenance window.
	UpdateMaintenance(context.Context, *connect.Request[v1.UpdateMaintenanceRequest]) (*connect.Response[v1.UpdateMaintenanceResponse], error)
	// DeleteMaintenance deletes a maintenance window.
	DeleteMaintenance(context.Context, *connect.Request[v1.DeleteMaintenanceRequest]) (*connect.Response[v1.DeleteMaintenanceResponse], error)
}

// NewMaintenanceServiceClient constructs a client for the openstatus.maintenance.v1.MaintenanceService service.
// baseURL is the API root, for example https://api.openstatus.dev/rpc; a
// trailing slash is ignored. Construction performs no I/O.
func NewMaintenanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MaintenanceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &maintenanceServiceClient{
		createMaintenance: connect.NewClient[v1.CreateMaintenanceRequest, v1.CreateMaintenanceResponse](
			httpClient,
			baseURL+MaintenanceServiceCreateMaintenanceProcedure,
			opts...,
		),
		getMaintenance: connect.NewClient[v1.GetMaintenanceRequest, v1.GetMaintenanceResponse](
			httpClient,
			baseURL+MaintenanceServiceGetMaintenanceProcedure,
			opts...,
		),
		listMaintenances: connect.NewClient[v1.ListMaintenancesRequest, v1.ListMaintenancesResponse](
			httpClient,
			baseURL+MaintenanceServiceListMaintenancesProcedure,
			opts...,
		),
		updateMaintenance: connect.NewClient[v1.UpdateMaintenanceRequest, v1.UpdateMaintenanceResponse](
			httpClient,
			baseURL+MaintenanceServiceUpdateMaintenanceProcedure,
			opts...,
		),
		deleteMaintenance: connect.NewClient[v1.DeleteMaintenanceRequest, v1.DeleteMaintenanceResponse](
			httpClient,
			baseURL+MaintenanceServiceDeleteMaintenanceProcedure,
			opts...,
		),
	}
}

type maintenanceServiceClient struct {
	createMaintenance *connect.Client[v1.CreateMaintenanceRequest, v1.CreateMaintenanceResponse]
	getMaintenance    *connect.Client[v1.GetMaintenanceRequest, v1.GetMaintenanceResponse]
	listMaintenances  *connect.Client[v1.ListMaintenancesRequest, v1.ListMaintenancesResponse]
	updateMaintenance *connect.Client[v1.UpdateMaintenanceRequest, v1.UpdateMaintenanceResponse]
	deleteMaintenance *connect.Client[v1.DeleteMaintenanceRequest, v1.DeleteMaintenanceResponse]
}

func (c *maintenanceServiceClient) CreateMaintenance(ctx context.Context, req *connect.Request[v1.CreateMaintenanceRequest]) (*connect.Response[v1.CreateMaintenanceResponse], error) {
	return c.createMaintenance.CallUnary(ctx, req)
}

func (c *maintenanceServiceClient) GetMaintenance(ctx context.Context, req *connect.Request[v1.GetMaintenanceRequest]) (*connect.Response[v1.GetMaintenanceResponse], error) {
	return c.getMaintenance.CallUnary(ctx, req)
}

func (c *maintenanceServiceClient) ListMaintenances(ctx context.Context, req *connect.Request[v1.ListMaintenancesRequest]) (*connect.Response[v1.ListMaintenancesResponse], error) {
	return c.listMaintenances.CallUnary(ctx, req)
}

func (c *maintenanceServiceClient) UpdateMaintenance(ctx context.Context, req *connect.Request[v1.UpdateMaintenanceRequest]) (*connect.Response[v1.UpdateMaintenanceResponse], error) {
	return c.updateMaintenance.CallUnary(ctx, req)
}

func (c *maintenanceServiceClient) DeleteMaintenance(ctx context.Context, req *connect.Request[v1.DeleteMaintenanceRequest]) (*connect.Response[v1.DeleteMaintenanceResponse], error) {
	return c.deleteMaintenance.CallUnary(ctx, req)
}
