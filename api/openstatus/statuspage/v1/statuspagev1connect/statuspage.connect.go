// Package statuspagev1connect binds the openstatus.status_page.v1.StatusPageService procedures to Connect clients.
package statuspagev1connect

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/openstatushq/openstatus-go/api/openstatus/statuspage/v1"
)

// StatusPageServiceName is the fully-qualified name of the StatusPageService.
const StatusPageServiceName = "openstatus.status_page.v1.StatusPageService"

// Procedure paths, appended to the base URL.
const (
	StatusPageServiceCreateStatusPageProcedure     = "/openstatus.status_page.v1.StatusPageService/CreateStatusPage"
	StatusPageServiceGetStatusPageProcedure        = "/openstatus.status_page.v1.StatusPageService/GetStatusPage"
	StatusPageServiceListStatusPagesProcedure      = "/openstatus.status_page.v1.StatusPageService/ListStatusPages"
	StatusPageServiceUpdateStatusPageProcedure     = "/openstatus.status_page.v1.StatusPageService/UpdateStatusPage"
	StatusPageServiceDeleteStatusPageProcedure     = "/openstatus.status_page.v1.StatusPageService/DeleteStatusPage"
	StatusPageServiceAddMonitorComponentProcedure  = "/openstatus.status_page.v1.StatusPageService/AddMonitorComponent"
	StatusPageServiceAddStaticComponentProcedure   = "/openstatus.status_page.v1.StatusPageService/AddStaticComponent"
	StatusPageServiceRemoveComponentProcedure      = "/openstatus.status_page.v1.StatusPageService/RemoveComponent"
	StatusPageServiceUpdateComponentProcedure      = "/openstatus.status_page.v1.StatusPageService/UpdateComponent"
	StatusPageServiceCreateComponentGroupProcedure = "/openstatus.status_page.v1.StatusPageService/CreateComponentGroup"
	StatusPageServiceDeleteComponentGroupProcedure = "/openstatus.status_page.v1.StatusPageService/DeleteComponentGroup"
	StatusPageServiceUpdateComponentGroupProcedure = "/openstatus.status_page.v1.StatusPageService/UpdateComponentGroup"
	StatusPageServiceSubscribeToPageProcedure      = "/openstatus.status_page.v1.StatusPageService/SubscribeToPage"
	StatusPageServiceUnsubscribeFromPageProcedure  = "/openstatus.status_page.v1.StatusPageService/UnsubscribeFromPage"
	StatusPageServiceListSubscribersProcedure      = "/openstatus.status_page.v1.StatusPageService/ListSubscribers"
	StatusPageServiceGetStatusPageContentProcedure = "/openstatus.status_page.v1.StatusPageService/GetStatusPageContent"
	StatusPageServiceGetOverallStatusProcedure     = "/openstatus.status_page.v1.StatusPageService/GetOverallStatus"
)

// Procedures lists every procedure of the StatusPageService in declaration order.
var Procedures = []string{
	StatusPageServiceCreateStatusPageProcedure,
	StatusPageServiceGetStatusPageProcedure,
	StatusPageServiceListStatusPagesProcedure,
	StatusPageServiceUpdateStatusPageProcedure,
	StatusPageServiceDeleteStatusPageProcedure,
	StatusPageServiceAddMonitorComponentProcedure,
	StatusPageServiceAddStaticComponentProcedure,
	StatusPageServiceRemoveComponentProcedure,
	StatusPageServiceUpdateComponentProcedure,
	StatusPageServiceCreateComponentGroupProcedure,
	StatusPageServiceDeleteComponentGroupProcedure,
	StatusPageServiceUpdateComponentGroupProcedure,
	StatusPageServiceSubscribeToPageProcedure,
	StatusPageServiceUnsubscribeFromPageProcedure,
	StatusPageServiceListSubscribersProcedure,
	StatusPageServiceGetStatusPageContentProcedure,
	StatusPageServiceGetOverallStatusProcedure,
}

// StatusPageServiceClient is a client for the openstatus.status_page.v1.StatusPageService service.
type StatusPageServiceClient interface {
	// CreateStatusPage creates a status page.
	CreateStatusPage(context.Context, *connect.Request[v1.CreateStatusPageRequest]) (*connect.Response[v1.CreateStatusPageResponse], error)
	// GetStatusPage fetches a status page with its components.
	GetStatusPage(context.Context, *connect.Request[v1.GetStatusPageRequest]) (*connect.Response[v1.GetStatusPageResponse], error)
	// ListStatusPages lists status pages.
	ListStatusPages(context.Context, *connect.Request[v1.ListStatusPagesRequest]) (*connect.Response[v1.ListStatusPagesResponse], error)
	// UpdateStatusPage changes status page settings.
	UpdateStatusPage(context.Context, *connect.Request[v1.UpdateStatusPageRequest]) (*connect.Response[v1.UpdateStatusPageResponse], error)
	// DeleteStatusPage deletes a status page.
	DeleteStatusPage(context.Context, *connect.Request[v1.DeleteStatusPageRequest]) (*connect.Response[v1.DeleteStatusPageResponse], error)
	// AddMonitorComponent adds a monitor-backed component.
	AddMonitorComponent(context.Context, *connect.Request[v1.AddMonitorComponentRequest]) (*connect.Response[v1.AddMonitorComponentResponse], error)
	// AddStaticComponent adds a static component.
	AddStaticComponent(context.Context, *connect.Request[v1.AddStaticComponentRequest]) (*connect.Response[v1.AddStaticComponentResponse], error)
	// RemoveComponent removes a component.
	RemoveComponent(context.Context, *connect.Request[v1.RemoveComponentRequest]) (*connect.Response[v1.RemoveComponentResponse], error)
	// UpdateComponent changes a component.
	UpdateComponent(context.Context, *connect.Request[v1.UpdateComponentRequest]) (*connect.Response[v1.UpdateComponentResponse], error)
	// CreateComponentGroup creates a component group.
	CreateComponentGroup(context.Context, *connect.Request[v1.CreateComponentGroupRequest]) (*connect.Response[v1.CreateComponentGroupResponse], error)
	// DeleteComponentGroup deletes a component group.
	DeleteComponentGroup(context.Context, *connect.Request[v1.DeleteComponentGroupRequest]) (*connect.Response[v1.DeleteComponentGroupResponse], error)
	// UpdateComponentGroup renames a component group.
	UpdateComponentGroup(context.Context, *connect.Request[v1.UpdateComponentGroupRequest]) (*connect.Response[v1.UpdateComponentGroupResponse], error)
	// SubscribeToPage subscribes an email address to page updates.
	SubscribeToPage(context.Context, *connect.Request[v1.SubscribeToPageRequest]) (*connect.Response[v1.SubscribeToPageResponse], error)
	// UnsubscribeFromPage removes a subscriber.
	UnsubscribeFromPage(context.Context, *connect.Request[v1.UnsubscribeFromPageRequest]) (*connect.Response[v1.UnsubscribeFromPageResponse], error)
	// ListSubscribers lists page subscribers.
	ListSubscribers(context.Context, *connect.Request[v1.ListSubscribersRequest]) (*connect.Response[v1.ListSubscribersResponse], error)
	// GetStatusPageContent returns everything needed to render a page.
	GetStatusPageContent(context.Context, *connect.Request[v1.GetStatusPageContentRequest]) (*connect.Response[v1.GetStatusPageContentResponse], error)
	// GetOverallStatus returns the aggregated status of a page.
	GetOverallStatus(context.Context, *connect.Request[v1.GetOverallStatusRequest]) (*connect.Response[v1.GetOverallStatusResponse], error)
}

// NewStatusPageServiceClient constructs a client for the openstatus.status_page.v1.StatusPageService service.
// baseURL is the API root, for example https://api.openstatus.dev/rpc; a
// trailing slash is ignored. Construction performs no I/O.
func NewStatusPageServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) StatusPageServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &statusPageServiceClient{
		createStatusPage: connect.NewClient[v1.CreateStatusPageRequest, v1.CreateStatusPageResponse](
			httpClient,
			baseURL+StatusPageServiceCreateStatusPageProcedure,
			opts...,
		),
		getStatusPage: connect.NewClient[v1.GetStatusPageRequest, v1.GetStatusPageResponse](
			httpClient,
			baseURL+StatusPageServiceGetStatusPageProcedure,
			opts...,
		),
		listStatusPages: connect.NewClient[v1.ListStatusPagesRequest, v1.ListStatusPagesResponse](
			httpClient,
			baseURL+StatusPageServiceListStatusPagesProcedure,
			opts...,
		),
		updateStatusPage: connect.NewClient[v1.UpdateStatusPageRequest, v1.UpdateStatusPageResponse](
			httpClient,
			baseURL+StatusPageServiceUpdateStatusPageProcedure,
			opts...,
		),
		deleteStatusPage: connect.NewClient[v1.DeleteStatusPageRequest, v1.DeleteStatusPageResponse](
			httpClient,
			baseURL+StatusPageServiceDeleteStatusPageProcedure,
			opts...,
		),
		addMonitorComponent: connect.NewClient[v1.AddMonitorComponentRequest, v1.AddMonitorComponentResponse](
			httpClient,
			baseURL+StatusPageServiceAddMonitorComponentProcedure,
			opts...,
		),
		addStaticComponent: connect.NewClient[v1.AddStaticComponentRequest, v1.AddStaticComponentResponse](
			httpClient,
			baseURL+StatusPageServiceAddStaticComponentProcedure,
			opts...,
		),
		removeComponent: connect.NewClient[v1.RemoveComponentRequest, v1.RemoveComponentResponse](
			httpClient,
			baseURL+StatusPageServiceRemoveComponentProcedure,
			opts...,
		),
		updateComponent: connect.NewClient[v1.UpdateComponentRequest, v1.UpdateComponentResponse](
			httpClient,
			baseURL+StatusPageServiceUpdateComponentProcedure,
			opts...,
		),
		createComponentGroup: connect.NewClient[v1.CreateComponentGroupRequest, v1.CreateComponentGroupResponse](
			httpClient,
			baseURL+StatusPageServiceCreateComponentGroupProcedure,
			opts...,
		),
		deleteComponentGroup: connect.NewClient[v1.DeleteComponentGroupRequest, v1.DeleteComponentGroupResponse](
			httpClient,
			baseURL+StatusPageServiceDeleteComponentGroupProcedure,
			opts...,
		),
		updateComponentGroup: connect.NewClient[v1.UpdateComponentGroupRequest, v1.UpdateComponentGroupResponse](
			httpClient,
			baseURL+StatusPageServiceUpdateComponentGroupProcedure,
			opts...,
		),
		subscribeToPage: connect.NewClient[v1.SubscribeToPageRequest, v1.SubscribeToPageResponse](
			httpClient,
			baseURL+StatusPageServiceSubscribeToPageProcedure,
			opts...,
		),
		unsubscribeFromPage: connect.NewClient[v1.UnsubscribeFromPageRequest, v1.UnsubscribeFromPageResponse](
			httpClient,
			baseURL+StatusPageServiceUnsubscribeFromPageProcedure,
			opts...,
		),
		listSubscribers: connect.NewClient[v1.ListSubscribersRequest, v1.ListSubscribersResponse](
			httpClient,
			baseURL+StatusPageServiceListSubscribersProcedure,
			opts...,
		),
		getStatusPageContent: connect.NewClient[v1.GetStatusPageContentRequest, v1.GetStatusPageContentResponse](
			httpClient,
			baseURL+StatusPageServiceGetStatusPageContentProcedure,
			opts...,
		),
		getOverallStatus: connect.NewClient[v1.GetOverallStatusRequest, v1.GetOverallStatusResponse](
			httpClient,
			baseURL+StatusPageServiceGetOverallStatusProcedure,
			opts...,
		),
	}
}

type statusPageServiceClient struct {
	createStatusPage     *connect.Client[v1.CreateStatusPageRequest, v1.CreateStatusPageResponse]
	getStatusPage        *connect.Client[v1.GetStatusPageRequest, v1.GetStatusPageResponse]
	listStatusPages      *connect.Client[v1.ListStatusPagesRequest, v1.ListStatusPagesResponse]
	updateStatusPage     *connect.Client[v1.UpdateStatusPageRequest, v1.UpdateStatusPageResponse]
	deleteStatusPage     *connect.Client[v1.DeleteStatusPageRequest, v1.DeleteStatusPageResponse]
	addMonitorComponent  *connect.Client[v1.AddMonitorComponentRequest, v1.AddMonitorComponentResponse]
	addStaticComponent   *connect.Client[v1.AddStaticComponentRequest, v1.AddStaticComponentResponse]
	removeComponent      *connect.Client[v1.RemoveComponentRequest, v1.RemoveComponentResponse]
	updateComponent      *connect.Client[v1.UpdateComponentRequest, v1.UpdateComponentResponse]
	createComponentGroup *connect.Client[v1.CreateComponentGroupRequest, v1.CreateComponentGroupResponse]
	deleteComponentGroup *connect.Client[v1.DeleteComponentGroupRequest, v1.DeleteComponentGroupResponse]
	updateComponentGroup *connect.Client[v1.UpdateComponentGroupRequest, v1.UpdateComponentGroupResponse]
	subscribeToPage      *connect.Client[v1.SubscribeToPageRequest, v1.SubscribeToPageResponse]
	unsubscribeFromPage  *connect.Client[v1.UnsubscribeFromPageRequest, v1.UnsubscribeFromPageResponse]
	listSubscribers      *connect.Client[v1.ListSubscribersRequest, v1.ListSubscribersResponse]
	getStatusPageContent *connect.Client[v1.GetStatusPageContentRequest, v1.GetStatusPageContentResponse]
	getOverallStatus     *connect.Client[v1.GetOverallStatusRequest, v1.GetOverallStatusResponse]
}

func (c *statusPageServiceClient) CreateStatusPage(ctx context.Context, req *connect.Request[v1.CreateStatusPageRequest]) (*connect.Response[v1.CreateStatusPageResponse], error) {
	return c.createStatusPage.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) GetStatusPage(ctx context.Context, req *connect.Request[v1.GetStatusPageRequest]) (*connect.Response[v1.GetStatusPageResponse], error) {
	return c.getStatusPage.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) ListStatusPages(ctx context.Context, req *connect.Request[v1.ListStatusPagesRequest]) (*connect.Response[v1.ListStatusPagesResponse], error) {
	return c.listStatusPages.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) UpdateStatusPage(ctx context.Context, req *connect.Request[v1.UpdateStatusPageRequest]) (*connect.Response[v1.UpdateStatusPageResponse], error) {
	return c.updateStatusPage.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) DeleteStatusPage(ctx context.Context, req *connect.Request[v1.DeleteStatusPageRequest]) (*connect.Response[v1.DeleteStatusPageResponse], error) {
	return c.deleteStatusPage.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) AddMonitorComponent(ctx context.Context, req *connect.Request[v1.AddMonitorComponentRequest]) (*connect.Response[v1.AddMonitorComponentResponse], error) {
	return c.addMonitorComponent.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) AddStaticComponent(ctx context.Context, req *connect.Request[v1.AddStaticComponentRequest]) (*connect.Response[v1.AddStaticComponentResponse], error) {
	return c.addStaticComponent.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) RemoveComponent(ctx context.Context, req *connect.Request[v1.RemoveComponentRequest]) (*connect.Response[v1.RemoveComponentResponse], error) {
	return c.removeComponent.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) UpdateComponent(ctx context.Context, req *connect.Request[v1.UpdateComponentRequest]) (*connect.Response[v1.UpdateComponentResponse], error) {
	return c.updateComponent.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) CreateComponentGroup(ctx context.Context, req *connect.Request[v1.CreateComponentGroupRequest]) (*connect.Response[v1.CreateComponentGroupResponse], error) {
	return c.createComponentGroup.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) DeleteComponentGroup(ctx context.Context, req *connect.Request[v1.DeleteComponentGroupRequest]) (*connect.Response[v1.DeleteComponentGroupResponse], error) {
	return c.deleteComponentGroup.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) UpdateComponentGroup(ctx context.Context, req *connect.Request[v1.UpdateComponentGroupRequest]) (*connect.Response[v1.UpdateComponentGroupResponse], error) {
	return c.updateComponentGroup.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) SubscribeToPage(ctx context.Context, req *connect.Request[v1.SubscribeToPageRequest]) (*connect.Response[v1.SubscribeToPageResponse], error) {
	return c.subscribeToPage.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) UnsubscribeFromPage(ctx context.Context, req *connect.Request[v1.UnsubscribeFromPageRequest]) (*connect.Response[v1.UnsubscribeFromPageResponse], error) {
	return c.unsubscribeFromPage.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) ListSubscribers(ctx context.Context, req *connect.Request[v1.ListSubscribersRequest]) (*connect.Response[v1.ListSubscribersResponse], error) {
	return c.listSubscribers.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) GetStatusPageContent(ctx context.Context, req *connect.Request[v1.GetStatusPageContentRequest]) (*connect.Response[v1.GetStatusPageContentResponse], error) {
	return c.getStatusPageContent.CallUnary(ctx, req)
}

func (c *statusPageServiceClient) GetOverallStatus(ctx context.Context, req *connect.Request[v1.GetOverallStatusRequest]) (*connect.Response[v1.GetOverallStatusResponse], error) {
	return c.getOverallStatus.CallUnary(ctx, req)
}
