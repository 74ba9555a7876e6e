// Package notificationv1connect binds the openstatus.notification.v1.NotificationService procedures to Connect clients.
package notificationv1connect

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/openstatushq/openstatus-go/api/openstatus/notification/v1"
)

// NotificationServiceName is the fully-qualified name of the NotificationService.
const NotificationServiceName = "openstatus.notification.v1.NotificationService"

// Procedure paths, appended to the base URL.
const (
	NotificationServiceCreateNotificationProcedure     = "/openstatus.notification.v1.NotificationService/CreateNotification"
	NotificationServiceGetNotificationProcedure        = "/openstatus.notification.v1.NotificationService/GetNotification"
	NotificationServiceListNotificationsProcedure      = "/openstatus.notification.v1.NotificationService/ListNotifications"
	NotificationServiceUpdateNotificationProcedure     = "/openstatus.notification.v1.NotificationService/UpdateNotification"
	NotificationServiceDeleteNotificationProcedure     = "/openstatus.notification.v1.NotificationService/DeleteNotification"
	NotificationServiceSendTestNotificationProcedure   = "/openstatus.notification.v1.NotificationService/SendTestNotification"
	NotificationServiceCheckNotificationLimitProcedure = "/openstatus.notification.v1.NotificationService/CheckNotificationLimit"
)

// Procedures lists every procedure of the NotificationService in declaration order.
var Procedures = []string{
	NotificationServiceCreateNotificationProcedure,
	NotificationServiceGetNotificationProcedure,
	NotificationServiceListNotificationsProcedure,
	NotificationServiceUpdateNotificationProcedure,
	NotificationServiceDeleteNotificationProcedure,
	NotificationServiceSendTestNotificationProcedure,
	NotificationServiceCheckNotificationLimitProcedure,
}

// NotificationServiceClient is a client for the openstatus.notification.v1.NotificationService service.
type NotificationServiceClient interface {
	// CreateNotification creates a notification channel.
	CreateNotification(context.Context, *connect.Request[v1.CreateNotificationRequest]) (*connect.Response[v1.CreateNotificationResponse], error)
	// GetNotification fetches a notification channel.
	GetNotification(context.Context, *connect.Request[v1.GetNotificationRequest]) (*connect.Response[v1.GetNotificationResponse], error)
	// ListNotifications lists notification channels.
	ListNotifications(context.Context, *connect.Request[v1.ListNotificationsRequest]) (*connect.Response[v1.ListNotificationsResponse], error)
	// UpdateNotification changes a notification channel.
	UpdateNotification(context.Context, *connect.Request[v1.UpdateNotificationRequest]) (*connect.Response[v1.UpdateNotificationResponse], error)
	// DeleteNotification deletes a notification channel.
	DeleteNotification(context.Context, *connect.Request[v1.DeleteNotificationRequest]) (*connect.Response[v1.DeleteNotificationResponse], error)
	// SendTestNotification sends a sample alert without saving the channel.
	SendTestNotification(context.Context, *connect.Request[v1.SendTestNotificationRequest]) (*connect.Response[v1.SendTestNotificationResponse], error)
	// CheckNotificationLimit reports how many channels the plan still allows.
	CheckNotificationLimit(context.Context, *connect.Request[v1.CheckNotificationLimitRequest]) (*connect.Response[v1.CheckNotificationLimitResponse], error)
}

// NewNotificationServiceClient constructs a client for the openstatus.notification.v1.NotificationService service.
// baseURL is the API root, for example https://api.openstatus.dev/rpc; a
// trailing slash is ignored. Construction performs no I/O.
func NewNotificationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) NotificationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &notificationServiceClient{
		createNotification: connect.NewClient[v1.CreateNotificationRequest, v1.CreateNotificationResponse](
			httpClient,
			baseURL+NotificationServiceCreateNotificationProcedure,
			opts...,
		),
		getNotification: connect.NewClient[v1.GetNotificationRequest, v1.GetNotificationResponse](
			httpClient,
			baseURL+NotificationServiceGetNotificationProcedure,
			opts...,
		),
		listNotifications: connect.NewClient[v1.ListNotificationsRequest, v1.ListNotificationsResponse](
			httpClient,
			baseURL+NotificationServiceListNotificationsProcedure,
			opts...,
		),
		updateNotification: connect.NewClient[v1.UpdateNotificationRequest, v1.UpdateNotificationResponse](
			httpClient,
			baseURL+NotificationServiceUpdateNotificationProcedure,
			opts...,
		),
		deleteNotification: connect.NewClient[v1.DeleteNotificationRequest, v1.DeleteNotificationResponse](
			httpClient,
			baseURL+NotificationServiceDeleteNotificationProcedure,
			opts...,
		),
		sendTestNotification: connect.NewClient[v1.SendTestNotificationRequest, v1.SendTestNotificationResponse](
			httpClient,
			baseURL+NotificationServiceSendTestNotificationProcedure,
			opts...,
		),
		checkNotificationLimit: connect.NewClient[v1.CheckNotificationLimitRequest, v1.CheckNotificationLimitResponse](
			httpClient,
			baseURL+NotificationServiceCheckNotificationLimitProcedure,
			opts...,
		),
	}
}

type notificationServiceClient struct {
	createNotification     *connect.Client[v1.CreateNotificationRequest, v1.CreateNotificationResponse]
	getNotification        *connect.Client[v1.GetNotificationRequest, v1.GetNotificationResponse]
	listNotifications      *connect.Client[v1.ListNotificationsRequest, v1.ListNotificationsResponse]
	updateNotification     *connect.Client[v1.UpdateNotificationRequest, v1.UpdateNotificationResponse]
	deleteNotification     *connect.Client[v1.DeleteNotificationRequest, v1.DeleteNotificationResponse]
	sendTestNotification   *connect.Client[v1.SendTestNotificationRequest, v1.SendTestNotificationResponse]
	checkNotificationLimit *connect.Client[v1.CheckNotificationLimitRequest, v1.CheckNotificationLimitResponse]
}

func (c *notificationServiceClient) CreateNotification(ctx context.Context, req *connect.Request[v1.CreateNotificationRequest]) (*connect.Response[v1.CreateNotificationResponse], error) {
	return c.createNotification.CallUnary(ctx, req)
}

func (c *notificationServiceClient) GetNotification(ctx context.Context, req *connect.Request[v1.GetNotificationRequest]) (*connect.Response[v1.GetNotificationResponse], error) {
	return c.getNotification.CallUnary(ctx, req)
}

func (c *notificationServiceClient) ListNotifications(ctx context.Context, req *connect.Request[v1.ListNotificationsRequest]) (*connect.Response[v1.ListNotificationsResponse], error) {
	return c.listNotifications.CallUnary(ctx, req)
}

func (c *notificationServiceClient) UpdateNotification(ctx context.Context, req *connect.Request[v1.UpdateNotificationRequest]) (*connect.Response[v1.UpdateNotificationResponse], error) {
	return c.updateNotification.CallUnary(ctx, req)
}

func (c *notificationServiceClient) DeleteNotification(ctx context.Context, req *connect.Request[v1.DeleteNotificationRequest]) (*connect.Response[v1.DeleteNotificationResponse], error) {
	return c.deleteNotification.CallUnary(ctx, req)
}

func (c *notificationServiceClient) SendTestNotification(ctx context.Context, req *connect.Request[v1.SendTestNotificationRequest]) (*connect.Response[v1.SendTestNotificationResponse], error) {
	return c.sendTestNotification.CallUnary(ctx, req)
}

func (c *notificationServiceClient) CheckNotificationLimit(ctx context.Context, req *connect.Request[v1.CheckNotificationLimitRequest]) (*connect.Response[v1.CheckNotificationLimitResponse], error) {
	return c.checkNotificationLimit.CallUnary(ctx, req)
}
