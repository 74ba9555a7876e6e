package notificationv1

type CreateNotificationRequest struct {
	Name       string               `json:"name,omitempty"`
	Provider   NotificationProvider `json:"provider,omitempty"`
	Data       *NotificationData    `json:"data,omitempty"`
	MonitorIDs []string             `json:"monitorIds,omitempty"`
}

type CreateNotificationResponse struct {
	Notification *Notification `json:"notification,omitempty"`
}

type GetNotificationRequest struct {
	ID string `json:"id,omitempty"`
}

type GetNotificationResponse struct {
	Notification *Notification `json:"notification,omitempty"`
}

type ListNotificationsRequest struct {
	Limit  *int32 `json:"limit,omitempty"`
	Offset *int32 `json:"offset,omitempty"`
}

type ListNotificationsResponse struct {
	Notifications []*NotificationSummary `json:"notifications"`
	TotalSize     int32                  `json:"totalSize"`
}

// UpdateNotificationRequest changes a channel. Unset fields are kept;
// a non-nil MonitorIDs replaces the linked monitors.
type UpdateNotificationRequest struct {
	ID         string            `json:"id,omitempty"`
	Name       *string           `json:"name,omitempty"`
	Data       *NotificationData `json:"data,omitempty"`
	MonitorIDs []string          `json:"monitorIds,omitempty"`
}

type UpdateNotificationResponse struct {
	Notification *Notification `json:"notification,omitempty"`
}

type DeleteNotificationRequest struct {
	ID string `json:"id,omitempty"`
}

type DeleteNotificationResponse struct {
	Success bool `json:"success,omitempty"`
}

// SendTestNotificationRequest delivers a sample alert through the given
// provider settings without saving them.
type SendTestNotificationRequest struct {
	Provider NotificationProvider `json:"provider,omitempty"`
	Data     *NotificationData    `json:"data,omitempty"`
}

type SendTestNotificationResponse struct {
	Success      bool   `json:"success,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

type CheckNotificationLimitRequest struct{}

type CheckNotificationLimitResponse struct {
	LimitReached bool  `json:"limitReached,omitempty"`
	CurrentCount int32 `json:"currentCount,omitempty"`
	MaxCount     int32 `json:"maxCount,omitempty"`
}
