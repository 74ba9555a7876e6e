// Package notificationv1 contains the messages of the openstatus.notification.v1
// API: alert channels that monitors report to.
package notificationv1

import "time"

type DiscordData struct {
	WebhookURL string `json:"webhookUrl,omitempty"`
}

type EmailData struct {
	Email string `json:"email,omitempty"`
}

type GoogleChatData struct {
	WebhookURL string `json:"webhookUrl,omitempty"`
}

type GrafanaOnCallData struct {
	WebhookURL string `json:"webhookUrl,omitempty"`
}

type NtfyData struct {
	Topic     string `json:"topic,omitempty"`
	ServerURL string `json:"serverUrl,omitempty"`
	Token     string `json:"token,omitempty"`
}

type PagerDutyData struct {
	IntegrationKey string `json:"integrationKey,omitempty"`
}

type OpsgenieData struct {
	APIKey string         `json:"apiKey,omitempty"`
	Region OpsgenieRegion `json:"region,omitempty"`
}

type SlackData struct {
	WebhookURL string `json:"webhookUrl,omitempty"`
}

type SMSData struct {
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type TelegramData struct {
	ChatID string `json:"chatId,omitempty"`
}

// WebhookHeader is a header sent with every webhook delivery.
type WebhookHeader struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

type WebhookData struct {
	Endpoint string           `json:"endpoint,omitempty"`
	Headers  []*WebhookHeader `json:"headers,omitempty"`
}

type WhatsAppData struct {
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// NotificationData carries the provider-specific settings. At most one field
// is set.
type NotificationData struct {
	Discord       *DiscordData       `json:"discord,omitempty"`
	Email         *EmailData         `json:"email,omitempty"`
	GoogleChat    *GoogleChatData    `json:"googleChat,omitempty"`
	GrafanaOnCall *GrafanaOnCallData `json:"grafanaOncall,omitempty"`
	Ntfy          *NtfyData          `json:"ntfy,omitempty"`
	PagerDuty     *PagerDutyData     `json:"pagerduty,omitempty"`
	Opsgenie      *OpsgenieData      `json:"opsgenie,omitempty"`
	Slack         *SlackData         `json:"slack,omitempty"`
	SMS           *SMSData           `json:"sms,omitempty"`
	Telegram      *TelegramData      `json:"telegram,omitempty"`
	Webhook       *WebhookData       `json:"webhook,omitempty"`
	WhatsApp      *WhatsAppData      `json:"whatsapp,omitempty"`
}

// Provider reports which variant is set, or NotificationProviderUnspecified.
func (d *NotificationData) Provider() NotificationProvider {
	switch {
	case d == nil:
		return NotificationProviderUnspecified
	case d.Discord != nil:
		return NotificationProviderDiscord
	case d.Email != nil:
		return NotificationProviderEmail
	case d.GoogleChat != nil:
		return NotificationProviderGoogleChat
	case d.GrafanaOnCall != nil:
		return NotificationProviderGrafanaOnCall
	case d.Ntfy != nil:
		return NotificationProviderNtfy
	case d.PagerDuty != nil:
		return NotificationProviderPagerDuty
	case d.Opsgenie != nil:
		return NotificationProviderOpsgenie
	case d.Slack != nil:
		return NotificationProviderSlack
	case d.SMS != nil:
		return NotificationProviderSMS
	case d.Telegram != nil:
		return NotificationProviderTelegram
	case d.Webhook != nil:
		return NotificationProviderWebhook
	case d.WhatsApp != nil:
		return NotificationProviderWhatsApp
	default:
		return NotificationProviderUnspecified
	}
}

// Notification is a configured alert channel.
type Notification struct {
	ID         string               `json:"id,omitempty"`
	Name       string               `json:"name,omitempty"`
	Provider   NotificationProvider `json:"provider,omitempty"`
	Data       *NotificationData    `json:"data,omitempty"`
	MonitorIDs []string             `json:"monitorIds,omitempty"`
	CreatedAt  *time.Time           `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time           `json:"updatedAt,omitempty"`
}

// NotificationSummary is the list form of a Notification.
type NotificationSummary struct {
	ID           string               `json:"id,omitempty"`
	Name         string               `json:"name,omitempty"`
	Provider     NotificationProvider `json:"provider,omitempty"`
	MonitorCount int32                `json:"monitorCount,omitempty"`
	CreatedAt    *time.Time           `json:"createdAt,omitempty"`
}
