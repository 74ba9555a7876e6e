package notificationv1

import "github.com/openstatushq/openstatus-go/api/internal/enumjson"

// NotificationProvider names the channel a notification is delivered through.
type NotificationProvider int32

const (
	NotificationProviderUnspecified   NotificationProvider = 0
	NotificationProviderDiscord       NotificationProvider = 1
	NotificationProviderEmail         NotificationProvider = 2
	NotificationProviderGoogleChat    NotificationProvider = 3
	NotificationProviderGrafanaOnCall NotificationProvider = 4
	NotificationProviderNtfy          NotificationProvider = 5
	NotificationProviderPagerDuty     NotificationProvider = 6
	NotificationProviderOpsgenie      NotificationProvider = 7
	NotificationProviderSlack         NotificationProvider = 8
	NotificationProviderSMS           NotificationProvider = 9
	NotificationProviderTelegram      NotificationProvider = 10
	NotificationProviderWebhook       NotificationProvider = 11
	NotificationProviderWhatsApp      NotificationProvider = 12
)

var (
	notificationProviderName = map[int32]string{
		0:  "NOTIFICATION_PROVIDER_UNSPECIFIED",
		1:  "NOTIFICATION_PROVIDER_DISCORD",
		2:  "NOTIFICATION_PROVIDER_EMAIL",
		3:  "NOTIFICATION_PROVIDER_GOOGLE_CHAT",
		4:  "NOTIFICATION_PROVIDER_GRAFANA_ONCALL",
		5:  "NOTIFICATION_PROVIDER_NTFY",
		6:  "NOTIFICATION_PROVIDER_PAGERDUTY",
		7:  "NOTIFICATION_PROVIDER_OPSGENIE",
		8:  "NOTIFICATION_PROVIDER_SLACK",
		9:  "NOTIFICATION_PROVIDER_SMS",
		10: "NOTIFICATION_PROVIDER_TELEGRAM",
		11: "NOTIFICATION_PROVIDER_WEBHOOK",
		12: "NOTIFICATION_PROVIDER_WHATSAPP",
	}
	notificationProviderValue = enumjson.Invert(notificationProviderName)
)

func (x NotificationProvider) String() string {
	return enumjson.Name(notificationProviderName, int32(x))
}
func (x NotificationProvider) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(notificationProviderName, int32(x))
}
func (x *NotificationProvider) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, notificationProviderValue, "NotificationProvider")
	*x = NotificationProvider(v)
	return err
}

// OpsgenieRegion selects the Opsgenie API endpoint.
type OpsgenieRegion int32

const (
	OpsgenieRegionUnspecified OpsgenieRegion = 0
	OpsgenieRegionUS          OpsgenieRegion = 1
	OpsgenieRegionEU          OpsgenieRegion = 2
)

var (
	opsgenieRegionName = map[int32]string{
		0: "OPSGENIE_REGION_UNSPECIFIED",
		1: "OPSGENIE_REGION_US",
		2: "OPSGENIE_REGION_EU",
	}
	opsgenieRegionValue = enumjson.Invert(opsgenieRegionName)
)

func (x OpsgenieRegion) String() string { return enumjson.Name(opsgenieRegionName, int32(x)) }
func (x OpsgenieRegion) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(opsgenieRegionName, int32(x))
}
func (x *OpsgenieRegion) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, opsgenieRegionValue, "OpsgenieRegion")
	*x = OpsgenieRegion(v)
	return err
}
