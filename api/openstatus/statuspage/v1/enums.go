package statuspagev1

import "github.com/openstatushq/openstatus-go/api/internal/enumjson"

// PageAccessType controls who may view a status page.
type PageAccessType int32

const (
	PageAccessTypeUnspecified       PageAccessType = 0
	PageAccessTypePublic            PageAccessType = 1
	PageAccessTypePasswordProtected PageAccessType = 2
	PageAccessTypeAuthenticated     PageAccessType = 3
)

var (
	pageAccessTypeName = map[int32]string{
		0: "PAGE_ACCESS_TYPE_UNSPECIFIED",
		1: "PAGE_ACCESS_TYPE_PUBLIC",
		2: "PAGE_ACCESS_TYPE_PASSWORD_PROTECTED",
		3: "PAGE_ACCESS_TYPE_AUTHENTICATED",
	}
	pageAccessTypeValue = enumjson.Invert(pageAccessTypeName)
)

func (x PageAccessType) String() string { return enumjson.Name(pageAccessTypeName, int32(x)) }
func (x PageAccessType) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(pageAccessTypeName, int32(x))
}
func (x *PageAccessType) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, pageAccessTypeValue, "PageAccessType")
	*x = PageAccessType(v)
	return err
}

// PageTheme is the colour scheme of a status page.
type PageTheme int32

const (
	PageThemeUnspecified PageTheme = 0
	PageThemeSystem      PageTheme = 1
	PageThemeLight       PageTheme = 2
	PageThemeDark        PageTheme = 3
)

var (
	pageThemeName = map[int32]string{
		0: "PAGE_THEME_UNSPECIFIED",
		1: "PAGE_THEME_SYSTEM",
		2: "PAGE_THEME_LIGHT",
		3: "PAGE_THEME_DARK",
	}
	pageThemeValue = enumjson.Invert(pageThemeName)
)

func (x PageTheme) String() string { return enumjson.Name(pageThemeName, int32(x)) }
func (x PageTheme) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(pageThemeName, int32(x))
}
func (x *PageTheme) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, pageThemeValue, "PageTheme")
	*x = PageTheme(v)
	return err
}

// OverallStatus is the aggregated health of a page or component.
type OverallStatus int32

const (
	OverallStatusUnspecified   OverallStatus = 0
	OverallStatusOperational   OverallStatus = 1
	OverallStatusDegraded      OverallStatus = 2
	OverallStatusPartialOutage OverallStatus = 3
	OverallStatusMajorOutage   OverallStatus = 4
	OverallStatusMaintenance   OverallStatus = 5
	OverallStatusUnknown       OverallStatus = 6
)

var (
	overallStatusName = map[int32]string{
		0: "OVERALL_STATUS_UNSPECIFIED",
		1: "OVERALL_STATUS_OPERATIONAL",
		2: "OVERALL_STATUS_DEGRADED",
		3: "OVERALL_STATUS_PARTIAL_OUTAGE",
		4: "OVERALL_STATUS_MAJOR_OUTAGE",
		5: "OVERALL_STATUS_MAINTENANCE",
		6: "OVERALL_STATUS_UNKNOWN",
	}
	overallStatusValue = enumjson.Invert(overallStatusName)
)

func (x OverallStatus) String() string { return enumjson.Name(overallStatusName, int32(x)) }
func (x OverallStatus) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(overallStatusName, int32(x))
}
func (x *OverallStatus) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, overallStatusValue, "OverallStatus")
	*x = OverallStatus(v)
	return err
}

// PageComponentType distinguishes monitor-backed components from static ones.
type PageComponentType int32

const (
	PageComponentTypeUnspecified PageComponentType = 0
	PageComponentTypeMonitor     PageComponentType = 1
	PageComponentTypeStatic      PageComponentType = 2
)

var (
	pageComponentTypeName = map[int32]string{
		0: "PAGE_COMPONENT_TYPE_UNSPECIFIED",
		1: "PAGE_COMPONENT_TYPE_MONITOR",
		2: "PAGE_COMPONENT_TYPE_STATIC",
	}
	pageComponentTypeValue = enumjson.Invert(pageComponentTypeName)
)

func (x PageComponentType) String() string { return enumjson.Name(pageComponentTypeName, int32(x)) }
func (x PageComponentType) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(pageComponentTypeName, int32(x))
}
func (x *PageComponentType) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, pageComponentTypeValue, "PageComponentType")
	*x = PageComponentType(v)
	return err
}
