package statuspagev1

import (
	maintenancev1 "github.com/openstatushq/openstatus-go/api/openstatus/maintenance/v1"
	statusreportv1 "github.com/openstatushq/openstatus-go/api/openstatus/statusreport/v1"
)

type CreateStatusPageRequest struct {
	Title        string         `json:"title,omitempty"`
	Description  string         `json:"description,omitempty"`
	Slug         string         `json:"slug,omitempty"`
	CustomDomain string         `json:"customDomain,omitempty"`
	AccessType   PageAccessType `json:"accessType,omitempty"`
	Password     string         `json:"password,omitempty"`
	Theme        PageTheme      `json:"theme,omitempty"`
	HomepageURL  string         `json:"homepageUrl,omitempty"`
	ContactURL   string         `json:"contactUrl,omitempty"`
}

type CreateStatusPageResponse struct {
	StatusPage *StatusPage `json:"statusPage,omitempty"`
}

type GetStatusPageRequest struct {
	ID string `json:"id,omitempty"`
}

type GetStatusPageResponse struct {
	StatusPage      *StatusPage           `json:"statusPage,omitempty"`
	Components      []*PageComponent      `json:"components,omitempty"`
	ComponentGroups []*PageComponentGroup `json:"componentGroups,omitempty"`
}

type ListStatusPagesRequest struct {
	Limit  *int32 `json:"limit,omitempty"`
	Offset *int32 `json:"offset,omitempty"`
}

type ListStatusPagesResponse struct {
	StatusPages []*StatusPage `json:"statusPages"`
	TotalSize   int32         `json:"totalSize"`
}

// UpdateStatusPageRequest changes page settings. Unset fields are kept.
type UpdateStatusPageRequest struct {
	ID           string          `json:"id,omitempty"`
	Title        *string         `json:"title,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Slug         *string         `json:"slug,omitempty"`
	CustomDomain *string         `json:"customDomain,omitempty"`
	Published    *bool           `json:"published,omitempty"`
	AccessType   *PageAccessType `json:"accessType,omitempty"`
	Password     *string         `json:"password,omitempty"`
	Theme        *PageTheme      `json:"theme,omitempty"`
	HomepageURL  *string         `json:"homepageUrl,omitempty"`
	ContactURL   *string         `json:"contactUrl,omitempty"`
}

type UpdateStatusPageResponse struct {
	StatusPage *StatusPage `json:"statusPage,omitempty"`
}

type DeleteStatusPageRequest struct {
	ID string `json:"id,omitempty"`
}

type DeleteStatusPageResponse struct {
	Success bool `json:"success,omitempty"`
}

// AddMonitorComponentRequest adds a component backed by a monitor.
type AddMonitorComponentRequest struct {
	PageID      string `json:"pageId,omitempty"`
	MonitorID   string `json:"monitorId,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	GroupID     string `json:"groupId,omitempty"`
	Order       int32  `json:"order,omitempty"`
}

type AddMonitorComponentResponse struct {
	Component *PageComponent `json:"component,omitempty"`
}

// AddStaticComponentRequest adds a component whose status is set by reports only.
type AddStaticComponentRequest struct {
	PageID      string `json:"pageId,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	GroupID     string `json:"groupId,omitempty"`
	Order       int32  `json:"order,omitempty"`
}

type AddStaticComponentResponse struct {
	Component *PageComponent `json:"component,omitempty"`
}

type RemoveComponentRequest struct {
	ID string `json:"id,omitempty"`
}

type RemoveComponentResponse struct {
	Success bool `json:"success,omitempty"`
}

type UpdateComponentRequest struct {
	ID          string  `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	GroupID     *string `json:"groupId,omitempty"`
	Order       *int32  `json:"order,omitempty"`
}

type UpdateComponentResponse struct {
	Component *PageComponent `json:"component,omitempty"`
}

type CreateComponentGroupRequest struct {
	PageID string `json:"pageId,omitempty"`
	Name   string `json:"name,omitempty"`
}

type CreateComponentGroupResponse struct {
	Group *PageComponentGroup `json:"group,omitempty"`
}

type DeleteComponentGroupRequest struct {
	ID string `json:"id,omitempty"`
}

type DeleteComponentGroupResponse struct {
	Success bool `json:"success,omitempty"`
}

type UpdateComponentGroupRequest struct {
	ID   string  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

type UpdateComponentGroupResponse struct {
	Group *PageComponentGroup `json:"group,omitempty"`
}

type SubscribeToPageRequest struct {
	PageID string `json:"pageId,omitempty"`
	Email  string `json:"email,omitempty"`
}

type SubscribeToPageResponse struct {
	Subscriber *PageSubscriber `json:"subscriber,omitempty"`
}

// UnsubscribeFromPageRequest removes a subscriber, identified either by
// email or by subscriber ID.
type UnsubscribeFromPageRequest struct {
	PageID string `json:"pageId,omitempty"`
	Email  string `json:"email,omitempty"`
	ID     string `json:"id,omitempty"`
}

type UnsubscribeFromPageResponse struct {
	Success bool `json:"success,omitempty"`
}

type ListSubscribersRequest struct {
	PageID         string `json:"pageId,omitempty"`
	Limit          *int32 `json:"limit,omitempty"`
	Offset         *int32 `json:"offset,omitempty"`
	IncludePending bool   `json:"includePending,omitempty"`
}

type ListSubscribersResponse struct {
	Subscribers []*PageSubscriber `json:"subscribers"`
	TotalSize   int32             `json:"totalSize"`
}

// GetStatusPageContentRequest selects a page by ID or slug.
type GetStatusPageContentRequest struct {
	PageSelector
}

// GetStatusPageContentResponse is everything needed to render a page.
type GetStatusPageContentResponse struct {
	StatusPage      *StatusPage                    `json:"statusPage,omitempty"`
	Components      []*PageComponent               `json:"components,omitempty"`
	ComponentGroups []*PageComponentGroup          `json:"componentGroups,omitempty"`
	StatusReports   []*statusreportv1.StatusReport `json:"statusReports,omitempty"`
	Maintenances    []*maintenancev1.Maintenance   `json:"maintenances,omitempty"`
}

// GetOverallStatusRequest selects a page by ID or slug.
type GetOverallStatusRequest struct {
	PageSelector
}

type GetOverallStatusResponse struct {
	OverallStatus   OverallStatus      `json:"overallStatus,omitempty"`
	ComponentStatus []*ComponentStatus `json:"componentStatuses,omitempty"`
}

// Worst returns the most severe component status, ignoring unspecified and
// unknown entries. Maintenance ranks below any outage.
func (r *GetOverallStatusResponse) Worst() OverallStatus {
	if r == nil {
		return OverallStatusUnspecified
	}
	worst := OverallStatusUnspecified
	for _, c := range r.ComponentStatus {
		if c == nil {
			continue
		}
		if severity(c.Status) > severity(worst) {
			worst = c.Status
		}
	}
	return worst
}

func severity(s OverallStatus) int {
	switch s {
	case OverallStatusOperational:
		return 1
	case OverallStatusMaintenance:
		return 2
	case OverallStatusDegraded:
		return 3
	case OverallStatusPartialOutage:
		return 4
	case OverallStatusMajorOutage:
		return 5
	default:
		return 0
	}
}
