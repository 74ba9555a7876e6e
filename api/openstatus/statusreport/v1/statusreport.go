// Package statusreportv1 contains the messages of the openstatus.status_report.v1
// API: incident reports shown on status pages and their timeline updates.
package statusreportv1

import (
	"time"

	"github.com/openstatushq/openstatus-go/api/internal/enumjson"
)

// StatusReportStatus is the lifecycle state of an incident.
type StatusReportStatus int32

const (
	StatusReportStatusUnspecified   StatusReportStatus = 0
	StatusReportStatusInvestigating StatusReportStatus = 1
	StatusReportStatusIdentified    StatusReportStatus = 2
	StatusReportStatusMonitoring    StatusReportStatus = 3
	StatusReportStatusResolved      StatusReportStatus = 4
)

var (
	statusReportStatusName = map[int32]string{
		0: "STATUS_REPORT_STATUS_UNSPECIFIED",
		1: "STATUS_REPORT_STATUS_INVESTIGATING",
		2: "STATUS_REPORT_STATUS_IDENTIFIED",
		3: "STATUS_REPORT_STATUS_MONITORING",
		4: "STATUS_REPORT_STATUS_RESOLVED",
	}
	statusReportStatusValue = enumjson.Invert(statusReportStatusName)
)

func (x StatusReportStatus) String() string { return enumjson.Name(statusReportStatusName, int32(x)) }
func (x StatusReportStatus) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(statusReportStatusName, int32(x))
}
func (x *StatusReportStatus) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, statusReportStatusValue, "StatusReportStatus")
	*x = StatusReportStatus(v)
	return err
}

// StatusReportUpdate is one entry of an incident timeline.
type StatusReportUpdate struct {
	ID        string             `json:"id,omitempty"`
	Status    StatusReportStatus `json:"status,omitempty"`
	Date      *time.Time         `json:"date,omitempty"`
	Message   string             `json:"message,omitempty"`
	CreatedAt *time.Time         `json:"createdAt,omitempty"`
}

// StatusReport is an incident with its updates.
type StatusReport struct {
	ID               string                `json:"id,omitempty"`
	Title            string                `json:"title,omitempty"`
	Status           StatusReportStatus    `json:"status,omitempty"`
	PageID           string                `json:"pageId,omitempty"`
	PageComponentIDs []string              `json:"pageComponentIds,omitempty"`
	Updates          []*StatusReportUpdate `json:"updates,omitempty"`
	CreatedAt        *time.Time            `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time            `json:"updatedAt,omitempty"`
}

// Latest returns the most recent update by date, or nil.
func (r *StatusReport) Latest() *StatusReportUpdate {
	if r == nil {
		return nil
	}
	var latest *StatusReportUpdate
	for _, u := range r.Updates {
		if u == nil || u.Date == nil {
			continue
		}
		if latest == nil || u.Date.After(*latest.Date) {
			latest = u
		}
	}
	return latest
}

// CreateStatusReportRequest opens an incident with its first update.
type CreateStatusReportRequest struct {
	Title            string             `json:"title,omitempty"`
	Status           StatusReportStatus `json:"status,omitempty"`
	Message          string             `json:"message,omitempty"`
	Date             *time.Time         `json:"date,omitempty"`
	PageID           string             `json:"pageId,omitempty"`
	PageComponentIDs []string           `json:"pageComponentIds,omitempty"`
	Notify           *bool              `json:"notify,omitempty"`
}

// CreateStatusReportResponse returns the created report.
type CreateStatusReportResponse struct {
	StatusReport *StatusReport `json:"statusReport,omitempty"`
}

// GetStatusReportRequest fetches a report by ID.
type GetStatusReportRequest struct {
	ID string `json:"id,omitempty"`
}

// GetStatusReportResponse returns the report.
type GetStatusReportResponse struct {
	StatusReport *StatusReport `json:"statusReport,omitempty"`
}

// ListStatusReportsRequest pages through reports, optionally filtered by status.
type ListStatusReportsRequest struct {
	Limit    *int32               `json:"limit,omitempty"`
	Offset   *int32               `json:"offset,omitempty"`
	Statuses []StatusReportStatus `json:"statuses,omitempty"`
}

// ListStatusReportsResponse returns one page of reports.
type ListStatusReportsResponse struct {
	StatusReports []*StatusReport `json:"statusReports"`
	TotalSize     int32           `json:"totalSize"`
}

// UpdateStatusReportRequest changes report metadata. Unset fields are kept.
type UpdateStatusReportRequest struct {
	ID               string   `json:"id,omitempty"`
	Title            *string  `json:"title,omitempty"`
	PageComponentIDs []string `json:"pageComponentIds,omitempty"`
}

// UpdateStatusReportResponse returns the updated report.
type UpdateStatusReportResponse struct {
	StatusReport *StatusReport `json:"statusReport,omitempty"`
}

// DeleteStatusReportRequest deletes a report.
type DeleteStatusReportRequest struct {
	ID string `json:"id,omitempty"`
}

// DeleteStatusReportResponse reports whether the report was deleted.
type DeleteStatusReportResponse struct {
	Success bool `json:"success,omitempty"`
}

// AddStatusReportUpdateRequest appends an update to the timeline.
type AddStatusReportUpdateRequest struct {
	StatusReportID string             `json:"statusReportId,omitempty"`
	Status         StatusReportStatus `json:"status,omitempty"`
	Message        string             `json:"message,omitempty"`
	Date           *time.Time         `json:"date,omitempty"`
	Notify         *bool              `json:"notify,omitempty"`
}

// AddStatusReportUpdateResponse returns the report including the new update.
type AddStatusReportUpdateResponse struct {
	StatusReport *StatusReport `json:"statusReport,omitempty"`
}
