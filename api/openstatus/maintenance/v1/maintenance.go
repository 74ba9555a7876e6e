// Package maintenancev1 contains the messages of the openstatus.maintenance.v1
// API: scheduled maintenance windows attached to status page components.
package maintenancev1

import "time"

// Maintenance is a scheduled window during which components are expected
// to be degraded.
type Maintenance struct {
	ID               string     `json:"id,omitempty"`
	Title            string     `json:"title,omitempty"`
	Message          string     `json:"message,omitempty"`
	From             *time.Time `json:"from,omitempty"`
	To               *time.Time `json:"to,omitempty"`
	PageID           string     `json:"pageId,omitempty"`
	PageComponentIDs []string   `json:"pageComponentIds,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// Active reports whether now falls inside the window.
func (m *Maintenance) Active(now time.Time) bool {
	if m == nil || m.From == nil || m.To == nil {
		return false
	}
	return !now.Before(*m.From) && now.Before(*m.To)
}

// CreateMaintenanceRequest schedules a window.
type CreateMaintenanceRequest struct {
	Title            string     `json:"title,omitempty"`
	Message          string     `json:"message,omitempty"`
	From             *time.Time `json:"from,omitempty"`
	To               *time.Time `json:"to,omitempty"`
	PageID           string     `json:"pageId,omitempty"`
	PageComponentIDs []string   `json:"pageComponentIds,omitempty"`
	Notify           *bool      `json:"notify,omitempty"`
}

// CreateMaintenanceResponse returns the scheduled window.
type CreateMaintenanceResponse struct {
	Maintenance *Maintenance `json:"maintenance,omitempty"`
}

// GetMaintenanceRequest fetches a window by ID.
type GetMaintenanceRequest struct {
	ID string `json:"id,omitempty"`
}

// GetMaintenanceResponse returns the window.
type GetMaintenanceResponse struct {
	Maintenance *Maintenance `json:"maintenance,omitempty"`
}

// ListMaintenancesRequest pages through windows, optionally for one page.
type ListMaintenancesRequest struct {
	Limit  *int32  `json:"limit,omitempty"`
	Offset *int32  `json:"offset,omitempty"`
	PageID *string `json:"pageId,omitempty"`
}

// ListMaintenancesResponse returns one page of windows.
type ListMaintenancesResponse struct {
	Maintenances []*Maintenance `json:"maintenances"`
	TotalSize    int32          `json:"totalSize"`
}

// UpdateMaintenanceRequest changes a window. Unset fields are kept.
type UpdateMaintenanceRequest struct {
	ID               string     `json:"id,omitempty"`
	Title            *string    `json:"title,omitempty"`
	Message          *string    `json:"message,omitempty"`
	From             *time.Time `json:"from,omitempty"`
	To               *time.Time `json:"to,omitempty"`
	PageComponentIDs []string   `json:"pageComponentIds,omitempty"`
}

// UpdateMaintenanceResponse returns the updated window.
type UpdateMaintenanceResponse struct {
	Maintenance *Maintenance `json:"maintenance,omitempty"`
}

// DeleteMaintenanceRequest deletes a window.
type DeleteMaintenanceRequest struct {
	ID string `json:"id,omitempty"`
}

// DeleteMaintenanceResponse reports whether the window was deleted.
type DeleteMaintenanceResponse struct {
	Success bool `json:"success,omitempty"`
}
