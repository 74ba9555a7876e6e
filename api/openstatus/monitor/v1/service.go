package monitorv1

// CreateHTTPMonitorRequest creates an HTTP monitor.
type CreateHTTPMonitorRequest struct {
	Monitor *HTTPMonitor `json:"monitor,omitempty"`
}

// CreateHTTPMonitorResponse returns the created monitor.
type CreateHTTPMonitorResponse struct {
	Monitor *HTTPMonitor `json:"monitor,omitempty"`
}

// CreateTCPMonitorRequest creates a TCP monitor.
type CreateTCPMonitorRequest struct {
	Monitor *TCPMonitor `json:"monitor,omitempty"`
}

// CreateTCPMonitorResponse returns the created monitor.
type CreateTCPMonitorResponse struct {
	Monitor *TCPMonitor `json:"monitor,omitempty"`
}

// CreateDNSMonitorRequest creates a DNS monitor.
type CreateDNSMonitorRequest struct {
	Monitor *DNSMonitor `json:"monitor,omitempty"`
}

// CreateDNSMonitorResponse returns the created monitor.
type CreateDNSMonitorResponse struct {
	Monitor *DNSMonitor `json:"monitor,omitempty"`
}

// UpdateHTTPMonitorRequest replaces the configuration of an HTTP monitor.
type UpdateHTTPMonitorRequest struct {
	ID      string       `json:"id,omitempty"`
	Monitor *HTTPMonitor `json:"monitor,omitempty"`
}

// UpdateHTTPMonitorResponse returns the updated monitor.
type UpdateHTTPMonitorResponse struct {
	Monitor *HTTPMonitor `json:"monitor,omitempty"`
}

// UpdateTCPMonitorRequest replaces the configuration of a TCP monitor.
type UpdateTCPMonitorRequest struct {
	ID      string      `json:"id,omitempty"`
	Monitor *TCPMonitor `json:"monitor,omitempty"`
}

// UpdateTCPMonitorResponse returns the updated monitor.
type UpdateTCPMonitorResponse struct {
	Monitor *TCPMonitor `json:"monitor,omitempty"`
}

// UpdateDNSMonitorRequest replaces the configuration of a DNS monitor.
type UpdateDNSMonitorRequest struct {
	ID      string      `json:"id,omitempty"`
	Monitor *DNSMonitor `json:"monitor,omitempty"`
}

// UpdateDNSMonitorResponse returns the updated monitor.
type UpdateDNSMonitorResponse struct {
	Monitor *DNSMonitor `json:"monitor,omitempty"`
}

// GetMonitorRequest fetches a monitor of any kind.
type GetMonitorRequest struct {
	ID string `json:"id,omitempty"`
}

// GetMonitorResponse wraps the monitor in its kind.
type GetMonitorResponse struct {
	Monitor *MonitorConfig `json:"monitor,omitempty"`
}

// ListMonitorsRequest pages through the workspace monitors.
type ListMonitorsRequest struct {
	Limit  *int32 `json:"limit,omitempty"`
	Offset *int32 `json:"offset,omitempty"`
}

// ListMonitorsResponse groups monitors by kind.
type ListMonitorsResponse struct {
	HTTPMonitors []*HTTPMonitor `json:"httpMonitors"`
	TCPMonitors  []*TCPMonitor  `json:"tcpMonitors"`
	DNSMonitors  []*DNSMonitor  `json:"dnsMonitors"`
	TotalSize    int32          `json:"totalSize"`
}

// TriggerMonitorRequest runs a monitor immediately.
type TriggerMonitorRequest struct {
	ID string `json:"id,omitempty"`
}

// TriggerMonitorResponse reports whether the run was scheduled.
type TriggerMonitorResponse struct {
	Success bool `json:"success,omitempty"`
}

// DeleteMonitorRequest deletes a monitor.
type DeleteMonitorRequest struct {
	ID string `json:"id,omitempty"`
}

// DeleteMonitorResponse reports whether the monitor was deleted.
type DeleteMonitorResponse struct {
	Success bool `json:"success,omitempty"`
}

// GetMonitorStatusRequest fetches the per-region state of a monitor.
type GetMonitorStatusRequest struct {
	ID string `json:"id,omitempty"`
}

// GetMonitorStatusResponse lists the per-region state.
type GetMonitorStatusResponse struct {
	ID      string          `json:"id,omitempty"`
	Regions []*RegionStatus `json:"regions,omitempty"`
}

// GetMonitorSummaryRequest aggregates results over a time range.
type GetMonitorSummaryRequest struct {
	ID        string    `json:"id,omitempty"`
	TimeRange TimeRange `json:"timeRange,omitempty"`
	Regions   []Region  `json:"regions,omitempty"`
}

// GetMonitorSummaryResponse carries the aggregate.
type GetMonitorSummaryResponse struct {
	Summary *MonitorSummary `json:"summary,omitempty"`
}
