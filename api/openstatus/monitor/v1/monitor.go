package monitorv1

import (
	"time"

	"github.com/openstatushq/openstatus-go/codecx"
)

// Headers is a single HTTP header sent by an HTTP monitor.
type Headers struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

// OpenTelemetryConfig exports check results to an OTLP endpoint.
type OpenTelemetryConfig struct {
	Endpoint string     `json:"endpoint,omitempty"`
	Headers  []*Headers `json:"headers,omitempty"`
}

// StatusCodeAssertion checks the response status code.
type StatusCodeAssertion struct {
	Target     codecx.Int64     `json:"target,omitempty"`
	Comparator NumberComparator `json:"comparator,omitempty"`
}

// BodyAssertion checks the response body.
type BodyAssertion struct {
	Target     string           `json:"target,omitempty"`
	Comparator StringComparator `json:"comparator,omitempty"`
}

// HeaderAssertion checks a response header.
type HeaderAssertion struct {
	Key        string           `json:"key,omitempty"`
	Target     string           `json:"target,omitempty"`
	Comparator StringComparator `json:"comparator,omitempty"`
}

// RecordAssertion checks a DNS record.
type RecordAssertion struct {
	Record     string           `json:"record,omitempty"`
	Target     string           `json:"target,omitempty"`
	Comparator RecordComparator `json:"comparator,omitempty"`
}

// HTTPMonitor checks an HTTP endpoint.
type HTTPMonitor struct {
	ID                   string                 `json:"id,omitempty"`
	Name                 string                 `json:"name,omitempty"`
	URL                  string                 `json:"url,omitempty"`
	Periodicity          Periodicity            `json:"periodicity,omitempty"`
	Method               HTTPMethod             `json:"method,omitempty"`
	Body                 string                 `json:"body,omitempty"`
	Timeout              codecx.Int64           `json:"timeout,omitempty"` // milliseconds
	DegradedAt           codecx.Int64           `json:"degradedAt,omitempty"`
	Retry                codecx.Int64           `json:"retry,omitempty"`
	FollowRedirects      bool                   `json:"followRedirects,omitempty"`
	Headers              []*Headers             `json:"headers,omitempty"`
	StatusCodeAssertions []*StatusCodeAssertion `json:"statusCodeAssertions,omitempty"`
	BodyAssertions       []*BodyAssertion       `json:"bodyAssertions,omitempty"`
	HeaderAssertions     []*HeaderAssertion     `json:"headerAssertions,omitempty"`
	Description          string                 `json:"description,omitempty"`
	Active               bool                   `json:"active,omitempty"`
	Regions              []Region               `json:"regions,omitempty"`
	Public               bool                   `json:"public,omitempty"`
	OpenTelemetry        *OpenTelemetryConfig   `json:"openTelemetry,omitempty"`
	Status               MonitorStatus          `json:"status,omitempty"`
}

// TCPMonitor checks that a TCP port accepts connections.
type TCPMonitor struct {
	ID            string               `json:"id,omitempty"`
	Name          string               `json:"name,omitempty"`
	URI           string               `json:"uri,omitempty"`
	Periodicity   Periodicity          `json:"periodicity,omitempty"`
	Timeout       codecx.Int64         `json:"timeout,omitempty"`
	DegradedAt    codecx.Int64         `json:"degradedAt,omitempty"`
	Retry         codecx.Int64         `json:"retry,omitempty"`
	Description   string               `json:"description,omitempty"`
	Active        bool                 `json:"active,omitempty"`
	Regions       []Region             `json:"regions,omitempty"`
	Public        bool                 `json:"public,omitempty"`
	OpenTelemetry *OpenTelemetryConfig `json:"openTelemetry,omitempty"`
	Status        MonitorStatus        `json:"status,omitempty"`
}

// DNSMonitor resolves a name and asserts on the records.
type DNSMonitor struct {
	ID               string               `json:"id,omitempty"`
	Name             string               `json:"name,omitempty"`
	URI              string               `json:"uri,omitempty"`
	Periodicity      Periodicity          `json:"periodicity,omitempty"`
	Timeout          codecx.Int64         `json:"timeout,omitempty"`
	DegradedAt       codecx.Int64         `json:"degradedAt,omitempty"`
	Retry            codecx.Int64         `json:"retry,omitempty"`
	Description      string               `json:"description,omitempty"`
	Active           bool                 `json:"active,omitempty"`
	Regions          []Region             `json:"regions,omitempty"`
	Public           bool                 `json:"public,omitempty"`
	RecordAssertions []*RecordAssertion   `json:"recordAssertions,omitempty"`
	OpenTelemetry    *OpenTelemetryConfig `json:"openTelemetry,omitempty"`
	Status           MonitorStatus        `json:"status,omitempty"`
}

// MonitorConfig holds exactly one of the monitor kinds.
type MonitorConfig struct {
	HTTP *HTTPMonitor `json:"http,omitempty"`
	TCP  *TCPMonitor  `json:"tcp,omitempty"`
	DNS  *DNSMonitor  `json:"dns,omitempty"`
}

// Kind reports which monitor kind is set: "http", "tcp", "dns" or "".
func (m *MonitorConfig) Kind() string {
	switch {
	case m == nil:
		return ""
	case m.HTTP != nil:
		return "http"
	case m.TCP != nil:
		return "tcp"
	case m.DNS != nil:
		return "dns"
	default:
		return ""
	}
}

// RegionStatus is the state of a monitor in one region.
type RegionStatus struct {
	Region Region        `json:"region,omitempty"`
	Status MonitorStatus `json:"status,omitempty"`
}

// MonitorSummary aggregates check results over a time range.
type MonitorSummary struct {
	ID              string       `json:"id,omitempty"`
	LastPingAt      *time.Time   `json:"lastPingAt,omitempty"`
	TotalSuccessful codecx.Int64 `json:"totalSuccessful,omitempty"`
	TotalDegraded   codecx.Int64 `json:"totalDegraded,omitempty"`
	TotalFailed     codecx.Int64 `json:"totalFailed,omitempty"`
	P50             codecx.Int64 `json:"p50,omitempty"`
	P75             codecx.Int64 `json:"p75,omitempty"`
	P90             codecx.Int64 `json:"p90,omitempty"`
	P95             codecx.Int64 `json:"p95,omitempty"`
	P99             codecx.Int64 `json:"p99,omitempty"`
	TimeRange       TimeRange    `json:"timeRange,omitempty"`
}
