package openstatus

import (
	healthv1 "github.com/openstatushq/openstatus-go/api/openstatus/health/v1"
	monitorv1 "github.com/openstatushq/openstatus-go/api/openstatus/monitor/v1"
)

// Enum types used across monitor requests, re-exported for convenience.
type (
	HTTPMethod    = monitorv1.HTTPMethod
	Periodicity   = monitorv1.Periodicity
	Region        = monitorv1.Region
	MonitorStatus = monitorv1.MonitorStatus
	ServingStatus = healthv1.ServingStatus
)
