// Package monitorv1 contains the messages of the openstatus.monitor.v1 API:
// HTTP, TCP and DNS monitors, their assertions and the MonitorService
// request/response pairs.
//
// JSON field names follow the protobuf JSON mapping so the messages can be
// exchanged with the OpenStatus Connect endpoint through codecx.
package monitorv1
