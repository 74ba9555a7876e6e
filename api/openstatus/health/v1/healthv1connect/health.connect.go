// Package healthv1connect binds the openstatus.health.v1.HealthService procedures to Connect clients.
package healthv1connect

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/openstatushq/openstatus-go/api/openstatus/health/v1"
)

// HealthServiceName is the fully-qualified name of the HealthService.
const HealthServiceName = "openstatus.health.v1.HealthService"

// Procedure paths, appended to the base URL.
const (
	HealthServiceCheckProcedure = "/openstatus.health.v1.HealthService/Check"
)

// Procedures lists every procedure of the HealthService in declaration order.
var Procedures = []string{
	HealthServiceCheckProcedure,
}

// HealthServiceClient is a client for the openstatus.health.v1.HealthService service.
type HealthServiceClient interface {
	// Check reports whether the API is serving. It needs no credentials.
	Check(context.Context, *connect.Request[v1.CheckRequest]) (*connect.Response[v1.CheckResponse], error)
}

// NewHealthServiceClient constructs a client for the openstatus.health.v1.HealthService service.
// baseURL is the API root, for example https://api.openstatus.dev/rpc; a
// trailing slash is ignored. Construction performs no I/O.
func NewHealthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) HealthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &healthServiceClient{
		check: connect.NewClient[v1.CheckRequest, v1.CheckResponse](
			httpClient,
			baseURL+HealthServiceCheckProcedure,
			opts...,
		),
	}
}

type healthServiceClient struct {
	check *connect.Client[v1.CheckRequest, v1.CheckResponse]
}

func (c *healthServiceClient) Check(ctx context.Context, req *connect.Request[v1.CheckRequest]) (*connect.Response[v1.CheckResponse], error) {
	return c.check.CallUnary(ctx, req)
}
