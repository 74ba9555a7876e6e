// Package openstatus is the Go client for the OpenStatus API.
//
// A Client groups one typed client per RPC service. All of them share a
// single transport: base URL, HTTP protocol and interceptor chain.
//
//	client := openstatus.NewClient(openstatus.WithAPIKey(os.Getenv("OPENSTATUS_API_KEY")))
//	res, err := client.Monitor.ListMonitors(ctx, connect.NewRequest(&monitorv1.ListMonitorsRequest{}))
//
// There is no package-level default client. Build one at startup and reuse
// it; a Client is safe for concurrent use.
//
// Errors returned by service methods are *connect.Error values. Use
// core/errors.CodeOf to classify them.
package openstatus
