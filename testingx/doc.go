// Package testingx holds test doubles for code built on the SDK.
//
// Server is an in-process Connect server mounted under /rpc like the hosted
// API. It speaks HTTP/1.1 and h2c, records the headers of every call and
// answers with canned messages or errors registered per procedure.
// RequireAPIKey makes it reject calls the way the hosted API does.
//
// MockLogger and CaptureLogger implement core/log.Logger so tests can
// assert on what an interceptor logged.
//
//	srv := testingx.NewServer(t)
//	testingx.Respond[healthv1.CheckRequest](srv, healthv1connect.HealthServiceCheckProcedure,
//		&healthv1.CheckResponse{Status: healthv1.ServingStatusServing})
//
//	client := openstatus.NewClient(openstatus.WithBaseURL(srv.URL()))
package testingx
